package courseRepo

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"fairway/database/repository"
	"fairway/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a course by its unique ID.
func (r *MongoCourseRepo) GetByID(id string) (*models.Course, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var course models.Course
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch course with id %s: %w", id, err)
	}
	course.Normalize()
	return &course, nil
}

// GetByName retrieves a course by name (case-insensitive substring), further
// narrowed by state or country when supplied.
func (r *MongoCourseRepo) GetByName(name, state, country string) (*models.Course, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"name": bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"},
	}
	if state != "" {
		filter["location.state"] = strings.ToUpper(state)
	}
	if country != "" {
		filter["location.country"] = bson.M{"$regex": "^" + regexp.QuoteMeta(country) + "$", "$options": "i"}
	}

	var course models.Course
	if err := r.coll.FindOne(ctx, filter).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch course %q: %w", name, err)
	}
	course.Normalize()
	return &course, nil
}

// FindOpen retrieves open courses matching the exact-match location predicate.
func (r *MongoCourseRepo) FindOpen(q repository.CourseQuery) ([]models.Course, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"status": "open"}
	if q.City != "" {
		filter["location.city"] = bson.M{"$regex": regexp.QuoteMeta(q.City), "$options": "i"}
	}
	if q.State != "" {
		filter["location.state"] = q.State
	}
	if q.Country != "" {
		filter["location.country"] = bson.M{"$regex": "^" + regexp.QuoteMeta(q.Country) + "$", "$options": "i"}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find courses: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeCourses(cursor, ctx)
}

// FindOpenByIDs retrieves open courses for the given id set. Result order is
// unspecified; callers re-apply their own ordering.
func (r *MongoCourseRepo) FindOpenByIDs(ids []string) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":     bson.M{"$in": ids},
		"status": "open",
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find courses by ids: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeCourses(cursor, ctx)
}
