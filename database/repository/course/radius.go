package courseRepo

import (
	"context"
	"fmt"
	"time"

	"fairway/database/repository"
	"fairway/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const metersPerMile = 1609.34

// NearbyIDs runs a $geoNear aggregation and returns open course ids within
// radiusMiles of the center, nearest first.
func (r *MongoCourseRepo) NearbyIDs(lat, lon, radiusMiles float64) ([]repository.CourseDistance, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// $geoNear must be the first stage; it both filters and sorts by distance.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{lon, lat}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "spherical", Value: true},
			{Key: "maxDistance", Value: radiusMiles * metersPerMile},
			{Key: "key", Value: "location.geo"},
		}}},
		bson.D{{Key: "$match", Value: bson.M{"status": "open"}}},
		bson.D{{Key: "$project", Value: bson.M{"id": 1, "distance": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("geo aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID       string  `bson:"id"`
		Distance float64 `bson:"distance"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode geo results: %w", err)
	}

	results := make([]repository.CourseDistance, 0, len(rows))
	for _, row := range rows {
		results = append(results, repository.CourseDistance{
			ID:             row.ID,
			DistanceMeters: row.Distance,
		})
	}
	return results, nil
}

// decodeCourses drains a cursor into normalized course models.
func decodeCourses(cursor *mongo.Cursor, ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	for cursor.Next(ctx) {
		var c models.Course
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode course: %w", err)
		}
		c.Normalize()
		courses = append(courses, c)
	}
	return courses, nil
}
