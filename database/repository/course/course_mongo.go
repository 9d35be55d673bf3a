package courseRepo

import (
	"context"
	"fmt"
	"time"

	"fairway/database"
	"fairway/database/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCourseRepo implements CourseRepository using MongoDB.
type MongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo creates a new instance of CourseRepository using MongoDB.
func NewMongoCourseRepo() repository.CourseRepository {
	coll := database.MongoClient.Database("fairway").Collection("courses")
	repo := &MongoCourseRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoCourseRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "location.state", Value: 1}}},
		{Keys: bson.D{{Key: "location.country", Value: 1}}},
		// 2dsphere index on the geo point for radius queries.
		{Keys: bson.D{{Key: "location.geo", Value: "2dsphere"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
