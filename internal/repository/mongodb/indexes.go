package mongodb

import (
	"context"
	"fmt"

	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness constraints the domain relies on:
// one person per email, one attendance record per (person, day), one
// snapshot per day.
func EnsureIndexes(ctx context.Context, db *database.DB) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		"people": {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		},
		"attendance_records": {
			Keys:    bson.D{{Key: "person_id", Value: 1}, {Key: "date_key", Value: 1}},
			Options: unique,
		},
		"labour_allocation_records": {
			Keys:    bson.D{{Key: "date_key", Value: 1}},
			Options: unique,
		},
		"task_allocation_records": {
			Keys:    bson.D{{Key: "date_key", Value: 1}},
			Options: unique,
		},
	}

	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll, err)
		}
	}
	return nil
}
