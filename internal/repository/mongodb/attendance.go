package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &AttendanceRepository{coll: db.Collection("attendance_records")}
}

func (r *AttendanceRepository) FindInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	return r.find(ctx, bson.M{"date": bson.M{"$gte": start, "$lte": end}})
}

func (r *AttendanceRepository) FindByPersonInRange(ctx context.Context, personID string, start, end time.Time) ([]attendance.Record, error) {
	return r.find(ctx, bson.M{
		"person_id": personID,
		"date":      bson.M{"$gte": start, "$lte": end},
	})
}

func (r *AttendanceRepository) find(ctx context.Context, filter bson.M) ([]attendance.Record, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer cursor.Close(ctx)

	var records []attendance.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance: %w", err)
	}
	return records, nil
}

// Upsert writes the record keyed by (person_id, date_key) so a person can
// never hold two records for the same day.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (*attendance.Record, bool, error) {
	filter := bson.M{
		"person_id": rec.PersonID,
		"date_key":  rec.DateKey,
	}
	update := bson.M{
		"$set": bson.M{
			"date":       rec.Date,
			"status":     rec.Status,
			"marked_by":  rec.MarkedBy,
			"updated_at": rec.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        rec.ID,
			"person_id":  rec.PersonID,
			"date_key":   rec.DateKey,
			"created_at": rec.CreatedAt,
		},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	var saved attendance.Record
	if err := r.coll.FindOne(ctx, filter).Decode(&saved); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, attendance.ErrAttendanceNotFound
		}
		return nil, false, fmt.Errorf("failed to read back attendance: %w", err)
	}
	return &saved, result.MatchedCount > 0, nil
}
