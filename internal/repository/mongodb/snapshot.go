package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/allocation"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/database"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SnapshotRepository stores the per-day labour and task allocation
// rollups. Snapshots are keyed by date_key; an upsert replaces any
// earlier snapshot for the same day, so a day never accumulates
// duplicates.
type SnapshotRepository struct {
	labourColl *mongo.Collection
	taskColl   *mongo.Collection
}

func NewSnapshotRepository(db *database.DB) allocation.Repository {
	return &SnapshotRepository{
		labourColl: db.Collection("labour_allocation_records"),
		taskColl:   db.Collection("task_allocation_records"),
	}
}

func (r *SnapshotRepository) FindLabourSnapshot(ctx context.Context, start, end time.Time) (*allocation.LabourSnapshot, error) {
	var snap allocation.LabourSnapshot
	err := r.labourColl.FindOne(ctx,
		bson.M{"date": bson.M{"$gte": start, "$lte": end}},
		options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}}),
	).Decode(&snap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find labour snapshot: %w", err)
	}
	return &snap, nil
}

func (r *SnapshotRepository) FindTaskSnapshot(ctx context.Context, start, end time.Time) (*allocation.TaskSnapshot, error) {
	var snap allocation.TaskSnapshot
	err := r.taskColl.FindOne(ctx,
		bson.M{"date": bson.M{"$gte": start, "$lte": end}},
		options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}}),
	).Decode(&snap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task snapshot: %w", err)
	}
	return &snap, nil
}

func (r *SnapshotRepository) UpsertLabourSnapshot(ctx context.Context, snap allocation.LabourSnapshot) (*allocation.LabourSnapshot, bool, error) {
	filter := bson.M{"date_key": snap.DateKey}
	update := bson.M{
		"$set": bson.M{
			"date":               snap.Date,
			"total_labour_count": snap.TotalLabourCount,
			"leader_allocations": snap.LeaderAllocations,
			"company_stats":      snap.CompanyStats,
			"saved_by":           snap.SavedBy,
			"updated_at":         snap.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"date_key":   snap.DateKey,
			"created_at": snap.CreatedAt,
		},
	}

	result, err := r.labourColl.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert labour snapshot: %w", err)
	}

	var saved allocation.LabourSnapshot
	if err := r.labourColl.FindOne(ctx, filter).Decode(&saved); err != nil {
		return nil, false, fmt.Errorf("failed to read back labour snapshot: %w", err)
	}
	return &saved, result.MatchedCount > 0, nil
}

func (r *SnapshotRepository) UpsertTaskSnapshot(ctx context.Context, snap allocation.TaskSnapshot) (*allocation.TaskSnapshot, bool, error) {
	filter := bson.M{"date_key": snap.DateKey}
	update := bson.M{
		"$set": bson.M{
			"date":             snap.Date,
			"task_allocations": snap.TaskAllocations,
			"summary":          snap.Summary,
			"saved_by":         snap.SavedBy,
			"updated_at":       snap.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"date_key":   snap.DateKey,
			"created_at": snap.CreatedAt,
		},
	}

	result, err := r.taskColl.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert task snapshot: %w", err)
	}

	var saved allocation.TaskSnapshot
	if err := r.taskColl.FindOne(ctx, filter).Decode(&saved); err != nil {
		return nil, false, fmt.Errorf("failed to read back task snapshot: %w", err)
	}
	return &saved, result.MatchedCount > 0, nil
}
