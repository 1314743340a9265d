package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *database.DB) task.Repository {
	return &TaskRepository{coll: db.Collection("tasks")}
}

func (r *TaskRepository) List(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	query := bson.M{}
	if filter.LeaderID != "" {
		query["leader_id"] = filter.LeaderID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []task.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*task.Task, error) {
	var t task.Task
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, task.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t task.Task) (*task.Task, error) {
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) Update(ctx context.Context, t task.Task) (*task.Task, error) {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, task.ErrTaskNotFound
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) AddAllocation(ctx context.Context, taskID string, alloc task.Allocation) (*task.Task, error) {
	update := bson.M{
		"$push": bson.M{"allocations": alloc},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": taskID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to add allocation: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, task.ErrTaskNotFound
	}
	return r.FindByID(ctx, taskID)
}

func (r *TaskRepository) RemoveAllocation(ctx context.Context, taskID string, labourID string) (*task.Task, error) {
	update := bson.M{
		"$pull": bson.M{"allocations": bson.M{"labour_id": labourID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": taskID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to remove allocation: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, task.ErrTaskNotFound
	}
	return r.FindByID(ctx, taskID)
}
