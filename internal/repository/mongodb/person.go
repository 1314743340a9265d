package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PersonRepository struct {
	coll *mongo.Collection
}

func NewPersonRepository(db *database.DB) person.Repository {
	return &PersonRepository{coll: db.Collection("people")}
}

func (r *PersonRepository) FindByRole(ctx context.Context, roles []person.Role) ([]person.Person, error) {
	roleStrings := make([]string, 0, len(roles))
	for _, role := range roles {
		roleStrings = append(roleStrings, string(role))
	}

	filter := bson.M{
		"role":      bson.M{"$in": roleStrings},
		"is_active": true,
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer cursor.Close(ctx)

	var people []person.Person
	if err := cursor.All(ctx, &people); err != nil {
		return nil, fmt.Errorf("failed to decode people: %w", err)
	}
	return people, nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id string) (*person.Person, error) {
	var p person.Person
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, person.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return &p, nil
}

func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*person.Person, error) {
	var p person.Person
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, person.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to find person by email: %w", err)
	}
	return &p, nil
}

func (r *PersonRepository) List(ctx context.Context) ([]person.Person, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer cursor.Close(ctx)

	var people []person.Person
	if err := cursor.All(ctx, &people); err != nil {
		return nil, fmt.Errorf("failed to decode people: %w", err)
	}
	return people, nil
}

func (r *PersonRepository) Create(ctx context.Context, p person.Person) (*person.Person, error) {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, person.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to insert person: %w", err)
	}
	return &p, nil
}

func (r *PersonRepository) Update(ctx context.Context, p person.Person) (*person.Person, error) {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, person.ErrPersonNotFound
	}
	return &p, nil
}

func (r *PersonRepository) Deactivate(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate person: %w", err)
	}
	if result.MatchedCount == 0 {
		return person.ErrPersonNotFound
	}
	return nil
}
