package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prodrawing-backend-go/internal/models"
)

// mongoSelectionRepository implements SelectionRepository on a Mongo
// collection.
type mongoSelectionRepository struct {
	coll *mongo.Collection
}

// NewMongoSelectionRepository creates a SelectionRepository backed by
// the selectedclasses collection of the given database.
func NewMongoSelectionRepository(database *mongo.Database) SelectionRepository {
	return &mongoSelectionRepository{coll: database.Collection(selectionsCollection)}
}

func (r *mongoSelectionRepository) Create(ctx context.Context, selection *models.SelectedClass) (string, error) {
	res, err := r.coll.InsertOne(ctx, selection)
	if err != nil {
		return "", fmt.Errorf("failed to insert selection: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

func (r *mongoSelectionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SelectedClass, error) {
	var selection models.SelectedClass
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&selection)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("selection '%s': %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get selection '%s': %w", id.Hex(), err)
	}
	return &selection, nil
}

func (r *mongoSelectionRepository) ListByEmail(ctx context.Context, email string) ([]*models.SelectedClass, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list selections for '%s': %w", email, err)
	}
	var selections []*models.SelectedClass
	if err := cursor.All(ctx, &selections); err != nil {
		return nil, fmt.Errorf("failed to decode selections: %w", err)
	}
	return selections, nil
}

func (r *mongoSelectionRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete selection '%s': %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}
