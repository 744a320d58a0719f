package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prodrawing-backend-go/internal/models"
)

// mongoClassRepository implements ClassRepository on a Mongo collection.
type mongoClassRepository struct {
	coll *mongo.Collection
}

// NewMongoClassRepository creates a ClassRepository backed by the
// classes collection of the given database.
func NewMongoClassRepository(database *mongo.Database) ClassRepository {
	return &mongoClassRepository{coll: database.Collection(classesCollection)}
}

func (r *mongoClassRepository) Create(ctx context.Context, class *models.Class) (string, error) {
	res, err := r.coll.InsertOne(ctx, class)
	if err != nil {
		return "", fmt.Errorf("failed to insert class: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

func (r *mongoClassRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("class '%s': %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get class '%s': %w", id.Hex(), err)
	}
	return &class, nil
}

func (r *mongoClassRepository) List(ctx context.Context) ([]*models.Class, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoClassRepository) ListByStatus(ctx context.Context, status string) ([]*models.Class, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *mongoClassRepository) ListByInstructor(ctx context.Context, instructorEmail string) ([]*models.Class, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"instructorEmail": instructorEmail})
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for instructor '%s': %w", instructorEmail, err)
	}
	var classes []*models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("failed to decode classes: %w", err)
	}
	return classes, nil
}

// find runs a filtered query sorted by enrolled students, most popular
// first. Shared by the public listing endpoints.
func (r *mongoClassRepository) find(ctx context.Context, filter bson.M) ([]*models.Class, error) {
	opts := options.Find().SetSort(bson.D{{Key: "totalStudent", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	var classes []*models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("failed to decode classes: %w", err)
	}
	return classes, nil
}

func (r *mongoClassRepository) UpdateInfo(ctx context.Context, id primitive.ObjectID, update *models.UpdateClassRequest) (int64, error) {
	set := bson.M{
		"className":      update.ClassName,
		"classImage":     update.ClassImage,
		"availableSeats": update.AvailableSeats,
		"price":          update.Price,
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("failed to update class '%s': %w", id.Hex(), err)
	}
	return res.ModifiedCount, nil
}

func (r *mongoClassRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, fmt.Errorf("failed to set status '%s' on class '%s': %w", status, id.Hex(), err)
	}
	return res.ModifiedCount, nil
}

func (r *mongoClassRepository) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, error) {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"feedback": feedback}})
	if err != nil {
		return 0, fmt.Errorf("failed to set feedback on class '%s': %w", id.Hex(), err)
	}
	return res.ModifiedCount, nil
}

// EnrollOne consumes one seat and adds one student in a single
// conditional update against the stored counters. The availableSeats
// filter makes concurrent completions serialize at the store: each
// matching update decrements from the current value, and once seats hit
// zero the filter stops matching.
func (r *mongoClassRepository) EnrollOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	filter := bson.M{"_id": id, "availableSeats": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"availableSeats": -1, "totalStudent": 1}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update enrollment counters on class '%s': %w", id.Hex(), err)
	}
	return res.ModifiedCount, nil
}
