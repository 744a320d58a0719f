package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prodrawing-backend-go/internal/models"
)

// mongoPaymentRepository implements PaymentRepository on a Mongo
// collection. Payments are append-only: there is no update or delete.
type mongoPaymentRepository struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepository creates a PaymentRepository backed by the
// payments collection of the given database.
func NewMongoPaymentRepository(database *mongo.Database) PaymentRepository {
	return &mongoPaymentRepository{coll: database.Collection(paymentsCollection)}
}

func (r *mongoPaymentRepository) Create(ctx context.Context, payment *models.Payment) (string, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		// The unique index on selectedClassId turns a duplicate
		// submission into ErrDuplicate instead of a second payment.
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("payment for selection '%s': %w", payment.SelectedClassID, ErrDuplicate)
		}
		return "", fmt.Errorf("failed to insert payment: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

func (r *mongoPaymentRepository) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for '%s': %w", email, err)
	}
	var payments []*models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}
