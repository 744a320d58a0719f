package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"prodrawing-backend-go/internal/config"
)

// Collection names used by the repositories.
const (
	usersCollection      = "users"
	classesCollection    = "classes"
	selectionsCollection = "selectedclasses"
	paymentsCollection   = "payments"
)

// Connect dials MongoDB with the Stable API v1 options, verifies the
// connection with a ping and returns the client together with the
// application database handle. The handle is passed down explicitly; no
// package-level client is kept, so the caller owns the lifecycle and
// must Disconnect on shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOpts := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return client, client.Database(cfg.MongoDatabase), nil
}

// EnsureIndexes creates the indexes the application relies on:
//
//   - users.email unique, so get-or-create on sign-in cannot race into
//     duplicate accounts;
//   - payments.selectedClassId unique, which makes the selection id the
//     idempotency key of the enrollment completion workflow (a retried
//     completion cannot record a second payment).
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users.email index: %w", err)
	}

	_, err = database.Collection(paymentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "selectedClassId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create payments.selectedClassId index: %w", err)
	}

	return nil
}
