package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prodrawing-backend-go/internal/models"
)

// Shared repository errors. Services translate these into their own
// sentinel errors for the handlers.
var (
	// ErrNotFound is returned when a document matching the filter does
	// not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("document already exists")
)

// UserRepository defines the interface for user document operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	// ListByRole returns users holding the given role, most enrolled
	// students first.
	ListByRole(ctx context.Context, role string) ([]*models.User, error)
	// SetRole sets the role field on a user document; returns the number
	// of documents modified.
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error)
}

// ClassRepository defines the interface for class document operations.
type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) (string, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	// List returns every class, most enrolled students first.
	List(ctx context.Context) ([]*models.Class, error)
	// ListByStatus returns classes in the given lifecycle status, most
	// enrolled students first.
	ListByStatus(ctx context.Context, status string) ([]*models.Class, error)
	ListByInstructor(ctx context.Context, instructorEmail string) ([]*models.Class, error)
	UpdateInfo(ctx context.Context, id primitive.ObjectID, update *models.UpdateClassRequest) (int64, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, error)
	// EnrollOne atomically consumes one seat and adds one student on the
	// class, conditional on a seat still being available. Returns the
	// number of documents modified: zero means the class is gone or sold
	// out, never a partial write.
	EnrollOne(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// SelectionRepository defines the interface for selected-class
// (pending enrollment intent) document operations.
type SelectionRepository interface {
	Create(ctx context.Context, selection *models.SelectedClass) (string, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.SelectedClass, error)
	ListByEmail(ctx context.Context, email string) ([]*models.SelectedClass, error)
	// Delete removes a selection; returns the number of documents
	// deleted. Zero is not an error at this layer.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// PaymentRepository defines the interface for payment document
// operations. Payments are insert-only.
type PaymentRepository interface {
	// Create inserts a payment record. Returns ErrDuplicate when a
	// payment for the same selection id already exists.
	Create(ctx context.Context, payment *models.Payment) (string, error)
	// ListByEmail returns a student's payments, newest first.
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}
