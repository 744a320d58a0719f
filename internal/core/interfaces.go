package core

import (
	"context"

	"prodrawing-backend-go/internal/models"
)

// UserService manages accounts and role membership.
type UserService interface {
	// GetOrCreate ensures an account exists for the email; the bool
	// reports whether a new document was created.
	GetOrCreate(ctx context.Context, req *models.CreateUserRequest) (*models.User, bool, error)
	List(ctx context.Context) ([]*models.User, error)
	// ListInstructors returns instructor accounts, most enrolled
	// students first.
	ListInstructors(ctx context.Context) ([]*models.User, error)
	// HasRole reports whether the account for email holds the role. A
	// missing account simply reports false.
	HasRole(ctx context.Context, email, role string) (bool, error)
	// GrantRole sets the role on the user identified by the hex id.
	GrantRole(ctx context.Context, id, role string) (int64, error)
}

// ClassService manages class listings and their moderation lifecycle.
type ClassService interface {
	Create(ctx context.Context, req *models.CreateClassRequest) (*models.Class, error)
	ListAll(ctx context.Context) ([]*models.Class, error)
	ListApproved(ctx context.Context) ([]*models.Class, error)
	ListByInstructor(ctx context.Context, instructorEmail string) ([]*models.Class, error)
	GetByID(ctx context.Context, id string) (*models.Class, error)
	// UpdateInfo updates display metadata, seats and price. Only the
	// owning instructor may update a class.
	UpdateInfo(ctx context.Context, callerEmail, id string, req *models.UpdateClassRequest) (int64, error)
	Approve(ctx context.Context, id string) (int64, error)
	Deny(ctx context.Context, id string) (int64, error)
	SetFeedback(ctx context.Context, id, feedback string) (int64, error)
}

// SelectionService manages students' pending enrollment intents.
type SelectionService interface {
	Select(ctx context.Context, req *models.CreateSelectionRequest) (*models.SelectedClass, error)
	GetByID(ctx context.Context, id string) (*models.SelectedClass, error)
	ListByStudent(ctx context.Context, email string) ([]*models.SelectedClass, error)
	// Cancel removes a pending selection. Only the owning student may
	// cancel it.
	Cancel(ctx context.Context, callerEmail, id string) (int64, error)
}

// EnrollmentService runs the payment completion workflow.
type EnrollmentService interface {
	// Complete performs the three coordinated effects of a successful
	// payment: record the payment, retire the selection, update the
	// class counters. callerEmail is the verified token identity and
	// must match the payment's student email.
	Complete(ctx context.Context, callerEmail string, req *models.CompleteEnrollmentRequest) (*models.EnrollmentResult, error)
}

// BillingService fronts the payment gateway and payment history.
type BillingService interface {
	// CreatePaymentIntent authorizes a card charge for the given price
	// (major units) and returns the gateway client secret the frontend
	// uses to complete the charge.
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
	// ListPayments returns a student's payment history, newest first.
	ListPayments(ctx context.Context, email string) ([]*models.Payment, error)
}
