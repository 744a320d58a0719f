package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"prodrawing-backend-go/internal/db"
	"prodrawing-backend-go/internal/models"
)

func newEnrollmentFixture() (*mockPaymentRepo, *mockSelectionRepo, *mockClassRepo, EnrollmentService) {
	paymentRepo := &mockPaymentRepo{}
	selectionRepo := &mockSelectionRepo{}
	classRepo := &mockClassRepo{}
	svc := NewEnrollmentService(paymentRepo, selectionRepo, classRepo, zap.NewNop())
	return paymentRepo, selectionRepo, classRepo, svc
}

func completionRequest() *models.CompleteEnrollmentRequest {
	return &models.CompleteEnrollmentRequest{
		Email:           "student@example.com",
		TransactionID:   "pi_123",
		Amount:          49.99,
		ClassID:         primitive.NewObjectID().Hex(),
		SelectedClassID: primitive.NewObjectID().Hex(),
		ClassName:       "Watercolor Basics",
		AvailableSeats:  10,
		TotalStudent:    5,
	}
}

func TestCompleteRejectsIdentityMismatchBeforeAnyEffect(t *testing.T) {
	paymentRepo, selectionRepo, classRepo, svc := newEnrollmentFixture()

	result, err := svc.Complete(context.Background(), "someoneelse@example.com", completionRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, result)
	paymentRepo.AssertNotCalled(t, "Create")
	selectionRepo.AssertNotCalled(t, "Delete")
	classRepo.AssertNotCalled(t, "EnrollOne")
}

func TestCompleteRejectsMalformedIdentifiers(t *testing.T) {
	paymentRepo, _, _, svc := newEnrollmentFixture()

	req := completionRequest()
	req.ClassID = "not-a-valid-id"
	_, err := svc.Complete(context.Background(), req.Email, req)
	assert.ErrorIs(t, err, ErrInvalidID)

	req = completionRequest()
	req.SelectedClassID = "nope"
	_, err = svc.Complete(context.Background(), req.Email, req)
	assert.ErrorIs(t, err, ErrInvalidID)

	paymentRepo.AssertNotCalled(t, "Create")
}

func TestCompleteHappyPath(t *testing.T) {
	paymentRepo, selectionRepo, classRepo, svc := newEnrollmentFixture()
	req := completionRequest()
	classID, _ := primitive.ObjectIDFromHex(req.ClassID)
	selectionID, _ := primitive.ObjectIDFromHex(req.SelectedClassID)

	paymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.Email == req.Email &&
			p.Amount == req.Amount &&
			p.ClassID == req.ClassID &&
			p.SelectedClassID == req.SelectedClassID &&
			!p.Date.IsZero()
	})).Return(primitive.NewObjectID().Hex(), nil).Once()
	selectionRepo.On("Delete", mock.Anything, selectionID).Return(int64(1), nil).Once()
	classRepo.On("EnrollOne", mock.Anything, classID).Return(int64(1), nil).Once()

	result, err := svc.Complete(context.Background(), req.Email, req)

	require.NoError(t, err)
	assert.True(t, result.InsertResult.Ok)
	assert.NotEmpty(t, result.InsertResult.InsertedID)
	assert.True(t, result.DeleteResult.Ok)
	assert.Equal(t, int64(1), result.DeleteResult.DeletedCount)
	assert.True(t, result.UpdateResult.Ok)
	assert.Equal(t, int64(1), result.UpdateResult.ModifiedCount)
	assert.False(t, result.PartialFailure())
	paymentRepo.AssertExpectations(t)
	selectionRepo.AssertExpectations(t)
	classRepo.AssertExpectations(t)
}

func TestCompleteIsSuccessfulWhenSelectionAlreadyGone(t *testing.T) {
	paymentRepo, selectionRepo, classRepo, svc := newEnrollmentFixture()
	req := completionRequest()

	paymentRepo.On("Create", mock.Anything, mock.Anything).Return(primitive.NewObjectID().Hex(), nil)
	selectionRepo.On("Delete", mock.Anything, mock.Anything).Return(int64(0), nil)
	classRepo.On("EnrollOne", mock.Anything, mock.Anything).Return(int64(1), nil)

	result, err := svc.Complete(context.Background(), req.Email, req)

	require.NoError(t, err)
	assert.True(t, result.DeleteResult.Ok, "retiring an absent selection is not an error")
	assert.Equal(t, int64(0), result.DeleteResult.DeletedCount)
	assert.False(t, result.PartialFailure())
}

func TestCompleteDuplicateSubmissionSkipsRemainingEffects(t *testing.T) {
	paymentRepo, selectionRepo, classRepo, svc := newEnrollmentFixture()
	req := completionRequest()

	paymentRepo.On("Create", mock.Anything, mock.Anything).
		Return("", db.ErrDuplicate)

	result, err := svc.Complete(context.Background(), req.Email, req)

	require.NoError(t, err)
	assert.True(t, result.InsertResult.AlreadyCompleted)
	assert.False(t, result.InsertResult.Ok)
	assert.True(t, result.DeleteResult.Skipped)
	assert.True(t, result.UpdateResult.Skipped)
	selectionRepo.AssertNotCalled(t, "Delete")
	classRepo.AssertNotCalled(t, "EnrollOne")
}

func TestCompleteAbortsWhenPaymentInsertFails(t *testing.T) {
	paymentRepo, selectionRepo, classRepo, svc := newEnrollmentFixture()
	req := completionRequest()

	paymentRepo.On("Create", mock.Anything, mock.Anything).
		Return("", errors.New("store unavailable"))

	result, err := svc.Complete(context.Background(), req.Email, req)

	require.Error(t, err)
	assert.Nil(t, result)
	selectionRepo.AssertNotCalled(t, "Delete")
	classRepo.AssertNotCalled(t, "EnrollOne")
}

func TestCompleteReportsSelectionStoreFailureWithoutRollback(t *testing.T) {
	paymentRepo, selectionRepo, classRepo, svc := newEnrollmentFixture()
	req := completionRequest()

	paymentRepo.On("Create", mock.Anything, mock.Anything).Return(primitive.NewObjectID().Hex(), nil)
	selectionRepo.On("Delete", mock.Anything, mock.Anything).Return(int64(0), errors.New("store unreachable"))
	classRepo.On("EnrollOne", mock.Anything, mock.Anything).Return(int64(1), nil)

	result, err := svc.Complete(context.Background(), req.Email, req)

	require.NoError(t, err, "partial failure is reported in the composite result, not as an error")
	assert.True(t, result.InsertResult.Ok, "the committed payment is never rolled back")
	assert.False(t, result.DeleteResult.Ok)
	assert.Contains(t, result.DeleteResult.Error, "store unreachable")
	assert.True(t, result.UpdateResult.Ok, "counter update still runs after a retirement failure")
	assert.True(t, result.PartialFailure())
}

func TestCompleteReportsSoldOutClass(t *testing.T) {
	paymentRepo, selectionRepo, classRepo, svc := newEnrollmentFixture()
	req := completionRequest()

	paymentRepo.On("Create", mock.Anything, mock.Anything).Return(primitive.NewObjectID().Hex(), nil)
	selectionRepo.On("Delete", mock.Anything, mock.Anything).Return(int64(1), nil)
	classRepo.On("EnrollOne", mock.Anything, mock.Anything).Return(int64(0), nil)

	result, err := svc.Complete(context.Background(), req.Email, req)

	require.NoError(t, err)
	assert.False(t, result.UpdateResult.Ok)
	assert.Contains(t, result.UpdateResult.Error, "no seats available")
	assert.True(t, result.PartialFailure())
}

func TestCompleteReportsCounterUpdateStoreFailure(t *testing.T) {
	paymentRepo, selectionRepo, classRepo, svc := newEnrollmentFixture()
	req := completionRequest()

	paymentRepo.On("Create", mock.Anything, mock.Anything).Return(primitive.NewObjectID().Hex(), nil)
	selectionRepo.On("Delete", mock.Anything, mock.Anything).Return(int64(1), nil)
	classRepo.On("EnrollOne", mock.Anything, mock.Anything).Return(int64(0), errors.New("store unreachable"))

	result, err := svc.Complete(context.Background(), req.Email, req)

	require.NoError(t, err)
	assert.True(t, result.InsertResult.Ok)
	assert.True(t, result.DeleteResult.Ok)
	assert.False(t, result.UpdateResult.Ok)
	assert.Contains(t, result.UpdateResult.Error, "store unreachable")
	assert.True(t, result.PartialFailure())
}
