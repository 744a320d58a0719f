package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"prodrawing-backend-go/internal/db"
	"prodrawing-backend-go/internal/models"
)

// enrollmentService implements the EnrollmentService interface: the
// three-step sequence that turns a paid-for selection into a permanent
// payment record and updated class counters.
//
// Consistency model: the payment insert commits first and is never
// rolled back. A later step failing is reported in the composite result
// and logged for operator reconciliation; there is no distributed
// transaction across the three documents. The unique payments index on
// selectedClassId makes retries idempotent: a duplicate submission is
// detected at Effect 1 and the remaining effects are skipped.
type enrollmentService struct {
	paymentRepo   db.PaymentRepository
	selectionRepo db.SelectionRepository
	classRepo     db.ClassRepository
	logger        *zap.Logger
}

// NewEnrollmentService creates a new EnrollmentService instance.
func NewEnrollmentService(
	paymentRepo db.PaymentRepository,
	selectionRepo db.SelectionRepository,
	classRepo db.ClassRepository,
	logger *zap.Logger,
) EnrollmentService {
	return &enrollmentService{
		paymentRepo:   paymentRepo,
		selectionRepo: selectionRepo,
		classRepo:     classRepo,
		logger:        logger,
	}
}

// Complete runs the enrollment completion workflow. The caller identity
// must match the payment's student email; on mismatch the request is
// rejected before any persistence effect runs.
func (s *enrollmentService) Complete(ctx context.Context, callerEmail string, req *models.CompleteEnrollmentRequest) (*models.EnrollmentResult, error) {
	if callerEmail != req.Email {
		return nil, fmt.Errorf("%w: token identity '%s' does not match payment email '%s'", ErrForbidden, callerEmail, req.Email)
	}

	classID, err := primitive.ObjectIDFromHex(req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("%w: classId '%s'", ErrInvalidID, req.ClassID)
	}
	selectionID, err := primitive.ObjectIDFromHex(req.SelectedClassID)
	if err != nil {
		return nil, fmt.Errorf("%w: selectedClassId '%s'", ErrInvalidID, req.SelectedClassID)
	}

	result := &models.EnrollmentResult{}

	// Effect 1: record the immutable payment. Any failure here aborts
	// the workflow before the selection or the class is touched.
	payment := &models.Payment{
		Email:           req.Email,
		TransactionID:   req.TransactionID,
		Amount:          req.Amount,
		Date:            time.Now().UTC(),
		ClassID:         req.ClassID,
		SelectedClassID: req.SelectedClassID,
		ClassName:       req.ClassName,
	}
	insertedID, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			// Retry of an already-completed enrollment. Effects 2 and 3
			// ran (or are running) for the original submission, so they
			// are skipped here to avoid a double decrement.
			s.logger.Info("duplicate enrollment completion ignored",
				zap.String("email", req.Email),
				zap.String("selectedClassId", req.SelectedClassID))
			result.InsertResult = models.InsertResult{
				AlreadyCompleted: true,
				Error:            "payment already recorded for this selection",
			}
			result.DeleteResult = models.DeleteResult{Skipped: true}
			result.UpdateResult = models.UpdateResult{Skipped: true}
			return result, nil
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	result.InsertResult = models.InsertResult{Ok: true, InsertedID: insertedID}

	// Effect 2: retire the selection. A selection that is already gone
	// is fine; a store failure is reported but the committed payment is
	// not rolled back, and the workflow continues so the class counters
	// still converge.
	deleted, err := s.selectionRepo.Delete(ctx, selectionID)
	if err != nil {
		result.DeleteResult = models.DeleteResult{Error: err.Error()}
	} else {
		result.DeleteResult = models.DeleteResult{Ok: true, DeletedCount: deleted}
	}

	// Effect 3: consume one seat, add one student. The conditional
	// update works against the stored counters, not the client snapshot,
	// so concurrent completions cannot decrement from the same stale
	// base value.
	modified, err := s.classRepo.EnrollOne(ctx, classID)
	switch {
	case err != nil:
		result.UpdateResult = models.UpdateResult{Error: err.Error()}
	case modified == 0:
		result.UpdateResult = models.UpdateResult{Error: "class not found or no seats available"}
	default:
		result.UpdateResult = models.UpdateResult{Ok: true, ModifiedCount: modified}
	}

	if result.PartialFailure() {
		// Operator signal: the payment is committed but bookkeeping
		// diverged. Reconciled manually, never rolled back.
		s.logger.Error("enrollment completed with partial failure",
			zap.String("email", req.Email),
			zap.String("paymentId", insertedID),
			zap.String("classId", req.ClassID),
			zap.String("selectedClassId", req.SelectedClassID),
			zap.Int("seatsAtSelection", req.AvailableSeats),
			zap.Int("studentsAtSelection", req.TotalStudent),
			zap.String("deleteError", result.DeleteResult.Error),
			zap.String("updateError", result.UpdateResult.Error))
	}

	return result, nil
}
