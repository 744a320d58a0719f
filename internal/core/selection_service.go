package core

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prodrawing-backend-go/internal/db"
	"prodrawing-backend-go/internal/models"
)

// selectionService implements the SelectionService interface.
type selectionService struct {
	selectionRepo db.SelectionRepository
}

// NewSelectionService creates a new SelectionService instance.
func NewSelectionService(selectionRepo db.SelectionRepository) SelectionService {
	return &selectionService{selectionRepo: selectionRepo}
}

// Select records a student's pending intent to enroll, carrying the
// seat/student snapshot the client observed at selection time.
func (s *selectionService) Select(ctx context.Context, req *models.CreateSelectionRequest) (*models.SelectedClass, error) {
	selection := &models.SelectedClass{
		ClassID:        req.ClassID,
		Email:          req.Email,
		ClassName:      req.ClassName,
		ClassImage:     req.ClassImage,
		InstructorName: req.InstructorName,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
		TotalStudent:   req.TotalStudent,
	}
	id, err := s.selectionRepo.Create(ctx, selection)
	if err != nil {
		return nil, fmt.Errorf("failed to create selection: %w", err)
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		selection.ID = oid
	}
	return selection, nil
}

func (s *selectionService) GetByID(ctx context.Context, id string) (*models.SelectedClass, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	}
	selection, err := s.selectionRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrSelectionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get selection '%s': %w", id, err)
	}
	return selection, nil
}

func (s *selectionService) ListByStudent(ctx context.Context, email string) ([]*models.SelectedClass, error) {
	selections, err := s.selectionRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list selections for '%s': %w", email, err)
	}
	return selections, nil
}

// Cancel removes a pending selection after checking the caller owns it.
func (s *selectionService) Cancel(ctx context.Context, callerEmail, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	}
	selection, err := s.selectionRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return 0, fmt.Errorf("%w: '%s'", ErrSelectionNotFound, id)
		}
		return 0, fmt.Errorf("failed to get selection '%s' for cancel: %w", id, err)
	}
	if selection.Email != callerEmail {
		return 0, fmt.Errorf("%w: '%s' does not own selection '%s'", ErrForbidden, callerEmail, id)
	}
	deleted, err := s.selectionRepo.Delete(ctx, oid)
	if err != nil {
		return 0, fmt.Errorf("failed to delete selection '%s': %w", id, err)
	}
	return deleted, nil
}
