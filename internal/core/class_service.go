package core

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prodrawing-backend-go/internal/db"
	"prodrawing-backend-go/internal/models"
)

// classService implements the ClassService interface.
type classService struct {
	classRepo db.ClassRepository
}

// NewClassService creates a new ClassService instance.
func NewClassService(classRepo db.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

// Create inserts a new class listing. Status is always forced to
// pending and the enrolled-student counter starts at zero regardless of
// what the client sent; only admin moderation moves a class out of
// pending.
func (s *classService) Create(ctx context.Context, req *models.CreateClassRequest) (*models.Class, error) {
	class := &models.Class{
		ClassName:       req.ClassName,
		ClassImage:      req.ClassImage,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
		TotalStudent:    0,
		Status:          models.ClassStatusPending,
	}
	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		class.ID = oid
	}
	return class, nil
}

func (s *classService) ListAll(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (s *classService) ListApproved(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.ListByStatus(ctx, models.ClassStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved classes: %w", err)
	}
	return classes, nil
}

func (s *classService) ListByInstructor(ctx context.Context, instructorEmail string) ([]*models.Class, error) {
	classes, err := s.classRepo.ListByInstructor(ctx, instructorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for instructor '%s': %w", instructorEmail, err)
	}
	return classes, nil
}

func (s *classService) GetByID(ctx context.Context, id string) (*models.Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	}
	class, err := s.classRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrClassNotFound, id)
		}
		return nil, fmt.Errorf("failed to get class '%s': %w", id, err)
	}
	return class, nil
}

// UpdateInfo applies an instructor's edits. The class is fetched first
// so ownership can be checked against the caller identity before any
// write happens.
func (s *classService) UpdateInfo(ctx context.Context, callerEmail, id string, req *models.UpdateClassRequest) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	}
	class, err := s.classRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return 0, fmt.Errorf("%w: '%s'", ErrClassNotFound, id)
		}
		return 0, fmt.Errorf("failed to get class '%s' for update: %w", id, err)
	}
	if class.InstructorEmail != callerEmail {
		return 0, fmt.Errorf("%w: '%s' does not own class '%s'", ErrForbidden, callerEmail, id)
	}
	modified, err := s.classRepo.UpdateInfo(ctx, oid, req)
	if err != nil {
		return 0, fmt.Errorf("failed to update class '%s': %w", id, err)
	}
	return modified, nil
}

func (s *classService) Approve(ctx context.Context, id string) (int64, error) {
	return s.setStatus(ctx, id, models.ClassStatusApproved)
}

func (s *classService) Deny(ctx context.Context, id string) (int64, error) {
	return s.setStatus(ctx, id, models.ClassStatusDenied)
}

func (s *classService) setStatus(ctx context.Context, id, status string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	}
	modified, err := s.classRepo.SetStatus(ctx, oid, status)
	if err != nil {
		return 0, fmt.Errorf("failed to set status '%s' on class '%s': %w", status, id, err)
	}
	return modified, nil
}

func (s *classService) SetFeedback(ctx context.Context, id, feedback string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	}
	modified, err := s.classRepo.SetFeedback(ctx, oid, feedback)
	if err != nil {
		return 0, fmt.Errorf("failed to set feedback on class '%s': %w", id, err)
	}
	return modified, nil
}
