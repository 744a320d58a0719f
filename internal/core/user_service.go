package core

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prodrawing-backend-go/internal/db"
	"prodrawing-backend-go/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetOrCreate retrieves the account for the email, creating it on first
// sign-in. Newly created accounts carry no role until an admin grants
// one.
func (s *userService) GetOrCreate(ctx context.Context, req *models.CreateUserRequest) (*models.User, bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up user '%s': %w", req.Email, err)
	}

	newUser := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	}
	id, createErr := s.userRepo.Create(ctx, newUser)
	if createErr != nil {
		if errors.Is(createErr, db.ErrDuplicate) {
			// Lost a sign-in race against the unique email index; the
			// account exists now, so fetch and return it.
			existing, getErr := s.userRepo.GetByEmail(ctx, req.Email)
			if getErr != nil {
				return nil, false, fmt.Errorf("failed to fetch user '%s' after duplicate insert: %w", req.Email, getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create user '%s': %w", req.Email, createErr)
	}

	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		newUser.ID = oid
	}
	return newUser, true, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) ListInstructors(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.ListByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}
	return users, nil
}

// HasRole re-reads the user document on every call: role freshness is
// preferred over latency, and no role claim is cached in the token.
func (s *userService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check role for '%s': %w", email, err)
	}
	return user.Role == role, nil
}

func (s *userService) GrantRole(ctx context.Context, id, role string) (int64, error) {
	if role != models.RoleAdmin && role != models.RoleInstructor && role != models.RoleStudent {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidRole, role)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	}
	modified, err := s.userRepo.SetRole(ctx, oid, role)
	if err != nil {
		return 0, fmt.Errorf("failed to grant role '%s' to user '%s': %w", role, id, err)
	}
	return modified, nil
}
