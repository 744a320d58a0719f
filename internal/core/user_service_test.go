package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prodrawing-backend-go/internal/db"
	"prodrawing-backend-go/internal/models"
)

func TestGetOrCreateReturnsExistingUser(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := NewUserService(userRepo)

	existing := &models.User{Email: "a@b.com", Role: models.RoleStudent}
	userRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(existing, nil)

	user, created, err := svc.GetOrCreate(context.Background(), &models.CreateUserRequest{Email: "a@b.com"})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, existing, user)
	userRepo.AssertNotCalled(t, "Create")
}

func TestGetOrCreateCreatesOnFirstSignIn(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := NewUserService(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "new@b.com").
		Return(nil, fmt.Errorf("user: %w", db.ErrNotFound))
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		// A fresh account starts without a role; only an admin grant
		// assigns one.
		return u.Email == "new@b.com" && u.Role == ""
	})).Return(primitive.NewObjectID().Hex(), nil)

	user, created, err := svc.GetOrCreate(context.Background(), &models.CreateUserRequest{
		Email: "new@b.com",
		Name:  "New User",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new@b.com", user.Email)
	userRepo.AssertExpectations(t)
}

func TestGetOrCreateSurvivesSignInRace(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := NewUserService(userRepo)

	winner := &models.User{Email: "race@b.com"}
	userRepo.On("GetByEmail", mock.Anything, "race@b.com").
		Return(nil, fmt.Errorf("user: %w", db.ErrNotFound)).Once()
	userRepo.On("Create", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("user: %w", db.ErrDuplicate))
	userRepo.On("GetByEmail", mock.Anything, "race@b.com").Return(winner, nil).Once()

	user, created, err := svc.GetOrCreate(context.Background(), &models.CreateUserRequest{Email: "race@b.com"})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, winner, user)
}

func TestHasRole(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := NewUserService(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "admin@b.com").
		Return(&models.User{Email: "admin@b.com", Role: models.RoleAdmin}, nil)
	userRepo.On("GetByEmail", mock.Anything, "student@b.com").
		Return(&models.User{Email: "student@b.com", Role: models.RoleStudent}, nil)
	userRepo.On("GetByEmail", mock.Anything, "ghost@b.com").
		Return(nil, fmt.Errorf("user: %w", db.ErrNotFound))

	ok, err := svc.HasRole(context.Background(), "admin@b.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasRole(context.Background(), "student@b.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasRole(context.Background(), "ghost@b.com", models.RoleAdmin)
	require.NoError(t, err, "a missing account is simply not in the role")
	assert.False(t, ok)
}

func TestHasRolePropagatesStoreFailure(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := NewUserService(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "x@b.com").
		Return(nil, errors.New("store unreachable"))

	_, err := svc.HasRole(context.Background(), "x@b.com", models.RoleAdmin)
	assert.Error(t, err)
}

func TestGrantRoleValidation(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := NewUserService(userRepo)

	_, err := svc.GrantRole(context.Background(), primitive.NewObjectID().Hex(), "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.GrantRole(context.Background(), "bad-id", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidID)

	userRepo.AssertNotCalled(t, "SetRole")
}

func TestGrantRoleUpdatesUser(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := NewUserService(userRepo)

	id := primitive.NewObjectID()
	userRepo.On("SetRole", mock.Anything, id, models.RoleInstructor).Return(int64(1), nil)

	modified, err := svc.GrantRole(context.Background(), id.Hex(), models.RoleInstructor)

	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)
}
