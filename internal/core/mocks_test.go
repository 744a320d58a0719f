package core

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prodrawing-backend-go/internal/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role string) ([]*models.User, error) {
	args := m.Called(ctx, role)
	if u := args.Get(0); u != nil {
		return u.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

type mockClassRepo struct {
	mock.Mock
}

func (m *mockClassRepo) Create(ctx context.Context, class *models.Class) (string, error) {
	args := m.Called(ctx, class)
	return args.String(0), args.Error(1)
}

func (m *mockClassRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Class), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClassRepo) List(ctx context.Context) ([]*models.Class, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*models.Class), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClassRepo) ListByStatus(ctx context.Context, status string) ([]*models.Class, error) {
	args := m.Called(ctx, status)
	if c := args.Get(0); c != nil {
		return c.([]*models.Class), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClassRepo) ListByInstructor(ctx context.Context, instructorEmail string) ([]*models.Class, error) {
	args := m.Called(ctx, instructorEmail)
	if c := args.Get(0); c != nil {
		return c.([]*models.Class), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClassRepo) UpdateInfo(ctx context.Context, id primitive.ObjectID, update *models.UpdateClassRequest) (int64, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClassRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClassRepo) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, error) {
	args := m.Called(ctx, id, feedback)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClassRepo) EnrollOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockSelectionRepo struct {
	mock.Mock
}

func (m *mockSelectionRepo) Create(ctx context.Context, selection *models.SelectedClass) (string, error) {
	args := m.Called(ctx, selection)
	return args.String(0), args.Error(1)
}

func (m *mockSelectionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SelectedClass, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*models.SelectedClass), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSelectionRepo) ListByEmail(ctx context.Context, email string) ([]*models.SelectedClass, error) {
	args := m.Called(ctx, email)
	if s := args.Get(0); s != nil {
		return s.([]*models.SelectedClass), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSelectionRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *models.Payment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

func (m *mockPaymentRepo) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	args := m.Called(ctx, email)
	if p := args.Get(0); p != nil {
		return p.([]*models.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}
