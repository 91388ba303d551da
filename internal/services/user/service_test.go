package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"bankcards/internal/errors"
	"bankcards/internal/models"
	"bankcards/internal/repositories"
	"bankcards/internal/services/authz"
	"bankcards/internal/utils"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockUserRepo) List(offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) IncrementTokenVersion(userID uint) error {
	return m.Called(userID).Error(0)
}

var (
	admin   = authz.Actor{UserID: 1, Role: models.RoleAdmin}
	regular = authz.Actor{UserID: 5, Role: models.RoleUser}
)

func TestRegister(t *testing.T) {
	t.Run("hashes the password and assigns the user role", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
		svc := NewService(repo, authz.NewPolicy())

		user, err := svc.Register(RegisterInput{
			Email:     "ivan@example.com",
			Password:  "Str0ng!pass",
			FirstName: "Ivan",
			LastName:  "Ivanov",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Str0ng!pass")))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrEmailTaken)
		svc := NewService(repo, authz.NewPolicy())

		_, err := svc.Register(RegisterInput{Email: "ivan@example.com", Password: "Str0ng!pass"})

		assert.ErrorIs(t, err, errors.ErrUserAlreadyExists)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("user reads own profile", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(5)).Return(&models.User{Role: models.RoleUser}, nil)
		svc := NewService(repo, authz.NewPolicy())

		_, err := svc.GetByID(regular, 5)

		assert.NoError(t, err)
	})

	t.Run("user cannot read another profile", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, authz.NewPolicy())

		_, err := svc.GetByID(regular, 6)

		assert.ErrorIs(t, err, errors.ErrAccessDenied)
		repo.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("admin reads any profile", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(5)).Return(&models.User{Role: models.RoleUser}, nil)
		svc := NewService(repo, authz.NewPolicy())

		_, err := svc.GetByID(admin, 5)

		assert.NoError(t, err)
	})
}

func TestListRequiresAdmin(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, authz.NewPolicy())

	p := &utils.Pagination{Page: 1, Limit: 10}
	_, err := svc.List(regular, p)

	assert.ErrorIs(t, err, errors.ErrAccessDenied)
}

func TestUpdate(t *testing.T) {
	t.Run("new email colliding with another account", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", uint(5)).Return(&models.User{Email: "old@example.com"}, nil)
		repo.On("ExistsByEmail", "new@example.com").Return(true, nil)
		svc := NewService(repo, authz.NewPolicy())

		_, err := svc.Update(admin, 5, UpdateInput{Email: "new@example.com"})

		assert.ErrorIs(t, err, errors.ErrUserAlreadyExists)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("password change bumps the token version", func(t *testing.T) {
		repo := new(MockUserRepo)
		existing := &models.User{Email: "ivan@example.com", TokenVersion: 3}
		repo.On("GetByID", uint(5)).Return(existing, nil)
		repo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)
		svc := NewService(repo, authz.NewPolicy())

		updated, err := svc.Update(admin, 5, UpdateInput{Password: "N3w!password"})

		assert.NoError(t, err)
		assert.Equal(t, 4, updated.TokenVersion)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("N3w!password")))
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, authz.NewPolicy())

		_, err := svc.Update(regular, 5, UpdateInput{FirstName: "X"})

		assert.ErrorIs(t, err, errors.ErrAccessDenied)
	})
}

func TestDelete(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("Delete", uint(5)).Return(repositories.ErrUserNotFound)
		svc := NewService(repo, authz.NewPolicy())

		assert.ErrorIs(t, svc.Delete(admin, 5), errors.ErrUserNotFound)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, authz.NewPolicy())

		assert.ErrorIs(t, svc.Delete(regular, 5), errors.ErrAccessDenied)
	})
}
