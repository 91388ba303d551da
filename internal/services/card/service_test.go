package card

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bankcards/internal/errors"
	"bankcards/internal/models"
	"bankcards/internal/repositories"
	"bankcards/internal/services/authz"
	"bankcards/internal/utils"
)

type MockCardRepo struct {
	mock.Mock
}

func (m *MockCardRepo) Create(card *models.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepo) GetByID(id uint) (*models.Card, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepo) GetByUserID(userID uint) ([]*models.Card, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

func (m *MockCardRepo) FindByUserIDPaginated(userID uint, limit, offset int) ([]*models.Card, int64, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Card), args.Get(1).(int64), args.Error(2)
}

func (m *MockCardRepo) FindAllPaginated(limit, offset int) ([]*models.Card, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Card), args.Get(1).(int64), args.Error(2)
}

func (m *MockCardRepo) Update(card *models.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCardRepo) AdjustBalance(cardID uint, delta decimal.Decimal) error {
	args := m.Called(cardID, delta)
	return args.Error(0)
}

func (m *MockCardRepo) CreateTransfer(transfer *models.Transfer) error {
	args := m.Called(transfer)
	return args.Error(0)
}

func (m *MockCardRepo) ExecuteInTransaction(fn func(repositories.CardRepository) error) error {
	args := m.Called(fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

var (
	testKey = []byte("0123456789abcdef0123456789abcdef")

	admin = authz.Actor{UserID: 1, Role: models.RoleAdmin}
	owner = authz.Actor{UserID: 5, Role: models.RoleUser}
)

func newTestService(repo repositories.CardRepository, at time.Time) *service {
	svc := NewService(repo, nil, authz.NewPolicy(), testKey).(*service)
	svc.now = func() time.Time { return at }
	return svc
}

func TestCreate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("future expiry issues an active card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("Create", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.Create(context.Background(), admin, CreateRequest{
			UserID:         5,
			Owner:          "IVAN IVANOV",
			ExpiryDate:     time.Date(2028, 3, 31, 0, 0, 0, 0, time.UTC),
			InitialBalance: decimal.RequireFromString("100.00"),
		})

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusActive, card.Status)
		assert.Equal(t, uint(5), card.UserID)
		assert.NotEmpty(t, card.Number)
		assert.NotEqual(t, card.Number, card.MaskedNumber)
		assert.Regexp(t, `^\*\*\*\* \*\*\*\* \*\*\*\* \d{4}$`, card.MaskedNumber)
		repo.AssertExpectations(t)
	})

	t.Run("past expiry issues an expired card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("Create", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.Create(context.Background(), admin, CreateRequest{
			UserID:     5,
			Owner:      "IVAN IVANOV",
			ExpiryDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusExpired, card.Status)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		repo := new(MockCardRepo)
		svc := newTestService(repo, now)

		_, err := svc.Create(context.Background(), owner, CreateRequest{UserID: 5})

		assert.ErrorIs(t, err, errors.ErrAccessDenied)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("past expiry moves the card to expired", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5, Status: models.CardStatusActive}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.Update(context.Background(), admin, 10, UpdateRequest{
			Owner:      "IVAN IVANOV",
			ExpiryDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusExpired, card.Status)
	})

	t.Run("blocked card stays blocked past expiry", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5, Status: models.CardStatusBlocked}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.Update(context.Background(), admin, 10, UpdateRequest{
			Owner:      "IVAN IVANOV",
			ExpiryDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusBlocked, card.Status)
	})

	t.Run("future expiry does not revive an expired card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5, Status: models.CardStatusExpired}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		// Only an explicit activate may take a card out of EXPIRED.
		card, err := svc.Update(context.Background(), admin, 10, UpdateRequest{
			Owner:      "IVAN IVANOV",
			ExpiryDate: time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusExpired, card.Status)
	})

	t.Run("active card with future expiry stays active", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5, Status: models.CardStatusActive}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.Update(context.Background(), admin, 10, UpdateRequest{
			Owner:      "IVAN IVANOV",
			ExpiryDate: time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusActive, card.Status)
	})

	t.Run("missing card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(nil, repositories.ErrCardNotFound)
		svc := newTestService(repo, now)

		_, err := svc.Update(context.Background(), admin, 10, UpdateRequest{})

		assert.ErrorIs(t, err, errors.ErrCardNotFound)
	})
}

func TestBlock(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("blocks from any state and clears the request flag", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{
			ID: 10, UserID: 5, Status: models.CardStatusExpired, RequestedBlock: true,
		}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.Block(context.Background(), admin, 10)

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusBlocked, card.Status)
		assert.False(t, card.RequestedBlock)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		repo := new(MockCardRepo)
		svc := newTestService(repo, now)

		_, err := svc.Block(context.Background(), owner, 10)

		assert.ErrorIs(t, err, errors.ErrAccessDenied)
	})
}

func TestActivate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("reactivates a blocked card with future expiry", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{
			ID: 10, UserID: 5, Status: models.CardStatusBlocked,
			ExpiryDate: time.Date(2028, 3, 31, 0, 0, 0, 0, time.UTC),
		}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.Activate(context.Background(), admin, 10)

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusActive, card.Status)
	})

	t.Run("card past expiry lands in expired instead", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{
			ID: 10, UserID: 5, Status: models.CardStatusBlocked,
			ExpiryDate: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.Activate(context.Background(), admin, 10)

		assert.NoError(t, err)
		assert.Equal(t, models.CardStatusExpired, card.Status)
	})
}

func TestRequestBlock(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("owner sets the flag without changing status", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5, Status: models.CardStatusActive}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil)
		svc := newTestService(repo, now)

		card, err := svc.RequestBlock(context.Background(), owner, 10)

		assert.NoError(t, err)
		assert.True(t, card.RequestedBlock)
		assert.Equal(t, models.CardStatusActive, card.Status)
	})

	t.Run("repeated request is a no-op", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5, RequestedBlock: true}, nil)
		svc := newTestService(repo, now)

		card, err := svc.RequestBlock(context.Background(), owner, 10)

		assert.NoError(t, err)
		assert.True(t, card.RequestedBlock)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5}, nil)
		svc := newTestService(repo, now)

		_, err := svc.RequestBlock(context.Background(), authz.Actor{UserID: 6, Role: models.RoleUser}, 10)

		assert.ErrorIs(t, err, errors.ErrAccessDenied)
	})
}

func TestDelete(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("missing card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("Delete", uint(10)).Return(repositories.ErrCardNotFound)
		svc := newTestService(repo, now)

		err := svc.Delete(context.Background(), admin, 10)

		assert.ErrorIs(t, err, errors.ErrCardNotFound)
	})
}

func TestGetByID(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("owner reads own card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5}, nil)
		svc := newTestService(repo, now)

		card, err := svc.GetByID(context.Background(), owner, 10)

		assert.NoError(t, err)
		assert.Equal(t, uint(10), card.ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", uint(10)).Return(&models.Card{ID: 10, UserID: 5}, nil)
		svc := newTestService(repo, now)

		_, err := svc.GetByID(context.Background(), authz.Actor{UserID: 6, Role: models.RoleUser}, 10)

		assert.ErrorIs(t, err, errors.ErrAccessDenied)
	})
}

func TestListMine(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	repo := new(MockCardRepo)
	repo.On("FindByUserIDPaginated", uint(5), 10, 0).
		Return([]*models.Card{{ID: 1, UserID: 5}, {ID: 2, UserID: 5}}, int64(2), nil)
	svc := newTestService(repo, now)

	p := &utils.Pagination{Page: 1, Limit: 10, Offset: 0}
	cards, err := svc.ListMine(context.Background(), owner, p)

	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, int64(2), p.Total)
}

func TestListMineAsAdminSpansAllCards(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	repo := new(MockCardRepo)
	repo.On("FindAllPaginated", 10, 0).
		Return([]*models.Card{{ID: 1, UserID: 5}, {ID: 2, UserID: 6}, {ID: 3, UserID: 7}}, int64(3), nil)
	svc := newTestService(repo, now)

	p := &utils.Pagination{Page: 1, Limit: 10, Offset: 0}
	cards, err := svc.ListMine(context.Background(), admin, p)

	assert.NoError(t, err)
	assert.Len(t, cards, 3)
	repo.AssertNotCalled(t, "FindByUserIDPaginated", mock.Anything, mock.Anything, mock.Anything)
}

func TestListAllRequiresAdmin(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	repo := new(MockCardRepo)
	svc := newTestService(repo, now)

	p := &utils.Pagination{Page: 1, Limit: 10}
	_, err := svc.ListAll(context.Background(), owner, p)

	assert.ErrorIs(t, err, errors.ErrAccessDenied)
	repo.AssertNotCalled(t, "FindAllPaginated", mock.Anything, mock.Anything)
}
