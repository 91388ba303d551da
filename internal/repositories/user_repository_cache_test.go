package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"bankcards/internal/models"
	"bankcards/internal/repositories/cache"
)

func newTestCache(t *testing.T) *cache.CacheService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewCacheService(client, time.Minute)
}

func cachedUser(t *testing.T, svc *cache.CacheService) *models.User {
	t.Helper()
	user := &models.User{
		Model:     gorm.Model{ID: 5},
		Email:     "ivan@example.com",
		FirstName: "Ivan",
		LastName:  "Ivanov",
		Role:      models.RoleUser,
	}
	assert.NoError(t, svc.CacheUser(context.Background(), user))
	return user
}

// The repository is built with a nil *gorm.DB: any fallthrough to the
// database would panic, so a successful read proves it was served from
// the cache entry alone.

func TestGetByEmailServedFromCache(t *testing.T) {
	svc := newTestCache(t)
	cachedUser(t, svc)

	repo := &userRepository{db: nil, cache: svc}

	got, err := repo.GetByEmail("ivan@example.com")
	assert.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, "ivan@example.com", got.Email)
}

func TestGetByIDServedFromCache(t *testing.T) {
	svc := newTestCache(t)
	cachedUser(t, svc)

	repo := &userRepository{db: nil, cache: svc}

	got, err := repo.GetByID(5)
	assert.NoError(t, err)
	assert.Equal(t, "ivan@example.com", got.Email)
}

func TestInvalidateUserDropsBothKeys(t *testing.T) {
	svc := newTestCache(t)
	user := cachedUser(t, svc)

	assert.NoError(t, svc.InvalidateUser(context.Background(), user.ID))

	_, err := svc.GetUser(context.Background(), svc.GenerateKey("user", "id", user.ID))
	assert.Error(t, err)
	_, err = svc.GetUser(context.Background(), svc.GenerateKey("user", "email", user.Email))
	assert.Error(t, err)
}
