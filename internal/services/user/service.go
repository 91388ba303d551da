// Package user manages account registration and the administrative
// user operations.
package user

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bankcards/internal/errors"
	"bankcards/internal/models"
	"bankcards/internal/repositories"
	"bankcards/internal/services/authz"
	"bankcards/internal/utils"
)

type Service interface {
	Register(input RegisterInput) (*models.User, error)
	GetByID(actor authz.Actor, id uint) (*models.User, error)
	List(actor authz.Actor, p *utils.Pagination) ([]*models.User, error)
	Update(actor authz.Actor, id uint, input UpdateInput) (*models.User, error)
	Delete(actor authz.Actor, id uint) error
}

// RegisterInput carries the self-service registration attributes. Role
// is always RoleUser here; admins are created through the seed command.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateInput carries the admin-editable user attributes. Empty fields
// are left unchanged; a new email must not collide with another account.
type UpdateInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type service struct {
	repo   repositories.UserRepository
	policy authz.Policy
}

func NewService(repo repositories.UserRepository, policy authz.Policy) Service {
	return &service{
		repo:   repo,
		policy: policy,
	}
}

func (s *service) Register(input RegisterInput) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     input.Email,
		Password:  string(hashedPassword),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      models.RoleUser,
	}

	if err := s.repo.Create(user); err != nil {
		if err == repositories.ErrEmailTaken {
			return nil, errors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetByID returns a user profile: one's own, or any profile for an
// administrator.
func (s *service) GetByID(actor authz.Actor, id uint) (*models.User, error) {
	if actor.UserID != id {
		if err := s.policy.CanManageUsers(actor); err != nil {
			return nil, err
		}
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *service) List(actor authz.Actor, p *utils.Pagination) ([]*models.User, error) {
	if err := s.policy.CanManageUsers(actor); err != nil {
		return nil, err
	}

	users, total, err := s.repo.List(p.Offset, p.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	p.SetTotal(total)
	return users, nil
}

func (s *service) Update(actor authz.Actor, id uint, input UpdateInput) (*models.User, error) {
	if err := s.policy.CanManageUsers(actor); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if input.Email != "" && input.Email != user.Email {
		taken, err := s.repo.ExistsByEmail(input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, errors.ErrUserAlreadyExists
		}
		user.Email = input.Email
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
		user.TokenVersion++ // invalidate existing tokens
	}
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Role != "" {
		user.Role = input.Role
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *service) Delete(actor authz.Actor, id uint) error {
	if err := s.policy.CanManageUsers(actor); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if err == repositories.ErrUserNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
