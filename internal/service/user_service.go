package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/repository"
)

// UserService backs the admin-only user management surface.
type UserService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

func NewUserService(userRepo repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{userRepo: userRepo, bcryptCost: bcryptCost}
}

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

type UpdateUserInput struct {
	Email    *string
	Password *string
	Name     *string
	Role     *domain.Role
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	hash, err := HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	name := input.Name
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         &name,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, input UpdateUserInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		taken, err := s.userRepo.GetByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if taken != nil {
			return nil, domain.ErrEmailExists
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = input.Name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. An admin removing their own account is refused;
// that guard lives here as a business rule, not in the role gate.
func (s *UserService) Delete(ctx context.Context, actorID, id uint) error {
	if actorID == id {
		return domain.ErrSelfDelete
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, id)
}
