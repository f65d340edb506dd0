package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/repository"
)

// AuthService handles registration, login and session resolution. The admin
// secret is injected configuration: an ADMIN account cannot log in without it.
type AuthService struct {
	userRepo    repository.UserRepository
	tokens      *TokenService
	adminSecret string
	bcryptCost  int
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenService, adminSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokens:      tokens,
		adminSecret: adminSecret,
		bcryptCost:  bcryptCost,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email       string
	Password    string
	AdminSecret string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// Register creates a CUSTOMER account. The public endpoint never creates
// admins; those are provisioned through the admin-only user management API.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
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
		Role:         domain.RoleCustomer,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}

	return s.issueFor(user)
}

// Login checks credentials and, for ADMIN accounts, the shared admin secret.
// A correct password with a wrong secret is a 403-class failure, not 401:
// the caller proved who they are but not that they may use the back office.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Role == domain.RoleAdmin && !s.checkAdminSecret(input.AdminSecret) {
		return nil, domain.ErrAdminSecret
	}

	return s.issueFor(user)
}

// ResolveSession maps a raw session token to its user, or nil for anything
// invalid: bad signature, expiry, or a user deleted after issuance.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	userID, ok := s.tokens.Verify(token)
	if !ok {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) issueFor(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) checkAdminSecret(candidate string) bool {
	if s.adminSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.adminSecret)) == 1
}
