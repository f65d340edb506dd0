package service

import (
	"github.com/anastasya/flower-shop/internal/config"
	"github.com/anastasya/flower-shop/internal/repository"
)

// Services aggregates all business logic services
type Services struct {
	Auth     *AuthService
	User     *UserService
	Category *CategoryService
	Product  *ProductService
	Blog     *BlogService
	Tokens   *TokenService
}

// NewServices creates all services with their dependencies
func NewServices(repos *repository.Repositories, cfg config.Config) *Services {
	tokens := NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	return &Services{
		Auth:     NewAuthService(repos.User, tokens, cfg.Auth.AdminSecret, cfg.Auth.BcryptCost),
		User:     NewUserService(repos.User, cfg.Auth.BcryptCost),
		Category: NewCategoryService(repos.Category),
		Product:  NewProductService(repos.Product, repos.Category),
		Blog:     NewBlogService(repos.Blog),
		Tokens:   tokens,
	}
}
