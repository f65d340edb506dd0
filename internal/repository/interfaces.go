package repository

import (
	"context"

	"github.com/anastasya/flower-shop/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetByID(ctx context.Context, id uint) (*domain.Category, error)
	ListWithCounts(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, slug string) error
}

// ProductFilter narrows a product listing; zero values mean "no filter".
type ProductFilter struct {
	Search       string
	CategorySlug string
	Offset       int
	Limit        int
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, slug string) error
}

type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	List(ctx context.Context, publishedOnly bool, offset, limit int) ([]*domain.Blog, int64, error)
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, slug string) error
}

type Repositories struct {
	User     UserRepository
	Category CategoryRepository
	Product  ProductRepository
	Blog     BlogRepository
}
