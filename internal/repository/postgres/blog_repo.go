package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/anastasya/flower-shop/internal/domain"
)

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	var blog domain.Blog
	err := r.db.WithContext(ctx).First(&blog, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context, publishedOnly bool, offset, limit int) ([]*domain.Blog, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Blog{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogs []*domain.Blog
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	return r.db.WithContext(ctx).Save(blog).Error
}

func (r *blogRepository) Delete(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Delete(&domain.Blog{}, "slug = ?", slug).Error
}
