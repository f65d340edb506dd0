package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

type CreateCategoryInput struct {
	Slug  string
	Name  string
	Image *string
}

type UpdateCategoryInput struct {
	Name  *string
	Image *string
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.ListWithCounts(ctx)
}

func (s *CategoryService) Get(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	existing, err := s.categoryRepo.GetBySlug(ctx, input.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlugExists
	}

	category := &domain.Category{
		Slug:      input.Slug,
		Name:      input.Name,
		Image:     input.Image,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugExists
		}
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, slug string, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Image != nil {
		category.Image = input.Image
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, slug string) error {
	if _, err := s.Get(ctx, slug); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, slug)
}
