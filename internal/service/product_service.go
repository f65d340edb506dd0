package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/repository"
)

type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, categoryRepo: categoryRepo}
}

type CreateProductInput struct {
	Name        string
	Price       string
	CategoryID  uint
	Description string
	Image       *string
	Items       []string
}

type UpdateProductInput struct {
	Name        *string
	Price       *string
	CategoryID  *uint
	Description *string
	Image       *string
	Items       []string
}

type ListProductsInput struct {
	Search       string
	CategorySlug string
	Page         int
	Limit        int
}

func (s *ProductService) List(ctx context.Context, input ListProductsInput) ([]*domain.Product, int64, error) {
	return s.productRepo.List(ctx, repository.ProductFilter{
		Search:       input.Search,
		CategorySlug: input.CategorySlug,
		Offset:       (input.Page - 1) * input.Limit,
		Limit:        input.Limit,
	})
}

func (s *ProductService) Get(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	items, err := itemsJSON(input.Items)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Slug:        domain.Slugify(input.Name),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Items:       items,
		CategoryID:  input.CategoryID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugExists
		}
		return nil, err
	}

	return s.Get(ctx, product.Slug)
}

func (s *ProductService) Update(ctx context.Context, slug string, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrCategoryNotFound
			}
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if input.Items != nil {
		items, err := itemsJSON(input.Items)
		if err != nil {
			return nil, err
		}
		product.Items = items
	}
	product.Category = nil // avoid writing the preloaded association back
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.Get(ctx, slug)
}

func (s *ProductService) Delete(ctx context.Context, slug string) error {
	if _, err := s.Get(ctx, slug); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, slug)
}

func itemsJSON(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
