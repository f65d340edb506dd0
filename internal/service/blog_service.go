package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/repository"
)

type BlogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

type CreateBlogInput struct {
	Title     string
	Slug      string
	Excerpt   *string
	Content   string
	Category  *string
	ReadTime  int
	Author    *string
	Image     *string
	Published bool
}

type UpdateBlogInput struct {
	Title     *string
	Excerpt   *string
	Content   *string
	Category  *string
	ReadTime  *int
	Author    *string
	Image     *string
	Published *bool
}

func (s *BlogService) List(ctx context.Context, publishedOnly bool, page, limit int) ([]*domain.Blog, int64, error) {
	return s.blogRepo.List(ctx, publishedOnly, (page-1)*limit, limit)
}

func (s *BlogService) Get(ctx context.Context, slug string) (*domain.Blog, error) {
	blog, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

// GetPublished is the storefront read: draft posts stay invisible and are
// indistinguishable from missing ones.
func (s *BlogService) GetPublished(ctx context.Context, slug string) (*domain.Blog, error) {
	blog, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !blog.Published {
		return nil, domain.ErrBlogNotFound
	}
	return blog, nil
}

func (s *BlogService) Create(ctx context.Context, input CreateBlogInput) (*domain.Blog, error) {
	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Title)
	}

	readTime := input.ReadTime
	if readTime == 0 {
		readTime = 5
	}

	blog := &domain.Blog{
		Slug:      slug,
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Category:  input.Category,
		ReadTime:  readTime,
		Author:    input.Author,
		Image:     input.Image,
		Published: input.Published,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlugExists
		}
		return nil, err
	}

	return blog, nil
}

func (s *BlogService) Update(ctx context.Context, slug string, input UpdateBlogInput) (*domain.Blog, error) {
	blog, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Excerpt != nil {
		blog.Excerpt = input.Excerpt
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}
	if input.Category != nil {
		blog.Category = input.Category
	}
	if input.ReadTime != nil {
		blog.ReadTime = *input.ReadTime
	}
	if input.Author != nil {
		blog.Author = input.Author
	}
	if input.Image != nil {
		blog.Image = input.Image
	}
	if input.Published != nil {
		blog.Published = *input.Published
	}
	blog.UpdatedAt = time.Now()

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, slug string) error {
	if _, err := s.Get(ctx, slug); err != nil {
		return err
	}
	return s.blogRepo.Delete(ctx, slug)
}
