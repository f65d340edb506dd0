package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/anastasya/flower-shop/internal/api/middleware"
	"github.com/anastasya/flower-shop/internal/api/response"
	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/service"
	"github.com/anastasya/flower-shop/internal/validation"
)

type BlogHandler struct {
	blogService *service.BlogService
	log         *logrus.Logger
}

func NewBlogHandler(blogService *service.BlogService, log *logrus.Logger) *BlogHandler {
	return &BlogHandler{blogService: blogService, log: log}
}

type CreateBlogRequest struct {
	Title     string  `json:"title" validate:"required,max=200"`
	Slug      string  `json:"slug" validate:"omitempty,max=200,slugfmt"`
	Excerpt   *string `json:"excerpt" validate:"omitempty,max=500"`
	Content   string  `json:"content" validate:"required"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	ReadTime  int     `json:"readTime" validate:"omitempty,gt=0"`
	Author    *string `json:"author" validate:"omitempty,max=100"`
	Image     *string `json:"image"`
	Published bool    `json:"published"`
}

type UpdateBlogRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=200"`
	Excerpt   *string `json:"excerpt" validate:"omitempty,max=500"`
	Content   *string `json:"content" validate:"omitempty,min=1"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	ReadTime  *int    `json:"readTime" validate:"omitempty,gt=0"`
	Author    *string `json:"author" validate:"omitempty,max=100"`
	Image     *string `json:"image"`
	Published *bool   `json:"published"`
}

// List serves the storefront: published posts only.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAll serves the back office: drafts included.
func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *BlogHandler) list(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	page, limit := parsePagination(r)

	blogs, total, err := h.blogService.List(r.Context(), publishedOnly, page, limit)
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	response.Success(w, response.Paginated{
		Items:      blogs,
		Pagination: response.NewPaginationMeta(total, page, limit),
	}, "Blog posts retrieved successfully")
}

// Get hides unpublished posts from everyone but admins.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	user, ok := middleware.CurrentUser(r.Context())
	isAdmin := ok && user.Role == domain.RoleAdmin

	var err error
	var blog *domain.Blog
	if isAdmin {
		blog, err = h.blogService.Get(r.Context(), slug)
	} else {
		blog, err = h.blogService.GetPublished(r.Context(), slug)
	}
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, blog, "")
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	blog, err := h.blogService.Create(r.Context(), service.CreateBlogInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		ReadTime:  req.ReadTime,
		Author:    req.Author,
		Image:     req.Image,
		Published: req.Published,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Created(w, blog, "Blog post created successfully")
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBlogRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	blog, err := h.blogService.Update(r.Context(), chi.URLParam(r, "slug"), service.UpdateBlogInput{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		ReadTime:  req.ReadTime,
		Author:    req.Author,
		Image:     req.Image,
		Published: req.Published,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, blog, "Blog post updated successfully")
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogService.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, nil, "Blog post deleted successfully")
}
