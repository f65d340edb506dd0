package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/anastasya/flower-shop/internal/api/response"
	"github.com/anastasya/flower-shop/internal/service"
	"github.com/anastasya/flower-shop/internal/validation"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	log             *logrus.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, log: log}
}

type CreateCategoryRequest struct {
	Slug  string  `json:"slug" validate:"required,max=100,slugfmt"`
	Name  string  `json:"name" validate:"required,max=100"`
	Image *string `json:"image"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Image *string `json:"image"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, categories, "Categories retrieved successfully")
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, category, "")
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	category, err := h.categoryService.Create(r.Context(), service.CreateCategoryInput{
		Slug:  req.Slug,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Created(w, category, "Category created successfully")
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	category, err := h.categoryService.Update(r.Context(), chi.URLParam(r, "slug"), service.UpdateCategoryInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, category, "Category updated successfully")
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryService.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, nil, "Category deleted successfully")
}
