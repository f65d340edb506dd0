package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/anastasya/flower-shop/internal/api/response"
	"github.com/anastasya/flower-shop/internal/service"
	"github.com/anastasya/flower-shop/internal/validation"
)

type ProductHandler struct {
	productService *service.ProductService
	log            *logrus.Logger
}

func NewProductHandler(productService *service.ProductService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, log: log}
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Price       string   `json:"price" validate:"required"`
	CategoryID  uint     `json:"categoryId" validate:"required,gt=0"`
	Description string   `json:"description"`
	Image       *string  `json:"image"`
	Items       []string `json:"items"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *string  `json:"price" validate:"omitempty,min=1"`
	CategoryID  *uint    `json:"categoryId" validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Items       []string `json:"items"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	q := r.URL.Query()

	products, total, err := h.productService.List(r.Context(), service.ListProductsInput{
		Search:       q.Get("search"),
		CategorySlug: q.Get("category"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	response.Success(w, response.Paginated{
		Items:      products,
		Pagination: response.NewPaginationMeta(total, page, limit),
	}, "Products retrieved successfully")
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, product, "")
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	product, err := h.productService.Create(r.Context(), service.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Image:       req.Image,
		Items:       req.Items,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Created(w, product, "Product created successfully")
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	product, err := h.productService.Update(r.Context(), chi.URLParam(r, "slug"), service.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Image:       req.Image,
		Items:       req.Items,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, product, "Product updated successfully")
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		response.HandleError(w, h.log, err)
		return
	}
	response.Success(w, nil, "Product deleted successfully")
}
