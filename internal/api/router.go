package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/anastasya/flower-shop/internal/api/handlers"
	"github.com/anastasya/flower-shop/internal/api/middleware"
	"github.com/anastasya/flower-shop/internal/config"
	"github.com/anastasya/flower-shop/internal/service"
	"github.com/anastasya/flower-shop/internal/storage"
)

func NewRouter(services *service.Services, store storage.Service, cfg config.Config, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg, log)
	userHandler := handlers.NewUserHandler(services.User, log)
	categoryHandler := handlers.NewCategoryHandler(services.Category, log)
	productHandler := handlers.NewProductHandler(services.Product, log)
	blogHandler := handlers.NewBlogHandler(services.Blog, log)
	uploadHandler := handlers.NewUploadHandler(store, log)
	checkoutHandler := handlers.NewCheckoutHandler(cfg.WhatsApp.Number, log)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Every route sees the session; gates below decide who gets through.
		r.Use(middleware.Session(services.Auth))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})

		// User management (back office only)
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{slug}", productHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", productHandler.Create)
				r.Put("/{slug}", productHandler.Update)
				r.Delete("/{slug}", productHandler.Delete)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.List)
			r.Get("/{slug}", categoryHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", categoryHandler.Create)
				r.Put("/{slug}", categoryHandler.Update)
				r.Delete("/{slug}", categoryHandler.Delete)
			})
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/all", blogHandler.ListAll)
				r.Post("/", blogHandler.Create)
				r.Put("/{slug}", blogHandler.Update)
				r.Delete("/{slug}", blogHandler.Delete)
			})

			r.Get("/{slug}", blogHandler.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/upload", uploadHandler.Upload)
		})

		r.Post("/checkout/link", checkoutHandler.Link)
	})

	return r
}
