package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/anastasya/flower-shop/internal/api/middleware"
	"github.com/anastasya/flower-shop/internal/api/response"
	"github.com/anastasya/flower-shop/internal/config"
	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/service"
	"github.com/anastasya/flower-shop/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	cfg         config.Config
	log         *logrus.Logger
}

func NewAuthHandler(authService *service.AuthService, cfg config.Config, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg, log: log}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,userpass"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	AdminSecret string `json:"adminSecret"`
}

type AuthData struct {
	User *domain.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	response.Created(w, AuthData{User: result.User}, "Registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:       req.Email,
		Password:    req.Password,
		AdminSecret: req.AdminSecret,
	})
	if err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	response.Success(w, AuthData{User: result.User}, "Logged in successfully")
}

// Logout clears the session cookie. There is no server-side state to drop, so
// repeating it is harmless and always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	response.Success(w, nil, "Logged out successfully")
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}
	response.Success(w, AuthData{User: user}, "")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.cfg.Auth.TokenTTL.Seconds()),
	})
}
