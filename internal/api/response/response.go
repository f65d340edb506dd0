// Package response defines the uniform wire format every handler speaks:
// {success, message, data}. Error responses always carry data=null and a
// human-readable, non-sensitive message.
package response

import (
	"encoding/json"
	"net/http"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// PaginationMeta describes the page window of a list response.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Paginated wraps list items together with their pagination metadata.
type Paginated struct {
	Items      any            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewPaginationMeta computes page bookkeeping from a total row count.
func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// Success writes a 200 envelope.
func Success(w http.ResponseWriter, data any, message string) {
	SuccessStatus(w, data, message, http.StatusOK)
}

// SuccessStatus writes a success envelope with an explicit status code.
func SuccessStatus(w http.ResponseWriter, data any, message string, status int) {
	if message == "" {
		message = "Success"
	}
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 envelope.
func Created(w http.ResponseWriter, data any, message string) {
	if message == "" {
		message = "Created successfully"
	}
	SuccessStatus(w, data, message, http.StatusCreated)
}

// Error writes a failure envelope. Data is always null on failure.
func Error(w http.ResponseWriter, message string, status int) {
	if message == "" {
		message = http.StatusText(status)
	}
	write(w, status, Envelope{Success: false, Message: message, Data: nil})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, message, http.StatusBadRequest)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, message, http.StatusUnauthorized)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, message, http.StatusForbidden)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, message, http.StatusNotFound)
}

func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource already exists"
	}
	Error(w, message, http.StatusConflict)
}

func ValidationError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Validation failed"
	}
	Error(w, message, http.StatusUnprocessableEntity)
}

func InternalError(w http.ResponseWriter) {
	Error(w, "Internal server error", http.StatusInternalServerError)
}
