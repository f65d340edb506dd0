package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrAdminSecret        = errors.New("admin secret required")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfDelete         = errors.New("cannot delete your own account")
)

// Catalog errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugExists       = errors.New("slug already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrBlogNotFound     = errors.New("blog post not found")
)

// Upload errors
var (
	ErrFileMissing  = errors.New("no file provided")
	ErrFileType     = errors.New("invalid file type, allowed: JPEG, PNG, WebP, GIF")
	ErrFileTooLarge = errors.New("file too large, max size: 5MB")
	ErrFolderName   = errors.New("invalid folder name")
)
