package storage

import (
	"context"
	"io"
	"time"
)

// UploadInput conveys one validated image destined for the media host.
type UploadInput struct {
	Folder      string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult identifies a stored object and where clients can fetch it.
type UploadResult struct {
	Key  string
	URL  string
	Size int64
}

// Service stores catalog and blog images on a remote media host.
type Service interface {
	UploadImage(ctx context.Context, input UploadInput) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
