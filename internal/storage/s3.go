package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Service stores images in Amazon S3 (or a compatible media host).
type S3Service struct {
	client    *s3.Client
	uploader  *manager.Uploader
	presign   *s3.PresignClient
	bucket    string
	keyPrefix string
	publicURL string
}

type S3Options struct {
	Bucket    string
	KeyPrefix string
	// PublicURL, when set, is the base URL the bucket is served from; object
	// URLs are built by joining it with the key.
	PublicURL string
}

func NewS3Service(client *s3.Client, opts S3Options) *S3Service {
	return &S3Service{
		client:    client,
		uploader:  manager.NewUploader(client),
		presign:   s3.NewPresignClient(client),
		bucket:    opts.Bucket,
		keyPrefix: strings.Trim(opts.KeyPrefix, "/"),
		publicURL: strings.TrimSuffix(opts.PublicURL, "/"),
	}
}

func (s *S3Service) UploadImage(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if s.bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	key := s.objectKey(input.Folder, input.FileName)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        input.Body,
		ContentType: aws.String(input.ContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return &UploadResult{
		Key:  key,
		URL:  s.objectURL(key),
		Size: input.Size,
	}, nil
}

func (s *S3Service) Delete(ctx context.Context, key string) error {
	if s.bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Service) SignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}

// objectKey builds prefix/folder/<uuid><ext> so repeated uploads of the same
// file never collide or overwrite.
func (s *S3Service) objectKey(folder, fileName string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "uploads"
	}

	name := uuid.New().String() + strings.ToLower(path.Ext(fileName))

	parts := []string{}
	if s.keyPrefix != "" {
		parts = append(parts, s.keyPrefix)
	}
	parts = append(parts, folder, name)
	return path.Join(parts...)
}

func (s *S3Service) objectURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key)
}

var _ Service = (*S3Service)(nil)
