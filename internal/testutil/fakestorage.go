package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anastasya/flower-shop/internal/storage"
)

// FakeStorage is an in-memory storage.Service so upload tests never need a
// real media host.
type FakeStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{Objects: make(map[string][]byte)}
}

func (f *FakeStorage) UploadImage(_ context.Context, input storage.UploadInput) (*storage.UploadResult, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s", input.Folder, uuid.New().String())

	f.mu.Lock()
	f.Objects[key] = data
	f.mu.Unlock()

	return &storage.UploadResult{
		Key:  key,
		URL:  "https://media.test/" + key,
		Size: int64(len(data)),
	}, nil
}

func (f *FakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	delete(f.Objects, key)
	f.mu.Unlock()
	return nil
}

func (f *FakeStorage) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://media.test/signed/" + key, nil
}

// Len reports how many objects have been stored.
func (f *FakeStorage) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Objects)
}

var _ storage.Service = (*FakeStorage)(nil)
