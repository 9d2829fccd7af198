package domain

import (
	"context"
	"time"
)

// OCRClient defines the interface for the remote OCR provider
type OCRClient interface {
	ParseImage(ctx context.Context, filename string, content []byte) (string, error)
	ParseImageURL(ctx context.Context, imageURL string) (string, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// BillRepository defines the interface for the billing document store
type BillRepository interface {
	Save(ctx context.Context, bill *Bill) (string, error)
	List(ctx context.Context, limit int) ([]Bill, error)
	Count(ctx context.Context) (int, error)
}
