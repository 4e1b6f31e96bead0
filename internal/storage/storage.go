package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage abstracts where proposal documents live. Objects are addressed
// by a flat path; callers build the path themselves.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(ctx context.Context, path string) (string, error)
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config selects and parameterizes a backend.
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // local only
	BaseURL    string // public URL base
	Bucket     string
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string // R2 or custom S3
	UseSSL     bool
	PublicRead bool
}

// NewStorage builds the backend named by cfg.Type.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewObjectStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
