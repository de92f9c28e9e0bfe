// Package media persists uploaded blobs under logical keys such as "images/products/<name>".
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"shop-admin-api/pkg/config"
	"shop-admin-api/pkg/metrics"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrInvalidKey is returned for keys that would escape the store root
var ErrInvalidKey = errors.New("invalid media key")

// Store abstracts the blob backend. Deleting a missing key is not an error.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL is the public address of key
	URL(key string) string
}

// New builds the store selected by STORAGE_DRIVER
func New(ctx context.Context, cfg config.StorageConfig, publicURL string) (Store, error) {
	switch cfg.Driver {
	case "", "local":
		store, err := NewLocalStore(cfg.LocalRoot, strings.TrimRight(publicURL, "/")+"/storage")
		if err != nil {
			return nil, err
		}
		return store, nil
	case "minio":
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("create minio client: %w", err)
		}
		store := NewMinioStore(client, cfg.Bucket, cfg.MinioUseSSL)
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("ensure bucket %q: %w", cfg.Bucket, err)
		}
		return store, nil
	case "gcs":
		store, err := NewGCSStore(ctx, cfg.Bucket, cfg.GCSCredentialsFile)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Driver)
	}
}

// WithMetrics counts every put and delete on m
func WithMetrics(s Store, m *metrics.HTTPMetrics) Store {
	if m == nil {
		return s
	}
	return &instrumented{Store: s, m: m}
}

type instrumented struct {
	Store
	m *metrics.HTTPMetrics
}

func (i *instrumented) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	err := i.Store.Put(ctx, key, r, size, contentType)
	i.m.MediaOp("put", err)
	return err
}

func (i *instrumented) Delete(ctx context.Context, key string) error {
	err := i.Store.Delete(ctx, key)
	i.m.MediaOp("delete", err)
	return err
}
