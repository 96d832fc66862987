// Package imagestore stores product images in an S3-compatible bucket and
// addresses them through a CDN base URL.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	domain "github.com/chzzmarket/market-api/pkg/types"
)

const keyPrefix = "products/"

// extensions maps accepted content types to object key extensions.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Config holds the bucket connection settings.
type Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	Region     string
	UseSSL     bool
	CDNBaseURL string
}

// MinioStore uploads and deletes product images with minio-go.
type MinioStore struct {
	client     *minio.Client
	bucket     string
	region     string
	cdnBaseURL string
	log        *slog.Logger
}

// Option configures the MinioStore.
type Option func(*MinioStore)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *MinioStore) {
		s.log = l
	}
}

// New creates a MinioStore. It does not contact the server; call
// EnsureBucket at startup for that.
func New(cfg Config, opts ...Option) (*MinioStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	s := &MinioStore{
		client:     client,
		bucket:     cfg.Bucket,
		region:     cfg.Region,
		cdnBaseURL: strings.TrimRight(cfg.CDNBaseURL, "/"),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// EnsureBucket creates the bucket when it does not exist.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", s.bucket, err)
	}
	if found {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("creating bucket %s: %w", s.bucket, err)
	}
	s.log.Info("bucket created", "bucket", s.bucket)
	return nil
}

// Ping reports whether the bucket is reachable.
func (s *MinioStore) Ping(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", s.bucket, err)
	}
	if !found {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// Upload stores one image under a fresh object key.
func (s *MinioStore) Upload(ctx context.Context, img domain.ImageUpload) (domain.Image, error) {
	key := objectKey(img.Name, img.ContentType)

	_, err := s.client.PutObject(ctx, s.bucket, key, img.Body, img.Size, minio.PutObjectOptions{
		ContentType:  img.ContentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return domain.Image{}, fmt.Errorf("putting object %s: %w", key, err)
	}

	s.log.Debug("image uploaded", "object_key", key, "size", img.Size)
	return domain.Image{ObjectKey: key, CDNPath: s.URL(key)}, nil
}

// Delete removes an object. Deleting a missing object succeeds.
func (s *MinioStore) Delete(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("removing object %s: %w", objectKey, err)
	}
	return nil
}

// URL returns the CDN address of an object.
func (s *MinioStore) URL(objectKey string) string {
	return s.cdnBaseURL + "/" + objectKey
}

// objectKey builds a unique key, keeping an extension that matches the
// content type.
func objectKey(name, contentType string) string {
	ext, ok := extensions[contentType]
	if !ok {
		ext = strings.ToLower(path.Ext(name))
	}
	return keyPrefix + uuid.NewString() + ext
}
