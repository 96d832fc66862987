package catalog

import (
	"context"
	"log/slog"
)

// NoOpImageCache implements ImageCache without storing anything. It is used
// when Redis is not configured, so every detail lookup reads the store.
type NoOpImageCache struct {
	log *slog.Logger
}

// NewNoOpImageCache creates a cache that always misses.
func NewNoOpImageCache(log *slog.Logger) *NoOpImageCache {
	return &NoOpImageCache{log: log}
}

// GetImagePaths always reports a miss.
func (n *NoOpImageCache) GetImagePaths(_ context.Context, _, _ int64) ([]string, bool, error) {
	return nil, false, nil
}

// SetImagePaths discards the paths.
func (n *NoOpImageCache) SetImagePaths(_ context.Context, productID, _ int64, paths []string) error {
	n.log.Debug("image paths not cached (no cache configured)",
		"product_id", productID,
		"count", len(paths),
	)
	return nil
}

// Invalidate does nothing.
func (n *NoOpImageCache) Invalidate(_ context.Context, _ int64) error {
	return nil
}
