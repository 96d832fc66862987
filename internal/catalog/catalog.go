// Package catalog implements the marketplace product use cases: listing
// queries, owner commands on products, likes, auctions and the cleanup of
// image objects left behind by those commands.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/chzzmarket/market-api/internal/store"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

const (
	tracerName = "github.com/chzzmarket/market-api/internal/catalog"

	defaultSweepBatchSize  = 50
	defaultStaleClaimAfter = 10 * time.Minute
	defaultMaxImageSize    = 10 << 20
	defaultDeleteRate      = 10
	defaultDeleteBurst     = 5

	// AuctionDuration is how long an auction runs after the owner starts it.
	AuctionDuration = 24 * time.Hour
)

// Catalog errors. Handlers map them to HTTP status codes.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrForbidden        = errors.New("only the product owner may do this")
	ErrAlreadyInAuction = errors.New("product is already in auction")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidImage     = errors.New("invalid image")
)

// ImageStore persists product image objects.
type ImageStore interface {
	Upload(ctx context.Context, img domain.ImageUpload) (domain.Image, error)
	Delete(ctx context.Context, objectKey string) error
}

// ImageCache holds the ordered image paths of product details. version is
// the product's last update time in microseconds; an entry is only served
// for the version it was read at.
type ImageCache interface {
	GetImagePaths(ctx context.Context, productID, version int64) (paths []string, ok bool, err error)
	SetImagePaths(ctx context.Context, productID, version int64, paths []string) error
	Invalidate(ctx context.Context, productID int64) error
}

// Catalog serves product queries and commands.
type Catalog struct {
	store  store.Store
	images ImageStore
	cache  ImageCache
	log    *slog.Logger
	tracer trace.Tracer

	deleteLimiter   *rate.Limiter
	sweepBatchSize  int
	staleClaimAfter time.Duration
	maxImageSize    int64
	workerID        string
	nowFunc         func() time.Time
}

// Option configures the Catalog.
type Option func(*Catalog)

// New creates a Catalog over the given store and image store.
func New(s store.Store, images ImageStore, opts ...Option) *Catalog {
	c := &Catalog{
		store:           s,
		images:          images,
		log:             slog.Default(),
		tracer:          otel.GetTracerProvider().Tracer(tracerName),
		deleteLimiter:   rate.NewLimiter(rate.Limit(defaultDeleteRate), defaultDeleteBurst),
		sweepBatchSize:  defaultSweepBatchSize,
		staleClaimAfter: defaultStaleClaimAfter,
		maxImageSize:    defaultMaxImageSize,
		workerID:        "catalog",
		nowFunc:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewNoOpImageCache(c.log)
	}
	return c
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		c.log = l
	}
}

// WithImageCache sets the cache for detail image paths.
func WithImageCache(ic ImageCache) Option {
	return func(c *Catalog) {
		c.cache = ic
	}
}

// WithTracerProvider sets the provider used for catalog spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Catalog) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// WithDeleteRate limits image object deletions to perSecond with the given burst.
func WithDeleteRate(perSecond float64, burst int) Option {
	return func(c *Catalog) {
		c.deleteLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithSweepBatchSize sets how many queued deletions one sweep claims.
func WithSweepBatchSize(n int) Option {
	return func(c *Catalog) {
		if n > 0 {
			c.sweepBatchSize = n
		}
	}
}

// WithStaleClaimAfter sets when a claimed deletion is considered abandoned.
func WithStaleClaimAfter(d time.Duration) Option {
	return func(c *Catalog) {
		c.staleClaimAfter = d
	}
}

// WithMaxImageSize sets the largest accepted image upload in bytes.
func WithMaxImageSize(n int64) Option {
	return func(c *Catalog) {
		if n > 0 {
			c.maxImageSize = n
		}
	}
}

// WithWorkerID names this instance in the deletion queue claims.
func WithWorkerID(id string) Option {
	return func(c *Catalog) {
		c.workerID = id
	}
}

// WithNowFunc overrides the clock (for testing).
func WithNowFunc(fn func() time.Time) Option {
	return func(c *Catalog) {
		c.nowFunc = fn
	}
}
