package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chzzmarket/market-api/internal/metrics"
	"github.com/chzzmarket/market-api/internal/store"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

// Listing names used in metric labels and span attributes.
const (
	listingCategory = "category"
	listingOwner    = "owner"
	listingLiked    = "liked"
	listingDetails  = "details"
)

// ListByCategory returns one page of pre-registered products in a category.
// viewerID may be nil for anonymous requests.
func (c *Catalog) ListByCategory(
	ctx context.Context,
	category domain.Category,
	viewerID *int64,
	p store.Pageable,
) (domain.Page[domain.ProductListing], error) {
	if !category.Valid() {
		return domain.Page[domain.ProductListing]{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	q, err := store.CategoryQuery(category, viewerID, p)
	if err != nil {
		return domain.Page[domain.ProductListing]{}, err
	}
	return c.list(ctx, listingCategory, q)
}

// ListByOwner returns one page of the pre-registered products of the user
// with the given nickname. The liked flag is computed for viewerID, the
// user making the request, not for the owner.
func (c *Catalog) ListByOwner(
	ctx context.Context,
	nickname string,
	viewerID *int64,
	p store.Pageable,
) (domain.Page[domain.ProductListing], error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return domain.Page[domain.ProductListing]{}, fmt.Errorf("%w: empty nickname", ErrUserNotFound)
	}

	q, err := store.OwnerQuery(nickname, viewerID, p)
	if err != nil {
		return domain.Page[domain.ProductListing]{}, err
	}
	return c.list(ctx, listingOwner, q)
}

// ListLiked returns one page of the pre-registered products userID liked.
func (c *Catalog) ListLiked(
	ctx context.Context,
	userID int64,
	p store.Pageable,
) (domain.Page[domain.ProductListing], error) {
	if userID <= 0 {
		return domain.Page[domain.ProductListing]{}, ErrUnauthenticated
	}

	q, err := store.LikedQuery(userID, p)
	if err != nil {
		return domain.Page[domain.ProductListing]{}, err
	}
	return c.list(ctx, listingLiked, q)
}

func (c *Catalog) list(
	ctx context.Context,
	listing string,
	q *store.ProductQuery,
) (domain.Page[domain.ProductListing], error) {
	ctx, span := c.tracer.Start(ctx, "catalog.list", trace.WithAttributes(
		attribute.String("listing", listing),
		attribute.String("sort", q.Order.Key),
		attribute.Int("page", q.Pageable.Page),
		attribute.Int("size", q.Pageable.Size),
	))
	defer span.End()

	start := time.Now()
	page, err := c.store.ListProducts(ctx, q)
	metrics.ListingQueryDuration.WithLabelValues(listing).Observe(time.Since(start).Seconds())
	metrics.ListingQueriesTotal.WithLabelValues(listing, q.Order.Key).Inc()
	if err != nil {
		metrics.ListingQueryErrorsTotal.WithLabelValues(listing).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Error("listing query failed", "listing", listing, "error", err)
		return domain.Page[domain.ProductListing]{}, fmt.Errorf("listing %s products: %w", listing, err)
	}

	span.SetAttributes(
		attribute.Int("results", len(page.Content)),
		attribute.Int64("total_elements", page.TotalElements),
	)
	return page, nil
}

// GetDetails returns the detail view of a product, or nil when no product
// has the given id. Products in auction are still returned.
func (c *Catalog) GetDetails(ctx context.Context, productID int64, viewerID *int64) (*domain.ProductDetails, error) {
	ctx, span := c.tracer.Start(ctx, "catalog.GetDetails", trace.WithAttributes(
		attribute.Int64("product_id", productID),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.ListingQueryDuration.WithLabelValues(listingDetails).Observe(time.Since(start).Seconds())
	}()
	metrics.ListingQueriesTotal.WithLabelValues(listingDetails, "").Inc()

	d, err := c.store.GetProductDetails(ctx, productID, viewerID)
	if err != nil {
		metrics.ListingQueryErrorsTotal.WithLabelValues(listingDetails).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("getting product details: %w", err)
	}
	if d == nil {
		span.SetAttributes(attribute.Bool("found", false))
		return nil, nil
	}

	paths, err := c.imagePaths(ctx, productID, d.UpdatedAt.UnixMicro())
	if err != nil {
		metrics.ListingQueryErrorsTotal.WithLabelValues(listingDetails).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	d.ImageURLs = paths

	span.SetAttributes(attribute.Bool("found", true), attribute.Int("images", len(paths)))
	return d, nil
}

// imagePaths reads a product's ordered image paths through the cache, keyed
// to the product version the details were read at. Cache failures fall back
// to the store.
func (c *Catalog) imagePaths(ctx context.Context, productID, version int64) ([]string, error) {
	paths, ok, err := c.cache.GetImagePaths(ctx, productID, version)
	switch {
	case err != nil:
		c.log.Warn("image cache read failed", "product_id", productID, "error", err)
	case ok:
		metrics.ImageCacheHitsTotal.Inc()
		return paths, nil
	}
	metrics.ImageCacheMissesTotal.Inc()

	paths, err = c.store.ListImagePaths(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("listing image paths: %w", err)
	}

	if err := c.cache.SetImagePaths(ctx, productID, version, paths); err != nil {
		c.log.Warn("image cache write failed", "product_id", productID, "error", err)
	}
	return paths, nil
}

// invalidateImages drops the cached image paths of a product.
func (c *Catalog) invalidateImages(ctx context.Context, productID int64) {
	if err := c.cache.Invalidate(ctx, productID); err != nil {
		c.log.Warn("image cache invalidation failed", "product_id", productID, "error", err)
	}
}

// Ready reports whether the backing store answers.
func (c *Catalog) Ready(ctx context.Context) error {
	return c.store.Ping(ctx)
}
