package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/chzzmarket/market-api/internal/metrics"
	"github.com/chzzmarket/market-api/internal/store"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

const (
	maxNameLength = 30
	minPrice      = 1000
	maxPrice      = math.MaxInt32
	maxImages     = 5
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// ProductInput holds the owner-editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Category    domain.Category
	MinPrice    int
}

func (in ProductInput) validate() error {
	var errs []error

	n := utf8.RuneCountInString(strings.TrimSpace(in.Name))
	if n == 0 || n > maxNameLength {
		errs = append(errs, fmt.Errorf("name must be 1 to %d characters", maxNameLength))
	}
	if !in.Category.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category))
	}
	switch {
	case in.MinPrice < minPrice:
		errs = append(errs, fmt.Errorf("min price must be at least %d", minPrice))
	case in.MinPrice > maxPrice:
		errs = append(errs, fmt.Errorf("min price must be at most %d", maxPrice))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, errors.Join(errs...))
	}
	return nil
}

func (c *Catalog) validateImages(uploads []domain.ImageUpload, required bool) error {
	if len(uploads) == 0 {
		if required {
			return fmt.Errorf("%w: at least one image is required", ErrInvalidImage)
		}
		return nil
	}
	if len(uploads) > maxImages {
		return fmt.Errorf("%w: at most %d images are allowed", ErrInvalidImage, maxImages)
	}

	for _, u := range uploads {
		if _, ok := allowedImageTypes[u.ContentType]; !ok {
			return fmt.Errorf("%w: %s has unsupported content type %q", ErrInvalidImage, u.Name, u.ContentType)
		}
		if u.Size <= 0 || u.Size > c.maxImageSize {
			return fmt.Errorf("%w: %s must be between 1 and %d bytes", ErrInvalidImage, u.Name, c.maxImageSize)
		}
	}
	return nil
}

// CreateProduct registers a new product owned by userID. Images are stored
// in upload order; the first becomes the thumbnail.
func (c *Catalog) CreateProduct(
	ctx context.Context,
	userID int64,
	in ProductInput,
	uploads []domain.ImageUpload,
) (_ *domain.Product, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.CreateProduct", trace.WithAttributes(
		attribute.Int64("user_id", userID),
		attribute.Int("images", len(uploads)),
	))
	defer func() { c.observe(span, "create", err) }()

	if userID <= 0 {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := c.validateImages(uploads, true); err != nil {
		return nil, err
	}

	if _, err := c.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	images, err := c.uploadImages(ctx, uploads)
	if err != nil {
		return nil, err
	}

	p := &domain.Product{
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    in.Category,
		MinPrice:    in.MinPrice,
	}
	if err := c.store.CreateProduct(ctx, p, images); err != nil {
		c.discardImages(ctx, images)
		return nil, fmt.Errorf("creating product: %w", err)
	}

	span.SetAttributes(attribute.Int64("product_id", p.ID))
	c.log.Info("product created", "product_id", p.ID, "user_id", userID, "images", len(images))
	return p, nil
}

// UpdateProduct changes a pre-registered product owned by userID. Non-empty
// uploads replace the current images; otherwise the images are kept.
func (c *Catalog) UpdateProduct(
	ctx context.Context,
	userID int64,
	productID int64,
	in ProductInput,
	uploads []domain.ImageUpload,
) (_ *domain.Product, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.UpdateProduct", trace.WithAttributes(
		attribute.Int64("user_id", userID),
		attribute.Int64("product_id", productID),
	))
	defer func() { c.observe(span, "update", err) }()

	if userID <= 0 {
		return nil, ErrUnauthenticated
	}

	p, err := c.ownedPreRegistered(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := c.validateImages(uploads, false); err != nil {
		return nil, err
	}

	var images []domain.Image
	if len(uploads) > 0 {
		images, err = c.uploadImages(ctx, uploads)
		if err != nil {
			return nil, err
		}
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Category = in.Category
	p.MinPrice = in.MinPrice
	if err := c.store.UpdateProduct(ctx, p, images); err != nil {
		c.discardImages(ctx, images)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
		}
		return nil, fmt.Errorf("updating product: %w", err)
	}

	if images != nil {
		c.invalidateImages(ctx, productID)
	}
	c.log.Info("product updated", "product_id", productID, "replaced_images", len(images))
	return p, nil
}

// DeleteProduct removes a pre-registered product owned by userID together
// with its images and likes.
func (c *Catalog) DeleteProduct(ctx context.Context, userID, productID int64) (_ *domain.DeletedProduct, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.DeleteProduct", trace.WithAttributes(
		attribute.Int64("user_id", userID),
		attribute.Int64("product_id", productID),
	))
	defer func() { c.observe(span, "delete", err) }()

	if userID <= 0 {
		return nil, ErrUnauthenticated
	}
	if _, err := c.ownedPreRegistered(ctx, userID, productID); err != nil {
		return nil, err
	}

	d, err := c.store.DeleteProduct(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("deleting product: %w", err)
	}

	c.invalidateImages(ctx, productID)
	c.log.Info("product deleted", "product_id", productID, "like_count", d.LikeCount)
	return d, nil
}

// ToggleLike likes the product for userID, or removes an existing like.
// Products in auction cannot be liked or unliked.
func (c *Catalog) ToggleLike(ctx context.Context, userID, productID int64) (_ *domain.LikeState, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.ToggleLike", trace.WithAttributes(
		attribute.Int64("user_id", userID),
		attribute.Int64("product_id", productID),
	))
	defer func() { c.observe(span, "like", err) }()

	if userID <= 0 {
		return nil, ErrUnauthenticated
	}
	if _, err := c.getProduct(ctx, productID); err != nil {
		return nil, err
	}
	if err := c.requirePreRegistered(ctx, productID); err != nil {
		return nil, err
	}

	liked, err := c.store.ToggleLike(ctx, productID, userID)
	if err != nil {
		return nil, fmt.Errorf("toggling like: %w", err)
	}
	count, err := c.store.CountLikes(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("counting likes: %w", err)
	}

	return &domain.LikeState{ProductID: productID, IsLiked: liked, LikeCount: count}, nil
}

// StartAuction moves a pre-registered product owned by userID into an
// auction ending AuctionDuration from now. The product then leaves every
// pre-registration listing.
func (c *Catalog) StartAuction(ctx context.Context, userID, productID int64) (_ *domain.Auction, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.StartAuction", trace.WithAttributes(
		attribute.Int64("user_id", userID),
		attribute.Int64("product_id", productID),
	))
	defer func() { c.observe(span, "auction", err) }()

	if userID <= 0 {
		return nil, ErrUnauthenticated
	}
	if _, err := c.ownedPreRegistered(ctx, userID, productID); err != nil {
		return nil, err
	}

	a := &domain.Auction{
		ProductID: productID,
		Status:    domain.AuctionProceeding,
		EndAt:     c.nowFunc().Add(AuctionDuration),
	}
	if err := c.store.CreateAuction(ctx, a); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrAlreadyInAuction)
		}
		return nil, fmt.Errorf("starting auction: %w", err)
	}

	c.log.Info("auction started", "product_id", productID, "end_at", a.EndAt)
	return a, nil
}

// ownedPreRegistered loads a product and checks, in order, that it exists,
// that userID owns it and that it is not in auction.
func (c *Catalog) ownedPreRegistered(ctx context.Context, userID, productID int64) (*domain.Product, error) {
	p, err := c.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, fmt.Errorf("product %d: %w", productID, ErrForbidden)
	}
	if err := c.requirePreRegistered(ctx, productID); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Catalog) getProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	p, err := c.store.GetProduct(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

func (c *Catalog) requirePreRegistered(ctx context.Context, productID int64) error {
	inAuction, err := c.store.AuctionExists(ctx, productID)
	if err != nil {
		return fmt.Errorf("checking auction: %w", err)
	}
	if inAuction {
		return fmt.Errorf("product %d: %w", productID, ErrAlreadyInAuction)
	}
	return nil
}

// uploadImages stores the uploads in order. On failure the objects already
// written are queued for deletion.
func (c *Catalog) uploadImages(ctx context.Context, uploads []domain.ImageUpload) ([]domain.Image, error) {
	images := make([]domain.Image, 0, len(uploads))
	for _, u := range uploads {
		img, err := c.images.Upload(ctx, u)
		if err != nil {
			metrics.ImageUploadsTotal.WithLabelValues("error").Inc()
			c.discardImages(ctx, images)
			return nil, fmt.Errorf("uploading image %s: %w", u.Name, err)
		}
		metrics.ImageUploadsTotal.WithLabelValues("ok").Inc()
		images = append(images, img)
	}
	return images, nil
}

// discardImages queues the objects of images that never became product
// images. A failure leaves orphaned objects, which is logged.
func (c *Catalog) discardImages(ctx context.Context, images []domain.Image) {
	if len(images) == 0 {
		return
	}

	keys := make([]string, len(images))
	for i, img := range images {
		keys[i] = img.ObjectKey
	}

	if err := c.store.EnqueueImageDeletions(context.WithoutCancel(ctx), keys); err != nil {
		c.log.Error("queueing orphaned images failed", "keys", keys, "error", err)
	}
}

// observe ends a command span and records its outcome.
func (c *Catalog) observe(span trace.Span, command string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	metrics.ProductCommandsTotal.WithLabelValues(command, result).Inc()
	span.End()
}
