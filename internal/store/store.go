// Package store defines the datastore abstraction for the marketplace.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/chzzmarket/market-api/pkg/types"
)

var (
	// ErrNotFound is returned when a row addressed by key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness rule.
	ErrConflict = errors.New("conflict")
)

// Store defines all data access operations for the marketplace.
type Store interface {
	// Listings
	ListProducts(ctx context.Context, q *ProductQuery) (domain.Page[domain.ProductListing], error)
	// GetProductDetails returns the detail row without image paths, or
	// nil, nil when no product has the given id.
	GetProductDetails(ctx context.Context, productID int64, viewerID *int64) (*domain.ProductDetails, error)
	ListImagePaths(ctx context.Context, productID int64) ([]string, error)

	// Products
	CreateProduct(ctx context.Context, p *domain.Product, images []domain.Image) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	// UpdateProduct saves the product fields. A nil images slice keeps the
	// current images; otherwise they are replaced and the object keys of the
	// removed images are queued for deletion.
	UpdateProduct(ctx context.Context, p *domain.Product, images []domain.Image) error
	DeleteProduct(ctx context.Context, id int64) (*domain.DeletedProduct, error)
	ListImages(ctx context.Context, productID int64) ([]domain.Image, error)

	// Likes
	ToggleLike(ctx context.Context, productID, userID int64) (liked bool, err error)
	CountLikes(ctx context.Context, productID int64) (int64, error)

	// Auctions
	AuctionExists(ctx context.Context, productID int64) (bool, error)
	CreateAuction(ctx context.Context, a *domain.Auction) error

	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByNickname(ctx context.Context, nickname string) (*domain.User, error)

	// Image deletion queue
	EnqueueImageDeletions(ctx context.Context, objectKeys []string) error
	DequeueImageDeletions(ctx context.Context, workerID string, batchSize int) ([]domain.ImageDeletion, error)
	CompleteImageDeletion(ctx context.Context, id int64, errText string) error
	CountPendingImageDeletions(ctx context.Context) (int, error)
	RecoverStaleImageDeletions(ctx context.Context, olderThan time.Duration) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
