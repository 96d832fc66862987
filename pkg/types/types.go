// Package domain defines the core business types for the marketplace.
package domain

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

// Category is the closed set of product categories.
type Category string

// Category constants.
const (
	CategoryElectronics    Category = "ELECTRONICS"
	CategoryHomeAppliances Category = "HOME_APPLIANCES"
	CategoryFashion        Category = "FASHION_AND_CLOTHING"
	CategoryFurniture      Category = "FURNITURE_AND_INTERIOR"
	CategoryBooks          Category = "BOOKS_AND_MEDIA"
	CategorySports         Category = "SPORTS_AND_LEISURE"
	CategoryToys           Category = "TOYS_AND_HOBBIES"
	CategoryOther          Category = "OTHER"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryHomeAppliances,
	CategoryFashion,
	CategoryFurniture,
	CategoryBooks,
	CategorySports,
	CategoryToys,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// ParseCategory resolves a category name case-insensitively. Dashes are
// accepted in place of underscores.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_"))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// AuctionStatus represents the lifecycle state of an auction.
type AuctionStatus string

// Auction status constants.
const (
	AuctionProceeding AuctionStatus = "PROCEEDING"
	AuctionEnded      AuctionStatus = "ENDED"
)

// User is a registered marketplace member.
type User struct {
	ID        int64     `json:"id"         db:"id"`
	Nickname  string    `json:"nickname"   db:"nickname"`
	Email     string    `json:"email"      db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Product is a listed item. It owns its images and is the aggregation
// root for likes.
type Product struct {
	ID          int64     `json:"id"          db:"id"`
	UserID      int64     `json:"user_id"     db:"user_id"`
	Name        string    `json:"name"        db:"name"`
	Description string    `json:"description" db:"description"`
	Category    Category  `json:"category"    db:"category"`
	MinPrice    int       `json:"min_price"   db:"min_price"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// Image belongs to exactly one product. The image with the lowest ID is the
// product thumbnail.
type Image struct {
	ID        int64  `json:"id"         db:"id"`
	ProductID int64  `json:"product_id" db:"product_id"`
	CDNPath   string `json:"cdn_path"   db:"cdn_path"`
	ObjectKey string `json:"object_key" db:"object_key"`
}

// Auction marks a product that left pre-registration.
type Auction struct {
	ID        int64         `json:"id"         db:"id"`
	ProductID int64         `json:"product_id" db:"product_id"`
	Status    AuctionStatus `json:"status"     db:"status"`
	EndAt     time.Time     `json:"end_at"     db:"end_at"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// ImageUpload is an image file received from a client, not yet stored.
type ImageUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageDeletion is a queued removal of an object from image storage.
type ImageDeletion struct {
	ID         int64     `json:"id"          db:"id"`
	ObjectKey  string    `json:"object_key"  db:"object_key"`
	Attempts   int       `json:"attempts"    db:"attempts"`
	LastError  string    `json:"last_error"  db:"last_error"`
	EnqueuedAt time.Time `json:"enqueued_at" db:"enqueued_at"`
}

// ProductListing is the list-view projection of a pre-registered product.
type ProductListing struct {
	ID        int64   `json:"product_id"`
	Name      string  `json:"product_name"`
	Thumbnail *string `json:"image_url"`
	MinPrice  int     `json:"min_price"`
	LikeCount int64   `json:"like_count"`
	IsLiked   bool    `json:"is_liked"`
}

// ProductDetails is the detail-view projection of a product.
type ProductDetails struct {
	ID            int64     `json:"product_id"`
	Name          string    `json:"product_name"`
	OwnerNickname string    `json:"owner_nickname"`
	MinPrice      int       `json:"min_price"`
	CreatedAt     time.Time `json:"created_at"`
	Description   string    `json:"description"`
	Category      Category  `json:"category"`
	LikeCount     int64     `json:"like_count"`
	IsLiked       bool      `json:"is_liked"`
	ImageURLs     []string  `json:"image_urls"`
	UpdatedAt     time.Time `json:"-"`
}

// DeletedProduct summarizes a product removed by its owner.
type DeletedProduct struct {
	ID        int64  `json:"product_id"`
	Name      string `json:"product_name"`
	LikeCount int64  `json:"like_count"`
}

// LikeState is the result of toggling a like.
type LikeState struct {
	ProductID int64 `json:"product_id"`
	IsLiked   bool  `json:"is_liked"`
	LikeCount int64 `json:"like_count"`
}

// Page is one slice of a larger ordered result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	HasNext       bool  `json:"has_next"`
}
