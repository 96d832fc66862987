package store

import (
	"errors"
	"fmt"
)

// ErrInvalidSortKey is returned when a listing is requested with a sort key
// outside the registered set.
var ErrInvalidSortKey = errors.New("invalid sort key")

// Sort keys accepted by listing queries.
const (
	SortPopularity = "product-popularity"
	SortExpensive  = "product-expensive"
	SortCheap      = "product-cheap"
	SortNewest     = "product-newest"
)

// DefaultSort is applied when a request carries no sort key.
const DefaultSort = SortNewest

// ProductOrder is a named ordering of product listings.
type ProductOrder struct {
	Key    string
	clause string
}

// Clause returns the ORDER BY expression. Every ordering ends on the
// product id so that pages never overlap.
func (o ProductOrder) Clause() string {
	if o.clause == "" {
		return productOrders[DefaultSort].clause
	}
	return o.clause
}

// productOrders maps sort keys to their SQL ordering expressions. like_count
// refers to the projected column of the listing query.
var productOrders = map[string]ProductOrder{
	SortPopularity: {Key: SortPopularity, clause: "like_count DESC, p.id DESC"},
	SortExpensive:  {Key: SortExpensive, clause: "p.min_price DESC, p.id DESC"},
	SortCheap:      {Key: SortCheap, clause: "p.min_price ASC, p.id ASC"},
	SortNewest:     {Key: SortNewest, clause: "p.created_at DESC, p.id DESC"},
}

// SortKeys lists the registered sort keys.
func SortKeys() []string {
	return []string{SortPopularity, SortExpensive, SortCheap, SortNewest}
}

// ParseProductOrder resolves a sort key. An empty key selects DefaultSort.
func ParseProductOrder(key string) (ProductOrder, error) {
	if key == "" {
		key = DefaultSort
	}
	o, ok := productOrders[key]
	if !ok {
		return ProductOrder{}, fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
	}
	return o, nil
}
