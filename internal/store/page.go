package store

import (
	domain "github.com/chzzmarket/market-api/pkg/types"
)

// NewPage assembles a page from its content. The total is derived from the
// content whenever the slice proves where the result set ends; count runs
// only when it does not: a full first page, a full later page, or an empty
// later page.
func NewPage[T any](content []T, p Pageable, count func() (int64, error)) (domain.Page[T], error) {
	p = p.Normalize()
	if content == nil {
		content = []T{}
	}

	offset := p.Offset()
	n := len(content)

	var total int64
	switch {
	case offset == 0 && n < p.Size:
		total = int64(n)
	case offset > 0 && n != 0 && n < p.Size:
		total = offset + int64(n)
	default:
		c, err := count()
		if err != nil {
			return domain.Page[T]{}, err
		}
		total = c
	}

	totalPages := int((total + int64(p.Size) - 1) / int64(p.Size))

	return domain.Page[T]{
		Content:       content,
		PageNumber:    p.Page,
		PageSize:      p.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       int64(p.Page+1) < int64(totalPages),
	}, nil
}
