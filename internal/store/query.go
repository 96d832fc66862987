package store

import (
	"fmt"
	"math"
	"strings"

	domain "github.com/chzzmarket/market-api/pkg/types"
)

const (
	// DefaultPageSize is used when a request does not set a page size.
	DefaultPageSize = 20
	// MaxPageSize caps the page size of any listing query.
	MaxPageSize = 100
	// MaxPage caps the page index so the row offset always fits in an int64.
	MaxPage = math.MaxInt32
)

// Pageable selects one page of an ordered result set. Page is zero-based.
type Pageable struct {
	Page int
	Size int
	Sort string
}

// Normalize clamps the page index and size into range.
func (p Pageable) Normalize() Pageable {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if int64(p.Page) > MaxPage {
		p.Page = MaxPage
	}
	return p
}

// Offset returns the number of rows skipped before the page.
func (p Pageable) Offset() int64 {
	n := p.Normalize()
	return int64(n.Page) * int64(n.Size)
}

// JoinKind is the SQL join operator.
type JoinKind string

// Join kinds.
const (
	InnerJoin JoinKind = "JOIN"
	LeftJoin  JoinKind = "LEFT JOIN"
)

// Join attaches a table to the products base relation.
type Join struct {
	Kind  JoinKind
	Table string
	On    string
}

// Predicate is one WHERE condition. Each ? in Expr binds the next value of
// Args.
type Predicate struct {
	Expr string
	Args []any
}

// ProductQuery describes a pre-registration product listing: the relations
// joined to products, the filters applied, the viewer used for the liked
// flag, and the page requested.
type ProductQuery struct {
	Joins    []Join
	Filters  []Predicate
	ViewerID *int64
	Pageable Pageable
	Order    ProductOrder
}

// auctionJoin and notInAuction exclude products that already became auctions.
var (
	auctionJoin  = Join{Kind: LeftJoin, Table: "auctions a", On: "a.product_id = p.id"}
	notInAuction = Predicate{Expr: "a.id IS NULL"}
)

// thumbnailJoin picks the lowest-id image of each product.
var thumbnailJoin = Join{
	Kind:  LeftJoin,
	Table: "images i",
	On:    "i.product_id = p.id AND i.id = (SELECT MIN(im.id) FROM images im WHERE im.product_id = p.id)",
}

const listingProjection = `p.id, p.name, i.cdn_path, p.min_price,
	(SELECT COUNT(*) FROM likes lc WHERE lc.product_id = p.id) AS like_count`

const listingGroupBy = "p.id, p.name, i.cdn_path, p.min_price"

// CategoryQuery lists pre-registered products of one category.
func CategoryQuery(category domain.Category, viewerID *int64, p Pageable) (*ProductQuery, error) {
	return newProductQuery(
		[]Join{auctionJoin},
		[]Predicate{{Expr: "p.category = ?", Args: []any{string(category)}}, notInAuction},
		viewerID, p,
	)
}

// OwnerQuery lists pre-registered products owned by the user with the given
// nickname.
func OwnerQuery(nickname string, viewerID *int64, p Pageable) (*ProductQuery, error) {
	return newProductQuery(
		[]Join{{Kind: InnerJoin, Table: "users u", On: "u.id = p.user_id"}, auctionJoin},
		[]Predicate{{Expr: "u.nickname = ?", Args: []any{nickname}}, notInAuction},
		viewerID, p,
	)
}

// LikedQuery lists pre-registered products liked by userID. The user is
// also the viewer.
func LikedQuery(userID int64, p Pageable) (*ProductQuery, error) {
	return newProductQuery(
		[]Join{{Kind: InnerJoin, Table: "likes ml", On: "ml.product_id = p.id"}, auctionJoin},
		[]Predicate{{Expr: "ml.user_id = ?", Args: []any{userID}}, notInAuction},
		&userID, p,
	)
}

func newProductQuery(joins []Join, filters []Predicate, viewerID *int64, p Pageable) (*ProductQuery, error) {
	order, err := ParseProductOrder(p.Sort)
	if err != nil {
		return nil, err
	}
	p = p.Normalize()
	p.Sort = order.Key
	return &ProductQuery{
		Joins:    joins,
		Filters:  filters,
		ViewerID: viewerID,
		Pageable: p,
		Order:    order,
	}, nil
}

// ToSQL renders the data and count statements. Filter arguments come first
// in both argument lists; the data statement appends the viewer argument
// when a viewer is set.
func (q *ProductQuery) ToSQL() (dataSQL, countSQL string, dataArgs, countArgs []any) {
	var from strings.Builder
	from.WriteString(" FROM products p")
	for _, j := range q.Joins {
		fmt.Fprintf(&from, " %s %s ON %s", j.Kind, j.Table, j.On)
	}

	var conditions []string
	paramIdx := 1
	for _, f := range q.Filters {
		expr, next := bindPlaceholders(f.Expr, paramIdx)
		paramIdx = next
		conditions = append(conditions, expr)
		countArgs = append(countArgs, f.Args...)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	likedExpr := "FALSE AS is_liked"
	dataArgs = append([]any(nil), countArgs...)
	if q.ViewerID != nil {
		likedExpr = fmt.Sprintf(
			"EXISTS (SELECT 1 FROM likes lv WHERE lv.product_id = p.id AND lv.user_id = $%d) AS is_liked",
			paramIdx,
		)
		dataArgs = append(dataArgs, *q.ViewerID)
	}

	p := q.Pageable.Normalize()

	dataSQL = fmt.Sprintf(
		"SELECT %s,\n\t%s%s %s %s ON %s%s GROUP BY %s ORDER BY %s LIMIT %d OFFSET %d",
		listingProjection, likedExpr,
		from.String(), thumbnailJoin.Kind, thumbnailJoin.Table, thumbnailJoin.On,
		whereClause, listingGroupBy, q.Order.Clause(), p.Size, p.Offset(),
	)

	countSQL = "SELECT COUNT(DISTINCT p.id)" + from.String() + whereClause

	return dataSQL, countSQL, dataArgs, countArgs
}

// bindPlaceholders rewrites each ? in expr to a numbered parameter starting
// at idx and returns the next free index.
func bindPlaceholders(expr string, idx int) (string, int) {
	var b strings.Builder
	for _, r := range expr {
		if r == '?' {
			fmt.Fprintf(&b, "$%d", idx)
			idx++
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), idx
}
