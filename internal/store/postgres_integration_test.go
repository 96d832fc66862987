//go:build integration

package store_test

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/chzzmarket/market-api/internal/store"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("market_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, 0)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func createUser(t *testing.T, s *store.PostgresStore, nickname string) *domain.User {
	t.Helper()
	u := &domain.User{Nickname: nickname, Email: nickname + "@example.com"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func createProduct(
	t *testing.T,
	s *store.PostgresStore,
	owner *domain.User,
	name string,
	category domain.Category,
	price int,
	imageCount int,
) *domain.Product {
	t.Helper()
	p := &domain.Product{
		UserID:      owner.ID,
		Name:        name,
		Description: name + " description",
		Category:    category,
		MinPrice:    price,
	}
	images := make([]domain.Image, imageCount)
	for i := range images {
		key := fmt.Sprintf("products/%s-%d.png", name, i)
		images[i] = domain.Image{CDNPath: "https://cdn.test/" + key, ObjectKey: key}
	}
	require.NoError(t, s.CreateProduct(context.Background(), p, images))
	return p
}

func startAuction(t *testing.T, s *store.PostgresStore, p *domain.Product) {
	t.Helper()
	require.NoError(t, s.CreateAuction(context.Background(), &domain.Auction{
		ProductID: p.ID,
		Status:    domain.AuctionProceeding,
		EndAt:     time.Now().Add(24 * time.Hour),
	}))
}

func listCategory(
	t *testing.T,
	s *store.PostgresStore,
	c domain.Category,
	viewer *int64,
	p store.Pageable,
) domain.Page[domain.ProductListing] {
	t.Helper()
	q, err := store.CategoryQuery(c, viewer, p)
	require.NoError(t, err)
	page, err := s.ListProducts(context.Background(), q)
	require.NoError(t, err)
	return page
}

func ids(listings []domain.ProductListing) []int64 {
	out := make([]int64, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_CategoryScenario(t *testing.T) {
	s := setupPostgres(t)
	owner := createUser(t, s, "seller")

	createProduct(t, s, owner, "p300", domain.CategoryElectronics, 300, 1)
	createProduct(t, s, owner, "p100", domain.CategoryElectronics, 100, 2)
	createProduct(t, s, owner, "p200", domain.CategoryElectronics, 200, 0)
	createProduct(t, s, owner, "book", domain.CategoryBooks, 50, 0)

	page := listCategory(t, s, domain.CategoryElectronics, nil, store.Pageable{Size: 2, Sort: store.SortCheap})

	require.Len(t, page.Content, 2)
	assert.Equal(t, 100, page.Content[0].MinPrice)
	assert.Equal(t, 200, page.Content[1].MinPrice)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNext)
}

func TestPostgresStore_AuctionedProductsAreExcluded(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	owner := createUser(t, s, "owner")

	kept := createProduct(t, s, owner, "kept", domain.CategoryToys, 1000, 1)
	auctioned := createProduct(t, s, owner, "auctioned", domain.CategoryToys, 2000, 1)
	startAuction(t, s, auctioned)

	page := listCategory(t, s, domain.CategoryToys, nil, store.Pageable{})
	assert.Equal(t, []int64{kept.ID}, ids(page.Content))
	assert.Equal(t, int64(1), page.TotalElements)

	q, err := store.OwnerQuery("owner", nil, store.Pageable{})
	require.NoError(t, err)
	byOwner, err := s.ListProducts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, []int64{kept.ID}, ids(byOwner.Content))

	// Details ignore auction state.
	d, err := s.GetProductDetails(ctx, auctioned.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "auctioned", d.Name)

	err = s.CreateAuction(ctx, &domain.Auction{
		ProductID: auctioned.ID, Status: domain.AuctionProceeding, EndAt: time.Now(),
	})
	require.ErrorIs(t, err, store.ErrConflict)
}

func TestPostgresStore_ThumbnailIsLowestImageID(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	owner := createUser(t, s, "pics")

	withImages := createProduct(t, s, owner, "many", domain.CategorySports, 1000, 3)
	createProduct(t, s, owner, "none", domain.CategorySports, 2000, 0)

	images, err := s.ListImages(ctx, withImages.ID)
	require.NoError(t, err)
	require.Len(t, images, 3)

	page := listCategory(t, s, domain.CategorySports, nil, store.Pageable{Sort: store.SortCheap})
	require.Len(t, page.Content, 2)
	require.NotNil(t, page.Content[0].Thumbnail)
	assert.Equal(t, images[0].CDNPath, *page.Content[0].Thumbnail)
	assert.Nil(t, page.Content[1].Thumbnail)

	paths, err := s.ListImagePaths(ctx, withImages.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{images[0].CDNPath, images[1].CDNPath, images[2].CDNPath}, paths)
}

func TestPostgresStore_LikeCountAndViewerFlag(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	owner := createUser(t, s, "maker")
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	liked := createProduct(t, s, owner, "liked", domain.CategoryFashion, 5000, 1)
	plain := createProduct(t, s, owner, "plain", domain.CategoryFashion, 1000, 1)

	for _, u := range []*domain.User{alice, bob} {
		on, err := s.ToggleLike(ctx, liked.ID, u.ID)
		require.NoError(t, err)
		assert.True(t, on)
	}

	tests := []struct {
		name      string
		viewer    *int64
		wantLiked bool
	}{
		{name: "anonymous viewer", viewer: nil, wantLiked: false},
		{name: "liker", viewer: &alice.ID, wantLiked: true},
		{name: "owner has not liked", viewer: &owner.ID, wantLiked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := listCategory(t, s, domain.CategoryFashion, tt.viewer, store.Pageable{Sort: store.SortPopularity})
			require.Len(t, page.Content, 2)

			assert.Equal(t, liked.ID, page.Content[0].ID, "popularity puts most liked first")
			assert.Equal(t, int64(2), page.Content[0].LikeCount)
			assert.Equal(t, tt.wantLiked, page.Content[0].IsLiked)

			assert.Equal(t, plain.ID, page.Content[1].ID)
			assert.Zero(t, page.Content[1].LikeCount)
			assert.False(t, page.Content[1].IsLiked)
		})
	}

	off, err := s.ToggleLike(ctx, liked.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, off)
	n, err := s.CountLikes(ctx, liked.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPostgresStore_OwnerListingUsesRequestingViewer(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	owner := createUser(t, s, "shop")
	fan := createUser(t, s, "fan")

	p := createProduct(t, s, owner, "gadget", domain.CategoryElectronics, 1000, 0)
	_, err := s.ToggleLike(ctx, p.ID, owner.ID)
	require.NoError(t, err)

	q, err := store.OwnerQuery("shop", &fan.ID, store.Pageable{})
	require.NoError(t, err)
	page, err := s.ListProducts(ctx, q)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.False(t, page.Content[0].IsLiked, "owner's own like must not leak to the viewer")
	assert.Equal(t, int64(1), page.Content[0].LikeCount)
}

func TestPostgresStore_PaginationTotalIsStable(t *testing.T) {
	s := setupPostgres(t)
	owner := createUser(t, s, "bulk")
	liker := createUser(t, s, "liker")

	for i := range 7 {
		p := createProduct(t, s, owner, fmt.Sprintf("item%d", i), domain.CategoryOther, 1000+i*100, 2)
		_, err := s.ToggleLike(context.Background(), p.ID, liker.ID)
		require.NoError(t, err)
	}

	var seen []int64
	for page := range 4 {
		got := listCategory(t, s, domain.CategoryOther, &liker.ID, store.Pageable{Page: page, Size: 3})
		assert.LessOrEqual(t, len(got.Content), 3)
		assert.Equal(t, int64(7), got.TotalElements, "page %d", page)
		seen = append(seen, ids(got.Content)...)
	}

	assert.Len(t, seen, 7)
	slices.Sort(seen)
	assert.Len(t, slices.Compact(seen), 7, "pages must not overlap")
}

func TestPostgresStore_CheapIsReverseOfExpensive(t *testing.T) {
	s := setupPostgres(t)
	owner := createUser(t, s, "prices")
	for i, price := range []int{5000, 1000, 3000, 2000, 4000} {
		createProduct(t, s, owner, fmt.Sprintf("p%d", i), domain.CategoryHomeAppliances, price, 0)
	}

	cheap := listCategory(t, s, domain.CategoryHomeAppliances, nil, store.Pageable{Sort: store.SortCheap})
	expensive := listCategory(t, s, domain.CategoryHomeAppliances, nil, store.Pageable{Sort: store.SortExpensive})

	reversed := ids(expensive.Content)
	slices.Reverse(reversed)
	assert.Equal(t, ids(cheap.Content), reversed)
}

func TestPostgresStore_LikedProducts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	owner := createUser(t, s, "vendor")
	buyer := createUser(t, s, "buyer")

	p1 := createProduct(t, s, owner, "Product 1", domain.CategoryBooks, 1000, 0)
	p2 := createProduct(t, s, owner, "Product 2", domain.CategoryBooks, 2000, 0)
	createProduct(t, s, owner, "Product 3", domain.CategoryBooks, 3000, 0)
	for _, p := range []*domain.Product{p1, p2} {
		_, err := s.ToggleLike(ctx, p.ID, buyer.ID)
		require.NoError(t, err)
	}

	q, err := store.LikedQuery(buyer.ID, store.Pageable{Size: 1, Sort: store.SortCheap})
	require.NoError(t, err)
	first, err := s.ListProducts(ctx, q)
	require.NoError(t, err)
	require.Len(t, first.Content, 1)
	assert.Equal(t, "Product 1", first.Content[0].Name)
	assert.True(t, first.Content[0].IsLiked)
	assert.Equal(t, int64(2), first.TotalElements)

	q, err = store.LikedQuery(buyer.ID, store.Pageable{Page: 1, Size: 1, Sort: store.SortCheap})
	require.NoError(t, err)
	second, err := s.ListProducts(ctx, q)
	require.NoError(t, err)
	require.Len(t, second.Content, 1)
	assert.Equal(t, "Product 2", second.Content[0].Name)

	q, err = store.LikedQuery(owner.ID, store.Pageable{})
	require.NoError(t, err)
	empty, err := s.ListProducts(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, empty.Content)
	assert.Zero(t, empty.TotalElements)
}

func TestPostgresStore_GetProductDetails_Missing(t *testing.T) {
	s := setupPostgres(t)

	d, err := s.GetProductDetails(context.Background(), 999_999, nil)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestPostgresStore_UpdateAndDeleteQueueImages(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	owner := createUser(t, s, "editor")
	p := createProduct(t, s, owner, "lamp", domain.CategoryFurniture, 1000, 2)

	p.Name = "desk lamp"
	p.MinPrice = 2000
	require.NoError(t, s.UpdateProduct(ctx, p, nil))

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "desk lamp", got.Name)
	assert.Equal(t, 2000, got.MinPrice)

	replacement := []domain.Image{{CDNPath: "https://cdn.test/new.png", ObjectKey: "products/new.png"}}
	require.NoError(t, s.UpdateProduct(ctx, p, replacement))

	paths, err := s.ListImagePaths(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.test/new.png"}, paths)

	n, err := s.CountPendingImageDeletions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	deleted, err := s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "desk lamp", deleted.Name)

	n, err = s.CountPendingImageDeletions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = s.GetProduct(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.DeleteProduct(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_ImageDeletionQueue(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.EnqueueImageDeletions(ctx, []string{"a.png", "b.png"}))

	jobs, err := s.DequeueImageDeletions(ctx, "w1", 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	again, err := s.DequeueImageDeletions(ctx, "w2", 10)
	require.NoError(t, err)
	assert.Empty(t, again, "claimed rows are not handed out twice")

	require.NoError(t, s.CompleteImageDeletion(ctx, jobs[0].ID, ""))
	require.NoError(t, s.CompleteImageDeletion(ctx, jobs[1].ID, "bucket unavailable"))

	retry, err := s.DequeueImageDeletions(ctx, "w2", 10)
	require.NoError(t, err)
	require.Len(t, retry, 1)
	assert.Equal(t, jobs[1].ObjectKey, retry[0].ObjectKey)
	assert.Equal(t, 2, retry[0].Attempts)
	assert.Equal(t, "bucket unavailable", retry[0].LastError)

	recovered, err := s.RecoverStaleImageDeletions(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)
}

func TestPostgresStore_Users(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := createUser(t, s, "unique")
	got, err := s.GetUserByNickname(ctx, "unique")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "unique", byID.Nickname)

	err = s.CreateUser(ctx, &domain.User{Nickname: "unique", Email: "other@example.com"})
	require.ErrorIs(t, err, store.ErrConflict)

	_, err = s.GetUserByNickname(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}
