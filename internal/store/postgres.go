package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/chzzmarket/market-api/pkg/types"
)

const (
	defaultPoolSize = 10

	// MaxImageDeletionAttempts bounds retries of a queued object removal.
	MaxImageDeletionAttempts = 5

	pgUniqueViolation = "23505"
)

// pgxPool is the subset of *pgxpool.Pool used by PostgresStore.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool pgxPool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A poolSize of zero uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int32) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if poolSize > 0 {
		cfg.MaxConns = poolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func newPostgresStore(pool pgxPool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListProducts runs a listing query. The count statement only runs when the
// fetched page cannot determine the total by itself.
func (s *PostgresStore) ListProducts(
	ctx context.Context,
	q *ProductQuery,
) (domain.Page[domain.ProductListing], error) {
	dataSQL, countSQL, dataArgs, countArgs := q.ToSQL()

	rows, err := s.pool.Query(ctx, dataSQL, dataArgs...)
	if err != nil {
		return domain.Page[domain.ProductListing]{}, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	content := []domain.ProductListing{}
	for rows.Next() {
		var l domain.ProductListing
		if err := rows.Scan(&l.ID, &l.Name, &l.Thumbnail, &l.MinPrice, &l.LikeCount, &l.IsLiked); err != nil {
			return domain.Page[domain.ProductListing]{}, fmt.Errorf("scanning product listing: %w", err)
		}
		content = append(content, l)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.ProductListing]{}, fmt.Errorf("iterating products: %w", err)
	}

	return NewPage(content, q.Pageable, func() (int64, error) {
		var total int64
		if err := s.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return 0, fmt.Errorf("counting products: %w", err)
		}
		return total, nil
	})
}

// GetProductDetails looks a product up by id regardless of auction state.
// ImageURLs is left unset; see ListImagePaths. It returns nil, nil when the
// product does not exist.
func (s *PostgresStore) GetProductDetails(
	ctx context.Context,
	productID int64,
	viewerID *int64,
) (*domain.ProductDetails, error) {
	d := &domain.ProductDetails{}
	err := s.pool.QueryRow(ctx, queryGetProductDetails, productID, viewerArg(viewerID)).Scan(
		&d.ID, &d.Name, &d.OwnerNickname, &d.MinPrice, &d.CreatedAt,
		&d.Description, &d.Category, &d.LikeCount, &d.IsLiked, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying product details: %w", err)
	}
	return d, nil
}

// ListImagePaths returns the CDN paths of a product's images, lowest id first.
func (s *PostgresStore) ListImagePaths(ctx context.Context, productID int64) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListImagePaths, productID)
	if err != nil {
		return nil, fmt.Errorf("querying image paths: %w", err)
	}

	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning image paths: %w", err)
	}
	if paths == nil {
		paths = []string{}
	}
	return paths, nil
}

// ListImages returns a product's images, lowest id first.
func (s *PostgresStore) ListImages(ctx context.Context, productID int64) ([]domain.Image, error) {
	rows, err := s.pool.Query(ctx, queryListImages, productID)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []domain.Image
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.CDNPath, &img.ObjectKey); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// CreateProduct inserts a product and its images in one transaction. The
// generated ids are written back to p and images.
func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product, images []domain.Image) error {
	return inTx(ctx, s.pool, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{
			"user_id":     p.UserID,
			"name":        p.Name,
			"description": p.Description,
			"category":    string(p.Category),
			"min_price":   p.MinPrice,
		}
		if err := tx.QueryRow(ctx, queryCreateProduct, args).Scan(
			&p.ID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("inserting product: %w", err)
		}
		return insertImages(ctx, tx, p.ID, images)
	})
}

// GetProduct retrieves a product by id. It returns ErrNotFound when absent.
func (s *PostgresStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p := &domain.Product{}
	err := s.pool.QueryRow(ctx, queryGetProduct, id).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Category,
		&p.MinPrice, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying product: %w", err)
	}
	return p, nil
}

// UpdateProduct saves the product fields and, when images is non-nil,
// replaces the product's images. Object keys of replaced images are queued
// for deletion in the same transaction.
func (s *PostgresStore) UpdateProduct(ctx context.Context, p *domain.Product, images []domain.Image) error {
	return inTx(ctx, s.pool, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"category":    string(p.Category),
			"min_price":   p.MinPrice,
		}
		err := tx.QueryRow(ctx, queryUpdateProduct, args).Scan(&p.CreatedAt, &p.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("product %d: %w", p.ID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("updating product: %w", err)
		}

		if images == nil {
			return nil
		}

		if _, err := tx.Exec(ctx, queryEnqueueProductImages, p.ID); err != nil {
			return fmt.Errorf("queueing replaced images: %w", err)
		}
		if _, err := tx.Exec(ctx, queryDeleteProductImages, p.ID); err != nil {
			return fmt.Errorf("deleting replaced images: %w", err)
		}
		return insertImages(ctx, tx, p.ID, images)
	})
}

// DeleteProduct removes a product; images, likes and auction rows cascade.
// The image object keys are queued for deletion.
func (s *PostgresStore) DeleteProduct(ctx context.Context, id int64) (*domain.DeletedProduct, error) {
	d := &domain.DeletedProduct{}
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, queryLockProductSummary, id).Scan(&d.ID, &d.Name, &d.LikeCount)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("locking product: %w", err)
		}

		if _, err := tx.Exec(ctx, queryEnqueueProductImages, id); err != nil {
			return fmt.Errorf("queueing product images: %w", err)
		}
		if _, err := tx.Exec(ctx, queryDeleteProduct, id); err != nil {
			return fmt.Errorf("deleting product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ToggleLike removes the viewer's like when present, otherwise adds it.
// It reports whether the product is liked afterwards. Toggles by the same
// user are serialized on the user row so concurrent calls alternate.
func (s *PostgresStore) ToggleLike(ctx context.Context, productID, userID int64) (bool, error) {
	var liked bool
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, queryLockLiker, userID); err != nil {
			return fmt.Errorf("locking user: %w", err)
		}

		tag, err := tx.Exec(ctx, queryDeleteLike, productID, userID)
		if err != nil {
			return fmt.Errorf("removing like: %w", err)
		}
		if tag.RowsAffected() > 0 {
			liked = false
			return nil
		}

		if _, err := tx.Exec(ctx, queryInsertLike, productID, userID); err != nil {
			return fmt.Errorf("inserting like: %w", err)
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// CountLikes returns the number of likes on a product.
func (s *PostgresStore) CountLikes(ctx context.Context, productID int64) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, queryCountLikes, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting likes: %w", err)
	}
	return n, nil
}

// AuctionExists reports whether the product has been converted to an auction.
func (s *PostgresStore) AuctionExists(ctx context.Context, productID int64) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryAuctionExists, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking auction: %w", err)
	}
	return exists, nil
}

// CreateAuction inserts an auction. It returns ErrConflict when the product
// already has one.
func (s *PostgresStore) CreateAuction(ctx context.Context, a *domain.Auction) error {
	err := s.pool.QueryRow(ctx, queryCreateAuction, a.ProductID, string(a.Status), a.EndAt).Scan(
		&a.ID, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("auction for product %d: %w", a.ProductID, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("inserting auction: %w", err)
	}
	return nil
}

// CreateUser inserts a user. It returns ErrConflict when the nickname or
// email is taken.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	err := s.pool.QueryRow(ctx, queryCreateUser, u.Nickname, u.Email).Scan(&u.ID, &u.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("user %q: %w", u.Nickname, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id. It returns ErrNotFound when absent.
func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUser(ctx, queryGetUser, id)
}

// GetUserByNickname retrieves a user by nickname. It returns ErrNotFound
// when absent.
func (s *PostgresStore) GetUserByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	return s.getUser(ctx, queryGetUserByNickname, nickname)
}

func (s *PostgresStore) getUser(ctx context.Context, query string, key any) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, query, key).Scan(&u.ID, &u.Nickname, &u.Email, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %v: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

// EnqueueImageDeletions queues object keys for removal from image storage.
func (s *PostgresStore) EnqueueImageDeletions(ctx context.Context, objectKeys []string) error {
	if len(objectKeys) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, key := range objectKeys {
		batch.Queue(queryEnqueueImageDeletion, key)
	}

	return inTx(ctx, s.pool, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("enqueueing image deletions: %w", err)
		}
		return nil
	})
}

// DequeueImageDeletions claims up to batchSize unclaimed rows for workerID.
// Rows locked by another worker are skipped.
func (s *PostgresStore) DequeueImageDeletions(
	ctx context.Context,
	workerID string,
	batchSize int,
) ([]domain.ImageDeletion, error) {
	rows, err := s.pool.Query(ctx, queryDequeueImageDeletions, workerID, batchSize, MaxImageDeletionAttempts)
	if err != nil {
		return nil, fmt.Errorf("dequeueing image deletions: %w", err)
	}
	defer rows.Close()

	var jobs []domain.ImageDeletion
	for rows.Next() {
		var j domain.ImageDeletion
		if err := rows.Scan(&j.ID, &j.ObjectKey, &j.Attempts, &j.LastError, &j.EnqueuedAt); err != nil {
			return nil, fmt.Errorf("scanning image deletion: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// CompleteImageDeletion removes a finished row. A non-empty errText records
// the failure and releases the claim so a later sweep retries it.
func (s *PostgresStore) CompleteImageDeletion(ctx context.Context, id int64, errText string) error {
	var err error
	if errText == "" {
		_, err = s.pool.Exec(ctx, queryDeleteImageDeletion, id)
	} else {
		_, err = s.pool.Exec(ctx, queryFailImageDeletion, id, errText)
	}
	if err != nil {
		return fmt.Errorf("completing image deletion: %w", err)
	}
	return nil
}

// CountPendingImageDeletions returns the number of rows still eligible for
// a retry.
func (s *PostgresStore) CountPendingImageDeletions(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountPendingImageDeletions, MaxImageDeletionAttempts).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting pending image deletions: %w", err)
	}
	return n, nil
}

// RecoverStaleImageDeletions releases claims older than olderThan, left by
// workers that stopped before completing them.
func (s *PostgresStore) RecoverStaleImageDeletions(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	tag, err := s.pool.Exec(ctx, queryRecoverStaleImageDeletions, cutoff)
	if err != nil {
		return 0, fmt.Errorf("recovering stale image deletions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// insertImages stores image rows in slice order and writes back their ids.
func insertImages(ctx context.Context, tx pgx.Tx, productID int64, images []domain.Image) error {
	for i := range images {
		images[i].ProductID = productID
		if err := tx.QueryRow(ctx, queryInsertImage,
			productID, images[i].CDNPath, images[i].ObjectKey,
		).Scan(&images[i].ID); err != nil {
			return fmt.Errorf("inserting image: %w", err)
		}
	}
	return nil
}

// inTx runs fn inside a transaction, committing on success and rolling back
// on error.
func inTx(ctx context.Context, db txBeginner, fn func(pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rolling back: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// viewerArg binds an absent viewer as SQL NULL, which never matches a like.
func viewerArg(viewerID *int64) any {
	if viewerID == nil {
		return nil
	}
	return *viewerID
}
