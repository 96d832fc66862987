package store

// Product listing queries. The listing statements themselves are rendered
// by ProductQuery.ToSQL.
const (
	queryGetProductDetails = `
		SELECT p.id, p.name, u.nickname, p.min_price, p.created_at, p.description, p.category,
			(SELECT COUNT(*) FROM likes lc WHERE lc.product_id = p.id),
			EXISTS (SELECT 1 FROM likes lv WHERE lv.product_id = p.id AND lv.user_id = $2),
			p.updated_at
		FROM products p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`

	queryListImagePaths = `
		SELECT cdn_path FROM images
		WHERE product_id = $1
		ORDER BY id ASC`

	queryListImages = `
		SELECT id, product_id, cdn_path, object_key FROM images
		WHERE product_id = $1
		ORDER BY id ASC`
)

// Product queries.
const (
	queryCreateProduct = `
		INSERT INTO products (user_id, name, description, category, min_price)
		VALUES (@user_id, @name, @description, @category, @min_price)
		RETURNING id, created_at, updated_at`

	queryGetProduct = `
		SELECT id, user_id, name, description, category, min_price, created_at, updated_at
		FROM products
		WHERE id = $1`

	queryUpdateProduct = `
		UPDATE products
		SET name = @name,
			description = @description,
			category = @category,
			min_price = @min_price,
			updated_at = now()
		WHERE id = @id
		RETURNING created_at, updated_at`

	queryLockProductSummary = `
		SELECT p.id, p.name, (SELECT COUNT(*) FROM likes lc WHERE lc.product_id = p.id)
		FROM products p
		WHERE p.id = $1
		FOR UPDATE`

	queryDeleteProduct = `DELETE FROM products WHERE id = $1`

	queryInsertImage = `
		INSERT INTO images (product_id, cdn_path, object_key)
		VALUES ($1, $2, $3)
		RETURNING id`

	queryEnqueueProductImages = `
		INSERT INTO pending_image_deletions (object_key)
		SELECT object_key FROM images WHERE product_id = $1
		ORDER BY id`

	queryDeleteProductImages = `DELETE FROM images WHERE product_id = $1`
)

// Like queries.
const (
	queryLockLiker = `SELECT id FROM users WHERE id = $1 FOR NO KEY UPDATE`

	queryDeleteLike = `DELETE FROM likes WHERE product_id = $1 AND user_id = $2`

	queryInsertLike = `
		INSERT INTO likes (product_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (product_id, user_id) DO NOTHING`

	queryCountLikes = `SELECT COUNT(*) FROM likes WHERE product_id = $1`
)

// Auction queries.
const (
	queryAuctionExists = `SELECT EXISTS (SELECT 1 FROM auctions WHERE product_id = $1)`

	queryCreateAuction = `
		INSERT INTO auctions (product_id, status, end_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id) DO NOTHING
		RETURNING id, created_at`
)

// User queries.
const (
	queryCreateUser = `
		INSERT INTO users (nickname, email)
		VALUES ($1, $2)
		RETURNING id, created_at`

	queryGetUser = `
		SELECT id, nickname, email, created_at FROM users WHERE id = $1`

	queryGetUserByNickname = `
		SELECT id, nickname, email, created_at FROM users WHERE nickname = $1`
)

// Image deletion queue queries.
const (
	queryEnqueueImageDeletion = `
		INSERT INTO pending_image_deletions (object_key) VALUES ($1)`

	queryDequeueImageDeletions = `
		WITH claimed AS (
			SELECT id FROM pending_image_deletions
			WHERE claimed_at IS NULL AND attempts < $3
			ORDER BY enqueued_at ASC, id ASC
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		UPDATE pending_image_deletions
		SET claimed_at = now(), claimed_by = $1, attempts = attempts + 1
		FROM claimed
		WHERE pending_image_deletions.id = claimed.id
		RETURNING pending_image_deletions.id, pending_image_deletions.object_key,
		          pending_image_deletions.attempts, COALESCE(pending_image_deletions.last_error, ''),
		          pending_image_deletions.enqueued_at`

	queryDeleteImageDeletion = `DELETE FROM pending_image_deletions WHERE id = $1`

	queryFailImageDeletion = `
		UPDATE pending_image_deletions
		SET last_error = $2, claimed_at = NULL, claimed_by = NULL
		WHERE id = $1`

	queryCountPendingImageDeletions = `
		SELECT COUNT(*) FROM pending_image_deletions WHERE attempts < $1`

	queryRecoverStaleImageDeletions = `
		UPDATE pending_image_deletions
		SET claimed_at = NULL, claimed_by = NULL
		WHERE claimed_at IS NOT NULL AND claimed_at < $1`
)
