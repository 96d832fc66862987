package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/chzzmarket/market-api/internal/auth"
	"github.com/chzzmarket/market-api/internal/catalog"
	"github.com/chzzmarket/market-api/internal/store"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

// imagesField is the multipart field carrying product image files.
const imagesField = "images"

// ProductService is the product behavior the handlers depend on.
// *catalog.Catalog satisfies it.
type ProductService interface {
	ListByCategory(ctx context.Context, category domain.Category, viewerID *int64, p store.Pageable) (domain.Page[domain.ProductListing], error)
	ListByOwner(ctx context.Context, nickname string, viewerID *int64, p store.Pageable) (domain.Page[domain.ProductListing], error)
	ListLiked(ctx context.Context, userID int64, p store.Pageable) (domain.Page[domain.ProductListing], error)
	GetDetails(ctx context.Context, productID int64, viewerID *int64) (*domain.ProductDetails, error)
	CreateProduct(ctx context.Context, userID int64, in catalog.ProductInput, uploads []domain.ImageUpload) (*domain.Product, error)
	UpdateProduct(ctx context.Context, userID, productID int64, in catalog.ProductInput, uploads []domain.ImageUpload) (*domain.Product, error)
	DeleteProduct(ctx context.Context, userID, productID int64) (*domain.DeletedProduct, error)
	ToggleLike(ctx context.Context, userID, productID int64) (*domain.LikeState, error)
	StartAuction(ctx context.Context, userID, productID int64) (*domain.Auction, error)
}

var _ ProductService = (*catalog.Catalog)(nil)

// defaultMaxUploadBytes bounds a multipart product form.
const defaultMaxUploadBytes = 60 << 20

// ProductsConfig holds request limits of the product endpoints.
type ProductsConfig struct {
	// DefaultPageSize applies when a request omits the page size.
	DefaultPageSize int
	// MaxPageSize is the largest page size a request may ask for.
	MaxPageSize int
	// MaxUploadBytes bounds the body of create and update requests.
	MaxUploadBytes int64
}

// ProductsHandler handles product listing and product command endpoints.
type ProductsHandler struct {
	products ProductService
	cfg      ProductsConfig
}

// NewProductsHandler creates a new ProductsHandler. Zero config fields take
// their defaults.
func NewProductsHandler(s ProductService, cfg ProductsConfig) *ProductsHandler {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = store.DefaultPageSize
	}
	if cfg.MaxPageSize <= 0 || cfg.MaxPageSize > store.MaxPageSize {
		cfg.MaxPageSize = store.MaxPageSize
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	return &ProductsHandler{products: s, cfg: cfg}
}

// --- Input/Output types ---

// PageParams selects one page of a listing.
type PageParams struct {
	Page int    `query:"page" doc:"Zero-based page index"                                                          minimum:"0" maximum:"2147483647"`
	Size int    `query:"size" doc:"Page size (server default when omitted)"                                         minimum:"0"`
	Sort string `query:"sort" doc:"Sort key: product-newest, product-cheap, product-expensive, product-popularity"`
}

// ListProductsInput is the input for listing products in a category.
type ListProductsInput struct {
	Category string `query:"category" doc:"Product category, e.g. ELECTRONICS" required:"true"`
	PageParams
}

// ListOwnerProductsInput is the input for listing the products of one user.
type ListOwnerProductsInput struct {
	Nickname string `path:"nickname" doc:"Owner nickname"`
	PageParams
}

// ListLikedProductsInput is the input for listing the products the caller liked.
type ListLikedProductsInput struct {
	PageParams
}

// ProductPageOutput is one page of product listings.
type ProductPageOutput struct {
	Body domain.Page[domain.ProductListing]
}

// ProductIDInput addresses a single product.
type ProductIDInput struct {
	ID int64 `path:"id" doc:"Product ID" minimum:"1"`
}

// GetProductOutput is the product detail response.
type GetProductOutput struct {
	Body domain.ProductDetails
}

// CreateProductInput is a multipart form with the fields name, description,
// category and min_price plus one or more images files.
type CreateProductInput struct {
	RawBody multipart.Form
}

// UpdateProductInput is CreateProductInput addressed to an existing product.
// Omitting images keeps the current ones.
type UpdateProductInput struct {
	ID      int64 `path:"id" doc:"Product ID" minimum:"1"`
	RawBody multipart.Form
}

// ProductOutput is the response for product writes.
type ProductOutput struct {
	Body domain.Product
}

// DeleteProductOutput is the response for deleting a product.
type DeleteProductOutput struct {
	Body domain.DeletedProduct
}

// LikeOutput is the response for toggling a like.
type LikeOutput struct {
	Body domain.LikeState
}

// AuctionOutput is the response for moving a product to auction.
type AuctionOutput struct {
	Body domain.Auction
}

// --- Handlers ---

// ListProducts returns one page of pre-registered products in a category.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ProductPageOutput, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	page, err := h.products.ListByCategory(ctx, category, auth.ViewerFrom(ctx), h.pageable(input.PageParams))
	if err != nil {
		return nil, productError("listing products", err)
	}
	return &ProductPageOutput{Body: page}, nil
}

// ListOwnerProducts returns one page of the pre-registered products of a user.
func (h *ProductsHandler) ListOwnerProducts(
	ctx context.Context,
	input *ListOwnerProductsInput,
) (*ProductPageOutput, error) {
	page, err := h.products.ListByOwner(ctx, input.Nickname, auth.ViewerFrom(ctx), h.pageable(input.PageParams))
	if err != nil {
		return nil, productError("listing owner products", err)
	}
	return &ProductPageOutput{Body: page}, nil
}

// ListLikedProducts returns one page of the products the caller liked.
func (h *ProductsHandler) ListLikedProducts(
	ctx context.Context,
	input *ListLikedProductsInput,
) (*ProductPageOutput, error) {
	userID, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	page, err := h.products.ListLiked(ctx, userID, h.pageable(input.PageParams))
	if err != nil {
		return nil, productError("listing liked products", err)
	}
	return &ProductPageOutput{Body: page}, nil
}

// GetProduct returns the detail view of a product.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *ProductIDInput,
) (*GetProductOutput, error) {
	details, err := h.products.GetDetails(ctx, input.ID, auth.ViewerFrom(ctx))
	if err != nil {
		return nil, productError("product lookup", err)
	}
	if details == nil {
		return nil, huma.Error404NotFound("product not found")
	}
	return &GetProductOutput{Body: *details}, nil
}

// CreateProduct registers a new product for the caller.
func (h *ProductsHandler) CreateProduct(
	ctx context.Context,
	input *CreateProductInput,
) (*ProductOutput, error) {
	userID, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	in, err := productInput(&input.RawBody)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	uploads, closeAll, err := imageUploads(&input.RawBody)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	defer closeAll()

	p, err := h.products.CreateProduct(ctx, userID, in, uploads)
	if err != nil {
		return nil, productError("creating product", err)
	}
	return &ProductOutput{Body: *p}, nil
}

// UpdateProduct edits a pre-registered product owned by the caller.
func (h *ProductsHandler) UpdateProduct(
	ctx context.Context,
	input *UpdateProductInput,
) (*ProductOutput, error) {
	userID, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	in, err := productInput(&input.RawBody)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	uploads, closeAll, err := imageUploads(&input.RawBody)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	defer closeAll()

	p, err := h.products.UpdateProduct(ctx, userID, input.ID, in, uploads)
	if err != nil {
		return nil, productError("updating product", err)
	}
	return &ProductOutput{Body: *p}, nil
}

// DeleteProduct removes a pre-registered product owned by the caller.
func (h *ProductsHandler) DeleteProduct(
	ctx context.Context,
	input *ProductIDInput,
) (*DeleteProductOutput, error) {
	userID, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := h.products.DeleteProduct(ctx, userID, input.ID)
	if err != nil {
		return nil, productError("deleting product", err)
	}
	return &DeleteProductOutput{Body: *deleted}, nil
}

// ToggleLike likes or unlikes a pre-registered product for the caller.
func (h *ProductsHandler) ToggleLike(
	ctx context.Context,
	input *ProductIDInput,
) (*LikeOutput, error) {
	userID, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	state, err := h.products.ToggleLike(ctx, userID, input.ID)
	if err != nil {
		return nil, productError("toggling like", err)
	}
	return &LikeOutput{Body: *state}, nil
}

// StartAuction ends pre-registration of a product owned by the caller.
func (h *ProductsHandler) StartAuction(
	ctx context.Context,
	input *ProductIDInput,
) (*AuctionOutput, error) {
	userID, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	a, err := h.products.StartAuction(ctx, userID, input.ID)
	if err != nil {
		return nil, productError("starting auction", err)
	}
	return &AuctionOutput{Body: *a}, nil
}

func (h *ProductsHandler) pageable(in PageParams) store.Pageable {
	size := in.Size
	if size <= 0 {
		size = h.cfg.DefaultPageSize
	}
	if size > h.cfg.MaxPageSize {
		size = h.cfg.MaxPageSize
	}
	return store.Pageable{Page: in.Page, Size: size, Sort: strings.TrimSpace(in.Sort)}
}

func requireViewer(ctx context.Context) (int64, error) {
	id := auth.ViewerFrom(ctx)
	if id == nil {
		return 0, huma.Error401Unauthorized("authentication required")
	}
	return *id, nil
}

// productError maps catalog and store errors to HTTP errors.
func productError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidSortKey),
		errors.Is(err, catalog.ErrInvalidCategory),
		errors.Is(err, catalog.ErrInvalidProduct),
		errors.Is(err, catalog.ErrInvalidImage):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, catalog.ErrUnauthenticated):
		return huma.Error401Unauthorized("authentication required")
	case errors.Is(err, catalog.ErrForbidden):
		return huma.Error403Forbidden("not the product owner")
	case errors.Is(err, catalog.ErrProductNotFound):
		return huma.Error404NotFound("product not found")
	case errors.Is(err, catalog.ErrUserNotFound):
		return huma.Error404NotFound("user not found")
	case errors.Is(err, catalog.ErrAlreadyInAuction):
		return huma.Error409Conflict("product is already in auction")
	default:
		return huma.Error500InternalServerError(op + " failed: " + err.Error())
	}
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func productInput(form *multipart.Form) (catalog.ProductInput, error) {
	in := catalog.ProductInput{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
	}

	raw := formValue(form, "category")
	if c, err := domain.ParseCategory(raw); err == nil {
		in.Category = c
	} else {
		in.Category = domain.Category(raw)
	}

	if v := formValue(form, "min_price"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return catalog.ProductInput{}, errors.New("min_price must be an integer")
		}
		in.MinPrice = n
	}
	return in, nil
}

// imageUploads opens every image file of the form. The returned func closes
// them and must be called once the uploads are consumed.
func imageUploads(form *multipart.Form) ([]domain.ImageUpload, func(), error) {
	headers := form.File[imagesField]
	uploads := make([]domain.ImageUpload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, errors.New("reading image " + fh.Filename + ": " + err.Error())
		}
		files = append(files, f)
		uploads = append(uploads, domain.ImageUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, closeAll, nil
}

// bearerAuth is the security requirement of authenticated operations.
var bearerAuth = []map[string][]string{{"bearer": {}}}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products by category",
		Description: "Returns one page of pre-registered products in a category. Products already in auction are excluded.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadRequest},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get product details",
		Description: "Returns the detail view of a product including its image URLs.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID: "list-owner-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{nickname}/products",
		Summary:     "List products of a user",
		Description: "Returns one page of the pre-registered products of the user with the given nickname.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.ListOwnerProducts)

	huma.Register(api, huma.Operation{
		OperationID: "list-liked-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/me/likes",
		Summary:     "List liked products",
		Description: "Returns one page of the pre-registered products the caller liked.",
		Tags:        []string{"products"},
		Security:    bearerAuth,
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized},
	}, h.ListLikedProducts)

	huma.Register(api, huma.Operation{
		OperationID:   "create-product",
		Method:        http.MethodPost,
		Path:          "/api/v1/products",
		Summary:       "Create a product",
		Description:   "Registers a product from a multipart form with name, description, category, min_price and images.",
		Tags:          []string{"products"},
		Security:      bearerAuth,
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  h.cfg.MaxUploadBytes,
		Errors:        []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound},
	}, h.CreateProduct)

	huma.Register(api, huma.Operation{
		OperationID:  "update-product",
		Method:       http.MethodPut,
		Path:         "/api/v1/products/{id}",
		Summary:      "Update a product",
		Description:  "Edits a pre-registered product. Sending images replaces all current images.",
		Tags:         []string{"products"},
		Security:     bearerAuth,
		MaxBodyBytes: h.cfg.MaxUploadBytes,
		Errors: []int{
			http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
			http.StatusNotFound, http.StatusConflict,
		},
	}, h.UpdateProduct)

	huma.Register(api, huma.Operation{
		OperationID: "delete-product",
		Method:      http.MethodDelete,
		Path:        "/api/v1/products/{id}",
		Summary:     "Delete a product",
		Tags:        []string{"products"},
		Security:    bearerAuth,
		Errors: []int{
			http.StatusUnauthorized, http.StatusForbidden,
			http.StatusNotFound, http.StatusConflict,
		},
	}, h.DeleteProduct)

	huma.Register(api, huma.Operation{
		OperationID: "toggle-like",
		Method:      http.MethodPost,
		Path:        "/api/v1/products/{id}/likes",
		Summary:     "Like or unlike a product",
		Tags:        []string{"products"},
		Security:    bearerAuth,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusConflict},
	}, h.ToggleLike)

	huma.Register(api, huma.Operation{
		OperationID:   "start-auction",
		Method:        http.MethodPost,
		Path:          "/api/v1/products/{id}/auction",
		Summary:       "Start an auction",
		Description:   "Moves a pre-registered product to auction. The product leaves every listing.",
		Tags:          []string{"products"},
		Security:      bearerAuth,
		DefaultStatus: http.StatusCreated,
		Errors: []int{
			http.StatusUnauthorized, http.StatusForbidden,
			http.StatusNotFound, http.StatusConflict,
		},
	}, h.StartAuction)
}
