package handlers_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chzzmarket/market-api/internal/api/handlers"
	handlerMocks "github.com/chzzmarket/market-api/internal/api/handlers/mocks"
	mw "github.com/chzzmarket/market-api/internal/api/middleware"
	"github.com/chzzmarket/market-api/internal/auth"
	"github.com/chzzmarket/market-api/internal/catalog"
	"github.com/chzzmarket/market-api/internal/store"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	viewerID   = int64(42)
)

func newProductsAPI(t *testing.T, cfg handlers.ProductsConfig) (humatest.TestAPI, *handlerMocks.MockProductService, string) {
	t.Helper()

	tokens, err := auth.NewTokens(testSecret, "market-api")
	require.NoError(t, err)
	token, err := tokens.Issue(viewerID)
	require.NoError(t, err)

	ms := handlerMocks.NewMockProductService(t)
	h := handlers.NewProductsHandler(ms, cfg)

	_, api := humatest.New(t)
	api.UseMiddleware(mw.Viewer(api, tokens))
	handlers.RegisterProductRoutes(api, h)

	return api, ms, "Authorization: Bearer " + token
}

func isViewer(id int64) any {
	return mock.MatchedBy(func(v *int64) bool { return v != nil && *v == id })
}

var anonymous = (*int64)(nil)

func samplePage() domain.Page[domain.ProductListing] {
	thumb := "https://cdn.example.com/products/a.png"
	return domain.Page[domain.ProductListing]{
		Content: []domain.ProductListing{
			{ID: 7, Name: "Mechanical keyboard", Thumbnail: &thumb, MinPrice: 45000, LikeCount: 3},
		},
		PageNumber:    0,
		PageSize:      20,
		TotalElements: 1,
		TotalPages:    1,
	}
}

func TestProductsHandler_ListProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		auth       bool
		setupMock  func(*handlerMocks.MockProductService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "anonymous listing with defaults",
			path: "/api/v1/products?category=ELECTRONICS",
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ListByCategory(mock.Anything, domain.CategoryElectronics, anonymous,
						store.Pageable{Page: 0, Size: 20}).
					Return(samplePage(), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"product_name":"Mechanical keyboard"`,
		},
		{
			name: "viewer, lower case category and sort",
			path: "/api/v1/products?category=electronics&page=2&size=5&sort=product-cheap",
			auth: true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ListByCategory(mock.Anything, domain.CategoryElectronics, isViewer(viewerID),
						store.Pageable{Page: 2, Size: 5, Sort: store.SortCheap}).
					Return(samplePage(), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_elements":1`,
		},
		{
			name: "size clamped to configured max",
			path: "/api/v1/products?category=OTHER&size=500",
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ListByCategory(mock.Anything, domain.CategoryOther, anonymous,
						store.Pageable{Page: 0, Size: 50}).
					Return(domain.Page[domain.ProductListing]{Content: []domain.ProductListing{}, PageSize: 50}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"content":[]`,
		},
		{
			name:       "unknown category",
			path:       "/api/v1/products?category=CARS",
			setupMock:  func(*handlerMocks.MockProductService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown category`,
		},
		{
			name:       "category is required",
			path:       "/api/v1/products",
			setupMock:  func(*handlerMocks.MockProductService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "page beyond the last addressable page",
			path:       "/api/v1/products?category=OTHER&page=184467440737095516&size=100",
			setupMock:  func(*handlerMocks.MockProductService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid sort key",
			path: "/api/v1/products?category=OTHER&sort=price",
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ListByCategory(mock.Anything, domain.CategoryOther, anonymous, mock.Anything).
					Return(domain.Page[domain.ProductListing]{}, fmt.Errorf("%w: %q", store.ErrInvalidSortKey, "price")).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid sort key`,
		},
		{
			name: "store error",
			path: "/api/v1/products?category=OTHER",
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ListByCategory(mock.Anything, domain.CategoryOther, anonymous, mock.Anything).
					Return(domain.Page[domain.ProductListing]{}, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing products failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms, bearer := newProductsAPI(t, handlers.ProductsConfig{MaxPageSize: 50})
			tt.setupMock(ms)

			var args []any
			if tt.auth {
				args = append(args, bearer)
			}
			resp := api.Get(tt.path, args...)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestProductsHandler_ListOwnerProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		auth       bool
		setupMock  func(*handlerMocks.MockProductService)
		wantStatus int
	}{
		{
			name: "anonymous viewer",
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ListByOwner(mock.Anything, "seller", anonymous, store.Pageable{Size: 20}).
					Return(samplePage(), nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "liked flag follows the caller",
			auth: true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ListByOwner(mock.Anything, "seller", isViewer(viewerID), store.Pageable{Size: 20}).
					Return(samplePage(), nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "user not found",
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ListByOwner(mock.Anything, "seller", anonymous, mock.Anything).
					Return(domain.Page[domain.ProductListing]{}, catalog.ErrUserNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms, bearer := newProductsAPI(t, handlers.ProductsConfig{})
			tt.setupMock(ms)

			var args []any
			if tt.auth {
				args = append(args, bearer)
			}
			resp := api.Get("/api/v1/users/seller/products", args...)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestProductsHandler_ListLikedProducts(t *testing.T) {
	t.Parallel()

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()

		api, _, _ := newProductsAPI(t, handlers.ProductsConfig{})
		resp := api.Get("/api/v1/users/me/likes")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("lists the caller's likes", func(t *testing.T) {
		t.Parallel()

		api, ms, bearer := newProductsAPI(t, handlers.ProductsConfig{DefaultPageSize: 10})
		ms.EXPECT().
			ListLiked(mock.Anything, viewerID, store.Pageable{Size: 10, Sort: store.SortPopularity}).
			Return(samplePage(), nil).
			Once()

		resp := api.Get("/api/v1/users/me/likes?sort=product-popularity", bearer)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"product_id":7`)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		t.Parallel()

		api, _, _ := newProductsAPI(t, handlers.ProductsConfig{})
		resp := api.Get("/api/v1/users/me/likes", "Authorization: Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestProductsHandler_GetProduct(t *testing.T) {
	t.Parallel()

	details := &domain.ProductDetails{
		ID:            7,
		Name:          "Mechanical keyboard",
		OwnerNickname: "seller",
		MinPrice:      45000,
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Category:      domain.CategoryElectronics,
		LikeCount:     3,
		IsLiked:       true,
		ImageURLs:     []string{"https://cdn.example.com/products/a.png"},
	}

	tests := []struct {
		name       string
		path       string
		auth       bool
		setupMock  func(*handlerMocks.MockProductService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			path: "/api/v1/products/7",
			auth: true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					GetDetails(mock.Anything, int64(7), isViewer(viewerID)).
					Return(details, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"image_urls":["https://cdn.example.com/products/a.png"]`,
		},
		{
			name: "absent product is not found",
			path: "/api/v1/products/8",
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					GetDetails(mock.Anything, int64(8), anonymous).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `product not found`,
		},
		{
			name: "lookup error",
			path: "/api/v1/products/9",
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					GetDetails(mock.Anything, int64(9), anonymous).
					Return(nil, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "non numeric id",
			path:       "/api/v1/products/abc",
			setupMock:  func(*handlerMocks.MockProductService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms, bearer := newProductsAPI(t, handlers.ProductsConfig{})
			tt.setupMock(ms)

			var args []any
			if tt.auth {
				args = append(args, bearer)
			}
			resp := api.Get(tt.path, args...)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

type formFile struct {
	name        string
	contentType string
	data        []byte
}

func productForm(t *testing.T, fields map[string]string, files ...formFile) (string, io.Reader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return "Content-Type: " + w.FormDataContentType(), &buf
}

func TestProductsHandler_CreateProduct(t *testing.T) {
	t.Parallel()

	png := formFile{name: "front.png", contentType: "image/png", data: []byte("\x89PNG fake")}
	fields := map[string]string{
		"name":        "Mechanical keyboard",
		"description": "Brown switches",
		"category":    "electronics",
		"min_price":   "45000",
	}
	wantInput := catalog.ProductInput{
		Name:        "Mechanical keyboard",
		Description: "Brown switches",
		Category:    domain.CategoryElectronics,
		MinPrice:    45000,
	}

	tests := []struct {
		name       string
		auth       bool
		fields     map[string]string
		files      []formFile
		setupMock  func(*handlerMocks.MockProductService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "created",
			auth:   true,
			fields: fields,
			files:  []formFile{png},
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					CreateProduct(mock.Anything, viewerID, wantInput,
						mock.MatchedBy(func(u []domain.ImageUpload) bool {
							if len(u) != 1 || u[0].Name != "front.png" || u[0].ContentType != "image/png" {
								return false
							}
							return u[0].Size == int64(len(png.data))
						})).
					Return(&domain.Product{ID: 11, UserID: viewerID, Name: wantInput.Name}, nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":11`,
		},
		{
			name:       "anonymous caller",
			fields:     fields,
			files:      []formFile{png},
			setupMock:  func(*handlerMocks.MockProductService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "non numeric price",
			auth: true,
			fields: map[string]string{
				"name": "Keyboard", "category": "OTHER", "min_price": "cheap",
			},
			files:      []formFile{png},
			setupMock:  func(*handlerMocks.MockProductService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `min_price must be an integer`,
		},
		{
			name:   "validation failure",
			auth:   true,
			fields: fields,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					CreateProduct(mock.Anything, viewerID, wantInput, []domain.ImageUpload{}).
					Return(nil, fmt.Errorf("%w: at least one image is required", catalog.ErrInvalidImage)).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `at least one image is required`,
		},
		{
			name:   "unknown user",
			auth:   true,
			fields: fields,
			files:  []formFile{png},
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					CreateProduct(mock.Anything, viewerID, wantInput, mock.Anything).
					Return(nil, catalog.ErrUserNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms, bearer := newProductsAPI(t, handlers.ProductsConfig{})
			tt.setupMock(ms)

			contentType, body := productForm(t, tt.fields, tt.files...)
			args := []any{contentType, body}
			if tt.auth {
				args = append(args, bearer)
			}
			resp := api.Post("/api/v1/products", args...)

			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestProductsHandler_UpdateProduct(t *testing.T) {
	t.Parallel()

	fields := map[string]string{"name": "Keyboard v2", "category": "ELECTRONICS", "min_price": "50000"}
	wantInput := catalog.ProductInput{Name: "Keyboard v2", Category: domain.CategoryElectronics, MinPrice: 50000}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{name: "not the owner", err: catalog.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing product", err: catalog.ErrProductNotFound, wantStatus: http.StatusNotFound},
		{name: "already in auction", err: catalog.ErrAlreadyInAuction, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms, bearer := newProductsAPI(t, handlers.ProductsConfig{})

			var product *domain.Product
			if tt.err == nil {
				product = &domain.Product{ID: 11, UserID: viewerID, Name: wantInput.Name}
			}
			ms.EXPECT().
				UpdateProduct(mock.Anything, viewerID, int64(11), wantInput, []domain.ImageUpload{}).
				Return(product, tt.err).
				Once()

			contentType, body := productForm(t, fields)
			resp := api.Put("/api/v1/products/11", contentType, body, bearer)
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
		})
	}
}

func TestProductsHandler_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		auth       bool
		setupMock  func(*handlerMocks.MockProductService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/api/v1/products/11",
			auth:   true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					DeleteProduct(mock.Anything, viewerID, int64(11)).
					Return(&domain.DeletedProduct{ID: 11, Name: "Keyboard", LikeCount: 2}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"like_count":2`,
		},
		{
			name:   "delete by another user",
			method: http.MethodDelete,
			path:   "/api/v1/products/11",
			auth:   true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					DeleteProduct(mock.Anything, viewerID, int64(11)).
					Return(nil, catalog.ErrForbidden).
					Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "delete anonymously",
			method:     http.MethodDelete,
			path:       "/api/v1/products/11",
			setupMock:  func(*handlerMocks.MockProductService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "toggle like",
			method: http.MethodPost,
			path:   "/api/v1/products/7/likes",
			auth:   true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ToggleLike(mock.Anything, viewerID, int64(7)).
					Return(&domain.LikeState{ProductID: 7, IsLiked: true, LikeCount: 4}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"is_liked":true`,
		},
		{
			name:   "like a product in auction",
			method: http.MethodPost,
			path:   "/api/v1/products/7/likes",
			auth:   true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					ToggleLike(mock.Anything, viewerID, int64(7)).
					Return(nil, catalog.ErrAlreadyInAuction).
					Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "start auction",
			method: http.MethodPost,
			path:   "/api/v1/products/11/auction",
			auth:   true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					StartAuction(mock.Anything, viewerID, int64(11)).
					Return(&domain.Auction{
						ID: 3, ProductID: 11, Status: domain.AuctionProceeding,
						EndAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
					}, nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"PROCEEDING"`,
		},
		{
			name:   "auction store failure",
			method: http.MethodPost,
			path:   "/api/v1/products/11/auction",
			auth:   true,
			setupMock: func(m *handlerMocks.MockProductService) {
				m.EXPECT().
					StartAuction(mock.Anything, viewerID, int64(11)).
					Return(nil, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `starting auction failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms, bearer := newProductsAPI(t, handlers.ProductsConfig{})
			tt.setupMock(ms)

			var args []any
			if tt.auth {
				args = append(args, bearer)
			}
			resp := api.Do(tt.method, tt.path, args...)

			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
