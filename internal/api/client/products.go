package client

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	domain "github.com/chzzmarket/market-api/pkg/types"
)

// PageParams selects one page of a listing. Zero values leave the choice
// to the server.
type PageParams struct {
	Page int
	Size int
	Sort string
}

func (p PageParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}

// ProductPage is one page of product listings.
type ProductPage = domain.Page[domain.ProductListing]

// ListProducts returns one page of pre-registered products in a category.
func (c *Client) ListProducts(ctx context.Context, category string, p PageParams) (*ProductPage, error) {
	q := p.values()
	q.Set("category", category)
	return c.listPage(ctx, "/api/v1/products", q)
}

// ListOwnerProducts returns one page of the pre-registered products of the
// user with the given nickname.
func (c *Client) ListOwnerProducts(ctx context.Context, nickname string, p PageParams) (*ProductPage, error) {
	return c.listPage(ctx, "/api/v1/users/"+url.PathEscape(nickname)+"/products", p.values())
}

// ListLikedProducts returns one page of the products the token's user liked.
func (c *Client) ListLikedProducts(ctx context.Context, p PageParams) (*ProductPage, error) {
	return c.listPage(ctx, "/api/v1/users/me/likes", p.values())
}

func (c *Client) listPage(ctx context.Context, path string, q url.Values) (*ProductPage, error) {
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var page ProductPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct returns the detail view of a product.
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.ProductDetails, error) {
	var d domain.ProductDetails
	if err := c.get(ctx, fmt.Sprintf("/api/v1/products/%d", id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ToggleLike likes or unlikes a product.
func (c *Client) ToggleLike(ctx context.Context, id int64) (*domain.LikeState, error) {
	var s domain.LikeState
	if err := c.post(ctx, fmt.Sprintf("/api/v1/products/%d/likes", id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// StartAuction moves a product to auction.
func (c *Client) StartAuction(ctx context.Context, id int64) (*domain.Auction, error) {
	var a domain.Auction
	if err := c.post(ctx, fmt.Sprintf("/api/v1/products/%d/auction", id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) (*domain.DeletedProduct, error) {
	var d domain.DeletedProduct
	if err := c.del(ctx, fmt.Sprintf("/api/v1/products/%d", id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ProductForm is the content of a create or update request. Images are
// local file paths.
type ProductForm struct {
	Name        string
	Description string
	Category    string
	MinPrice    int
	Images      []string
}

// CreateProduct registers a product.
func (c *Client) CreateProduct(ctx context.Context, f *ProductForm) (*domain.Product, error) {
	return c.sendForm(ctx, http.MethodPost, "/api/v1/products", f)
}

// UpdateProduct edits a product. Images, when given, replace the current ones.
func (c *Client) UpdateProduct(ctx context.Context, id int64, f *ProductForm) (*domain.Product, error) {
	return c.sendForm(ctx, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", id), f)
}

func (c *Client) sendForm(ctx context.Context, method, path string, f *ProductForm) (*domain.Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"name", f.Name},
		{"description", f.Description},
		{"category", f.Category},
		{"min_price", strconv.Itoa(f.MinPrice)},
	}
	for _, kv := range fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, fmt.Errorf("writing form field %s: %w", kv[0], err)
		}
	}

	for _, name := range f.Images {
		if err := writeImage(w, name); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing form: %w", err)
	}

	var p domain.Product
	if err := c.do(ctx, method, path, w.FormDataContentType(), &buf, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func writeImage(w *multipart.Writer, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading image %s: %w", name, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, filepath.Base(name)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating image part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("writing image %s: %w", name, err)
	}
	return nil
}
