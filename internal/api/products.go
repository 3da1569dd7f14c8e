package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/erazemk/freshkeeper/internal/model"
)

// ListParams filters GET /products. Zero values are left out of the query.
type ListParams struct {
	Page     int
	Size     int
	Search   string
	Location model.Location
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Location != "" {
		q.Set("location", string(p.Location))
	}
	return q
}

// ListProducts fetches the product list. Both the bare array and the
// paginated {"items": [...]} response shapes are accepted.
func (c *Client) ListProducts(ctx context.Context, params ListParams) ([]model.ProductDTO, error) {
	path := "/products"
	if q := params.query(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	data, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	items, err := model.DecodeProducts(data)
	if err != nil {
		return nil, err
	}
	return items, nil
}
