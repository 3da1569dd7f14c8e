package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/erazemk/freshkeeper/internal/status"
)

// ProductID is a product identifier. The API may send it as a number or a
// string; it is always kept in its display form.
type ProductID string

// UnmarshalJSON accepts both JSON numbers and strings.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding product id: %w", err)
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// ProductDTO is a product record as received from the catalog API.
type ProductDTO struct {
	ID           ProductID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Quantity     *int      `json:"quantity,omitempty"`
	ExpiryDate   *string   `json:"expiry_date,omitempty"`
	DaysToExpire *int      `json:"days_to_expire,omitempty"`
}

// ProductsPage is the wrapped form of the product list response.
type ProductsPage struct {
	Items []ProductDTO `json:"items"`
	Total int          `json:"total,omitempty"`
	Page  int          `json:"page,omitempty"`
	Size  int          `json:"size,omitempty"`
}

// Product is a normalized, read-only product record.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     Location `json:"location"`
	Quantity     int      `json:"quantity"`
	DaysToExpire *int     `json:"days_to_expire"`
	ExpiryDate   string   `json:"expiry_date,omitempty"`
}

// Product normalizes the record. A missing quantity becomes 0 and a missing
// or null days_to_expire stays unknown.
func (d ProductDTO) Product() (Product, error) {
	loc, err := ParseLocation(d.Location)
	if err != nil {
		return Product{}, fmt.Errorf("product %s: %w", d.ID, err)
	}

	p := Product{
		ID:       string(d.ID),
		Name:     d.Name,
		Location: loc,
	}
	if d.Quantity != nil {
		p.Quantity = *d.Quantity
	}
	if d.DaysToExpire != nil {
		days := *d.DaysToExpire
		p.DaysToExpire = &days
	}
	if d.ExpiryDate != nil {
		p.ExpiryDate = *d.ExpiryDate
	}
	return p, nil
}

// Status classifies the product. It is recomputed on every call.
func (p Product) Status() status.Status {
	return status.Classify(p.Quantity, p.DaysToExpire)
}

// DecodeProducts decodes a product list response, which is either a bare
// JSON array or an object with an "items" array.
func DecodeProducts(data []byte) ([]ProductDTO, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decoding products: empty response")
	}

	if trimmed[0] == '[' {
		var items []ProductDTO
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decoding products: %w", err)
		}
		return items, nil
	}

	var page ProductsPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, fmt.Errorf("decoding products page: %w", err)
	}
	if page.Items == nil {
		return []ProductDTO{}, nil
	}
	return page.Items, nil
}
