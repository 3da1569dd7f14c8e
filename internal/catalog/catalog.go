package catalog

import (
	"context"
	"log/slog"

	"github.com/erazemk/freshkeeper/internal/api"
	"github.com/erazemk/freshkeeper/internal/model"
	"github.com/erazemk/freshkeeper/internal/status"
)

// Source lists products from the API.
type Source interface {
	ListProducts(ctx context.Context, params api.ListParams) ([]model.ProductDTO, error)
}

// Result is the outcome of a product load.
type Result struct {
	Products []model.Product
	// Fallback is set when the API could not be reached and the
	// built-in fallback list is shown instead.
	Fallback bool
	// Skipped counts records dropped because they failed normalization.
	Skipped int
}

// Load fetches and normalizes products. A fetch error is logged and replaced
// by FallbackProducts; it is not returned.
func Load(ctx context.Context, src Source, params api.ListParams) Result {
	dtos, err := src.ListProducts(ctx, params)
	if err != nil {
		slog.Warn("failed to list products, showing fallback list", "error", err)
		return Result{Products: FallbackProducts(), Fallback: true}
	}

	res := Result{Products: make([]model.Product, 0, len(dtos))}
	for _, dto := range dtos {
		p, err := dto.Product()
		if err != nil {
			slog.Warn("skipping product", "id", string(dto.ID), "error", err)
			res.Skipped++
			continue
		}
		res.Products = append(res.Products, p)
	}
	return res
}

// Counts returns how many products fall under each status. Every status is
// present in the map, including those with zero products.
func Counts(products []model.Product) map[status.Status]int {
	counts := make(map[status.Status]int, len(status.All()))
	for _, s := range status.All() {
		counts[s] = 0
	}
	for _, p := range products {
		counts[p.Status()]++
	}
	return counts
}

// Filter returns the products currently classified as s.
func Filter(products []model.Product, s status.Status) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.Status() == s {
			out = append(out, p)
		}
	}
	return out
}

func intPtr(n int) *int { return &n }

// SampleProducts is the static list shown on the home screen.
func SampleProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Yaourt", Location: model.LocationFridge, Quantity: 2, DaysToExpire: intPtr(2)},
		{ID: "2", Name: "Poulet", Location: model.LocationFreezer, Quantity: 0},
		{ID: "3", Name: "Pain", Location: model.LocationPantry, Quantity: 1, DaysToExpire: intPtr(-1)},
	}
}

// FallbackProducts is shown on the products screen when the API is down.
func FallbackProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Yaourt", Location: model.LocationFridge, Quantity: 2, DaysToExpire: intPtr(2)},
		{ID: "2", Name: "Poulet", Location: model.LocationFreezer, Quantity: 0},
	}
}
