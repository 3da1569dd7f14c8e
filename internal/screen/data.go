package screen

import (
	"github.com/erazemk/freshkeeper/internal/catalog"
	"github.com/erazemk/freshkeeper/internal/model"
	"github.com/erazemk/freshkeeper/internal/status"
)

// PageData is the base data passed to all screens.
type PageData struct {
	User   *model.User
	Notice string
}

// ProductCard is the display form of one product.
type ProductCard struct {
	ID         string
	Name       string
	Location   model.Location
	Quantity   int
	HasDays    bool
	Days       int
	ExpiryDate string
	Status     status.Status
}

// Card builds the card for p. The status is classified at build time.
func Card(p model.Product) ProductCard {
	c := ProductCard{
		ID:         p.ID,
		Name:       p.Name,
		Location:   p.Location,
		Quantity:   p.Quantity,
		ExpiryDate: p.ExpiryDate,
		Status:     p.Status(),
	}
	if p.DaysToExpire != nil {
		c.HasDays = true
		c.Days = *p.DaysToExpire
	}
	return c
}

// Cards builds cards for all products, keeping their order.
func Cards(products []model.Product) []ProductCard {
	cards := make([]ProductCard, len(products))
	for i, p := range products {
		cards[i] = Card(p)
	}
	return cards
}

// StatusCount is one entry of the home screen summary.
type StatusCount struct {
	Status status.Status
	Count  int
}

// Summary counts products per status, most severe first.
func Summary(products []model.Product) []StatusCount {
	counts := catalog.Counts(products)
	out := make([]StatusCount, 0, len(counts))
	for _, s := range status.All() {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	return out
}

// LoginData is passed to the login screen.
type LoginData struct {
	PageData
	Error string
}

// HomeData is passed to the home screen.
type HomeData struct {
	PageData
	Counts []StatusCount
	Cards  []ProductCard
}

// NewHomeData builds the home screen for the given products.
func NewHomeData(user *model.User, products []model.Product) *HomeData {
	return &HomeData{
		PageData: PageData{User: user},
		Counts:   Summary(products),
		Cards:    Cards(products),
	}
}

// ProductsData is passed to the products screen.
type ProductsData struct {
	PageData
	Search  string
	Page    int
	Skipped int
	Cards   []ProductCard
}

// SettingsData is passed to the settings screen.
type SettingsData struct {
	PageData
	Server   string
	Language string
}
