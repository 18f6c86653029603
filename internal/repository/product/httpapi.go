package product

import (
	"context"
	"net/url"

	"github.com/kristian0808/arcade-frontdesk/internal/backend"
	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

// The catalog endpoint speaks the vendor's snake_case field names; they are
// mapped to domain types here and nowhere else.
type wireProduct struct {
	ID          string `json:"product_id"`
	Name        string `json:"product_name"`
	Price       int64  `json:"product_price"`
	Description string `json:"product_description"`
	Category    string `json:"product_category"`
	Active      *bool  `json:"product_is_active"`
	Stock       int    `json:"product_stock"`
}

func (w wireProduct) toDomain() domain.Product {
	active := true
	if w.Active != nil {
		active = *w.Active
	}
	return domain.Product{
		ID:          w.ID,
		Name:        w.Name,
		Price:       w.Price,
		Description: w.Description,
		Category:    w.Category,
		Active:      active,
		Stock:       w.Stock,
	}
}

type HTTPAPI struct {
	client *backend.Client
}

func NewHTTPAPI(client *backend.Client) *HTTPAPI {
	return &HTTPAPI{client: client}
}

func (a *HTTPAPI) Search(ctx context.Context, query string) ([]domain.Product, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	var wire []wireProduct
	if err := a.client.Get(ctx, "/products", params, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (a *HTTPAPI) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var w wireProduct
	if err := a.client.Get(ctx, "/products/"+id, nil, &w); err != nil {
		return nil, err
	}
	p := w.toDomain()
	return &p, nil
}
