package product

import (
	"context"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

type Repository interface {
	Search(ctx context.Context, query string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
