package pc

import (
	"context"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.PC, error)
	GetByName(ctx context.Context, name string) (*domain.PC, error)
}
