package product

import (
	"context"
	"strings"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
	productrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Search finds sellable products by name substring. An empty or whitespace
// query returns an empty result set without touching the catalog; debouncing
// stays with the caller.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Product{}, nil
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
