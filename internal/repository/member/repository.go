package member

import (
	"context"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	Search(ctx context.Context, query string) ([]domain.Member, error)
	Rankings(ctx context.Context, timeframe string) ([]domain.MemberRanking, error)
}
