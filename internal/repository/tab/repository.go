package tab

import (
	"context"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

type CreateTabInput struct {
	MemberID      int    `json:"memberId"`
	MemberAccount string `json:"memberAccount"`
	PCName        string `json:"pcName,omitempty"`
}

type AddItemInput struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Repository is the remote tab resource. Only the two reads are idempotent;
// callers must not silently retry mutations. Every mutation returns the full
// authoritative tab, which callers adopt wholesale.
type Repository interface {
	// GetActiveByMember reports the member's open tab. found is false when the
	// member simply has none, which is a normal outcome and not an error.
	GetActiveByMember(ctx context.Context, memberID int) (tab *domain.Tab, found bool, err error)
	Create(ctx context.Context, in CreateTabInput) (*domain.Tab, error)
	GetByID(ctx context.Context, tabID string) (*domain.Tab, error)
	AddItem(ctx context.Context, tabID string, in AddItemInput) (*domain.Tab, error)
	UpdateItemQuantity(ctx context.Context, tabID string, itemIndex, quantity int) (*domain.Tab, error)
	RemoveItem(ctx context.Context, tabID string, itemIndex int) (*domain.Tab, error)
	Close(ctx context.Context, tabID string) (*domain.Tab, error)
}
