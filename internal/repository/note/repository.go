package note

import (
	"context"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

type ListInput struct {
	Page          int
	Limit         int
	MemberID      int
	MemberAccount string
	PCName        string
	Status        string
}

type CreateInput struct {
	Content       string `json:"content"`
	MemberID      int    `json:"memberId"`
	MemberAccount string `json:"memberAccount,omitempty"`
	PCName        string `json:"pcName,omitempty"`
}

type Repository interface {
	List(ctx context.Context, in ListInput) (*domain.NotePage, error)
	Create(ctx context.Context, in CreateInput) (string, error)
	// Resolve soft-deletes a note; the record stays readable under the
	// "resolved" status filter.
	Resolve(ctx context.Context, noteID string) error
}
