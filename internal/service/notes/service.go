package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
	noterepo "github.com/kristian0808/arcade-frontdesk/internal/repository/note"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

var noteStatuses = map[string]bool{
	"active": true, "resolved": true, "all": true,
}

type Service struct {
	repo noterepo.Repository
}

func New(repo noterepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns a filtered page of notes. Unset paging fields get defaults;
// the status filter defaults to active notes only.
func (s *Service) List(ctx context.Context, in noterepo.ListInput) (*domain.NotePage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = defaultPageLimit
	}
	if in.Limit > maxPageLimit {
		in.Limit = maxPageLimit
	}
	if in.Status == "" {
		in.Status = "active"
	}
	if !noteStatuses[in.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}
	return s.repo.List(ctx, in)
}

// Create records a note about a member, optionally tied to a PC.
func (s *Service) Create(ctx context.Context, in noterepo.CreateInput) (string, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return "", fmt.Errorf("%w: note content required", domain.ErrValidation)
	}
	if in.MemberID <= 0 {
		return "", fmt.Errorf("%w: member id required", domain.ErrValidation)
	}
	return s.repo.Create(ctx, in)
}

// Resolve marks a note handled. The note stays on record; it only leaves the
// active filter.
func (s *Service) Resolve(ctx context.Context, noteID string) error {
	if strings.TrimSpace(noteID) == "" {
		return fmt.Errorf("%w: note id required", domain.ErrValidation)
	}
	return s.repo.Resolve(ctx, noteID)
}
