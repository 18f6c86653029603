package pc

import (
	"context"

	"github.com/kristian0808/arcade-frontdesk/internal/backend"
	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

type wirePC struct {
	ID                   string `json:"pc_id"`
	Name                 string `json:"pc_name"`
	Status               string `json:"status"`
	CurrentMemberID      int    `json:"current_member_id"`
	CurrentMemberAccount string `json:"current_member_account"`
	TimeLeft             string `json:"time_left"`
	HasNotes             bool   `json:"has_notes"`
	HasActiveTab         bool   `json:"has_active_tab"`
}

func (w wirePC) toDomain() domain.PC {
	return domain.PC{
		ID:                   w.ID,
		Name:                 w.Name,
		Status:               w.Status,
		CurrentMemberID:      w.CurrentMemberID,
		CurrentMemberAccount: w.CurrentMemberAccount,
		TimeLeft:             w.TimeLeft,
		HasNotes:             w.HasNotes,
		HasActiveTab:         w.HasActiveTab,
	}
}

type HTTPAPI struct {
	client *backend.Client
}

func NewHTTPAPI(client *backend.Client) *HTTPAPI {
	return &HTTPAPI{client: client}
}

func (a *HTTPAPI) List(ctx context.Context) ([]domain.PC, error) {
	var wire []wirePC
	if err := a.client.Get(ctx, "/pcs", nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.PC, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (a *HTTPAPI) GetByName(ctx context.Context, name string) (*domain.PC, error) {
	var w wirePC
	if err := a.client.Get(ctx, "/pcs/"+name, nil, &w); err != nil {
		return nil, err
	}
	p := w.toDomain()
	return &p, nil
}
