package member

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kristian0808/arcade-frontdesk/internal/backend"
	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

type wireMember struct {
	ID        int    `json:"member_id"`
	Account   string `json:"member_account"`
	FirstName string `json:"member_first_name"`
	LastName  string `json:"member_last_name"`
	Balance   string `json:"member_balance"`
	Points    string `json:"member_points"`
	IsActive  int    `json:"member_is_active"`
}

func (w wireMember) toDomain() domain.Member {
	return domain.Member{
		ID:        w.ID,
		Account:   w.Account,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Balance:   w.Balance,
		Points:    w.Points,
		Active:    w.IsActive != 0,
	}
}

type wireRanking struct {
	Rank       int    `json:"rank"`
	MemberID   int    `json:"member_id"`
	Account    string `json:"member_account"`
	TotalSpent int64  `json:"total_spent"`
	Sessions   int    `json:"sessions"`
}

type HTTPAPI struct {
	client *backend.Client
}

func NewHTTPAPI(client *backend.Client) *HTTPAPI {
	return &HTTPAPI{client: client}
}

func (a *HTTPAPI) List(ctx context.Context) ([]domain.Member, error) {
	var wire []wireMember
	if err := a.client.Get(ctx, "/members", nil, &wire); err != nil {
		return nil, err
	}
	return toDomainList(wire), nil
}

func (a *HTTPAPI) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	var w wireMember
	if err := a.client.Get(ctx, fmt.Sprintf("/members/%d", id), nil, &w); err != nil {
		return nil, err
	}
	m := w.toDomain()
	return &m, nil
}

func (a *HTTPAPI) Search(ctx context.Context, query string) ([]domain.Member, error) {
	params := url.Values{}
	params.Set("query", query)
	var wire []wireMember
	if err := a.client.Get(ctx, "/members/search", params, &wire); err != nil {
		return nil, err
	}
	return toDomainList(wire), nil
}

func (a *HTTPAPI) Rankings(ctx context.Context, timeframe string) ([]domain.MemberRanking, error) {
	params := url.Values{}
	params.Set("timeframe", timeframe)
	var wire []wireRanking
	if err := a.client.Get(ctx, "/api/members/rankings", params, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.MemberRanking, 0, len(wire))
	for _, w := range wire {
		out = append(out, domain.MemberRanking{
			Rank:       w.Rank,
			MemberID:   w.MemberID,
			Account:    w.Account,
			TotalSpent: w.TotalSpent,
			Sessions:   w.Sessions,
		})
	}
	return out, nil
}

func toDomainList(wire []wireMember) []domain.Member {
	out := make([]domain.Member, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out
}
