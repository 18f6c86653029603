package note

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kristian0808/arcade-frontdesk/internal/backend"
	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

type HTTPAPI struct {
	client *backend.Client
}

func NewHTTPAPI(client *backend.Client) *HTTPAPI {
	return &HTTPAPI{client: client}
}

func (a *HTTPAPI) List(ctx context.Context, in ListInput) (*domain.NotePage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(in.Page))
	params.Set("limit", strconv.Itoa(in.Limit))
	if in.MemberID > 0 {
		params.Set("memberId", strconv.Itoa(in.MemberID))
	}
	if in.MemberAccount != "" {
		params.Set("memberAccount", in.MemberAccount)
	}
	if in.PCName != "" {
		params.Set("pcName", in.PCName)
	}
	if in.Status != "" {
		params.Set("status", in.Status)
	}

	var page domain.NotePage
	if err := a.client.Get(ctx, "/api/notes", params, &page); err != nil {
		return nil, err
	}
	if page.Notes == nil {
		page.Notes = []domain.Note{}
	}
	return &page, nil
}

func (a *HTTPAPI) Create(ctx context.Context, in CreateInput) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := a.client.Post(ctx, "/api/notes", in, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("create note: backend returned no id")
	}
	return created.ID, nil
}

func (a *HTTPAPI) Resolve(ctx context.Context, noteID string) error {
	return a.client.Put(ctx, "/api/notes/"+noteID+"/resolve", nil, nil)
}
