package tab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kristian0808/arcade-frontdesk/internal/backend"
	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

// HTTPAPI implements Repository against the backend's /api/tabs resource.
type HTTPAPI struct {
	client *backend.Client
}

func NewHTTPAPI(client *backend.Client) *HTTPAPI {
	return &HTTPAPI{client: client}
}

// GetActiveByMember decodes the backend's union response: either a tab body or
// the {"active": false} marker meaning the member has no open tab.
func (a *HTTPAPI) GetActiveByMember(ctx context.Context, memberID int) (*domain.Tab, bool, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/tabs/member/%d/active", memberID)
	if err := a.client.Get(ctx, path, nil, &raw); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var marker struct {
		Active *bool `json:"active"`
	}
	if err := json.Unmarshal(raw, &marker); err == nil && marker.Active != nil && !*marker.Active {
		return nil, false, nil
	}

	var t domain.Tab
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, false, fmt.Errorf("decode active tab: %w", err)
	}
	if t.ID == "" {
		return nil, false, nil
	}
	return &t, true, nil
}

func (a *HTTPAPI) Create(ctx context.Context, in CreateTabInput) (*domain.Tab, error) {
	var t domain.Tab
	if err := a.client.Post(ctx, "/api/tabs", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (a *HTTPAPI) GetByID(ctx context.Context, tabID string) (*domain.Tab, error) {
	var t domain.Tab
	if err := a.client.Get(ctx, "/api/tabs/"+tabID, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// AddItem posts the new line and then re-reads the tab so the caller always
// receives the backend's recomputed items and total.
func (a *HTTPAPI) AddItem(ctx context.Context, tabID string, in AddItemInput) (*domain.Tab, error) {
	if err := a.client.Post(ctx, "/api/tabs/"+tabID+"/items", in, nil); err != nil {
		return nil, err
	}
	return a.GetByID(ctx, tabID)
}

func (a *HTTPAPI) UpdateItemQuantity(ctx context.Context, tabID string, itemIndex, quantity int) (*domain.Tab, error) {
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	var t domain.Tab
	path := fmt.Sprintf("/api/tabs/%s/items/%d", tabID, itemIndex)
	if err := a.client.Put(ctx, path, body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (a *HTTPAPI) RemoveItem(ctx context.Context, tabID string, itemIndex int) (*domain.Tab, error) {
	var t domain.Tab
	path := fmt.Sprintf("/api/tabs/%s/items/%d", tabID, itemIndex)
	if err := a.client.Delete(ctx, path, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (a *HTTPAPI) Close(ctx context.Context, tabID string) (*domain.Tab, error) {
	var t domain.Tab
	if err := a.client.Post(ctx, "/api/tabs/"+tabID+"/close", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
