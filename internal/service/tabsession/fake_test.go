package tabsession

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
	tabrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/tab"
)

// fakeBackend is an in-memory stand-in for the remote tab resource. It owns
// the arithmetic the real backend owns: item totals, the tab total and index
// shifting on removal.
type fakeBackend struct {
	mu   sync.Mutex
	tabs map[string]*domain.Tab
	seq  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{tabs: make(map[string]*domain.Tab)}
}

func (f *fakeBackend) GetActiveByMember(_ context.Context, memberID int) (*domain.Tab, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tabs {
		if t.MemberID == memberID && t.Status == domain.TabStatusActive {
			return t.Clone(), true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeBackend) Create(_ context.Context, in tabrepo.CreateTabInput) (*domain.Tab, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tabs {
		if t.MemberID == in.MemberID && t.Status == domain.TabStatusActive {
			return nil, fmt.Errorf("%w: member %d already has an active tab", domain.ErrConflict, in.MemberID)
		}
	}
	f.seq++
	t := &domain.Tab{
		ID:            fmt.Sprintf("tab-%d", f.seq),
		MemberID:      in.MemberID,
		MemberAccount: in.MemberAccount,
		PCName:        in.PCName,
		Status:        domain.TabStatusActive,
		Items:         []domain.TabItem{},
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	f.tabs[t.ID] = t
	return t.Clone(), nil
}

func (f *fakeBackend) GetByID(_ context.Context, tabID string) (*domain.Tab, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tabs[tabID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t.Clone(), nil
}

func (f *fakeBackend) AddItem(_ context.Context, tabID string, in tabrepo.AddItemInput) (*domain.Tab, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tabs[tabID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Items = append(t.Items, domain.TabItem{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Price:       in.Price,
		Quantity:    in.Quantity,
		TotalPrice:  in.Price * int64(in.Quantity),
		AddedAt:     time.Now().UTC(),
	})
	f.recomputeLocked(t)
	return t.Clone(), nil
}

func (f *fakeBackend) UpdateItemQuantity(_ context.Context, tabID string, itemIndex, quantity int) (*domain.Tab, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tabs[tabID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if itemIndex < 0 || itemIndex >= len(t.Items) {
		return nil, fmt.Errorf("%w: item index out of range", domain.ErrValidation)
	}
	t.Items[itemIndex].Quantity = quantity
	t.Items[itemIndex].TotalPrice = t.Items[itemIndex].Price * int64(quantity)
	f.recomputeLocked(t)
	return t.Clone(), nil
}

func (f *fakeBackend) RemoveItem(_ context.Context, tabID string, itemIndex int) (*domain.Tab, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tabs[tabID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if itemIndex < 0 || itemIndex >= len(t.Items) {
		return nil, fmt.Errorf("%w: item index out of range", domain.ErrValidation)
	}
	t.Items = append(t.Items[:itemIndex], t.Items[itemIndex+1:]...)
	f.recomputeLocked(t)
	return t.Clone(), nil
}

func (f *fakeBackend) Close(_ context.Context, tabID string) (*domain.Tab, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tabs[tabID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	now := time.Now().UTC()
	t.Status = domain.TabStatusClosed
	t.ClosedAt = &now
	return t.Clone(), nil
}

func (f *fakeBackend) recomputeLocked(t *domain.Tab) {
	var total int64
	for _, item := range t.Items {
		total += item.TotalPrice
	}
	t.TotalAmount = total
	t.UpdatedAt = time.Now().UTC()
}
