package domain

import "time"

// Tab status values as reported by the backend.
const (
	TabStatusActive = "active"
	TabStatusClosed = "closed"
)

// TabItem is one line of an open order. Price and ProductName are denormalized
// at add-time; TotalPrice is computed by the backend and never recomputed here.
type TabItem struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Price       int64     `json:"price"`
	Quantity    int       `json:"quantity"`
	TotalPrice  int64     `json:"totalPrice"`
	AddedAt     time.Time `json:"addedAt"`
}

// Tab is an order session owned by one member. Items are addressed by position
// in the slice; removing an item shifts every later index down by one.
type Tab struct {
	ID            string     `json:"id"`
	MemberID      int        `json:"memberId"`
	MemberAccount string     `json:"memberAccount"`
	PCName        string     `json:"pcName,omitempty"`
	Status        string     `json:"status"`
	Items         []TabItem  `json:"items"`
	TotalAmount   int64      `json:"totalAmount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// Clone returns a deep copy safe to hand to readers while the original keeps
// being replaced by authoritative backend responses.
func (t *Tab) Clone() *Tab {
	if t == nil {
		return nil
	}
	cp := *t
	if t.Items != nil {
		cp.Items = make([]TabItem, len(t.Items))
		copy(cp.Items, t.Items)
	}
	if t.ClosedAt != nil {
		closedAt := *t.ClosedAt
		cp.ClosedAt = &closedAt
	}
	return &cp
}
