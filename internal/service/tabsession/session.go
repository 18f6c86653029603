// Package tabsession owns the front-desk view of "the tab currently being
// worked on". A Session mediates every tab mutation through the tab
// repository and adopts the backend's response wholesale; it never merges
// partial results into the held tab.
package tabsession

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
	tabrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/tab"
	"github.com/kristian0808/arcade-frontdesk/internal/service/payment"
)

type State string

const (
	// StateIdle means no member or occupied PC is selected.
	StateIdle State = "idle"
	// StateChecking means an active-tab lookup is in flight.
	StateChecking State = "checking"
	// StateNoTab means the member is resolved and has no open tab.
	StateNoTab State = "no_tab"
	// StateActive means a tab is loaded and mutations are permitted.
	StateActive State = "active"
	// StateClosing means a close request is in flight.
	StateClosing State = "closing"
)

// Snapshot is the read-only view handed to the presentation layer. Tab is a
// deep copy; mutating it has no effect on the session.
type Snapshot struct {
	State  State             `json:"state"`
	Member *domain.MemberRef `json:"member,omitempty"`
	PCName string            `json:"pcName,omitempty"`
	Tab    *domain.Tab       `json:"tab,omitempty"`
	Busy   bool              `json:"busy"`
	Error  string            `json:"error,omitempty"`
}

// Session is the tab state machine for one front-desk station. All exported
// methods are safe for concurrent use; overlapping mutations on the same
// session are rejected with domain.ErrBusy rather than queued.
type Session struct {
	repo   tabrepo.Repository
	logger *log.Logger

	mu       sync.Mutex
	state    State
	member   domain.MemberRef
	pcName   string
	tab      *domain.Tab
	lastErr  error
	inflight bool
	// gen increments on every context switch; responses captured under an
	// older generation are discarded instead of applied.
	gen uint64
}

func NewSession(repo tabrepo.Repository, logger *log.Logger) *Session {
	return &Session{repo: repo, logger: logger, state: StateIdle}
}

// SelectMember switches the session to the given member and looks up their
// active tab. pcName is optional display context. A failed lookup fails open
// to StateNoTab with the error recorded on the snapshot, so the desk is never
// blocked from opening a fresh tab.
func (s *Session) SelectMember(ctx context.Context, ref domain.MemberRef, pcName string) (*Snapshot, error) {
	if ref.ID <= 0 {
		return nil, fmt.Errorf("%w: member id required", domain.ErrValidation)
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.member = ref
	s.pcName = pcName
	s.tab = nil
	s.lastErr = nil
	s.inflight = false
	s.state = StateChecking
	s.mu.Unlock()

	t, found, err := s.repo.GetActiveByMember(ctx, ref.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil, domain.ErrStaleContext
	}
	switch {
	case err != nil:
		s.state = StateNoTab
		s.lastErr = err
		s.logger.Printf("tabsession: active-tab lookup for member %d failed: %v", ref.ID, err)
	case found:
		s.tab = t
		s.state = StateActive
	default:
		s.state = StateNoTab
	}
	return s.snapshotLocked(), nil
}

// SelectPC switches the session to the member currently occupying the PC. A
// PC without a known occupant clears the member context instead.
func (s *Session) SelectPC(ctx context.Context, p domain.PC) (*Snapshot, error) {
	ref, ok := p.Occupant()
	if !ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.gen++
		s.member = domain.MemberRef{}
		s.pcName = p.Name
		s.tab = nil
		s.lastErr = nil
		s.inflight = false
		s.state = StateIdle
		return s.snapshotLocked(), nil
	}
	return s.SelectMember(ctx, ref, p.Name)
}

// Clear drops the member/PC context entirely.
func (s *Session) Clear() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.member = domain.MemberRef{}
	s.pcName = ""
	s.tab = nil
	s.lastErr = nil
	s.inflight = false
	s.state = StateIdle
	return s.snapshotLocked()
}

// CreateTab opens a tab for the selected member. Double-clicks are absorbed by
// the in-flight guard: a second call while the first is pending gets
// domain.ErrBusy and no request is sent.
func (s *Session) CreateTab(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	switch {
	case s.state == StateActive || s.state == StateClosing:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: member already has an open tab", domain.ErrConflict)
	case s.member.ID <= 0:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no member selected", domain.ErrValidation)
	case s.inflight || s.state == StateChecking:
		s.mu.Unlock()
		return nil, domain.ErrBusy
	}
	s.inflight = true
	s.lastErr = nil
	gen := s.gen
	in := tabrepo.CreateTabInput{
		MemberID:      s.member.ID,
		MemberAccount: s.member.Account,
		PCName:        s.pcName,
	}
	s.mu.Unlock()

	t, err := s.repo.Create(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil, domain.ErrStaleContext
	}
	s.inflight = false
	if err != nil {
		s.lastErr = err
		return s.snapshotLocked(), err
	}
	s.tab = t
	s.state = StateActive
	return s.snapshotLocked(), nil
}

// AddItem appends a catalog product to the active tab.
func (s *Session) AddItem(ctx context.Context, in tabrepo.AddItemInput) (*Snapshot, error) {
	if err := validateItem(in); err != nil {
		s.recordError(err)
		return nil, err
	}
	return s.mutate(ctx, func(ctx context.Context, tabID string) (*domain.Tab, error) {
		return s.repo.AddItem(ctx, tabID, in)
	})
}

// AddCustomItem appends an ad-hoc product that is not in the catalog. The
// synthetic product id keeps the line distinguishable from catalog lines.
func (s *Session) AddCustomItem(ctx context.Context, name string, price int64) (*Snapshot, error) {
	return s.AddItem(ctx, tabrepo.AddItemInput{
		ProductID:   "custom-" + uuid.NewString(),
		ProductName: strings.TrimSpace(name),
		Price:       price,
		Quantity:    1,
	})
}

// UpdateItemQuantity changes the quantity of the item at itemIndex. Targets
// below 1 never reach the backend; callers route those to RemoveItem.
func (s *Session) UpdateItemQuantity(ctx context.Context, itemIndex, quantity int) (*Snapshot, error) {
	if quantity < 1 {
		err := fmt.Errorf("%w: quantity must be at least 1, remove the item instead", domain.ErrValidation)
		s.recordError(err)
		return nil, err
	}
	if err := s.checkItemIndex(itemIndex); err != nil {
		s.recordError(err)
		return nil, err
	}
	return s.mutate(ctx, func(ctx context.Context, tabID string) (*domain.Tab, error) {
		return s.repo.UpdateItemQuantity(ctx, tabID, itemIndex, quantity)
	})
}

// RemoveItem deletes the item at itemIndex. Indices of later items shift down
// in the returned tab, which replaces the held copy wholesale.
func (s *Session) RemoveItem(ctx context.Context, itemIndex int) (*Snapshot, error) {
	if err := s.checkItemIndex(itemIndex); err != nil {
		s.recordError(err)
		return nil, err
	}
	return s.mutate(ctx, func(ctx context.Context, tabID string) (*domain.Tab, error) {
		return s.repo.RemoveItem(ctx, tabID, itemIndex)
	})
}

// CloseTab settles and closes the active tab. When tendered is non-nil the
// change is computed first and a short tender rejects the close before any
// backend call. On success the session returns to StateNoTab with the member
// context retained.
func (s *Session) CloseTab(ctx context.Context, tendered *int64) (change int64, snap *Snapshot, err error) {
	s.mu.Lock()
	if s.state != StateActive || s.tab == nil {
		s.mu.Unlock()
		return 0, nil, fmt.Errorf("%w: no active tab to close", domain.ErrConflict)
	}
	if s.inflight {
		s.mu.Unlock()
		return 0, nil, domain.ErrBusy
	}
	s.lastErr = nil
	if tendered != nil {
		change, err = payment.ComputeChange(s.tab.TotalAmount, *tendered)
		if err != nil {
			s.lastErr = err
			snap = s.snapshotLocked()
			s.mu.Unlock()
			return 0, snap, err
		}
	}
	s.inflight = true
	s.state = StateClosing
	gen := s.gen
	tabID := s.tab.ID
	s.mu.Unlock()

	closed, err := s.repo.Close(ctx, tabID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return 0, nil, domain.ErrStaleContext
	}
	s.inflight = false
	if err != nil {
		s.state = StateActive
		s.lastErr = err
		return 0, s.snapshotLocked(), err
	}
	s.logger.Printf("tabsession: closed tab %s for member %d, total %d", closed.ID, closed.MemberID, closed.TotalAmount)
	s.tab = nil
	s.state = StateNoTab
	return change, s.snapshotLocked(), nil
}

// Refresh re-reads the held tab from the backend and replaces it wholesale.
// It is the entry point for push-channel triggers and is skipped while a
// mutation is in flight so a push can never clobber an edit under way.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateActive || s.tab == nil || s.inflight {
		s.mu.Unlock()
		return nil
	}
	gen := s.gen
	tabID := s.tab.ID
	s.mu.Unlock()

	t, err := s.repo.GetByID(ctx, tabID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen || s.inflight {
		return nil
	}
	if err != nil {
		s.logger.Printf("tabsession: refresh of tab %s failed: %v", tabID, err)
		return err
	}
	if t.Status == domain.TabStatusClosed {
		s.tab = nil
		s.state = StateNoTab
		return nil
	}
	s.tab = t
	return nil
}

// Snapshot returns the current read-only view.
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// mutate runs one single-flight item mutation: guard, release the lock for
// the round-trip, then adopt the response only if the context generation is
// unchanged.
func (s *Session) mutate(ctx context.Context, op func(ctx context.Context, tabID string) (*domain.Tab, error)) (*Snapshot, error) {
	s.mu.Lock()
	if s.state != StateActive || s.tab == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no active tab", domain.ErrConflict)
	}
	if s.inflight {
		s.mu.Unlock()
		return nil, domain.ErrBusy
	}
	s.inflight = true
	s.lastErr = nil
	gen := s.gen
	tabID := s.tab.ID
	s.mu.Unlock()

	t, err := op(ctx, tabID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil, domain.ErrStaleContext
	}
	s.inflight = false
	if err != nil {
		s.lastErr = err
		return s.snapshotLocked(), err
	}
	s.tab = t
	return s.snapshotLocked(), nil
}

func (s *Session) checkItemIndex(itemIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive || s.tab == nil {
		return fmt.Errorf("%w: no active tab", domain.ErrConflict)
	}
	if itemIndex < 0 || itemIndex >= len(s.tab.Items) {
		return fmt.Errorf("%w: item index %d out of range", domain.ErrValidation, itemIndex)
	}
	return nil
}

func (s *Session) recordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

func (s *Session) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		State:  s.state,
		PCName: s.pcName,
		Tab:    s.tab.Clone(),
		Busy:   s.inflight,
	}
	if s.member.ID > 0 {
		ref := s.member
		snap.Member = &ref
	}
	if s.lastErr != nil {
		snap.Error = s.lastErr.Error()
	}
	return snap
}

func validateItem(in tabrepo.AddItemInput) error {
	switch {
	case strings.TrimSpace(in.ProductID) == "":
		return fmt.Errorf("%w: product id required", domain.ErrValidation)
	case strings.TrimSpace(in.ProductName) == "":
		return fmt.Errorf("%w: product name required", domain.ErrValidation)
	case in.Price < 0:
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	case in.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	return nil
}
