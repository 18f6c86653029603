package roster

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubMembers struct {
	members     []domain.Member
	listCalls   int
	searchCalls int
	lastQuery   string
	rankings    []domain.MemberRanking
	lastFrame   string
}

func (s *stubMembers) List(_ context.Context) ([]domain.Member, error) {
	s.listCalls++
	return s.members, nil
}

func (s *stubMembers) GetByID(_ context.Context, id int) (*domain.Member, error) {
	for _, m := range s.members {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubMembers) Search(_ context.Context, query string) ([]domain.Member, error) {
	s.searchCalls++
	s.lastQuery = query
	return s.members, nil
}

func (s *stubMembers) Rankings(_ context.Context, timeframe string) ([]domain.MemberRanking, error) {
	s.lastFrame = timeframe
	return s.rankings, nil
}

type stubPCs struct {
	pcs       []domain.PC
	listCalls int
}

func (s *stubPCs) List(_ context.Context) ([]domain.PC, error) {
	s.listCalls++
	return s.pcs, nil
}

func (s *stubPCs) GetByName(_ context.Context, name string) (*domain.PC, error) {
	for _, p := range s.pcs {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func TestMembersWithoutCacheGoesDirect(t *testing.T) {
	members := &stubMembers{members: []domain.Member{{ID: 1, Account: "alice"}}}
	svc := New(members, &stubPCs{}, nil, 0, testLogger())

	for i := 0; i < 2; i++ {
		got, err := svc.Members(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected one member, got %d", len(got))
		}
	}
	if members.listCalls != 2 {
		t.Fatalf("nil cache must pass reads through, got %d list calls", members.listCalls)
	}
}

func TestSearchMembersEmptyQueryListsAll(t *testing.T) {
	members := &stubMembers{members: []domain.Member{{ID: 1, Account: "alice"}}}
	svc := New(members, &stubPCs{}, nil, 0, testLogger())

	if _, err := svc.SearchMembers(context.Background(), "   "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if members.searchCalls != 0 || members.listCalls != 1 {
		t.Fatalf("empty query should list, got search=%d list=%d", members.searchCalls, members.listCalls)
	}
}

func TestRankingsValidatesTimeframe(t *testing.T) {
	members := &stubMembers{}
	svc := New(members, &stubPCs{}, nil, 0, testLogger())

	if _, err := svc.Rankings(context.Background(), "decade"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Rankings(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if members.lastFrame != "month" {
		t.Fatalf("expected default timeframe month, got %q", members.lastFrame)
	}
}

func TestOverviewCounts(t *testing.T) {
	pcs := &stubPCs{pcs: []domain.PC{
		{Name: "PC01", Status: domain.PCStatusInUse, CurrentMemberID: 1, HasActiveTab: true},
		{Name: "PC02", Status: domain.PCStatusInUse, CurrentMemberID: 2},
		{Name: "PC03", Status: domain.PCStatusAvailable},
		{Name: "PC04", Status: domain.PCStatusOffline},
		{Name: "PC05", Status: domain.PCStatusMaintenance},
	}}
	svc := New(&stubMembers{}, pcs, nil, 0, testLogger())

	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Overview{TotalPCs: 5, Available: 1, InUse: 2, Offline: 1, Maintenance: 1, ActiveMembers: 2, OpenTabs: 1}
	if *ov != want {
		t.Fatalf("unexpected overview: %+v", *ov)
	}
}

func TestPCNameRequired(t *testing.T) {
	svc := New(&stubMembers{}, &stubPCs{}, nil, 0, testLogger())
	if _, err := svc.PC(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOccupantSynthesis(t *testing.T) {
	p := domain.PC{Name: "PC01", Status: domain.PCStatusInUse, CurrentMemberID: 9, CurrentMemberAccount: "bob"}
	ref, ok := p.Occupant()
	if !ok {
		t.Fatalf("expected occupant")
	}
	if !ref.Provisional || ref.ID != 9 || ref.Account != "bob" {
		t.Fatalf("unexpected ref: %+v", ref)
	}

	free := domain.PC{Name: "PC02", Status: domain.PCStatusAvailable}
	if _, ok := free.Occupant(); ok {
		t.Fatalf("available pc must have no occupant")
	}
}
