package notes

import (
	"context"
	"errors"
	"testing"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
	noterepo "github.com/kristian0808/arcade-frontdesk/internal/repository/note"
)

type stubRepo struct {
	page        *domain.NotePage
	listErr     error
	lastList    noterepo.ListInput
	createID    string
	createErr   error
	lastCreate  noterepo.CreateInput
	createCalls int
	resolved    []string
}

func (s *stubRepo) List(_ context.Context, in noterepo.ListInput) (*domain.NotePage, error) {
	s.lastList = in
	return s.page, s.listErr
}

func (s *stubRepo) Create(_ context.Context, in noterepo.CreateInput) (string, error) {
	s.createCalls++
	s.lastCreate = in
	return s.createID, s.createErr
}

func (s *stubRepo) Resolve(_ context.Context, noteID string) error {
	s.resolved = append(s.resolved, noteID)
	return nil
}

func TestListDefaults(t *testing.T) {
	repo := &stubRepo{page: &domain.NotePage{Notes: []domain.Note{}}}
	svc := New(repo)

	if _, err := svc.List(context.Background(), noterepo.ListInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastList.Page != 1 || repo.lastList.Limit != 10 || repo.lastList.Status != "active" {
		t.Fatalf("unexpected defaults: %+v", repo.lastList)
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := New(&stubRepo{})
	_, err := svc.List(context.Background(), noterepo.ListInput{Status: "archived"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListCapsLimit(t *testing.T) {
	repo := &stubRepo{page: &domain.NotePage{}}
	svc := New(repo)
	if _, err := svc.List(context.Background(), noterepo.ListInput{Limit: 500}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastList.Limit != 100 {
		t.Fatalf("expected limit capped at 100, got %d", repo.lastList.Limit)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	if _, err := svc.Create(context.Background(), noterepo.CreateInput{Content: "  ", MemberID: 1}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected content validation error, got %v", err)
	}
	if _, err := svc.Create(context.Background(), noterepo.CreateInput{Content: "left headset at desk"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected member validation error, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("invalid input must not reach the repository, got %d calls", repo.createCalls)
	}
}

func TestCreateTrimsContent(t *testing.T) {
	repo := &stubRepo{createID: "n1"}
	svc := New(repo)

	id, err := svc.Create(context.Background(), noterepo.CreateInput{Content: " pays tomorrow ", MemberID: 7, PCName: "PC01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "n1" {
		t.Fatalf("expected id n1, got %q", id)
	}
	if repo.lastCreate.Content != "pays tomorrow" {
		t.Fatalf("expected trimmed content, got %q", repo.lastCreate.Content)
	}
}

func TestResolveRequiresID(t *testing.T) {
	svc := New(&stubRepo{})
	if err := svc.Resolve(context.Background(), " "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
