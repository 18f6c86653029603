package tab

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kristian0808/arcade-frontdesk/internal/backend"
	"github.com/kristian0808/arcade-frontdesk/internal/domain"
)

func newAPI(t *testing.T, handler http.Handler) (*HTTPAPI, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := backend.New(srv.URL, "", time.Second, log.New(io.Discard, "", 0))
	return NewHTTPAPI(client), srv
}

func TestGetActiveByMemberFound(t *testing.T) {
	api, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tabs/member/7/active" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(domain.Tab{ID: "tab-1", MemberID: 7, Status: domain.TabStatusActive, TotalAmount: 1500})
	}))

	tab, found, err := api.GetActiveByMember(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || tab.ID != "tab-1" {
		t.Fatalf("expected tab-1 found, got found=%v tab=%+v", found, tab)
	}
}

func TestGetActiveByMemberMarker(t *testing.T) {
	api, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"active":false}`))
	}))

	tab, found, err := api.GetActiveByMember(context.Background(), 7)
	if err != nil {
		t.Fatalf("no active tab is not an error, got %v", err)
	}
	if found || tab != nil {
		t.Fatalf("expected not found, got found=%v tab=%+v", found, tab)
	}
}

func TestGetActiveByMemberNotFoundStatus(t *testing.T) {
	api, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, found, err := api.GetActiveByMember(context.Background(), 7)
	if err != nil {
		t.Fatalf("404 means no active tab, got error %v", err)
	}
	if found {
		t.Fatalf("expected not found")
	}
}

func TestGetActiveByMemberTransportError(t *testing.T) {
	api, srv := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, _, err := api.GetActiveByMember(context.Background(), 7)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected unavailable for transport failure, got %v", err)
	}
}

func TestCreateConflictSurfaced(t *testing.T) {
	api, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"tab already open"}`))
	}))

	_, err := api.Create(context.Background(), CreateTabInput{MemberID: 7, MemberAccount: "alice"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAddItemRefetchesTab(t *testing.T) {
	var paths []string
	api, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			json.NewEncoder(w).Encode(domain.Tab{
				ID:          "tab-1",
				TotalAmount: 1500,
				Items: []domain.TabItem{
					{ProductID: "p1", ProductName: "Cola", Price: 1500, Quantity: 1, TotalPrice: 1500},
				},
			})
		}
	}))

	tab, err := api.AddItem(context.Background(), "tab-1", AddItemInput{
		ProductID: "p1", ProductName: "Cola", Price: 1500, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 || paths[0] != "POST /api/tabs/tab-1/items" || paths[1] != "GET /api/tabs/tab-1" {
		t.Fatalf("expected post-then-refetch, got %v", paths)
	}
	if tab.TotalAmount != 1500 {
		t.Fatalf("expected authoritative total 1500, got %d", tab.TotalAmount)
	}
}

func TestItemMutationPathsAreIndexAddressed(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	api, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(domain.Tab{ID: "tab-1"})
	}))

	if _, err := api.UpdateItemQuantity(context.Background(), "tab-1", 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/tabs/tab-1/items/2" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.Unmarshal(gotBody, &body); err != nil || body.Quantity != 3 {
		t.Fatalf("unexpected body %s", gotBody)
	}

	if _, err := api.RemoveItem(context.Background(), "tab-1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/tabs/tab-1/items/0" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestCloseHitsClosePath(t *testing.T) {
	api, _ := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/tabs/tab-1/close" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		now := time.Now().UTC()
		json.NewEncoder(w).Encode(domain.Tab{ID: "tab-1", Status: domain.TabStatusClosed, ClosedAt: &now})
	}))

	tab, err := api.Close(context.Background(), "tab-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tab.Status != domain.TabStatusClosed || tab.ClosedAt == nil {
		t.Fatalf("expected closed tab with timestamp, got %+v", tab)
	}
}
