package preview

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/cache"
	"github.com/matzehuels/ringlayout/pkg/config"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
)

const ringFile = `
[container]
width = 200
height = 200

[ring]
radius = 80
angle_seed = -90

[[item]]
label = "a"

[[item]]
label = "b"
`

func newTestServer(t *testing.T, c cache.Cache, entrance time.Duration) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	f, err := config.Parse([]byte(ringFile))
	if err != nil {
		t.Fatalf("config.Parse() error: %v", err)
	}
	doc, l, err := pipeline.Build(f, pipeline.Options{Logger: logger})
	if err != nil {
		t.Fatalf("pipeline.Build() error: %v", err)
	}
	s := NewServer(doc, l, pipeline.NewRunner(c, nil, logger), Options{Entrance: entrance, Logger: logger})
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func listItems(t *testing.T, s *Server) []itemResponse {
	t.Helper()
	w := do(t, s, http.MethodGet, "/items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /items status = %d", w.Code)
	}
	var items []itemResponse
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	return items
}

func TestArtifacts(t *testing.T) {
	s := newTestServer(t, nil, 0)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/ring.svg", "image/svg+xml", "<svg"},
		{"/ring.json", "application/json", `"strategy": "declarative"`},
		{"/ring.dot", "text/vnd.graphviz", "graph ring {"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, s, http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if got := w.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestArtifactCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := newTestServer(t, c, 0)

	if got := do(t, s, http.MethodGet, "/ring.svg", "").Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", got)
	}
	if got := do(t, s, http.MethodGet, "/ring.svg", "").Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", got)
	}

	do(t, s, http.MethodPost, "/items", `{"label":"c"}`)
	if got := do(t, s, http.MethodGet, "/ring.svg", "").Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("X-Cache after change = %q, want MISS", got)
	}
}

func TestInsertAndRemove(t *testing.T) {
	s := newTestServer(t, nil, 0)

	w := do(t, s, http.MethodPost, "/items", `{"label":"c","index":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /items status = %d: %s", w.Code, w.Body)
	}
	var created itemResponse
	_ = json.NewDecoder(w.Body).Decode(&created)
	if created.Index != 1 || created.Angle != 30 || !created.Entering {
		t.Errorf("created = %+v", created)
	}

	items := listItems(t, s)
	if len(items) != 3 || items[1].Label != "c" {
		t.Fatalf("items = %+v", items)
	}
	for i, want := range []int{-90, 30, 150} {
		if items[i].Angle != want {
			t.Errorf("items[%d].Angle = %d, want %d", i, items[i].Angle, want)
		}
	}

	w = do(t, s, http.MethodDelete, "/items/0", "")
	if w.Code != http.StatusOK {
		t.Fatalf("DELETE /items/0 status = %d", w.Code)
	}
	var removed itemResponse
	_ = json.NewDecoder(w.Body).Decode(&removed)
	if removed.Label != "a" || removed.Index != 0 {
		t.Errorf("removed = %+v", removed)
	}

	w = do(t, s, http.MethodDelete, "/items", "")
	_ = json.NewDecoder(w.Body).Decode(&removed)
	if w.Code != http.StatusOK || removed.Label != "b" || removed.Index != 1 {
		t.Errorf("pop = %d %+v", w.Code, removed)
	}
}

func TestInsertAppendsByDefault(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, http.MethodPost, "/items", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /items status = %d", w.Code)
	}
	var created itemResponse
	_ = json.NewDecoder(w.Body).Decode(&created)
	if created.Index != 2 {
		t.Errorf("created index = %d, want 2", created.Index)
	}
}

func TestRemoveFromEmptyRing(t *testing.T) {
	s := newTestServer(t, nil, 0)
	do(t, s, http.MethodDelete, "/items", "")
	do(t, s, http.MethodDelete, "/items", "")

	if w := do(t, s, http.MethodDelete, "/items", ""); w.Code != http.StatusNoContent {
		t.Errorf("pop on empty ring status = %d, want 204", w.Code)
	}
	if w := do(t, s, http.MethodDelete, "/items/3", ""); w.Code != http.StatusNoContent {
		t.Errorf("remove on empty ring status = %d, want 204", w.Code)
	}
}

func TestBadRequests(t *testing.T) {
	s := newTestServer(t, nil, 0)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"bad index", http.MethodDelete, "/items/first", ""},
		{"bad json", http.MethodPost, "/items", "{"},
		{"bad class", http.MethodPost, "/items", `{"label":"x","class":"9 lives"}`},
		{"control label", http.MethodPost, "/items", `{"label":"a\u0007"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, tt.method, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			var e errorResponse
			if err := json.NewDecoder(w.Body).Decode(&e); err != nil || e.Code == "" {
				t.Errorf("error body = %+v, %v", e, err)
			}
		})
	}
}

func TestSettle(t *testing.T) {
	s := newTestServer(t, nil, 0)
	do(t, s, http.MethodPost, "/items", `{"label":"c"}`)
	do(t, s, http.MethodPost, "/items", `{"label":"d"}`)

	w := do(t, s, http.MethodPost, "/items/settle", "")
	var got map[string]int
	_ = json.NewDecoder(w.Body).Decode(&got)
	if got["settled"] != 2 {
		t.Errorf("settled = %v, want 2", got)
	}
	for _, it := range listItems(t, s) {
		if it.Entering {
			t.Errorf("item %s still entering", it.Label)
		}
	}
}

func TestEntranceTimer(t *testing.T) {
	s := newTestServer(t, nil, 10*time.Millisecond)
	do(t, s, http.MethodPost, "/items", `{"label":"c"}`)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		items := listItems(t, s)
		if !items[len(items)-1].Entering {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("entrance did not complete")
}

func TestEntranceTimerCancelledOnRemove(t *testing.T) {
	s := newTestServer(t, nil, time.Hour)
	do(t, s, http.MethodPost, "/items", `{"label":"c"}`)
	do(t, s, http.MethodDelete, "/items", "")

	s.mu.Lock()
	n := len(s.timers)
	s.mu.Unlock()
	if n != 0 {
		t.Errorf("pending timers = %d, want 0", n)
	}
}
