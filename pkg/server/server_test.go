package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/nav"
	"github.com/matzehuels/focusgrid/pkg/observability"
)

// newTestServer serves a home screen: two buttons above a growable shelf
// that already holds "celeste".
func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	root := nav.NewRootBuilder("Home", 4, 6)
	for _, e := range []struct {
		r  geom.Rect
		id string
	}{
		{geom.MustRect(0, 0, 0, 0), "BTN@GAMES"},
		{geom.MustRect(3, 3, 0, 0), "BTN@SETTINGS"},
	} {
		if err := root.AddElement(e.r, e.id); err != nil {
			t.Fatal(err)
		}
	}
	shelf := root.WithSublayout(geom.MustRect(0, 3, 1, 5), "Games", 2, 1)
	if err := shelf.SetGrowable(1, 1, nav.GrowX); err != nil {
		t.Fatal(err)
	}
	tree, err := root.Build()
	if err != nil {
		t.Fatal(err)
	}
	games, _ := tree.Lookup("Games")
	if _, err := tree.Insert(games, "celeste"); err != nil {
		t.Fatal(err)
	}
	n, err := nav.NewNavigator(tree)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(New(n, opts...).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func TestFocus(t *testing.T) {
	srv := newTestServer(t)

	var got focusResponse
	if status := do(t, srv, http.MethodGet, "/focus", "", &got); status != http.StatusOK {
		t.Fatalf("GET /focus status = %d, want 200", status)
	}
	want := focusResponse{FocusID: "BTN@GAMES", Layout: "", Point: [2]int{0, 0}}
	if got != want {
		t.Errorf("GET /focus = %+v, want %+v", got, want)
	}
}

func TestNavigate(t *testing.T) {
	srv := newTestServer(t)

	steps := []struct {
		directive string
		want      resultResponse
	}{
		{"down", resultResponse{Result: "across", FocusID: "celeste", Layout: "Games"}},
		{"up", resultResponse{Result: "across", FocusID: "BTN@GAMES", Layout: ""}},
		{"right", resultResponse{Result: "within", FocusID: "BTN@SETTINGS", Layout: ""}},
		{"right", resultResponse{Result: "no-next-item", FocusID: "BTN@SETTINGS", Layout: ""}},
		// Below BTN@SETTINGS the one-row shelf maps to an empty cell and the
		// move falls out of the bottom of the screen.
		{"down", resultResponse{Result: "no-next-item", FocusID: "BTN@SETTINGS", Layout: ""}},
		{"noop", resultResponse{Result: "within", FocusID: "BTN@SETTINGS", Layout: ""}},
	}
	for _, step := range steps {
		var got resultResponse
		status := do(t, srv, http.MethodPost, "/navigate", `{"directive": "`+step.directive+`"}`, &got)
		if status != http.StatusOK {
			t.Fatalf("navigate %s: status = %d, want 200", step.directive, status)
		}
		if got != step.want {
			t.Errorf("navigate %s = %+v, want %+v", step.directive, got, step.want)
		}
	}
}

func TestNavigateReportsConsistentFocus(t *testing.T) {
	srv := newTestServer(t)
	layoutOf := map[string]string{"BTN@GAMES": "", "BTN@SETTINGS": "", "celeste": "Games"}

	var wg sync.WaitGroup
	for _, directive := range []string{"down", "up", "right", "left"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				resp, err := srv.Client().Post(srv.URL+"/navigate", "application/json",
					strings.NewReader(`{"directive": "`+directive+`"}`))
				if err != nil {
					t.Errorf("navigate %s: %v", directive, err)
					return
				}
				var got resultResponse
				err = json.NewDecoder(resp.Body).Decode(&got)
				resp.Body.Close()
				if err != nil {
					t.Errorf("navigate %s: decode: %v", directive, err)
					return
				}
				if want, ok := layoutOf[got.FocusID]; !ok || got.Layout != want {
					t.Errorf("navigate %s = %+v, focus and layout disagree", directive, got)
				}
			}
		}()
	}
	wg.Wait()
}

func TestErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"bad directive", http.MethodPost, "/navigate", `{"directive": "sideways"}`, http.StatusBadRequest, "INVALID_DIRECTIVE"},
		{"bad json", http.MethodPost, "/navigate", `{"direction": "up"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown focus", http.MethodPost, "/jump", `{"focus_id": "zelda"}`, http.StatusNotFound, "FOCUS_NOT_FOUND"},
		{"empty focus", http.MethodPost, "/jump", `{"focus_id": ""}`, http.StatusBadRequest, "INVALID_IDENTIFIER"},
		{"unknown layout", http.MethodPost, "/items/Music", `{}`, http.StatusNotFound, "LAYOUT_NOT_FOUND"},
		{"bad path", http.MethodPost, "/items/Games//x", `{}`, http.StatusBadRequest, "INVALID_PATH"},
		{"not growable", http.MethodPost, "/items/", `{"focus_id": "x"}`, http.StatusConflict, "NOT_GROWABLE"},
		{"bad format", http.MethodGet, "/diagram?format=png", "", http.StatusBadRequest, "UNSUPPORTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got errorResponse
			status := do(t, srv, tt.method, tt.path, tt.body, &got)
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if string(got.Code) != tt.code {
				t.Errorf("code = %q, want %q (message %q)", got.Code, tt.code, got.Message)
			}
		})
	}
}

func TestInsertAndJump(t *testing.T) {
	srv := newTestServer(t, WithIDGenerator(func() string { return "generated" }))

	var ins insertResponse
	if status := do(t, srv, http.MethodPost, "/items/Games", `{"focus_id": "hades"}`, &ins); status != http.StatusCreated {
		t.Fatalf("insert status = %d, want 201", status)
	}
	want := insertResponse{FocusID: "hades", Layout: "Games", Rect: [4]int{1, 1, 0, 0}}
	if ins != want {
		t.Errorf("insert = %+v, want %+v", ins, want)
	}

	// No body: the identifier is generated and the full grid grows a row.
	if status := do(t, srv, http.MethodPost, "/items/Games", "", &ins); status != http.StatusCreated {
		t.Fatalf("insert status = %d, want 201", status)
	}
	want = insertResponse{FocusID: "generated", Layout: "Games", Rect: [4]int{0, 0, 1, 1}, Expanded: true}
	if ins != want {
		t.Errorf("insert = %+v, want %+v", ins, want)
	}

	var res resultResponse
	if status := do(t, srv, http.MethodPost, "/jump", `{"focus_id": "generated"}`, &res); status != http.StatusOK {
		t.Fatalf("jump status = %d, want 200", status)
	}
	if res != (resultResponse{Result: "across", FocusID: "generated", Layout: "Games"}) {
		t.Errorf("jump = %+v", res)
	}

	if status := do(t, srv, http.MethodPost, "/navigate", `{"directive": "up"}`, &res); status != http.StatusOK {
		t.Fatalf("navigate status = %d", status)
	}
	if res.FocusID != "celeste" || res.Result != "within" {
		t.Errorf("navigate up = %+v, want within celeste", res)
	}
}

func TestTree(t *testing.T) {
	srv := newTestServer(t)

	var got struct {
		ID      string `json:"id"`
		Size    []int  `json:"size"`
		Layouts []struct {
			ID   string `json:"id"`
			Grow struct {
				Items []string `json:"items"`
			} `json:"grow"`
		} `json:"layouts"`
	}
	if status := do(t, srv, http.MethodGet, "/tree", "", &got); status != http.StatusOK {
		t.Fatalf("GET /tree status = %d", status)
	}
	if got.ID != "Home" || len(got.Layouts) != 1 || got.Layouts[0].ID != "Games" {
		t.Fatalf("GET /tree = %+v", got)
	}
	if items := got.Layouts[0].Grow.Items; len(items) != 1 || items[0] != "celeste" {
		t.Errorf("grow items = %v, want [celeste]", items)
	}
}

func TestGridAndDiagram(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path        string
		contentType string
		want        string
	}{
		{"/grid/", "text/plain", "Home 4x6"},
		{"/grid/Games", "text/plain", "celeste"},
		{"/diagram", "text/vnd.graphviz", "digraph Layout"},
		{"/healthz", "", "OK"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := srv.Client().Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			var buf bytes.Buffer
			buf.ReadFrom(resp.Body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d: %s", resp.StatusCode, buf.String())
			}
			if !strings.HasPrefix(resp.Header.Get("Content-Type"), tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", resp.Header.Get("Content-Type"), tt.contentType)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("body missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu     sync.Mutex
	status []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = append(h.status, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	srv := newTestServer(t)
	do(t, srv, http.MethodGet, "/focus", "", nil)
	do(t, srv, http.MethodPost, "/jump", `{"focus_id": "zelda"}`, nil)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.status) != 2 || hooks.status[0] != http.StatusOK || hooks.status[1] != http.StatusNotFound {
		t.Errorf("recorded statuses = %v, want [200 404]", hooks.status)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	root := nav.NewRootBuilder("r", 1, 1)
	if err := root.AddElement(geom.MustRect(0, 0, 0, 0), "only"); err != nil {
		t.Fatal(err)
	}
	tree, err := root.Build()
	if err != nil {
		t.Fatal(err)
	}
	n, err := nav.NewNavigator(tree)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(n).ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return after cancel")
	}
}
