package api

import (
	"net/http"
	"testing"
)

func TestNewRouter_RoutesRegistered(t *testing.T) {
	h, _, _ := defaultHandler()
	router := NewRouter(h)

	routes := router.Routes()
	want := map[string]bool{
		"/companies":                            false,
		"/companies/:key":                       false,
		"/companies/:key/price-history":         false,
		"/companies/:key/predict":               false,
		"/companies/:key/indicators/:indicator": false,
		"/companies/:key/news/sentiment":        false,
		"/swagger/*any":                         false,
	}
	for _, r := range routes {
		if _, ok := want[r.Path]; ok && r.Method == http.MethodGet {
			want[r.Path] = true
		}
	}
	for path, seen := range want {
		if !seen {
			t.Errorf("route %s not registered", path)
		}
	}
}

func TestNewRouter_SetsRequestID(t *testing.T) {
	h, _, _ := defaultHandler()
	router := NewRouter(h)

	w := doGet(router, "/companies")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

func TestNewRouter_UnknownRoute404(t *testing.T) {
	h, _, _ := defaultHandler()
	router := NewRouter(h)

	w := doGet(router, "/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
