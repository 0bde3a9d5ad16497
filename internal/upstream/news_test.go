package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/traderflow/mse-api/internal/domain/apperr"
)

func TestSentiment_PassesBodyThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news/ALK/sentiment" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"sentiment":"positive","score":0.87}`))
	}))
	defer srv.Close()

	client := NewNewsClient(testConfig(srv.URL))
	s, err := client.Sentiment(context.Background(), "ALK")
	if err != nil {
		t.Fatalf("Sentiment: %v", err)
	}
	if s.Sentiment != "positive" || s.Score != 0.87 {
		t.Fatalf("unexpected sentiment: %+v", s)
	}
}

// Failures propagate like every other proxy; nothing is swallowed into an
// empty result.
func TestSentiment_FailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewNewsClient(testConfig(srv.URL))
	_, err := client.Sentiment(context.Background(), "ZZZ")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	var e *apperr.Error
	if !errors.As(err, &e) || e.Kind != apperr.KindUpstream || e.Upstream != "news" {
		t.Fatalf("expected news upstream error, got %v", err)
	}
}

func TestSentiment_Memoizes(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"sentiment":"neutral","score":0.5}`))
	}))
	defer srv.Close()

	client := NewNewsClient(testConfig(srv.URL))
	ctx := context.Background()
	if _, err := client.Sentiment(ctx, "ALK"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := client.Sentiment(ctx, "ALK"); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if calls != 1 {
		t.Fatalf("upstream called %d times, want 1", calls)
	}
}
