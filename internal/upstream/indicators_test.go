package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/traderflow/mse-api/internal/domain/apperr"
)

const indicatorsBody = `[
	{"short_name":"ALK","date":"2024-01-02","close":105.0,"min":99.0,"max":106.5,"volume":1200,"indicator":"RSI","signal":"BUY"},
	{"short_name":"ALK","date":"2024-01-01","close":100.0,"min":98.0,"max":101.0,"volume":800,"indicator":"RSI","signal":"HOLD"}
]`

func TestGetIndicators_PassesArrayThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ALK/indicators/RSI" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(indicatorsBody))
	}))
	defer srv.Close()

	client := NewIndicatorsClient(testConfig(srv.URL))
	readings, err := client.GetIndicators(context.Background(), "ALK", "RSI")
	if err != nil {
		t.Fatalf("GetIndicators: %v", err)
	}
	if len(readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(readings))
	}
	r0 := readings[0]
	if r0.ShortName != "ALK" || r0.Date != "2024-01-02" || r0.Close != 105.0 || r0.Indicator != "RSI" || r0.Signal != "BUY" {
		t.Fatalf("unexpected reading: %+v", r0)
	}
}

func TestGetIndicators_MemoizesPerKeyIndicatorTuple(t *testing.T) {
	calls := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls[r.URL.Path]++
		_, _ = w.Write([]byte(indicatorsBody))
	}))
	defer srv.Close()

	client := NewIndicatorsClient(testConfig(srv.URL))
	ctx := context.Background()

	first, err := client.GetIndicators(ctx, "ALK", "RSI")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := client.GetIndicators(ctx, "ALK", "RSI")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	// a different tuple must go back upstream
	if _, err := client.GetIndicators(ctx, "ALK", "MACD"); err != nil {
		t.Fatalf("different indicator: %v", err)
	}
	if _, err := client.GetIndicators(ctx, "KMB", "RSI"); err != nil {
		t.Fatalf("different key: %v", err)
	}

	if calls["/ALK/indicators/RSI"] != 1 {
		t.Fatalf("RSI tuple called %d times, want 1", calls["/ALK/indicators/RSI"])
	}
	if calls["/ALK/indicators/MACD"] != 1 || calls["/KMB/indicators/RSI"] != 1 {
		t.Fatalf("distinct tuples not fetched: %v", calls)
	}
	if len(first) != len(second) || first[0] != second[0] {
		t.Fatalf("cached list differs")
	}
}

func TestGetIndicators_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewIndicatorsClient(testConfig(srv.URL))
	_, err := client.GetIndicators(context.Background(), "ALK", "RSI")
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
