package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthz_AlwaysOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(func() error { return errors.New("db down") }).Register(r)

	w := doGet(r, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestReadyz(t *testing.T) {
	cases := []struct {
		name   string
		ping   func() error
		status int
	}{
		{name: "ready", ping: func() error { return nil }, status: http.StatusOK},
		{name: "nil ping", ping: nil, status: http.StatusOK},
		{name: "db down", ping: func() error { return errors.New("refused") }, status: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)

			w := doGet(r, "/readyz")
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
		})
	}
}
