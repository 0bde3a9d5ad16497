package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/traderflow/mse-api/internal/domain/apperr"
	"github.com/traderflow/mse-api/internal/domain/dto"
)

func serve(r *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_SetsContextAndHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())

	var inContext string
	r.GET("/ping", func(c *gin.Context) {
		v, _ := c.Get(RequestIDKey)
		inContext = toString(v)
		c.Status(http.StatusOK)
	})

	w := serve(r, "/ping")
	header := w.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	if inContext != header {
		t.Fatalf("context id %q != header id %q", inContext, header)
	}
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperr.Validation("bad page"), want: http.StatusBadRequest},
		{name: "not found", err: apperr.NotFound("no such company"), want: http.StatusNotFound},
		{name: "upstream", err: apperr.Upstream("prediction", errors.New("503"), "call failed"), want: http.StatusBadGateway},
		{name: "store", err: apperr.Store(errors.New("down"), "query failed"), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusForError(tc.err); got != tc.want {
				t.Fatalf("StatusForError = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorHandler_MapsAttachedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(apperr.NotFound("company ZZZ not found"))
	})

	w := serve(r, "/fail")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Message != "company ZZZ not found" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestErrorHandler_SkipsWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"done": true})
		_ = c.Error(errors.New("should be ignored"))
	})

	w := serve(r, "/ok")
	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d, response was overwritten", w.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	w := serve(r, "/panic")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Message != "Internal server error" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestRateLimiter_Blocks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// isolate from other tests sharing the package-level client map
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:9999"

	last := 0
	for i := 0; i < limit+1; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 after %d requests", last, limit+1)
	}
}
