package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"zucit/internal/api/models"
	"zucit/internal/logging"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiterPerClient(t *testing.T) {
	l := NewRateLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if !l.Allow("a") {
		t.Fatalf("first request should pass")
	}
	if l.Allow("a") {
		t.Fatalf("second request within the same instant should be limited")
	}
	if !l.Allow("b") {
		t.Fatalf("other clients have their own bucket")
	}

	now = now.Add(time.Second)
	if !l.Allow("a") {
		t.Fatalf("bucket should refill after one second")
	}
}

func TestRateLimiterPrunesIdleClients(t *testing.T) {
	l := NewRateLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 0; i < limiterPruneSize; i++ {
		l.Allow("client-" + strconv.Itoa(i))
	}
	now = now.Add(limiterIdleTTL + time.Second)
	l.Allow("fresh")

	if len(l.clients) != 1 {
		t.Fatalf("expected idle clients to be pruned, have %d", len(l.clients))
	}
}

func TestLoggerRequestID(t *testing.T) {
	r := gin.New()
	r.Use(Logger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	var seen string
	var ctxLogger *slog.Logger
	r.GET("/x", func(c *gin.Context) {
		seen = RequestID(c)
		ctxLogger = logging.FromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if seen != "abc-123" || w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("incoming request id not reused: %q / %q", seen, w.Header().Get(RequestIDHeader))
	}
	if ctxLogger == nil || ctxLogger == slog.Default() {
		t.Fatalf("expected a request-scoped logger in the context")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if len(w.Header().Get(RequestIDHeader)) != 36 {
		t.Fatalf("expected a generated uuid, got %q", w.Header().Get(RequestIDHeader))
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != models.CodeInternalError || resp.Error.Message != "boom" {
		t.Fatalf("unexpected body %+v", resp)
	}
}
