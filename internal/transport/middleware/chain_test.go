package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/nazm-backend/internal/config"
	"github.com/heartmarshall/nazm-backend/pkg/ctxutil"
)

func tag(name string, trace *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain_FirstIsOutermost(t *testing.T) {
	t.Parallel()

	var trace []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "handler")
	})

	Chain(tag("request_id", &trace), nil, tag("logger", &trace), tag("recovery", &trace))(handler).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := strings.Join(trace, ">"); got != "request_id>logger>recovery>handler" {
		t.Errorf("unexpected order %q", got)
	}
}

func TestChain_NoMiddleware(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	// The router passes a nil limiter when rate limiting is off.
	var limit Middleware
	Chain(limit)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/meaning/dil", nil))

	if !called {
		t.Error("expected handler to be called")
	}
}

func TestChain_RequestContextReachesHandler(t *testing.T) {
	t.Parallel()

	cors := config.CORSConfig{AllowedOrigins: "https://nazm.example", AllowedMethods: "GET,OPTIONS", MaxAge: 600}

	var gotID, gotIP string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
		gotIP, _ = ctxutil.ClientIPFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/meaning/dil", nil)
	req.Header.Set("Origin", "https://nazm.example")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()

	Chain(RequestID(), ClientIP(true), CORS(cors))(handler).ServeHTTP(rec, req)

	if gotID == "" || gotID != rec.Header().Get(RequestIDHeader) {
		t.Errorf("request id in context %q, in response %q", gotID, rec.Header().Get(RequestIDHeader))
	}
	if gotIP != "203.0.113.7" {
		t.Errorf("expected first forwarded hop, got %q", gotIP)
	}
	if got := rec.Header().Get("Access-Control-Expose-Headers"); got != RequestIDHeader {
		t.Errorf("expected request id header exposed, got %q", got)
	}
}

func TestChain_PreflightStillGetsRequestID(t *testing.T) {
	t.Parallel()

	cors := config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,OPTIONS", AllowedHeaders: "Content-Type", MaxAge: 600}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/annotate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	Chain(RequestID(), CORS(cors))(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id on the preflight response")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow origin %q", got)
	}
}
