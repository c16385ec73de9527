package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type cachePingerMock struct {
	err error
}

func (m *cachePingerMock) Ping(_ context.Context) error {
	return m.err
}

type staticStatusMock struct {
	loaded  bool
	entries int
}

func (m *staticStatusMock) Loaded() bool { return m.loaded }
func (m *staticStatusMock) Len() int     { return m.entries }

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&cachePingerMock{err: errors.New("down")}, &staticStatusMock{}, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		loaded     bool
		wantCode   int
		wantStatus string
	}{
		{name: "all up", loaded: true, wantCode: http.StatusOK, wantStatus: "ok"},
		{name: "runtime cache down", pingErr: errors.New("connection refused"), loaded: true, wantCode: http.StatusServiceUnavailable, wantStatus: "down"},
		{name: "static cache missing", loaded: false, wantCode: http.StatusServiceUnavailable, wantStatus: "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(&cachePingerMock{err: tt.pingErr}, &staticStatusMock{loaded: tt.loaded}, "test-version")

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rec := httptest.NewRecorder()
			h.Ready(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if resp := decodeHealth(t, rec); resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
		})
	}
}

func TestHealth_AllUp(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&cachePingerMock{}, &staticStatusMock{loaded: true, entries: 42}, "v1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Version != "v1.2.3" {
		t.Errorf("expected version 'v1.2.3', got %q", resp.Version)
	}

	rc, ok := resp.Components["runtime_cache"]
	if !ok {
		t.Fatal("expected 'runtime_cache' component")
	}
	if rc.Status != "ok" || rc.Latency == "" {
		t.Errorf("unexpected runtime_cache component: %+v", rc)
	}

	sc, ok := resp.Components["static_cache"]
	if !ok {
		t.Fatal("expected 'static_cache' component")
	}
	if sc.Status != "ok" || sc.Entries == nil || *sc.Entries != 42 {
		t.Errorf("unexpected static_cache component: %+v", sc)
	}
}

func TestHealth_StaticCacheMissingDegrades(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&cachePingerMock{}, &staticStatusMock{}, "v1")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "degraded" {
		t.Errorf("expected status 'degraded', got %q", resp.Status)
	}
	if got := resp.Components["static_cache"].Status; got != "missing" {
		t.Errorf("expected static_cache 'missing', got %q", got)
	}
}

func TestHealth_RuntimeCacheDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&cachePingerMock{err: errors.New("dial tcp: connection refused")}, &staticStatusMock{loaded: true}, "v1")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
	rc := resp.Components["runtime_cache"]
	if rc.Status != "down" || rc.Error == "" {
		t.Errorf("unexpected runtime_cache component: %+v", rc)
	}
}
