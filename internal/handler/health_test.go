package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nexoradevlabs/site/internal/service"
)

type mockStatsStater struct {
	state service.CacheState
}

func (m *mockStatsStater) State() service.CacheState { return m.state }

func TestHealth_OK(t *testing.T) {
	h := New(&mockStatsStater{state: service.CacheReady}, true)
	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status=ok, got %q", resp.Status)
	}
	if resp.Message != "Nexora DevLabs" {
		t.Errorf("expected message='Nexora DevLabs', got %q", resp.Message)
	}
	if resp.Mail != "configured" || resp.Stats != "ready" {
		t.Errorf("unexpected components: mail=%q stats=%q", resp.Mail, resp.Stats)
	}
}

// TestHealth_Degraded verifies that missing mail credentials and a failed stats
// fetch are reported without failing the health check.
func TestHealth_Degraded(t *testing.T) {
	h := New(&mockStatsStater{state: service.CacheFailed}, false)
	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Mail != "not_configured" {
		t.Errorf("expected mail=not_configured, got %q", resp.Mail)
	}
	if resp.Stats != "failed" {
		t.Errorf("expected stats=failed, got %q", resp.Stats)
	}
}
