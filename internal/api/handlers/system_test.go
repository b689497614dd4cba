package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmerino/portfolio-dashboard/internal/api/handlers"
)

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy when the database responds", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/api/system/health", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}

		var resp handlers.HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "healthy" || resp.Database != "connected" {
			t.Errorf("Unexpected health payload: %+v", resp)
		}
	})

	t.Run("unhealthy when the database is down", func(t *testing.T) {
		router, db, _ := newTestRouter(t)
		db.Close()

		rec := doJSON(t, router, http.MethodGet, "/api/system/health", nil)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected 503, got %d", rec.Code)
		}

		var resp handlers.HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "unhealthy" {
			t.Errorf("Expected unhealthy status, got %q", resp.Status)
		}
	})
}
