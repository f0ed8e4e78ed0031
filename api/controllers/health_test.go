package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/storefront-backend/pkg/config"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthLive(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	rec := httptest.NewRecorder()
	HealthLive(cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Storefront-Env") != "dev" {
		t.Fatalf("expected env header")
	}
}

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}

	tests := []struct {
		name   string
		db     Pinger
		cache  Pinger
		status int
	}{
		{"db only", stubPinger{}, nil, http.StatusOK},
		{"db and redis", stubPinger{}, stubPinger{}, http.StatusOK},
		{"db down", stubPinger{err: errors.New("dial tcp: refused")}, nil, http.StatusServiceUnavailable},
		{"redis down", stubPinger{}, stubPinger{err: errors.New("timeout")}, http.StatusServiceUnavailable},
		{"no db", nil, nil, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		HealthReady(cfg, tt.db, tt.cache, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != tt.status {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.status, rec.Code)
		}
	}
}
