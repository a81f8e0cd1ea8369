package authd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"github.com/futliga/liga-api/internal/platform/logging"
	"github.com/futliga/liga-api/internal/platform/resilience"
	"github.com/futliga/liga-api/internal/usecase"
)

func TestClientVerifyAccessToken_SendsAdminKeyAndParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-admin-key"); got != "admin-secret" {
			t.Fatalf("unexpected x-admin-key: %s", got)
		}

		var req map[string]string
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Fatalf("unexpected token value: %s", req["token"])
		}

		w.Header().Set("Content-Type", "application/json")
		_ = sonic.ConfigDefault.NewEncoder(w).Encode(map[string]any{
			"active":  true,
			"user_id": "user-123",
			"email":   "arbitro@liga.example",
			"role":    "arbitro",
		})
	}))
	defer srv.Close()

	logger := logging.NewNop()
	client := NewClient(
		srv.Client(),
		srv.URL,
		"/v1/auth/introspect",
		"admin-secret",
		resilience.CircuitBreakerConfig{Enabled: false},
		logger,
	)

	principal, err := client.VerifyAccessToken(t.Context(), "token-abc")
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}

	if principal.UserID != "user-123" {
		t.Fatalf("unexpected user id: %s", principal.UserID)
	}
	if principal.Role != "arbitro" {
		t.Fatalf("unexpected role: %s", principal.Role)
	}
}

func TestClientVerifyAccessToken_InactiveTokenIsUnauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = sonic.ConfigDefault.NewEncoder(w).Encode(map[string]any{"active": false})
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "/introspect", "", resilience.CircuitBreakerConfig{Enabled: false}, nil)

	if _, err := client.VerifyAccessToken(t.Context(), "expired"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_DeniedStatusIsUnauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "/introspect", "", resilience.CircuitBreakerConfig{Enabled: false}, nil)

	if _, err := client.VerifyAccessToken(t.Context(), "bad-token"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_CircuitOpensAfterServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(
		srv.Client(),
		srv.URL,
		"/introspect",
		"",
		resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1},
		logging.NewNop(),
	)

	for i := 0; i < 2; i++ {
		if _, err := client.VerifyAccessToken(t.Context(), "token"); err == nil {
			t.Fatal("expected failure from server error")
		}
	}

	if _, err := client.VerifyAccessToken(t.Context(), "token"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected circuit to stop the third call, saw %d calls", calls.Load())
	}
}
