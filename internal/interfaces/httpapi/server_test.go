package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/futliga/liga-api/internal/domain/user"
	"github.com/futliga/liga-api/internal/infrastructure/repository/memory"
	idgen "github.com/futliga/liga-api/internal/platform/id"
	"github.com/futliga/liga-api/internal/platform/logging"
	"github.com/futliga/liga-api/internal/platform/watch"
	"github.com/futliga/liga-api/internal/usecase"
)

type stubVerifier struct {
	principals map[string]user.Principal
}

func (v *stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	principal, ok := v.principals[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return principal, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hub := watch.NewHub()
	ids := idgen.NewUUIDGenerator()
	logger := logging.NewNop()

	suspensions := memory.NewSuspensionRepository(nil)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), suspensions)
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	avisoRepo := memory.NewAvisoRepository(memory.SeedAvisos())
	contactRepo := memory.NewContactRepository(nil)
	albumRepo := memory.NewAlbumRepository(nil)

	handler := NewHandler(
		usecase.NewTeamService(teamRepo, ids, hub),
		usecase.NewMatchService(matchRepo, teamRepo, playerRepo, suspensions, ids, hub, 2),
		usecase.NewPlayerService(playerRepo, teamRepo, nil, nil, ids, hub),
		usecase.NewStandingsService(teamRepo, matchRepo),
		usecase.NewScorerService(matchRepo, playerRepo),
		usecase.NewSuspensionService(suspensions, hub),
		usecase.NewAvisoService(avisoRepo, ids, hub),
		usecase.NewContactService(contactRepo, ids),
		usecase.NewAlbumService(albumRepo, nil, nil, ids, hub),
		hub,
		logger,
	)

	verifier := &stubVerifier{principals: map[string]user.Principal{
		"admin-token":   {UserID: "user-admin", Email: "admin@liga.example", Role: user.RoleAdmin},
		"referee-token": {UserID: "user-ref", Email: "arbitro@liga.example", Role: user.RoleReferee},
	}}

	return NewRouter(handler, verifier, logger, []string{"*"})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_PublicStandings(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/divisions/1ra/standings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	rows, ok := body["data"].([]any)
	if !ok || len(rows) == 0 {
		t.Fatalf("expected non-empty standings data, got %v", body["data"])
	}
	first, _ := rows[0].(map[string]any)
	if _, ok := first["effective_points"]; !ok {
		t.Fatalf("expected effective_points in standings row, got %v", first)
	}
}

func TestRouter_UnknownDivisionRejected(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/divisions/4ta/standings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_AdminRouteRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/teams", strings.NewReader(`{"division":"1ra","name":"Los Andes"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_AdminRouteRejectsRefereeRole(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/teams", strings.NewReader(`{"division":"1ra","name":"Los Andes"}`))
	req.Header.Set("Authorization", "Bearer referee-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_AdminCreatesTeam(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/teams", strings.NewReader(`{"division":"2da","name":"Los Andes"}`))
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["name"].(string); got != "Los Andes" {
		t.Fatalf("unexpected team name: %v", data["name"])
	}
	if got, _ := data["division"].(string); got != "2da" {
		t.Fatalf("unexpected division: %v", data["division"])
	}
}

func TestRouter_RefereeCanFinalizeOwnRoute(t *testing.T) {
	router := newTestRouter(t)

	// The referee group also covers GET match detail.
	req := httptest.NewRequest(http.MethodGet, "/v1/matches/m-0401", nil)
	req.Header.Set("Authorization", "Bearer referee-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ContactSubmitAndAdminInbox(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"name":"Vecino","email":"vecino@example.com","body":"Consulta sobre la cancha"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/contact/messages", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	items, _ := body["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one inbox message, got %d", len(items))
	}
}
