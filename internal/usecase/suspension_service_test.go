package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/suspension"
	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/infrastructure/repository/memory"
	"github.com/futliga/liga-api/internal/platform/watch"
)

func seededSuspensionService(t *testing.T) (*SuspensionService, *memory.SuspensionRepository) {
	t.Helper()

	repo := memory.NewSuspensionRepository([]suspension.Suspension{
		suspension.New(
			"sus-001", "pl-005", "Federico Espinoza", "1ra-union-del-valle",
			team.DivisionFirst, "m-0401", match.ReasonDirectRed, 4, 1,
			time.Date(2026, time.March, 8, 18, 0, 0, 0, time.UTC),
		),
	})

	return NewSuspensionService(repo, watch.NewHub()), repo
}

func TestSuspensionService_SetGames_RecomputesDerivedFields(t *testing.T) {
	service, _ := seededSuspensionService(t)

	got, err := service.SetGames(t.Context(), "sus-001", 3)
	if err != nil {
		t.Fatalf("set games: %v", err)
	}

	if got.Games != 3 {
		t.Fatalf("expected 3 games, got %d", got.Games)
	}
	wantMissed := []int{5, 6, 7}
	if len(got.MissedRounds) != len(wantMissed) {
		t.Fatalf("unexpected missed rounds: %v", got.MissedRounds)
	}
	for i, round := range wantMissed {
		if got.MissedRounds[i] != round {
			t.Fatalf("unexpected missed rounds: %v", got.MissedRounds)
		}
	}
	if got.ReturnRound != 8 {
		t.Fatalf("expected return round 8, got %d", got.ReturnRound)
	}
	if !got.IsActive() {
		t.Fatalf("editing games must not change status, got %s", got.Status)
	}
}

func TestSuspensionService_SetGames_RejectsZero(t *testing.T) {
	service, _ := seededSuspensionService(t)

	if _, err := service.SetGames(t.Context(), "sus-001", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSuspensionService_MarkServed_Idempotent(t *testing.T) {
	service, repo := seededSuspensionService(t)

	first, err := service.MarkServed(t.Context(), "sus-001")
	if err != nil {
		t.Fatalf("mark served: %v", err)
	}
	if first.IsActive() {
		t.Fatal("expected suspension to be served")
	}

	second, err := service.MarkServed(t.Context(), "sus-001")
	if err != nil {
		t.Fatalf("second mark served: %v", err)
	}
	if second.Status != suspension.StatusServed {
		t.Fatalf("unexpected status: %s", second.Status)
	}

	if _, active, _ := repo.ActiveByPlayer(t.Context(), "pl-005"); active {
		t.Fatal("player should no longer carry an active suspension")
	}
}

func TestSuspensionService_ListSuspensions_OnlyActive(t *testing.T) {
	service, _ := seededSuspensionService(t)

	if _, err := service.MarkServed(t.Context(), "sus-001"); err != nil {
		t.Fatalf("mark served: %v", err)
	}

	active, err := service.ListSuspensions(t.Context(), team.DivisionFirst, true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active suspensions, got %d", len(active))
	}

	all, err := service.ListSuspensions(t.Context(), team.DivisionFirst, false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one suspension, got %d", len(all))
	}
}

func TestSuspensionService_GetSuspension_NotFound(t *testing.T) {
	service, _ := seededSuspensionService(t)

	if _, err := service.GetSuspension(t.Context(), "sus-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
