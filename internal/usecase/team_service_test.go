package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/infrastructure/repository/memory"
	"github.com/futliga/liga-api/internal/platform/watch"
)

func newTeamFixture(t *testing.T) (*TeamService, *watch.Hub) {
	t.Helper()

	hub := watch.NewHub()
	service := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()), &sequenceIDGenerator{prefix: "team"}, hub)
	service.now = func() time.Time {
		return time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)
	}

	return service, hub
}

func TestTeamService_CreateTeam(t *testing.T) {
	service, _ := newTeamFixture(t)

	created, err := service.CreateTeam(t.Context(), CreateTeamInput{
		Division: team.DivisionSecond,
		Name:     "  Defensores del Sur  ",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID != "team-001" {
		t.Fatalf("unexpected team id %q", created.ID)
	}
	if created.Name != "Defensores del Sur" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}

	got, err := service.GetTeam(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.Division != team.DivisionSecond {
		t.Fatalf("unexpected division %q", got.Division)
	}
}

func TestTeamService_CreateTeam_UnknownDivision(t *testing.T) {
	service, _ := newTeamFixture(t)

	_, err := service.CreateTeam(t.Context(), CreateTeamInput{Division: "4ta", Name: "Fantasma"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTeamService_RenameTeam(t *testing.T) {
	service, _ := newTeamFixture(t)

	renamed, err := service.RenameTeam(t.Context(), "1ra-union-del-valle", "Union del Valle FC")
	if err != nil {
		t.Fatalf("rename team: %v", err)
	}
	if renamed.Name != "Union del Valle FC" {
		t.Fatalf("unexpected name %q", renamed.Name)
	}

	_, err = service.RenameTeam(t.Context(), "1ra-union-del-valle", "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank name, got %v", err)
	}
}

func TestTeamService_SetBaseline_ReplaceAndClear(t *testing.T) {
	service, _ := newTeamFixture(t)

	updated, err := service.SetBaseline(t.Context(), "1ra-union-del-valle", &team.Baseline{
		UpToRound: 4,
		Played:    4,
		Won:       2,
		Drawn:     1,
		Lost:      1,
		GoalsFor:  7, GoalsAgainst: 5,
	})
	if err != nil {
		t.Fatalf("set baseline: %v", err)
	}
	if updated.Baseline == nil || updated.Baseline.UpToRound != 4 {
		t.Fatalf("unexpected baseline %+v", updated.Baseline)
	}

	cleared, err := service.SetBaseline(t.Context(), "1ra-union-del-valle", nil)
	if err != nil {
		t.Fatalf("clear baseline: %v", err)
	}
	if cleared.Baseline != nil {
		t.Fatalf("expected baseline cleared, got %+v", cleared.Baseline)
	}
}

func TestTeamService_SetBaseline_RejectsInconsistentResults(t *testing.T) {
	service, _ := newTeamFixture(t)

	_, err := service.SetBaseline(t.Context(), "1ra-union-del-valle", &team.Baseline{
		UpToRound: 3,
		Played:    3,
		Won:       3,
		Drawn:     1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTeamService_SetPenaltyPoints(t *testing.T) {
	service, _ := newTeamFixture(t)

	updated, err := service.SetPenaltyPoints(t.Context(), "1ra-union-del-valle", 3)
	if err != nil {
		t.Fatalf("set penalty: %v", err)
	}
	if updated.PenaltyPoints != 3 {
		t.Fatalf("unexpected penalty points %d", updated.PenaltyPoints)
	}

	_, err = service.SetPenaltyPoints(t.Context(), "1ra-union-del-valle", -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative penalty, got %v", err)
	}
}

func TestTeamService_DeleteTeam_PublishesEvent(t *testing.T) {
	service, hub := newTeamFixture(t)

	events, cancel := hub.Subscribe(watch.Topic("teams", team.DivisionFirst), 4)
	defer cancel()

	if err := service.DeleteTeam(t.Context(), "1ra-union-del-valle"); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	select {
	case event := <-events:
		if event.Action != watch.ActionDeleted || event.EntityID != "1ra-union-del-valle" {
			t.Fatalf("unexpected event %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a deleted event")
	}

	_, err := service.GetTeam(t.Context(), "1ra-union-del-valle")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
