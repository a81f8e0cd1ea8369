package usecase

import (
	"errors"
	"testing"

	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/infrastructure/repository/memory"
)

func TestStandingsService_Standings_SeedsBaselineAndAggregates(t *testing.T) {
	suspensionRepo := memory.NewSuspensionRepository(nil)
	service := NewStandingsService(
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewMatchRepository(memory.SeedMatches(), suspensionRepo),
	)

	rows, err := service.Standings(t.Context(), team.DivisionFirst)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("expected a row per team, got %d", len(rows))
	}

	// Atlético Norte: baseline 2W 1D plus the finished round-4 home win.
	top := rows[0]
	if top.TeamName != "Atlético Norte" {
		t.Fatalf("unexpected leader: %s", top.TeamName)
	}
	if top.Stats.Played != 4 || top.Stats.Won != 3 || top.Stats.Drawn != 1 {
		t.Fatalf("unexpected leader stats: %+v", top.Stats)
	}
	if top.EffectivePoints != 10 {
		t.Fatalf("expected 10 effective points, got %d", top.EffectivePoints)
	}

	for _, row := range rows {
		if row.TeamName != "Unión del Valle" {
			continue
		}
		if row.PenaltyPoints != 2 || row.EffectivePoints != row.Stats.Points-2 {
			t.Fatalf("penalty not applied: %+v", row)
		}
	}
}

func TestStandingsService_Standings_UnknownDivision(t *testing.T) {
	suspensionRepo := memory.NewSuspensionRepository(nil)
	service := NewStandingsService(
		memory.NewTeamRepository(nil),
		memory.NewMatchRepository(nil, suspensionRepo),
	)

	if _, err := service.Standings(t.Context(), "4ta"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestScorerService_TopScorers(t *testing.T) {
	suspensionRepo := memory.NewSuspensionRepository(nil)
	service := NewScorerService(
		memory.NewMatchRepository(memory.SeedMatches(), suspensionRepo),
		memory.NewPlayerRepository(memory.SeedPlayers()),
	)

	got, err := service.TopScorers(t.Context(), team.DivisionFirst)
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected two scorers, got %d", len(got))
	}
	if got[0].PlayerName != "Martín Aguirre" || got[0].Goals != 2 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	if got[1].PlayerName != "Ángel Correa" || got[1].Goals != 1 {
		t.Fatalf("unexpected runner-up: %+v", got[1])
	}
}
