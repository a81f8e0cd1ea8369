package memory

import (
	"time"

	"github.com/futliga/liga-api/internal/domain/aviso"
	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/player"
	"github.com/futliga/liga-api/internal/domain/team"
)

// Seed data lets the service run without postgres for local development.

var seedTime = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:       "1ra-atletico-norte",
			Division: team.DivisionFirst,
			Name:     "Atlético Norte",
			Baseline: &team.Baseline{
				UpToRound: 3, Played: 3, Won: 2, Drawn: 1, Lost: 0,
				GoalsFor: 7, GoalsAgainst: 3,
			},
			CreatedAt: seedTime,
		},
		{
			ID:       "1ra-deportivo-sur",
			Division: team.DivisionFirst,
			Name:     "Deportivo Sur",
			Baseline: &team.Baseline{
				UpToRound: 3, Played: 3, Won: 1, Drawn: 1, Lost: 1,
				GoalsFor: 5, GoalsAgainst: 4,
			},
			CreatedAt: seedTime,
		},
		{
			ID:            "1ra-union-del-valle",
			Division:      team.DivisionFirst,
			Name:          "Unión del Valle",
			PenaltyPoints: 2,
			CreatedAt:     seedTime,
		},
		{ID: "1ra-sporting-centro", Division: team.DivisionFirst, Name: "Sporting Centro", CreatedAt: seedTime},
		{ID: "2da-racing-obrero", Division: team.DivisionSecond, Name: "Racing Obrero", CreatedAt: seedTime},
		{ID: "2da-defensores-oeste", Division: team.DivisionSecond, Name: "Defensores del Oeste", CreatedAt: seedTime},
		{ID: "3ra-juventud-unida", Division: team.DivisionThird, Name: "Juventud Unida", CreatedAt: seedTime},
		{ID: "3ra-el-porvenir", Division: team.DivisionThird, Name: "El Porvenir", CreatedAt: seedTime},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-001", Name: "Martín Aguirre", Age: 27, Division: team.DivisionFirst, TeamID: "1ra-atletico-norte", TeamName: "Atlético Norte", CreatedAt: seedTime},
		{ID: "pl-002", Name: "Lucas Benítez", Age: 24, Division: team.DivisionFirst, TeamID: "1ra-atletico-norte", TeamName: "Atlético Norte", CreatedAt: seedTime},
		{ID: "pl-003", Name: "Ángel Correa", Age: 31, Division: team.DivisionFirst, TeamID: "1ra-deportivo-sur", TeamName: "Deportivo Sur", CreatedAt: seedTime},
		{ID: "pl-004", Name: "Nicolás Duarte", Age: 22, Division: team.DivisionFirst, TeamID: "1ra-deportivo-sur", TeamName: "Deportivo Sur", CreatedAt: seedTime},
		{ID: "pl-005", Name: "Federico Espinoza", Age: 29, Division: team.DivisionFirst, TeamID: "1ra-union-del-valle", TeamName: "Unión del Valle", CreatedAt: seedTime},
		{ID: "pl-006", Name: "Gonzalo Ferreyra", Age: 26, Division: team.DivisionFirst, TeamID: "1ra-sporting-centro", TeamName: "Sporting Centro", CreatedAt: seedTime},
		{ID: "pl-007", Name: "Hernán Giménez", Age: 33, Division: team.DivisionSecond, TeamID: "2da-racing-obrero", TeamName: "Racing Obrero", CreatedAt: seedTime},
		{ID: "pl-008", Name: "Iván Herrera", Age: 20, Division: team.DivisionSecond, TeamID: "2da-defensores-oeste", TeamName: "Defensores del Oeste", CreatedAt: seedTime},
		{ID: "pl-009", Name: "Joaquín Ibarra", Age: 25, Division: team.DivisionThird, TeamID: "3ra-juventud-unida", TeamName: "Juventud Unida", CreatedAt: seedTime},
		{ID: "pl-010", Name: "Kevin Juárez", Age: 23, Division: team.DivisionThird, TeamID: "3ra-el-porvenir", TeamName: "El Porvenir", CreatedAt: seedTime},
	}
}

func SeedMatches() []match.Match {
	homeWin := func(h, a int) (*int, *int) { return &h, &a }
	h1, a1 := homeWin(2, 1)

	return []match.Match{
		{
			ID:         "m-0401",
			Division:   team.DivisionFirst,
			Round:      4,
			KickoffAt:  seedTime.Add(6 * 24 * time.Hour),
			Field:      "Cancha Municipal 1",
			HomeTeamID: "1ra-atletico-norte",
			AwayTeamID: "1ra-deportivo-sur",
			Status:     match.StatusFinished,
			HomeScore:  h1,
			AwayScore:  a1,
			Goals:      map[string]int{"pl-001": 2, "pl-003": 1},
			CreatedAt:  seedTime,
		},
		{
			ID:         "m-0402",
			Division:   team.DivisionFirst,
			Round:      4,
			KickoffAt:  seedTime.Add(6 * 24 * time.Hour),
			Field:      "Cancha Municipal 2",
			HomeTeamID: "1ra-union-del-valle",
			AwayTeamID: "1ra-sporting-centro",
			Status:     match.StatusScheduled,
			CreatedAt:  seedTime,
		},
		{
			ID:         "m-0501",
			Division:   team.DivisionFirst,
			Round:      5,
			KickoffAt:  seedTime.Add(13 * 24 * time.Hour),
			Field:      "Cancha Municipal 1",
			HomeTeamID: "1ra-deportivo-sur",
			AwayTeamID: "1ra-union-del-valle",
			Status:     match.StatusScheduled,
			CreatedAt:  seedTime,
		},
	}
}

func SeedAvisos() []aviso.Aviso {
	return []aviso.Aviso{
		{
			ID:        "av-001",
			Title:     "Inicio de la segunda rueda",
			Body:      "La segunda rueda del torneo comienza el próximo domingo. Los horarios de cancha se publican el viernes.",
			CreatedAt: seedTime,
		},
	}
}
