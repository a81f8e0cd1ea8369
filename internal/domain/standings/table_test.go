package standings

import (
	"testing"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/team"
)

func intPtr(v int) *int { return &v }

func finished(division string, round int, homeID string, homeScore int, awayID string, awayScore int) match.Match {
	return match.Match{
		ID:         homeID + "-vs-" + awayID,
		Division:   division,
		Round:      round,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Status:     match.StatusFinished,
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
	}
}

func TestCompute_SingleFinishedMatch(t *testing.T) {
	teams := []team.Team{
		{ID: "a", Division: team.DivisionFirst, Name: "Team A"},
		{ID: "b", Division: team.DivisionFirst, Name: "Team B"},
	}
	matches := []match.Match{finished(team.DivisionFirst, 1, "a", 2, "b", 1)}

	rows := Compute(teams, matches)
	if len(rows) != len(teams) {
		t.Fatalf("expected %d rows, got %d", len(teams), len(rows))
	}

	first := rows[0]
	if first.TeamID != "a" {
		t.Fatalf("expected team a to rank first, got %s", first.TeamID)
	}
	want := Stats{Played: 1, Won: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1, Points: 3}
	if first.Stats != want {
		t.Fatalf("team a stats = %+v, want %+v", first.Stats, want)
	}

	second := rows[1]
	wantB := Stats{Played: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1, Points: 0}
	if second.Stats != wantB {
		t.Fatalf("team b stats = %+v, want %+v", second.Stats, wantB)
	}
}

func TestCompute_BaselineSeedsAndExcludesOldRounds(t *testing.T) {
	teams := []team.Team{
		{
			ID:       "a",
			Division: team.DivisionFirst,
			Name:     "Deportivo Juárez",
			Baseline: &team.Baseline{
				UpToRound: 5,
				Played:    5, Won: 3, Drawn: 1, Lost: 1,
				GoalsFor: 10, GoalsAgainst: 4,
			},
		},
		{ID: "b", Division: team.DivisionFirst, Name: "Atlético Norte"},
	}

	// At the cutoff round: must not count toward team a's live stats.
	atCutoff := finished(team.DivisionFirst, 5, "a", 4, "b", 0)
	afterCutoff := finished(team.DivisionFirst, 6, "a", 1, "b", 1)

	rows := Compute(teams, []match.Match{atCutoff, afterCutoff})

	var rowA Row
	for _, row := range rows {
		if row.TeamID == "a" {
			rowA = row
		}
	}

	want := Stats{
		Played: 6, Won: 3, Drawn: 2, Lost: 1,
		GoalsFor: 11, GoalsAgainst: 5, GoalDifference: 6,
		Points: 11, // baseline 3*3+1 plus one live draw
	}
	if rowA.Stats != want {
		t.Fatalf("team a stats = %+v, want %+v", rowA.Stats, want)
	}
}

func TestCompute_BaselineExclusionKeepsLivePlayedAtZero(t *testing.T) {
	teams := []team.Team{
		{
			ID:       "a",
			Division: team.DivisionSecond,
			Name:     "Team A",
			Baseline: &team.Baseline{UpToRound: 5},
		},
	}
	rows := Compute(teams, []match.Match{finished(team.DivisionSecond, 5, "a", 3, "b", 0)})

	if rows[0].Stats.Played != 0 {
		t.Fatalf("expected live played 0 for match at cutoff round, got %d", rows[0].Stats.Played)
	}
}

func TestCompute_PenaltyPointsAffectRanking(t *testing.T) {
	teams := []team.Team{
		{ID: "a", Division: team.DivisionFirst, Name: "Team A", PenaltyPoints: 3},
		{ID: "b", Division: team.DivisionFirst, Name: "Team B"},
	}
	matches := []match.Match{
		finished(team.DivisionFirst, 1, "a", 1, "b", 0),
		finished(team.DivisionFirst, 2, "b", 1, "a", 1),
	}

	rows := Compute(teams, matches)

	// a: 4 raw points minus 3 penalty = 1; b: 1 raw point = 1.
	// Equal effective points, a has the better goal difference.
	if rows[0].TeamID != "a" {
		t.Fatalf("expected a first on goal difference, got %s", rows[0].TeamID)
	}
	if rows[0].EffectivePoints != 1 || rows[1].EffectivePoints != 1 {
		t.Fatalf("expected both teams on 1 effective point, got %d and %d",
			rows[0].EffectivePoints, rows[1].EffectivePoints)
	}
	if rows[0].Stats.Points != 4 {
		t.Fatalf("penalty must not change raw points, got %d", rows[0].Stats.Points)
	}
}

func TestCompute_NameBreaksFullTies(t *testing.T) {
	teams := []team.Team{
		{ID: "z", Division: team.DivisionThird, Name: "Zorros"},
		{ID: "g", Division: team.DivisionThird, Name: "Gallos"},
		{ID: "n", Division: team.DivisionThird, Name: "Ñandúes"},
	}

	rows := Compute(teams, nil)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].TeamName != "Gallos" || rows[1].TeamName != "Ñandúes" || rows[2].TeamName != "Zorros" {
		t.Fatalf("tie-break order wrong: %s, %s, %s", rows[0].TeamName, rows[1].TeamName, rows[2].TeamName)
	}
	for _, row := range rows {
		if row.Stats != (Stats{}) {
			t.Fatalf("team with no matches should have the zero row, got %+v", row.Stats)
		}
	}
}

func TestCompute_MissingScoresCountAsZero(t *testing.T) {
	teams := []team.Team{
		{ID: "a", Division: team.DivisionFirst, Name: "Team A"},
		{ID: "b", Division: team.DivisionFirst, Name: "Team B"},
	}
	m := match.Match{
		ID:         "m1",
		Division:   team.DivisionFirst,
		Round:      1,
		HomeTeamID: "a",
		AwayTeamID: "b",
		Status:     match.StatusFinished,
	}

	rows := Compute(teams, []match.Match{m})

	for _, row := range rows {
		if row.Stats.Played != 1 || row.Stats.Drawn != 1 {
			t.Fatalf("finished match without scores should count as 0-0 draw, got %+v", row.Stats)
		}
		if row.Stats.GoalsFor != 0 || row.Stats.GoalsAgainst != 0 {
			t.Fatalf("missing scores must contribute zero goals, got %+v", row.Stats)
		}
	}
}

func TestCompute_ScheduledMatchesIgnored(t *testing.T) {
	teams := []team.Team{{ID: "a", Division: team.DivisionFirst, Name: "Team A"}}
	m := finished(team.DivisionFirst, 1, "a", 9, "b", 0)
	m.Status = match.StatusScheduled

	rows := Compute(teams, []match.Match{m})

	if rows[0].Stats.Played != 0 {
		t.Fatalf("scheduled matches must not aggregate, got %+v", rows[0].Stats)
	}
}
