package standings

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/team"
)

// Stats is one team's accumulated line in the table.
type Stats struct {
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// Row pairs a team with its aggregated stats. EffectivePoints is what the
// table is ranked by: Points minus the team's penalty.
type Row struct {
	TeamID          string
	TeamName        string
	Stats           Stats
	PenaltyPoints   int
	EffectivePoints int
}

// League tables sort Spanish club names; collation keeps ñ/accents ordered
// the way operators expect.
var nameCollator = collate.New(language.Spanish, collate.IgnoreCase)

// Compute aggregates finished matches onto each team's baseline and returns
// the ranked table. Output always contains one row per input team; teams with
// no baseline and no matches get the all-zero row.
//
// A team's baseline fixes a round cutoff: only matches with a round strictly
// greater than it count toward live stats.
func Compute(teams []team.Team, matches []match.Match) []Row {
	rows := make([]Row, 0, len(teams))

	for _, t := range teams {
		stats, cutoff := seedFromBaseline(t.Baseline)

		for _, m := range matches {
			if !m.IsFinished() || m.Round <= cutoff {
				continue
			}
			goalsFor, goalsAgainst, played := m.ScoreFor(t.ID)
			if !played {
				continue
			}

			stats.Played++
			stats.GoalsFor += goalsFor
			stats.GoalsAgainst += goalsAgainst
			switch {
			case goalsFor > goalsAgainst:
				stats.Won++
				stats.Points += 3
			case goalsFor == goalsAgainst:
				stats.Drawn++
				stats.Points++
			default:
				stats.Lost++
			}
		}

		stats.GoalDifference = stats.GoalsFor - stats.GoalsAgainst
		rows = append(rows, Row{
			TeamID:          t.ID,
			TeamName:        t.Name,
			Stats:           stats,
			PenaltyPoints:   t.PenaltyPoints,
			EffectivePoints: stats.Points - t.PenaltyPoints,
		})
	}

	sortRows(rows)

	return rows
}

func seedFromBaseline(b *team.Baseline) (Stats, int) {
	if b == nil {
		return Stats{}, 0
	}

	return Stats{
		Played:       b.Played,
		Won:          b.Won,
		Drawn:        b.Drawn,
		Lost:         b.Lost,
		GoalsFor:     b.GoalsFor,
		GoalsAgainst: b.GoalsAgainst,
		Points:       b.Won*3 + b.Drawn,
	}, b.UpToRound
}

// sortRows orders by effective points, then goal difference, then goals for,
// all descending, with ascending name as the final tie-break so the order is
// total.
func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.EffectivePoints != b.EffectivePoints {
			return a.EffectivePoints > b.EffectivePoints
		}
		if a.Stats.GoalDifference != b.Stats.GoalDifference {
			return a.Stats.GoalDifference > b.Stats.GoalDifference
		}
		if a.Stats.GoalsFor != b.Stats.GoalsFor {
			return a.Stats.GoalsFor > b.Stats.GoalsFor
		}
		return nameCollator.CompareString(a.TeamName, b.TeamName) < 0
	})
}
