package postgres

import (
	"database/sql"
	"time"

	"github.com/futliga/liga-api/internal/domain/team"
)

type teamTableModel struct {
	ID                   string        `db:"id"`
	Division             string        `db:"division"`
	Name                 string        `db:"name"`
	BaselineUpToRound    sql.NullInt64 `db:"baseline_up_to_round"`
	BaselinePlayed       sql.NullInt64 `db:"baseline_played"`
	BaselineWon          sql.NullInt64 `db:"baseline_won"`
	BaselineDrawn        sql.NullInt64 `db:"baseline_drawn"`
	BaselineLost         sql.NullInt64 `db:"baseline_lost"`
	BaselineGoalsFor     sql.NullInt64 `db:"baseline_goals_for"`
	BaselineGoalsAgainst sql.NullInt64 `db:"baseline_goals_against"`
	PenaltyPoints        int           `db:"penalty_points"`
	CreatedAt            time.Time     `db:"created_at"`
}

func (m teamTableModel) toDomain() team.Team {
	out := team.Team{
		ID:            m.ID,
		Division:      m.Division,
		Name:          m.Name,
		PenaltyPoints: m.PenaltyPoints,
		CreatedAt:     m.CreatedAt,
	}

	// The cutoff column doubles as the baseline presence marker.
	if m.BaselineUpToRound.Valid {
		out.Baseline = &team.Baseline{
			UpToRound:    int(m.BaselineUpToRound.Int64),
			Played:       int(m.BaselinePlayed.Int64),
			Won:          int(m.BaselineWon.Int64),
			Drawn:        int(m.BaselineDrawn.Int64),
			Lost:         int(m.BaselineLost.Int64),
			GoalsFor:     int(m.BaselineGoalsFor.Int64),
			GoalsAgainst: int(m.BaselineGoalsAgainst.Int64),
		}
	}

	return out
}

type columnValue struct {
	column string
	value  any
}

func baselineColumns(b *team.Baseline) []columnValue {
	if b == nil {
		return []columnValue{
			{"baseline_up_to_round", nil},
			{"baseline_played", nil},
			{"baseline_won", nil},
			{"baseline_drawn", nil},
			{"baseline_lost", nil},
			{"baseline_goals_for", nil},
			{"baseline_goals_against", nil},
		}
	}

	return []columnValue{
		{"baseline_up_to_round", b.UpToRound},
		{"baseline_played", b.Played},
		{"baseline_won", b.Won},
		{"baseline_drawn", b.Drawn},
		{"baseline_lost", b.Lost},
		{"baseline_goals_for", b.GoalsFor},
		{"baseline_goals_against", b.GoalsAgainst},
	}
}
