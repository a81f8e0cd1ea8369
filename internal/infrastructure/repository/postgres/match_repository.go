package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/suspension"
	qb "github.com/futliga/liga-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByDivision(ctx context.Context, division string, filter match.Filter) ([]match.Match, error) {
	builder := qb.Select("*").From("matches").
		Where(qb.Eq("division", division))
	if filter.Round != nil {
		builder.Where(qb.Eq("round", *filter.Round))
	}
	if filter.Status != "" {
		builder.Where(qb.Eq("status", filter.Status))
	}
	builder.OrderBy("round", "kickoff_at", "id")

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return match.Match{}, false, err
	}

	return item, true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertInto("matches").
		Set("id", item.ID).
		Set("division", item.Division).
		Set("round", item.Round).
		Set("kickoff_at", item.KickoffAt).
		Set("field", item.Field).
		Set("home_team_id", item.HomeTeamID).
		Set("away_team_id", item.AwayTeamID).
		Set("status", item.Status).
		Set("created_at", item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}

// Finalize updates the match row and inserts its suspensions in one
// transaction. The insert guard keeps a player at one active suspension even
// when two finalizations race.
func (r *MatchRepository) Finalize(ctx context.Context, item match.Match, suspensions []suspension.Suspension) error {
	yellowCards, err := marshalJSONColumn(item.YellowCards)
	if err != nil {
		return fmt.Errorf("encode yellow cards: %w", err)
	}
	redCards, err := marshalJSONColumn(item.RedCards)
	if err != nil {
		return fmt.Errorf("encode red cards: %w", err)
	}
	goals, err := marshalJSONColumn(item.Goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin finalize tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const updateSQL = `
UPDATE matches
SET status = $1,
    home_score = $2,
    away_score = $3,
    forfeit_team_id = $4,
    yellow_cards = $5,
    red_cards = $6,
    goals = $7
WHERE id = $8`

	if _, err := tx.ExecContext(ctx, updateSQL,
		item.Status,
		nullableIntPtr(item.HomeScore),
		nullableIntPtr(item.AwayScore),
		nullableString(item.ForfeitTeamID),
		yellowCards,
		redCards,
		goals,
		item.ID,
	); err != nil {
		return fmt.Errorf("update finalized match: %w", err)
	}

	const insertSuspensionSQL = `
INSERT INTO suspensions (
	id, player_id, player_name, team_id, division, match_id,
	offense_round, reason, games, missed_rounds, return_round, status, created_at
)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
WHERE NOT EXISTS (
	SELECT 1 FROM suspensions WHERE player_id = $2 AND status = $12
)`

	for _, s := range suspensions {
		missedRounds, err := marshalJSONColumn(s.MissedRounds)
		if err != nil {
			return fmt.Errorf("encode missed rounds: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSuspensionSQL,
			s.ID, s.PlayerID, s.PlayerName, s.TeamID, s.Division, s.MatchID,
			s.OffenseRound, s.Reason, s.Games, missedRounds, s.ReturnRound,
			suspension.StatusActive, s.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert suspension: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit finalize tx: %w", err)
	}

	return nil
}
