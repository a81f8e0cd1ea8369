package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futliga/liga-api/internal/domain/suspension"
	qb "github.com/futliga/liga-api/internal/platform/querybuilder"
)

type suspensionTableModel struct {
	ID           string    `db:"id"`
	PlayerID     string    `db:"player_id"`
	PlayerName   string    `db:"player_name"`
	TeamID       string    `db:"team_id"`
	Division     string    `db:"division"`
	MatchID      string    `db:"match_id"`
	OffenseRound int       `db:"offense_round"`
	Reason       string    `db:"reason"`
	Games        int       `db:"games"`
	MissedRounds []byte    `db:"missed_rounds"`
	ReturnRound  int       `db:"return_round"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m suspensionTableModel) toDomain() (suspension.Suspension, error) {
	out := suspension.Suspension{
		ID:           m.ID,
		PlayerID:     m.PlayerID,
		PlayerName:   m.PlayerName,
		TeamID:       m.TeamID,
		Division:     m.Division,
		MatchID:      m.MatchID,
		OffenseRound: m.OffenseRound,
		Reason:       m.Reason,
		Games:        m.Games,
		ReturnRound:  m.ReturnRound,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
	}

	if err := unmarshalJSONColumn(m.MissedRounds, &out.MissedRounds); err != nil {
		return suspension.Suspension{}, fmt.Errorf("decode missed rounds: %w", err)
	}

	return out, nil
}

type SuspensionRepository struct {
	db *sqlx.DB
}

func NewSuspensionRepository(db *sqlx.DB) *SuspensionRepository {
	return &SuspensionRepository{db: db}
}

func (r *SuspensionRepository) ListByDivision(ctx context.Context, division string, onlyActive bool) ([]suspension.Suspension, error) {
	builder := qb.Select("*").From("suspensions").
		Where(qb.Eq("division", division))
	if onlyActive {
		builder.Where(qb.Eq("status", suspension.StatusActive))
	}
	builder.OrderBy("created_at DESC", "id DESC")

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select suspensions query: %w", err)
	}

	var rows []suspensionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select suspensions: %w", err)
	}

	out := make([]suspension.Suspension, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *SuspensionRepository) GetByID(ctx context.Context, suspensionID string) (suspension.Suspension, bool, error) {
	query, args, err := qb.Select("*").From("suspensions").
		Where(qb.Eq("id", suspensionID)).
		ToSQL()
	if err != nil {
		return suspension.Suspension{}, false, fmt.Errorf("build get suspension query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *SuspensionRepository) ActiveByPlayer(ctx context.Context, playerID string) (suspension.Suspension, bool, error) {
	query, args, err := qb.Select("*").From("suspensions").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("status", suspension.StatusActive),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return suspension.Suspension{}, false, fmt.Errorf("build active suspension query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *SuspensionRepository) getOne(ctx context.Context, query string, args []any) (suspension.Suspension, bool, error) {
	var row suspensionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return suspension.Suspension{}, false, nil
		}
		return suspension.Suspension{}, false, fmt.Errorf("get suspension: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return suspension.Suspension{}, false, err
	}

	return item, true, nil
}

func (r *SuspensionRepository) Update(ctx context.Context, item suspension.Suspension) error {
	missedRounds, err := marshalJSONColumn(item.MissedRounds)
	if err != nil {
		return fmt.Errorf("encode missed rounds: %w", err)
	}

	query, args, err := qb.Update("suspensions").
		Set("games", item.Games).
		Set("missed_rounds", missedRounds).
		Set("return_round", item.ReturnRound).
		Set("status", item.Status).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update suspension query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update suspension: %w", err)
	}

	return nil
}
