package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/futliga/liga-api/internal/domain/team"
	qb "github.com/futliga/liga-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByDivision(ctx context.Context, division string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("division", division)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	builder := qb.InsertInto("teams").
		Set("id", item.ID).
		Set("division", item.Division).
		Set("name", item.Name).
		Set("penalty_points", item.PenaltyPoints).
		Set("created_at", item.CreatedAt)
	for _, cv := range baselineColumns(item.Baseline) {
		builder.Set(cv.column, cv.value)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	builder := qb.Update("teams").
		Set("name", item.Name).
		Set("penalty_points", item.PenaltyPoints)
	for _, cv := range baselineColumns(item.Baseline) {
		builder.Set(cv.column, cv.value)
	}
	builder.Where(qb.Eq("id", item.ID))

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	query, args, err := qb.DeleteFrom("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}
