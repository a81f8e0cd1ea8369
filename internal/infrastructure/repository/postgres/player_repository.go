package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futliga/liga-api/internal/domain/player"
	qb "github.com/futliga/liga-api/internal/platform/querybuilder"
)

type playerTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Age       int       `db:"age"`
	Division  string    `db:"division"`
	TeamID    string    `db:"team_id"`
	TeamName  string    `db:"team_name"`
	PhotoURL  string    `db:"photo_url"`
	PhotoPath string    `db:"photo_path"`
	CreatedAt time.Time `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		Age:       m.Age,
		Division:  m.Division,
		TeamID:    m.TeamID,
		TeamName:  m.TeamName,
		PhotoURL:  m.PhotoURL,
		PhotoPath: m.PhotoPath,
		CreatedAt: m.CreatedAt,
	}
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return r.list(ctx, qb.Eq("team_id", teamID))
}

func (r *PlayerRepository) ListByDivision(ctx context.Context, division string) ([]player.Player, error) {
	return r.list(ctx, qb.Eq("division", division))
}

func (r *PlayerRepository) list(ctx context.Context, cond qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(cond).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertInto("players").
		Set("id", item.ID).
		Set("name", item.Name).
		Set("age", item.Age).
		Set("division", item.Division).
		Set("team_id", item.TeamID).
		Set("team_name", item.TeamName).
		Set("photo_url", item.PhotoURL).
		Set("photo_path", item.PhotoPath).
		Set("created_at", item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}
