package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futliga/liga-api/internal/domain/aviso"
	qb "github.com/futliga/liga-api/internal/platform/querybuilder"
)

type avisoTableModel struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

type AvisoRepository struct {
	db *sqlx.DB
}

func NewAvisoRepository(db *sqlx.DB) *AvisoRepository {
	return &AvisoRepository{db: db}
}

func (r *AvisoRepository) List(ctx context.Context) ([]aviso.Aviso, error) {
	query, args, err := qb.Select("*").From("avisos").
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select avisos query: %w", err)
	}

	var rows []avisoTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select avisos: %w", err)
	}

	out := make([]aviso.Aviso, 0, len(rows))
	for _, row := range rows {
		out = append(out, aviso.Aviso{
			ID:        row.ID,
			Title:     row.Title,
			Body:      row.Body,
			CreatedAt: row.CreatedAt,
		})
	}

	return out, nil
}

func (r *AvisoRepository) Create(ctx context.Context, item aviso.Aviso) error {
	query, args, err := qb.InsertInto("avisos").
		Set("id", item.ID).
		Set("title", item.Title).
		Set("body", item.Body).
		Set("created_at", item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert aviso query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert aviso: %w", err)
	}

	return nil
}

func (r *AvisoRepository) Delete(ctx context.Context, avisoID string) error {
	query, args, err := qb.DeleteFrom("avisos").
		Where(qb.Eq("id", avisoID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete aviso query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete aviso: %w", err)
	}

	return nil
}
