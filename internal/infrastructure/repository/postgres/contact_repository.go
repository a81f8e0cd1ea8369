package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futliga/liga-api/internal/domain/contact"
	qb "github.com/futliga/liga-api/internal/platform/querybuilder"
)

type contactTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func (m contactTableModel) toDomain() contact.Message {
	return contact.Message{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, item contact.Message) error {
	query, args, err := qb.InsertInto("contact_messages").
		Set("id", item.ID).
		Set("name", item.Name).
		Set("email", item.Email).
		Set("body", item.Body).
		Set("created_at", item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert contact message query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}

	return nil
}

// ListPage pages the inbox newest first on (created_at, id). An unknown
// cursor id yields an empty page rather than an error.
func (r *ContactRepository) ListPage(ctx context.Context, page contact.Page) ([]contact.Message, error) {
	switch {
	case page.StartAfter != "":
		const query = `
SELECT id, name, email, body, created_at
FROM contact_messages
WHERE (created_at, id) < (SELECT created_at, id FROM contact_messages WHERE id = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2`
		return r.selectMessages(ctx, query, page.StartAfter, page.Limit)

	case page.EndBefore != "":
		const query = `
SELECT id, name, email, body, created_at
FROM (
	SELECT id, name, email, body, created_at
	FROM contact_messages
	WHERE (created_at, id) > (SELECT created_at, id FROM contact_messages WHERE id = $1)
	ORDER BY created_at ASC, id ASC
	LIMIT $2
) window_rows
ORDER BY created_at DESC, id DESC`
		return r.selectMessages(ctx, query, page.EndBefore, page.Limit)

	default:
		query, args, err := qb.Select("id", "name", "email", "body", "created_at").
			From("contact_messages").
			OrderBy("created_at DESC", "id DESC").
			Limit(page.Limit).
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build select contact messages query: %w", err)
		}
		return r.selectMessages(ctx, query, args...)
	}
}

func (r *ContactRepository) selectMessages(ctx context.Context, query string, args ...any) ([]contact.Message, error) {
	var rows []contactTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select contact messages: %w", err)
	}

	out := make([]contact.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
