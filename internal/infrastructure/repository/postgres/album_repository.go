package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futliga/liga-api/internal/domain/album"
	qb "github.com/futliga/liga-api/internal/platform/querybuilder"
)

type albumTableModel struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Photos    []byte    `db:"photos"`
	CreatedAt time.Time `db:"created_at"`
}

func (m albumTableModel) toDomain() (album.Album, error) {
	out := album.Album{
		ID:        m.ID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
	}

	if err := unmarshalJSONColumn(m.Photos, &out.Photos); err != nil {
		return album.Album{}, fmt.Errorf("decode album photos: %w", err)
	}

	return out, nil
}

type AlbumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) List(ctx context.Context) ([]album.Album, error) {
	query, args, err := qb.Select("*").From("albums").
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select albums query: %w", err)
	}

	var rows []albumTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}

	out := make([]album.Album, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *AlbumRepository) GetByID(ctx context.Context, albumID string) (album.Album, bool, error) {
	query, args, err := qb.Select("*").From("albums").
		Where(qb.Eq("id", albumID)).
		ToSQL()
	if err != nil {
		return album.Album{}, false, fmt.Errorf("build get album query: %w", err)
	}

	var row albumTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return album.Album{}, false, nil
		}
		return album.Album{}, false, fmt.Errorf("get album: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return album.Album{}, false, err
	}

	return item, true, nil
}

func (r *AlbumRepository) Create(ctx context.Context, item album.Album) error {
	photos, err := marshalJSONColumn(item.Photos)
	if err != nil {
		return fmt.Errorf("encode album photos: %w", err)
	}

	query, args, err := qb.InsertInto("albums").
		Set("id", item.ID).
		Set("title", item.Title).
		Set("photos", photos).
		Set("created_at", item.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert album query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert album: %w", err)
	}

	return nil
}

func (r *AlbumRepository) Delete(ctx context.Context, albumID string) error {
	query, args, err := qb.DeleteFrom("albums").
		Where(qb.Eq("id", albumID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete album query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete album: %w", err)
	}

	return nil
}
