package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/futliga/liga-api/internal/domain/match"
)

type matchTableModel struct {
	ID            string         `db:"id"`
	Division      string         `db:"division"`
	Round         int            `db:"round"`
	KickoffAt     time.Time      `db:"kickoff_at"`
	Field         string         `db:"field"`
	HomeTeamID    string         `db:"home_team_id"`
	AwayTeamID    string         `db:"away_team_id"`
	Status        string         `db:"status"`
	HomeScore     sql.NullInt64  `db:"home_score"`
	AwayScore     sql.NullInt64  `db:"away_score"`
	ForfeitTeamID sql.NullString `db:"forfeit_team_id"`
	YellowCards   []byte         `db:"yellow_cards"`
	RedCards      []byte         `db:"red_cards"`
	Goals         []byte         `db:"goals"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (m matchTableModel) toDomain() (match.Match, error) {
	out := match.Match{
		ID:            m.ID,
		Division:      m.Division,
		Round:         m.Round,
		KickoffAt:     m.KickoffAt,
		Field:         m.Field,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		Status:        m.Status,
		ForfeitTeamID: m.ForfeitTeamID.String,
		CreatedAt:     m.CreatedAt,
	}

	if m.HomeScore.Valid {
		v := int(m.HomeScore.Int64)
		out.HomeScore = &v
	}
	if m.AwayScore.Valid {
		v := int(m.AwayScore.Int64)
		out.AwayScore = &v
	}

	if err := unmarshalJSONColumn(m.YellowCards, &out.YellowCards); err != nil {
		return match.Match{}, fmt.Errorf("decode yellow cards: %w", err)
	}
	if err := unmarshalJSONColumn(m.RedCards, &out.RedCards); err != nil {
		return match.Match{}, fmt.Errorf("decode red cards: %w", err)
	}
	if err := unmarshalJSONColumn(m.Goals, &out.Goals); err != nil {
		return match.Match{}, fmt.Errorf("decode goals: %w", err)
	}

	return out, nil
}

func unmarshalJSONColumn[T any](raw []byte, dst *T) error {
	if len(raw) == 0 {
		return nil
	}
	return sonic.Unmarshal(raw, dst)
}

// marshalJSONColumn encodes v for a jsonb parameter. The text form matters:
// pq binds []byte as a bytea hex literal, which jsonb rejects.
func marshalJSONColumn(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableIntPtr(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
