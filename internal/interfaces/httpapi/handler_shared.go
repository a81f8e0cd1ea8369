package httpapi

import (
	"time"

	"github.com/futliga/liga-api/internal/domain/album"
	"github.com/futliga/liga-api/internal/domain/aviso"
	"github.com/futliga/liga-api/internal/domain/contact"
	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/player"
	"github.com/futliga/liga-api/internal/domain/scorer"
	"github.com/futliga/liga-api/internal/domain/standings"
	"github.com/futliga/liga-api/internal/domain/suspension"
	"github.com/futliga/liga-api/internal/domain/team"
)

// Request payloads.

type createTeamRequest struct {
	Division      string           `json:"division" validate:"required"`
	Name          string           `json:"name" validate:"required,max=120"`
	Baseline      *baselinePayload `json:"baseline" validate:"omitempty"`
	PenaltyPoints int              `json:"penalty_points" validate:"gte=0"`
}

type renameTeamRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type baselinePayload struct {
	UpToRound    int `json:"up_to_round" validate:"gte=0"`
	Played       int `json:"played" validate:"gte=0"`
	Won          int `json:"won" validate:"gte=0"`
	Drawn        int `json:"drawn" validate:"gte=0"`
	Lost         int `json:"lost" validate:"gte=0"`
	GoalsFor     int `json:"goals_for" validate:"gte=0"`
	GoalsAgainst int `json:"goals_against" validate:"gte=0"`
}

type setBaselineRequest struct {
	Baseline *baselinePayload `json:"baseline" validate:"omitempty"`
}

type setPenaltyRequest struct {
	PenaltyPoints int `json:"penalty_points" validate:"gte=0"`
}

type scheduleMatchRequest struct {
	Division   string    `json:"division" validate:"required"`
	Round      int       `json:"round" validate:"required,gte=1"`
	KickoffAt  time.Time `json:"kickoff_at" validate:"required"`
	Field      string    `json:"field" validate:"omitempty,max=120"`
	HomeTeamID string    `json:"home_team_id" validate:"required"`
	AwayTeamID string    `json:"away_team_id" validate:"required"`
}

type cardEntryPayload struct {
	Yellows   int  `json:"yellows" validate:"gte=0,lte=2"`
	RedDirect bool `json:"red_direct"`
}

type finalizeMatchRequest struct {
	HomeScore    *int                        `json:"home_score" validate:"omitempty,gte=0"`
	AwayScore    *int                        `json:"away_score" validate:"omitempty,gte=0"`
	Forfeit      string                      `json:"forfeit" validate:"omitempty,oneof=home away"`
	ForfeitGoals *int                        `json:"forfeit_goals" validate:"omitempty,gte=1"`
	Cards        map[string]cardEntryPayload `json:"cards" validate:"omitempty"`
	Goals        map[string]int              `json:"goals" validate:"omitempty"`
}

type setSuspensionGamesRequest struct {
	Games int `json:"games" validate:"required,gte=1"`
}

type publishAvisoRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required,max=4000"`
}

type submitContactRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required,max=4000"`
}

// Response DTOs.

type teamDTO struct {
	ID            string           `json:"id"`
	Division      string           `json:"division"`
	Name          string           `json:"name"`
	Baseline      *baselinePayload `json:"baseline,omitempty"`
	PenaltyPoints int              `json:"penalty_points"`
	CreatedAt     time.Time        `json:"created_at"`
}

func teamToDTO(t team.Team) teamDTO {
	out := teamDTO{
		ID:            t.ID,
		Division:      t.Division,
		Name:          t.Name,
		PenaltyPoints: t.PenaltyPoints,
		CreatedAt:     t.CreatedAt,
	}
	if t.Baseline != nil {
		out.Baseline = &baselinePayload{
			UpToRound:    t.Baseline.UpToRound,
			Played:       t.Baseline.Played,
			Won:          t.Baseline.Won,
			Drawn:        t.Baseline.Drawn,
			Lost:         t.Baseline.Lost,
			GoalsFor:     t.Baseline.GoalsFor,
			GoalsAgainst: t.Baseline.GoalsAgainst,
		}
	}
	return out
}

func baselineFromPayload(p *baselinePayload) *team.Baseline {
	if p == nil {
		return nil
	}
	return &team.Baseline{
		UpToRound:    p.UpToRound,
		Played:       p.Played,
		Won:          p.Won,
		Drawn:        p.Drawn,
		Lost:         p.Lost,
		GoalsFor:     p.GoalsFor,
		GoalsAgainst: p.GoalsAgainst,
	}
}

type matchDTO struct {
	ID            string            `json:"id"`
	Division      string            `json:"division"`
	Round         int               `json:"round"`
	KickoffAt     time.Time         `json:"kickoff_at"`
	Field         string            `json:"field,omitempty"`
	HomeTeamID    string            `json:"home_team_id"`
	AwayTeamID    string            `json:"away_team_id"`
	Status        string            `json:"status"`
	HomeScore     *int              `json:"home_score,omitempty"`
	AwayScore     *int              `json:"away_score,omitempty"`
	ForfeitTeamID string            `json:"forfeit_team_id,omitempty"`
	YellowCards   map[string]int    `json:"yellow_cards,omitempty"`
	RedCards      map[string]string `json:"red_cards,omitempty"`
	Goals         map[string]int    `json:"goals,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:            m.ID,
		Division:      m.Division,
		Round:         m.Round,
		KickoffAt:     m.KickoffAt,
		Field:         m.Field,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		Status:        m.Status,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		ForfeitTeamID: m.ForfeitTeamID,
		YellowCards:   m.YellowCards,
		RedCards:      m.RedCards,
		Goals:         m.Goals,
		CreatedAt:     m.CreatedAt,
	}
}

type playerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Division  string    `json:"division"`
	TeamID    string    `json:"team_id"`
	TeamName  string    `json:"team_name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Division:  p.Division,
		TeamID:    p.TeamID,
		TeamName:  p.TeamName,
		PhotoURL:  p.PhotoURL,
		CreatedAt: p.CreatedAt,
	}
}

type standingsRowDTO struct {
	TeamID          string `json:"team_id"`
	TeamName        string `json:"team_name"`
	Played          int    `json:"played"`
	Won             int    `json:"won"`
	Drawn           int    `json:"drawn"`
	Lost            int    `json:"lost"`
	GoalsFor        int    `json:"goals_for"`
	GoalsAgainst    int    `json:"goals_against"`
	GoalDifference  int    `json:"goal_difference"`
	Points          int    `json:"points"`
	PenaltyPoints   int    `json:"penalty_points"`
	EffectivePoints int    `json:"effective_points"`
}

func standingsRowToDTO(row standings.Row) standingsRowDTO {
	return standingsRowDTO{
		TeamID:          row.TeamID,
		TeamName:        row.TeamName,
		Played:          row.Stats.Played,
		Won:             row.Stats.Won,
		Drawn:           row.Stats.Drawn,
		Lost:            row.Stats.Lost,
		GoalsFor:        row.Stats.GoalsFor,
		GoalsAgainst:    row.Stats.GoalsAgainst,
		GoalDifference:  row.Stats.GoalDifference,
		Points:          row.Stats.Points,
		PenaltyPoints:   row.PenaltyPoints,
		EffectivePoints: row.EffectivePoints,
	}
}

type scorerDTO struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	Goals      int    `json:"goals"`
}

func scorerToDTO(e scorer.Entry) scorerDTO {
	return scorerDTO{
		PlayerID:   e.PlayerID,
		PlayerName: e.PlayerName,
		TeamName:   e.TeamName,
		Goals:      e.Goals,
	}
}

type suspensionDTO struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	TeamID       string    `json:"team_id"`
	Division     string    `json:"division"`
	MatchID      string    `json:"match_id"`
	OffenseRound int       `json:"offense_round"`
	Reason       string    `json:"reason"`
	Games        int       `json:"games"`
	MissedRounds []int     `json:"missed_rounds"`
	ReturnRound  int       `json:"return_round"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func suspensionToDTO(s suspension.Suspension) suspensionDTO {
	return suspensionDTO{
		ID:           s.ID,
		PlayerID:     s.PlayerID,
		PlayerName:   s.PlayerName,
		TeamID:       s.TeamID,
		Division:     s.Division,
		MatchID:      s.MatchID,
		OffenseRound: s.OffenseRound,
		Reason:       s.Reason,
		Games:        s.Games,
		MissedRounds: s.MissedRounds,
		ReturnRound:  s.ReturnRound,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}
}

type avisoDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func avisoToDTO(a aviso.Aviso) avisoDTO {
	return avisoDTO{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		CreatedAt: a.CreatedAt,
	}
}

type contactMessageDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func contactMessageToDTO(m contact.Message) contactMessageDTO {
	return contactMessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

type albumPhotoDTO struct {
	URL string `json:"url"`
}

type albumDTO struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Photos    []albumPhotoDTO `json:"photos"`
	CreatedAt time.Time       `json:"created_at"`
}

func albumToDTO(a album.Album) albumDTO {
	photos := make([]albumPhotoDTO, 0, len(a.Photos))
	for _, p := range a.Photos {
		photos = append(photos, albumPhotoDTO{URL: p.URL})
	}
	return albumDTO{
		ID:        a.ID,
		Title:     a.Title,
		Photos:    photos,
		CreatedAt: a.CreatedAt,
	}
}
