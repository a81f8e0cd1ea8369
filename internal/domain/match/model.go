package match

import (
	"fmt"
	"time"

	"github.com/futliga/liga-api/internal/domain/team"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusFinished  = "FINISHED"
)

const (
	ForfeitNone = ""
	ForfeitHome = "home"
	ForfeitAway = "away"
)

// Match is one fixture in a division's jornada schedule. Card and goal maps
// are keyed by player ID and only populated once the match is finalized.
type Match struct {
	ID            string
	Division      string
	Round         int
	KickoffAt     time.Time
	Field         string
	HomeTeamID    string
	AwayTeamID    string
	Status        string
	HomeScore     *int
	AwayScore     *int
	ForfeitTeamID string
	YellowCards   map[string]int
	RedCards      map[string]string
	Goals         map[string]int
	CreatedAt     time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if !team.ValidDivision(m.Division) {
		return fmt.Errorf("match division %q is not valid", m.Division)
	}
	if m.Round < 1 {
		return fmt.Errorf("match round must be positive")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match requires both team references")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match cannot pair a team against itself")
	}

	return nil
}

func (m Match) IsFinished() bool {
	return m.Status == StatusFinished
}

// ScoreFor returns the goals scored and conceded from teamID's perspective.
// Missing scores on a finished match count as zero.
func (m Match) ScoreFor(teamID string) (goalsFor, goalsAgainst int, participated bool) {
	home := scoreOrZero(m.HomeScore)
	away := scoreOrZero(m.AwayScore)

	switch teamID {
	case m.HomeTeamID:
		return home, away, true
	case m.AwayTeamID:
		return away, home, true
	default:
		return 0, 0, false
	}
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
