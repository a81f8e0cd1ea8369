package player

import (
	"fmt"
	"time"

	"github.com/futliga/liga-api/internal/domain/team"
)

// Player is a registered league player. TeamName is denormalized so public
// roster views render without a second lookup.
type Player struct {
	ID        string
	Name      string
	Age       int
	Division  string
	TeamID    string
	TeamName  string
	PhotoURL  string
	PhotoPath string
	CreatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("player age cannot be negative")
	}
	if !team.ValidDivision(p.Division) {
		return fmt.Errorf("player division %q is not valid", p.Division)
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team reference is required")
	}

	return nil
}
