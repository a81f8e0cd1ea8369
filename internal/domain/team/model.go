package team

import (
	"fmt"
	"time"
)

const (
	DivisionFirst  = "1ra"
	DivisionSecond = "2da"
	DivisionThird  = "3ra"
)

// Baseline holds a team's accumulated history before live tracking began.
// Matches with round <= UpToRound are excluded from live aggregation.
type Baseline struct {
	UpToRound    int
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
}

// Team is a registered club competing in one division.
type Team struct {
	ID            string
	Division      string
	Name          string
	Baseline      *Baseline
	PenaltyPoints int
	CreatedAt     time.Time
}

func ValidDivision(division string) bool {
	switch division {
	case DivisionFirst, DivisionSecond, DivisionThird:
		return true
	default:
		return false
	}
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if !ValidDivision(t.Division) {
		return fmt.Errorf("team division %q is not valid", t.Division)
	}
	if t.PenaltyPoints < 0 {
		return fmt.Errorf("team penalty points cannot be negative")
	}
	if t.Baseline != nil {
		return t.Baseline.Validate()
	}

	return nil
}

func (b Baseline) Validate() error {
	if b.UpToRound < 0 {
		return fmt.Errorf("baseline round cutoff cannot be negative")
	}
	for name, v := range map[string]int{
		"played":        b.Played,
		"won":           b.Won,
		"drawn":         b.Drawn,
		"lost":          b.Lost,
		"goals for":     b.GoalsFor,
		"goals against": b.GoalsAgainst,
	} {
		if v < 0 {
			return fmt.Errorf("baseline %s cannot be negative", name)
		}
	}
	if b.Won+b.Drawn+b.Lost != b.Played {
		return fmt.Errorf("baseline results do not add up to played count")
	}

	return nil
}
