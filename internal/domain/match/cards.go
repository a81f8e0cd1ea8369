package match

import "fmt"

const (
	ReasonDoubleYellow = "doble amarilla"
	ReasonDirectRed    = "roja directa"

	maxYellowsPerMatch = 2
)

// CardEntry is a referee's per-player card draft for one match. Two yellows
// and a direct red are mutually exclusive states.
type CardEntry struct {
	Yellows   int
	RedDirect bool
}

func (e CardEntry) Validate() error {
	if e.Yellows < 0 || e.Yellows > maxYellowsPerMatch {
		return fmt.Errorf("yellow card count must be between 0 and %d", maxYellowsPerMatch)
	}
	if e.RedDirect && e.Yellows == maxYellowsPerMatch {
		return fmt.Errorf("a direct red and two yellows are mutually exclusive")
	}

	return nil
}

// RedCardReason reports why the entry sends a player off, if it does.
// A direct red takes precedence over a second yellow.
func (e CardEntry) RedCardReason() (string, bool) {
	if e.RedDirect {
		return ReasonDirectRed, true
	}
	if e.Yellows >= maxYellowsPerMatch {
		return ReasonDoubleYellow, true
	}

	return "", false
}
