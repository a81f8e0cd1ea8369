package suspension

import (
	"fmt"
	"time"
)

const (
	StatusActive = "ACTIVE"
	StatusServed = "SERVED"
)

// Suspension bans a player for a number of jornadas after a sending-off.
// MissedRounds and ReturnRound are derived from OffenseRound and Games and
// must be recomputed whenever Games changes.
type Suspension struct {
	ID           string
	PlayerID     string
	PlayerName   string
	TeamID       string
	Division     string
	MatchID      string
	OffenseRound int
	Reason       string
	Games        int
	MissedRounds []int
	ReturnRound  int
	Status       string
	CreatedAt    time.Time
}

// Derive computes the jornadas missed and the return jornada for a ban of
// games matches starting after offenseRound.
func Derive(offenseRound, games int) (missed []int, returnRound int) {
	missed = make([]int, 0, games)
	for round := offenseRound + 1; round <= offenseRound+games; round++ {
		missed = append(missed, round)
	}

	return missed, offenseRound + games + 1
}

// New builds an active suspension with derived fields populated.
func New(id, playerID, playerName, teamID, division, matchID, reason string, offenseRound, games int, now time.Time) Suspension {
	missed, returnRound := Derive(offenseRound, games)

	return Suspension{
		ID:           id,
		PlayerID:     playerID,
		PlayerName:   playerName,
		TeamID:       teamID,
		Division:     division,
		MatchID:      matchID,
		OffenseRound: offenseRound,
		Reason:       reason,
		Games:        games,
		MissedRounds: missed,
		ReturnRound:  returnRound,
		Status:       StatusActive,
		CreatedAt:    now,
	}
}

// Reschedule changes the games count and recomputes derived fields. Status is
// untouched: editing the length of a ban never reactivates or serves it.
func (s *Suspension) Reschedule(games int) error {
	if games < 1 {
		return fmt.Errorf("games suspended must be at least 1")
	}

	s.Games = games
	s.MissedRounds, s.ReturnRound = Derive(s.OffenseRound, games)

	return nil
}

// MarkServed transitions the suspension to its terminal state. Safe to call
// repeatedly.
func (s *Suspension) MarkServed() {
	s.Status = StatusServed
}

func (s Suspension) IsActive() bool {
	return s.Status == StatusActive
}
