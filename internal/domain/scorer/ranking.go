package scorer

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/player"
)

// Entry is one line in the top-scorer ranking.
type Entry struct {
	PlayerID   string
	PlayerName string
	TeamName   string
	Goals      int
}

var nameCollator = collate.New(language.Spanish, collate.IgnoreCase)

// Rank sums each player's goals across finished matches and returns the
// ranking, highest first. Zero-goal entries are dropped; players that scored
// but are no longer in the directory are skipped. Equal totals are ordered by
// player name so the ranking is stable across map iteration order.
func Rank(matches []match.Match, players []player.Player) []Entry {
	playerByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}

	totals := make(map[string]int)
	for _, m := range matches {
		if !m.IsFinished() {
			continue
		}
		for playerID, goals := range m.Goals {
			if goals > 0 {
				totals[playerID] += goals
			}
		}
	}

	entries := make([]Entry, 0, len(totals))
	for playerID, goals := range totals {
		p, ok := playerByID[playerID]
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			PlayerID:   playerID,
			PlayerName: p.Name,
			TeamName:   p.TeamName,
			Goals:      goals,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Goals != entries[j].Goals {
			return entries[i].Goals > entries[j].Goals
		}
		return nameCollator.CompareString(entries[i].PlayerName, entries[j].PlayerName) < 0
	})

	return entries
}
