package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/suspension"
	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/infrastructure/repository/memory"
	"github.com/futliga/liga-api/internal/platform/watch"
)

type sequenceIDGenerator struct {
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

func intPtr(v int) *int { return &v }

func newMatchFixture(t *testing.T) (*MatchService, *memory.SuspensionRepository) {
	t.Helper()

	suspensionRepo := memory.NewSuspensionRepository(nil)
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), suspensionRepo)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	service := NewMatchService(
		matchRepo,
		teamRepo,
		playerRepo,
		suspensionRepo,
		&sequenceIDGenerator{prefix: "gen"},
		watch.NewHub(),
		2,
	)
	service.now = func() time.Time {
		return time.Date(2026, time.March, 8, 16, 0, 0, 0, time.UTC)
	}

	return service, suspensionRepo
}

func TestMatchService_ScheduleMatch_RejectsMixedDivisions(t *testing.T) {
	service, _ := newMatchFixture(t)

	_, err := service.ScheduleMatch(t.Context(), ScheduleMatchInput{
		Division:   team.DivisionFirst,
		Round:      6,
		HomeTeamID: "1ra-atletico-norte",
		AwayTeamID: "2da-racing-obrero",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestMatchService_FinalizeMatch_CreatesSuspensionForDirectRed(t *testing.T) {
	service, suspensionRepo := newMatchFixture(t)

	got, err := service.FinalizeMatch(t.Context(), FinalizeMatchInput{
		MatchID:   "m-0402",
		HomeScore: intPtr(1),
		AwayScore: intPtr(3),
		Cards: map[string]match.CardEntry{
			"pl-005": {RedDirect: true},
			"pl-006": {Yellows: 1},
		},
		Goals: map[string]int{"pl-006": 3, "pl-005": 1},
	})
	if err != nil {
		t.Fatalf("finalize match: %v", err)
	}

	if !got.IsFinished() {
		t.Fatalf("expected status FINISHED, got %s", got.Status)
	}
	if *got.HomeScore != 1 || *got.AwayScore != 3 {
		t.Fatalf("unexpected score: %d-%d", *got.HomeScore, *got.AwayScore)
	}
	if got.YellowCards["pl-006"] != 1 {
		t.Fatalf("expected one yellow for pl-006, got %d", got.YellowCards["pl-006"])
	}
	if got.RedCards["pl-005"] != match.ReasonDirectRed {
		t.Fatalf("unexpected red card reason: %q", got.RedCards["pl-005"])
	}

	sus, active, err := suspensionRepo.ActiveByPlayer(t.Context(), "pl-005")
	if err != nil {
		t.Fatalf("active by player: %v", err)
	}
	if !active {
		t.Fatal("expected an active suspension for pl-005")
	}
	if sus.Games != 1 || sus.ReturnRound != 6 {
		t.Fatalf("unexpected derived fields: games=%d return=%d", sus.Games, sus.ReturnRound)
	}
	if sus.PlayerName != "Federico Espinoza" {
		t.Fatalf("unexpected player name: %q", sus.PlayerName)
	}
}

func TestMatchService_FinalizeMatch_DoubleYellowReason(t *testing.T) {
	service, suspensionRepo := newMatchFixture(t)

	_, err := service.FinalizeMatch(t.Context(), FinalizeMatchInput{
		MatchID:   "m-0402",
		HomeScore: intPtr(0),
		AwayScore: intPtr(0),
		Cards: map[string]match.CardEntry{
			"pl-006": {Yellows: 2},
		},
	})
	if err != nil {
		t.Fatalf("finalize match: %v", err)
	}

	sus, active, err := suspensionRepo.ActiveByPlayer(t.Context(), "pl-006")
	if err != nil || !active {
		t.Fatalf("expected active suspension, got active=%v err=%v", active, err)
	}
	if sus.Reason != match.ReasonDoubleYellow {
		t.Fatalf("unexpected reason: %q", sus.Reason)
	}
}

func TestMatchService_FinalizeMatch_SkipsAlreadySuspendedPlayer(t *testing.T) {
	service, suspensionRepo := newMatchFixture(t)

	existing := suspension.New(
		"sus-prev", "pl-005", "Federico Espinoza", "1ra-union-del-valle",
		team.DivisionFirst, "m-0300", match.ReasonDirectRed, 3, 2,
		time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC),
	)
	if err := suspensionRepo.Update(t.Context(), existing); err != nil {
		t.Fatalf("seed suspension: %v", err)
	}

	_, err := service.FinalizeMatch(t.Context(), FinalizeMatchInput{
		MatchID:   "m-0402",
		HomeScore: intPtr(2),
		AwayScore: intPtr(2),
		Cards: map[string]match.CardEntry{
			"pl-005": {RedDirect: true},
		},
	})
	if err != nil {
		t.Fatalf("finalize match: %v", err)
	}

	sus, active, err := suspensionRepo.ActiveByPlayer(t.Context(), "pl-005")
	if err != nil || !active {
		t.Fatalf("expected active suspension, got active=%v err=%v", active, err)
	}
	if sus.ID != "sus-prev" {
		t.Fatalf("expected existing suspension to survive, got %s", sus.ID)
	}
}

func TestMatchService_FinalizeMatch_Forfeit(t *testing.T) {
	service, _ := newMatchFixture(t)

	got, err := service.FinalizeMatch(t.Context(), FinalizeMatchInput{
		MatchID: "m-0402",
		Forfeit: match.ForfeitHome,
	})
	if err != nil {
		t.Fatalf("finalize forfeit: %v", err)
	}

	if *got.HomeScore != 0 || *got.AwayScore != 2 {
		t.Fatalf("unexpected forfeit score: %d-%d", *got.HomeScore, *got.AwayScore)
	}
	if got.ForfeitTeamID != "1ra-union-del-valle" {
		t.Fatalf("unexpected forfeiting team: %s", got.ForfeitTeamID)
	}
}

func TestMatchService_FinalizeMatch_ForfeitGoalsOverride(t *testing.T) {
	service, _ := newMatchFixture(t)

	got, err := service.FinalizeMatch(t.Context(), FinalizeMatchInput{
		MatchID:      "m-0402",
		Forfeit:      match.ForfeitAway,
		ForfeitGoals: intPtr(3),
	})
	if err != nil {
		t.Fatalf("finalize forfeit: %v", err)
	}

	if *got.HomeScore != 3 || *got.AwayScore != 0 {
		t.Fatalf("unexpected forfeit score: %d-%d", *got.HomeScore, *got.AwayScore)
	}
}

func TestMatchService_FinalizeMatch_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		input FinalizeMatchInput
	}{
		{
			name:  "missing scores",
			input: FinalizeMatchInput{MatchID: "m-0402", HomeScore: intPtr(1)},
		},
		{
			name:  "negative score",
			input: FinalizeMatchInput{MatchID: "m-0402", HomeScore: intPtr(-1), AwayScore: intPtr(0)},
		},
		{
			name: "three yellows",
			input: FinalizeMatchInput{
				MatchID: "m-0402", HomeScore: intPtr(0), AwayScore: intPtr(0),
				Cards: map[string]match.CardEntry{"pl-005": {Yellows: 3}},
			},
		},
		{
			name: "negative goal count",
			input: FinalizeMatchInput{
				MatchID: "m-0402", HomeScore: intPtr(0), AwayScore: intPtr(0),
				Goals: map[string]int{"pl-005": -1},
			},
		},
		{
			name:  "already finished",
			input: FinalizeMatchInput{MatchID: "m-0401", HomeScore: intPtr(1), AwayScore: intPtr(1)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newMatchFixture(t)
			if _, err := service.FinalizeMatch(t.Context(), tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestMatchService_FinalizeMatch_PublishesEvents(t *testing.T) {
	service, _ := newMatchFixture(t)

	events, cancel := service.hub.Subscribe(watch.Topic("matches", team.DivisionFirst), 4)
	defer cancel()

	if _, err := service.FinalizeMatch(t.Context(), FinalizeMatchInput{
		MatchID: "m-0402", HomeScore: intPtr(1), AwayScore: intPtr(0),
	}); err != nil {
		t.Fatalf("finalize match: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Action != watch.ActionFinalized || ev.EntityID != "m-0402" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}
