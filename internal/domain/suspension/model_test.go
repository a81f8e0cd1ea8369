package suspension

import (
	"testing"
	"time"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name        string
		offense     int
		games       int
		wantMissed  []int
		wantReturn  int
	}{
		{name: "one game", offense: 7, games: 1, wantMissed: []int{8}, wantReturn: 9},
		{name: "three games", offense: 7, games: 3, wantMissed: []int{8, 9, 10}, wantReturn: 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			missed, returnRound := Derive(tc.offense, tc.games)
			if returnRound != tc.wantReturn {
				t.Fatalf("return round = %d, want %d", returnRound, tc.wantReturn)
			}
			if len(missed) != len(tc.wantMissed) {
				t.Fatalf("missed rounds = %v, want %v", missed, tc.wantMissed)
			}
			for i := range missed {
				if missed[i] != tc.wantMissed[i] {
					t.Fatalf("missed rounds = %v, want %v", missed, tc.wantMissed)
				}
			}
		})
	}
}

func TestReschedule_RecomputesDerivedFieldsOnly(t *testing.T) {
	s := New("s1", "p1", "Juan Pérez", "t1", "1ra", "m1", ReasonForTest, 7, 1, time.Now())
	s.MarkServed()

	if err := s.Reschedule(3); err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}

	if s.ReturnRound != 11 {
		t.Fatalf("return round = %d, want 11", s.ReturnRound)
	}
	if len(s.MissedRounds) != 3 || s.MissedRounds[0] != 8 || s.MissedRounds[2] != 10 {
		t.Fatalf("missed rounds = %v, want [8 9 10]", s.MissedRounds)
	}
	if s.Status != StatusServed {
		t.Fatalf("reschedule must not change status, got %s", s.Status)
	}
}

func TestReschedule_RejectsNonPositiveGames(t *testing.T) {
	s := New("s1", "p1", "Juan Pérez", "t1", "1ra", "m1", ReasonForTest, 7, 1, time.Now())

	if err := s.Reschedule(0); err == nil {
		t.Fatal("expected error for zero games")
	}
	if s.Games != 1 {
		t.Fatalf("failed reschedule must not mutate, games = %d", s.Games)
	}
}

func TestMarkServed_Idempotent(t *testing.T) {
	s := New("s1", "p1", "Juan Pérez", "t1", "1ra", "m1", ReasonForTest, 4, 2, time.Now())

	s.MarkServed()
	s.MarkServed()

	if s.Status != StatusServed {
		t.Fatalf("status = %s, want %s", s.Status, StatusServed)
	}
	if s.IsActive() {
		t.Fatal("served suspension must not report active")
	}
}

const ReasonForTest = "roja directa"
