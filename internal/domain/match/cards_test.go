package match

import "testing"

func TestCardEntry_RedCardReason(t *testing.T) {
	if reason, ok := (CardEntry{RedDirect: true}).RedCardReason(); !ok || reason != ReasonDirectRed {
		t.Fatalf("direct red reason = %q ok=%v", reason, ok)
	}
	if reason, ok := (CardEntry{Yellows: 2}).RedCardReason(); !ok || reason != ReasonDoubleYellow {
		t.Fatalf("double yellow reason = %q ok=%v", reason, ok)
	}
	if _, ok := (CardEntry{Yellows: 1}).RedCardReason(); ok {
		t.Fatal("single yellow must not produce a red card reason")
	}
}

func TestCardEntry_Validate(t *testing.T) {
	if err := (CardEntry{Yellows: 3}).Validate(); err == nil {
		t.Fatal("expected error for three yellows")
	}
	if err := (CardEntry{Yellows: -1}).Validate(); err == nil {
		t.Fatal("expected error for negative yellows")
	}
	if err := (CardEntry{Yellows: 2, RedDirect: true}).Validate(); err == nil {
		t.Fatal("expected error for two yellows plus a direct red")
	}
	if err := (CardEntry{Yellows: 1, RedDirect: true}).Validate(); err != nil {
		t.Fatalf("one yellow plus direct red should validate: %v", err)
	}
}

func TestMatch_ScoreFor(t *testing.T) {
	home, away := 3, 1
	m := Match{HomeTeamID: "h", AwayTeamID: "a", HomeScore: &home, AwayScore: &away}

	if gf, ga, ok := m.ScoreFor("h"); !ok || gf != 3 || ga != 1 {
		t.Fatalf("home perspective = %d-%d ok=%v", gf, ga, ok)
	}
	if gf, ga, ok := m.ScoreFor("a"); !ok || gf != 1 || ga != 3 {
		t.Fatalf("away perspective = %d-%d ok=%v", gf, ga, ok)
	}
	if _, _, ok := m.ScoreFor("x"); ok {
		t.Fatal("non-participant must not match")
	}
}
