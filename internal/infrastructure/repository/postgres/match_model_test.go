package postgres

import (
	"testing"

	"github.com/futliga/liga-api/internal/domain/match"
)

func TestMarshalJSONColumn_BindsAsText(t *testing.T) {
	cards := map[string]match.CardEntry{
		"pl-005": {Yellows: 2},
	}

	bound, err := marshalJSONColumn(cards)
	if err != nil {
		t.Fatalf("marshal json column: %v", err)
	}

	// A []byte argument would reach the driver as a bytea literal and the
	// jsonb target would reject it.
	text, ok := bound.(string)
	if !ok {
		t.Fatalf("expected string bind value, got %T", bound)
	}

	var decoded map[string]match.CardEntry
	if err := unmarshalJSONColumn([]byte(text), &decoded); err != nil {
		t.Fatalf("unmarshal json column: %v", err)
	}
	if decoded["pl-005"].Yellows != 2 {
		t.Fatalf("round trip lost card entry: %+v", decoded)
	}
}

func TestMarshalJSONColumn_Nil(t *testing.T) {
	bound, err := marshalJSONColumn(nil)
	if err != nil {
		t.Fatalf("marshal json column: %v", err)
	}
	if bound != nil {
		t.Fatalf("expected nil bind value, got %v", bound)
	}
}

func TestMarshalJSONColumn_MissedRounds(t *testing.T) {
	bound, err := marshalJSONColumn([]int{6, 7})
	if err != nil {
		t.Fatalf("marshal json column: %v", err)
	}
	if text, ok := bound.(string); !ok || text != "[6,7]" {
		t.Fatalf("expected text form [6,7], got %T %v", bound, bound)
	}
}
