package suggest

import (
	"testing"

	"github.com/sandeepkv93/focald/internal/model"
)

func TestFindExactTitle(t *testing.T) {
	m, ok := Find("gym")
	if !ok || m.Icon != "🏋️" || m.Color != "sage" {
		t.Fatalf("unexpected mapping: %+v ok=%v", m, ok)
	}
}

func TestFindSubstringPrefersLongerKeyword(t *testing.T) {
	m, ok := Find("Sunday meal cooking session")
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Label != "Cooking" {
		t.Fatalf("expected the longer keyword to win, got %q", m.Label)
	}
}

func TestFindIsCaseAndSpaceInsensitive(t *testing.T) {
	m, ok := Find("  GYM  ")
	if !ok || m.Icon != "🏋️" {
		t.Fatalf("unexpected mapping: %+v ok=%v", m, ok)
	}

	// Longer keywords win the substring scan, so "morning" beats "run"
	// regardless of casing.
	m, ok = Find("  Morning RUN  ")
	if !ok || m.Label != "Morning" {
		t.Fatalf("unexpected mapping: %+v ok=%v", m, ok)
	}
}

func TestFindDeterministic(t *testing.T) {
	first, ok := Find("call with doctor")
	if !ok {
		t.Fatalf("expected a match")
	}
	for i := 0; i < 20; i++ {
		again, _ := Find("call with doctor")
		if again != first {
			t.Fatalf("nondeterministic match: %+v vs %+v", again, first)
		}
	}
}

func TestFallbackDefaults(t *testing.T) {
	if _, ok := Find("zzzz unmatched"); ok {
		t.Fatalf("expected no match")
	}
	if got := Icon("zzzz unmatched"); got != model.DefaultIcon {
		t.Fatalf("icon fallback: %q", got)
	}
	if got := Color(""); got != model.DefaultColor {
		t.Fatalf("color fallback: %q", got)
	}
}
