package advisor

import (
	"testing"

	"github.com/solardome/strategy-explorer/internal/rubric"
)

func TestHintCoversEveryAxisAndLevel(t *testing.T) {
	for _, axis := range rubric.AxisNames() {
		for _, level := range rubric.Levels() {
			if Hint(axis, level) == "" {
				t.Fatalf("no hint for %s at %s", axis, level)
			}
		}
	}
}

func TestHintBands(t *testing.T) {
	// Learning and Developing share the middle hint; only Mastering is high.
	mid := Hint("Governance Structure", rubric.Learning)
	if got := Hint("Governance Structure", rubric.Developing); got != mid {
		t.Fatalf("Developing should reuse the middle hint, got %q vs %q", got, mid)
	}
	low := Hint("Governance Structure", rubric.Beginning)
	if got := Hint("Governance Structure", rubric.Emerging); got != low {
		t.Fatalf("Emerging should reuse the low hint, got %q vs %q", got, low)
	}
	if Hint("Governance Structure", rubric.Mastering) == mid {
		t.Fatal("Mastering hint should differ from the middle band")
	}
}

func TestHintUnknownAxis(t *testing.T) {
	if got := Hint("Velocity", rubric.Learning); got != "" {
		t.Fatalf("expected empty hint for unknown axis, got %q", got)
	}
}
