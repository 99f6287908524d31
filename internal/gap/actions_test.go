package gap

import (
	"testing"

	"github.com/solardome/strategy-explorer/internal/profile"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

func rankedFixture(t *testing.T) []Row {
	t.Helper()
	current := profile.DefaultScores()
	target := profile.DefaultScores()
	target["Ambition"] = 100
	target["Adaptability"] = 10
	target["Coverage"] = 70
	rows, err := Analyze(current, target, rubric.Learning)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	return rows
}

func TestSeedActionsTopN(t *testing.T) {
	rows := rankedFixture(t)
	actions := SeedActions(rows, 3)
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}
	for i, a := range actions {
		if a.Priority != i+1 {
			t.Fatalf("priority at %d = %d", i, a.Priority)
		}
		if a.Axis != rows[i].Axis {
			t.Fatalf("action %d axis %q does not match input order %q", i, a.Axis, rows[i].Axis)
		}
		if a.Owner != "" || a.Timeline != "" || a.Metric != "" || a.Status != "" {
			t.Fatalf("placeholder fields must stay empty: %+v", a)
		}
	}
	if actions[0].Direction != "toward Transformational" {
		t.Fatalf("direction = %q", actions[0].Direction)
	}
	if actions[1].Direction != "toward Living" {
		t.Fatalf("direction = %q", actions[1].Direction)
	}
}

func TestSeedActionsNoChange(t *testing.T) {
	rows, err := Analyze(profile.DefaultScores(), profile.DefaultScores(), rubric.Learning)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	actions := SeedActions(rows, 3)
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}
	for _, a := range actions {
		if a.Direction != "no change" {
			t.Fatalf("expected no-change direction, got %q", a.Direction)
		}
	}
}

func TestSeedActionsEdges(t *testing.T) {
	rows := rankedFixture(t)

	t.Run("zero_top_n", func(t *testing.T) {
		if got := SeedActions(rows, 0); len(got) != 0 {
			t.Fatalf("expected empty, got %d", len(got))
		}
	})

	t.Run("negative_top_n", func(t *testing.T) {
		if got := SeedActions(rows, -1); len(got) != 0 {
			t.Fatalf("expected empty, got %d", len(got))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if got := SeedActions(nil, 3); len(got) != 0 {
			t.Fatalf("expected empty, got %d", len(got))
		}
	})

	t.Run("top_n_exceeds_rows", func(t *testing.T) {
		if got := SeedActions(rows, 99); len(got) != len(rows) {
			t.Fatalf("expected %d actions, got %d", len(rows), len(got))
		}
	})
}
