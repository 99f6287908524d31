package maturity

import (
	"errors"
	"testing"

	"github.com/solardome/strategy-explorer/internal/profile"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

func allThemes(v int) profile.MaturityScores {
	m := profile.MaturityScores{}
	for _, name := range rubric.ThemeNames() {
		m[name] = v
	}
	return m
}

func TestAggregateBoundaries(t *testing.T) {
	t.Run("all_ones", func(t *testing.T) {
		res, err := Aggregate(allThemes(1))
		if err != nil {
			t.Fatalf("aggregate failed: %v", err)
		}
		if res.Average != 1.0 || res.Level != rubric.Beginning {
			t.Fatalf("expected 1.0/Beginning, got %v/%v", res.Average, res.Level)
		}
	})

	t.Run("all_fives", func(t *testing.T) {
		res, err := Aggregate(allThemes(5))
		if err != nil {
			t.Fatalf("aggregate failed: %v", err)
		}
		if res.Average != 5.0 || res.Level != rubric.Mastering {
			t.Fatalf("expected 5.0/Mastering, got %v/%v", res.Average, res.Level)
		}
	})
}

func TestAggregateAverageUnrounded(t *testing.T) {
	m := allThemes(3)
	m["Uses"] = 4
	res, err := Aggregate(m)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	want := 19.0 / 6.0
	if res.Average != want {
		t.Fatalf("average = %v, want %v", res.Average, want)
	}
	if res.Level != rubric.Learning {
		t.Fatalf("level = %v, want Learning", res.Level)
	}
}

func TestAggregateMonotonic(t *testing.T) {
	// Raising any single theme must never lower average or level.
	for _, theme := range rubric.ThemeNames() {
		base := allThemes(2)
		prev, err := Aggregate(base)
		if err != nil {
			t.Fatalf("aggregate failed: %v", err)
		}
		for v := 3; v <= 5; v++ {
			base[theme] = v
			next, err := Aggregate(base)
			if err != nil {
				t.Fatalf("aggregate failed: %v", err)
			}
			if next.Average < prev.Average {
				t.Fatalf("theme %q at %d lowered average %v -> %v", theme, v, prev.Average, next.Average)
			}
			if next.Level < prev.Level {
				t.Fatalf("theme %q at %d lowered level %v -> %v", theme, v, prev.Level, next.Level)
			}
			prev = next
		}
	}
}

func TestAggregateInvalidInput(t *testing.T) {
	t.Run("missing_theme", func(t *testing.T) {
		m := allThemes(3)
		delete(m, "Culture")
		if _, err := Aggregate(m); !errors.Is(err, profile.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		m := allThemes(3)
		m["Data"] = 9
		if _, err := Aggregate(m); !errors.Is(err, profile.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
