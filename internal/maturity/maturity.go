package maturity

import (
	"github.com/solardome/strategy-explorer/internal/profile"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

// Result is the reduction of the six theme scores into a single readiness
// measure. Average is unrounded; Level is the nearest discrete level.
type Result struct {
	Average float64      `json:"average"`
	Level   rubric.Level `json:"-"`
}

// Aggregate reduces a maturity profile to its overall average and level.
// The profile must cover exactly the six themes with values in [1,5].
func Aggregate(scores profile.MaturityScores) (Result, error) {
	if err := profile.ValidateMaturity(scores); err != nil {
		return Result{}, err
	}
	total := 0
	for _, v := range scores {
		total += v
	}
	avg := float64(total) / float64(len(scores))
	return Result{
		Average: avg,
		Level:   rubric.LevelFromAverage(avg),
	}, nil
}
