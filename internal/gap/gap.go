// Package gap computes the journey from a current tension profile to a
// target one: signed deltas per axis, readiness conflicts, ranking, and a
// seed action list for the highest-priority shifts.
package gap

import (
	"fmt"
	"sort"

	"github.com/solardome/strategy-explorer/internal/advisor"
	"github.com/solardome/strategy-explorer/internal/profile"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

// DirectionNone marks an axis whose current and target positions coincide.
const DirectionNone = "none"

// Row is the computed gap for a single axis.
type Row struct {
	Axis         string `json:"axis"`
	Current      int    `json:"current"`
	Target       int    `json:"target"`
	ChangeNeeded int    `json:"change_needed"`
	Magnitude    int    `json:"magnitude"`
	Direction    string `json:"direction"`
	Conflict     bool   `json:"conflict"`
	ConflictNote string `json:"conflict_note,omitempty"`
}

// Summary counts the planned moves across all ten axes.
type Summary struct {
	TowardLeft  int `json:"toward_left"`
	TowardRight int `json:"toward_right"`
	Unchanged   int `json:"unchanged"`
	Conflicts   int `json:"conflicts"`
}

// Analyze computes one Row per axis and ranks them: conflicts first, then
// magnitude descending, ties broken by axis declaration order. Both profiles
// must cover exactly the ten axes with values in [0,100].
func Analyze(current, target profile.Scores, level rubric.Level) ([]Row, error) {
	if err := profile.ValidateScores(current); err != nil {
		return nil, fmt.Errorf("current profile: %w", err)
	}
	if err := profile.ValidateScores(target); err != nil {
		return nil, fmt.Errorf("target profile: %w", err)
	}

	axes := rubric.Axes()
	rows := make([]Row, 0, len(axes))
	for _, a := range axes {
		cur := current[a.Name]
		tgt := target[a.Name]
		diff := tgt - cur
		mag := diff
		if mag < 0 {
			mag = -mag
		}
		direction := DirectionNone
		switch {
		case diff > 0:
			direction = "toward " + a.RightLabel
		case diff < 0:
			direction = "toward " + a.LeftLabel
		}
		note := advisor.Advise(a.Name, tgt, level)
		rows = append(rows, Row{
			Axis:         a.Name,
			Current:      cur,
			Target:       tgt,
			ChangeNeeded: diff,
			Magnitude:    mag,
			Direction:    direction,
			Conflict:     note != "",
			ConflictNote: note,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Conflict != rows[j].Conflict {
			return rows[i].Conflict
		}
		return rows[i].Magnitude > rows[j].Magnitude
	})
	return rows, nil
}

// Summarize tallies the move directions and conflicts across rows.
func Summarize(rows []Row) Summary {
	var s Summary
	for _, r := range rows {
		switch {
		case r.ChangeNeeded < 0:
			s.TowardLeft++
		case r.ChangeNeeded > 0:
			s.TowardRight++
		default:
			s.Unchanged++
		}
		if r.Conflict {
			s.Conflicts++
		}
	}
	return s
}
