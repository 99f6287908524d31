// Package report assembles and writes the journey artifacts: JSON, HTML,
// CSV exports, charts, checksums and the run log.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/solardome/strategy-explorer/internal/dataset"
	"github.com/solardome/strategy-explorer/internal/gap"
	"github.com/solardome/strategy-explorer/internal/maturity"
	"github.com/solardome/strategy-explorer/internal/profile"
)

const SchemaVersion = "1.0.0"

// Journey is the full gap-analysis report handed to callers and serialized
// to the JSON artifact.
type Journey struct {
	SchemaVersion string           `json:"schema_version"`
	GeneratedAt   string           `json:"generated_at"`
	RunID         string           `json:"run_id"`
	Inputs        []InputDigest    `json:"inputs,omitempty"`
	Maturity      MaturitySection  `json:"maturity"`
	Gaps          []gap.Row        `json:"gaps"`
	Summary       gap.Summary      `json:"summary"`
	Actions       []gap.Action     `json:"actions"`
	Hints         []AxisHint       `json:"hints,omitempty"`
	Dataset       *dataset.Stats   `json:"dataset,omitempty"`
}

// InputDigest records the provenance of one input file.
type InputDigest struct {
	Kind   string `json:"kind"`
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
	ReadOK bool   `json:"read_ok"`
}

// MaturitySection carries the per-theme scores and their reduction.
type MaturitySection struct {
	Scores  map[string]int `json:"scores"`
	Average float64        `json:"average"`
	Level   string         `json:"level"`
}

// AxisHint is readiness-appropriate guidance for one axis.
type AxisHint struct {
	Axis string `json:"axis"`
	Hint string `json:"hint"`
}

// JourneyInputs collects the computed pieces of a journey report.
type JourneyInputs struct {
	MaturityScores profile.MaturityScores
	Maturity       maturity.Result
	Gaps           []gap.Row
	Actions        []gap.Action
	Hints          []AxisHint
	Stats          *dataset.Stats
	Digests        []InputDigest
}

// NewJourney stamps a fresh report with a run ID and generation time.
func NewJourney(now time.Time, in JourneyInputs) Journey {
	scores := make(map[string]int, len(in.MaturityScores))
	for name, v := range in.MaturityScores {
		scores[name] = v
	}
	return Journey{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   now.UTC().Format(time.RFC3339),
		RunID:         uuid.NewString(),
		Inputs:        in.Digests,
		Maturity: MaturitySection{
			Scores:  scores,
			Average: in.Maturity.Average,
			Level:   in.Maturity.Level.String(),
		},
		Gaps:    in.Gaps,
		Summary: gap.Summarize(in.Gaps),
		Actions: in.Actions,
		Hints:   in.Hints,
		Dataset: in.Stats,
	}
}
