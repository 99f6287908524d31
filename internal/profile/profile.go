package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/solardome/strategy-explorer/internal/rubric"
)

// ErrInvalidInput marks a profile whose key set or value range does not match
// the fixed rubric shape.
var ErrInvalidInput = errors.New("invalid input")

// Scores positions the ten tension axes, axis name to 0-100.
type Scores map[string]int

// MaturityScores rates the six maturity themes, theme name to 1-5.
type MaturityScores map[string]int

// DefaultScores returns the neutral profile: every axis at 50.
func DefaultScores() Scores {
	s := make(Scores, 10)
	for _, name := range rubric.AxisNames() {
		s[name] = 50
	}
	return s
}

// DefaultMaturity returns the neutral maturity profile: every theme at 3.
func DefaultMaturity() MaturityScores {
	m := make(MaturityScores, 6)
	for _, name := range rubric.ThemeNames() {
		m[name] = 3
	}
	return m
}

// ValidateScores checks that s covers exactly the ten axes with values in
// [0,100]. Any violation is reported as an ErrInvalidInput.
func ValidateScores(s Scores) error {
	return validateKeyed(map[string]int(s), rubric.AxisNames(), "axis", 0, 100)
}

// ValidateMaturity checks that m covers exactly the six themes with values in
// [1,5]. Any violation is reported as an ErrInvalidInput.
func ValidateMaturity(m MaturityScores) error {
	return validateKeyed(map[string]int(m), rubric.ThemeNames(), "theme", 1, 5)
}

func validateKeyed(values map[string]int, expected []string, kind string, min, max int) error {
	expectedSet := make(map[string]bool, len(expected))
	for _, name := range expected {
		expectedSet[name] = true
	}
	for _, name := range expected {
		v, ok := values[name]
		if !ok {
			return fmt.Errorf("%w: missing %s %q", ErrInvalidInput, kind, name)
		}
		if v < min || v > max {
			return fmt.Errorf("%w: %s %q score %d outside [%d,%d]", ErrInvalidInput, kind, name, v, min, max)
		}
	}
	if len(values) != len(expected) {
		extras := make([]string, 0, len(values))
		for name := range values {
			if !expectedSet[name] {
				extras = append(extras, name)
			}
		}
		sort.Strings(extras)
		return fmt.Errorf("%w: unexpected %s keys %v", ErrInvalidInput, kind, extras)
	}
	return nil
}

// Clamp pins v into [min,max]. Callers use it to sanitize slider-style input
// before handing profiles to the analyzers.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// LoadScores reads a tension profile from a flat name-to-value YAML or JSON
// document and validates it.
func LoadScores(path string) (Scores, error) {
	var s Scores
	if err := loadKeyed(path, &s); err != nil {
		return nil, err
	}
	if err := ValidateScores(s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadMaturity reads a maturity profile from a flat name-to-value YAML or
// JSON document and validates it.
func LoadMaturity(path string) (MaturityScores, error) {
	var m MaturityScores
	if err := loadKeyed(path, &m); err != nil {
		return nil, err
	}
	if err := ValidateMaturity(m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func loadKeyed(path string, out interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("profile read failed: %w", err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("profile parse failed %s: %w", path, err)
	}
	return nil
}

// SaveScores writes a tension profile as a flat name-to-value JSON document,
// the same shape LoadScores reads.
func SaveScores(path string, s Scores) error {
	if err := ValidateScores(s); err != nil {
		return err
	}
	return saveKeyed(path, map[string]int(s))
}

// SaveMaturity writes a maturity profile as a flat name-to-value JSON
// document.
func SaveMaturity(path string, m MaturityScores) error {
	if err := ValidateMaturity(m); err != nil {
		return err
	}
	return saveKeyed(path, map[string]int(m))
}

func saveKeyed(path string, values map[string]int) error {
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("profile marshal failed: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("profile write failed: %w", err)
	}
	return nil
}
