// Package advisor flags target positions that sit uneasily with an
// organisation's measured readiness, and offers per-lens guidance.
package advisor

import "github.com/solardome/strategy-explorer/internal/rubric"

type readiness int

const (
	// readinessLow covers Beginning and Emerging. readinessHigh covers
	// Developing and Mastering; Learning matches neither conflict band.
	readinessLow readiness = iota
	readinessHigh
)

func (r readiness) matches(level rubric.Level) bool {
	switch r {
	case readinessLow:
		return level == rubric.Beginning || level == rubric.Emerging
	case readinessHigh:
		return level == rubric.Developing || level == rubric.Mastering
	}
	return false
}

type scoreBand int

const (
	highTarget scoreBand = iota // target score >= 70
	lowTarget                   // target score <= 30
)

func (b scoreBand) matches(score int) bool {
	switch b {
	case highTarget:
		return score >= 70
	case lowTarget:
		return score <= 30
	}
	return false
}

type conflictRule struct {
	Axis      string
	Readiness readiness
	Score     scoreBand
	Message   string
}

// The rule set is deliberately asymmetric across axes: only the combinations
// judged genuinely risky carry a rule. Low-readiness rules come first and win
// when both bands could apply.
var conflictRules = []conflictRule{
	{"Delivery Mode", readinessLow, highTarget, "Big-bang at Beginning/Emerging maturity is high risk — consider phased delivery."},
	{"Governance Structure", readinessLow, lowTarget, "Federated at low maturity can fragment standards — strengthen central controls first."},
	{"Access Philosophy", readinessLow, lowTarget, "Wide democratisation needs strong basics — start with controlled, role-based access."},
	{"Decision Model", readinessLow, highTarget, "Highly data-driven decisions need robust data quality, monitoring and skills."},
	{"Motivation", readinessLow, highTarget, "Innovation-first without guardrails can raise risk — keep compliance in the loop."},
	{"Delivery Mode", readinessHigh, lowTarget, "At Developing/Mastering, being too incremental may under-deliver benefits."},
	{"Governance Structure", readinessHigh, highTarget, "Highly centralised models may slow teams at higher maturity — consider selective federation."},
	{"Access Philosophy", readinessHigh, highTarget, "Excessive control may limit value realisation — revisit openness where safe."},
}

// Advise returns the conflict message for a target position on one axis at
// the given readiness level, or "" when no rule fires.
func Advise(axis string, targetScore int, level rubric.Level) string {
	for _, r := range conflictRules {
		if r.Axis != axis {
			continue
		}
		if !r.Readiness.matches(level) {
			continue
		}
		if !r.Score.matches(targetScore) {
			continue
		}
		return r.Message
	}
	return ""
}
