package dataset

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const maxSummaryLength = 280

var (
	yearPattern = regexp.MustCompile(`^\d{4}$`)
	linkPattern = regexp.MustCompile(`^https?://`)
)

var validScopes = map[string]bool{
	"national":         true,
	"departmental":     true,
	"agency":           true,
	"devolved":         true,
	"local":            true,
	"cross-government": true,
}

var requiredFields = []struct {
	name string
	get  func(Record) string
}{
	{"title", func(r Record) string { return r.Title }},
	{"organisation", func(r Record) string { return r.Organisation }},
	{"year", func(r Record) string { return r.RawYear }},
	{"scope", func(r Record) string { return r.Scope }},
	{"link", func(r Record) string { return r.Link }},
	{"summary", func(r Record) string { return r.Summary }},
}

// Issue is a single row-level validation problem. Line is the CSV file line
// (data rows start at 2, after the header).
type Issue struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("row %d: %s: %s", i.Line, i.Field, i.Message)
}

// ValidateRecords checks every record against the dataset quality rules and
// collects all issues rather than stopping at the first.
func ValidateRecords(records []Record) []Issue {
	issues := []Issue{}
	add := func(line int, field, message string) {
		issues = append(issues, Issue{Line: line, Field: field, Message: message})
	}
	for i, r := range records {
		line := i + 2
		for _, f := range requiredFields {
			if f.get(r) == "" {
				add(line, f.name, "missing required field")
			}
		}
		if r.RawYear != "" && !yearPattern.MatchString(r.RawYear) {
			add(line, "year", fmt.Sprintf("not YYYY: %q", r.RawYear))
		}
		if r.Link != "" && !linkPattern.MatchString(r.Link) {
			add(line, "link", fmt.Sprintf("not http/https: %q", r.Link))
		}
		if !validScopes[r.Scope] {
			add(line, "scope", fmt.Sprintf("invalid scope: %q", r.Scope))
		}
		if utf8.RuneCountInString(r.Summary) > maxSummaryLength {
			add(line, "summary", fmt.Sprintf("too long (>%d chars)", maxSummaryLength))
		}
	}
	return issues
}
