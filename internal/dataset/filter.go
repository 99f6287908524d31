package dataset

import "strings"

// Filter narrows a record set. Zero year bounds mean unbounded; empty lists
// match everything.
type Filter struct {
	YearFrom  int
	YearTo    int
	OrgTypes  []string
	Countries []string
	Scopes    []string
}

// Apply returns the records matching every set criterion. Records without a
// numeric year are dropped when a year bound is set.
func Apply(records []Record, f Filter) []Record {
	out := []Record{}
	for _, r := range records {
		if f.YearFrom > 0 || f.YearTo > 0 {
			if r.Year == nil {
				continue
			}
			if f.YearFrom > 0 && *r.Year < f.YearFrom {
				continue
			}
			if f.YearTo > 0 && *r.Year > f.YearTo {
				continue
			}
		}
		if !matchesAny(f.OrgTypes, r.OrgType) {
			continue
		}
		if !matchesAny(f.Countries, r.Country) {
			continue
		}
		if !matchesAny(f.Scopes, r.Scope) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesAny(values []string, target string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
