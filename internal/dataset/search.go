package dataset

import (
	"sort"
	"strings"
)

// MatchThreshold is the minimum score (out of 100) for a record to count as
// a search hit.
const MatchThreshold = 60

// Score rates how well query matches text, 0-100. A full substring match
// scores 100; otherwise tokens contribute individually, with partial credit
// for near-prefix matches of longer tokens.
func Score(query, text string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 100
	}
	t := strings.ToLower(text)
	if strings.Contains(t, q) {
		return 100
	}
	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return 100
	}
	total := 0
	for _, tok := range tokens {
		switch {
		case strings.Contains(t, tok):
			total += 100
		case len(tok) > 4 && strings.Contains(t, tok[:len(tok)-1]):
			total += 70
		}
	}
	return total / len(tokens)
}

// Search returns records scoring at least MatchThreshold against query over
// title, organisation and summary, best first; ties keep input order. An
// empty query passes records through. limit <= 0 means no cap.
func Search(records []Record, query string, limit int) []Record {
	if strings.TrimSpace(query) == "" {
		if limit > 0 && len(records) > limit {
			return append([]Record{}, records[:limit]...)
		}
		return append([]Record{}, records...)
	}

	type scored struct {
		rec   Record
		score int
	}
	hits := []scored{}
	for _, r := range records {
		text := r.Title + " " + r.Organisation + " " + r.Summary
		if s := Score(query, text); s >= MatchThreshold {
			hits = append(hits, scored{rec: r, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]Record, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
