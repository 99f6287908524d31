package dataset

// Stats aggregates a record set for the explore views.
type Stats struct {
	Rows      int            `json:"rows"`
	Countries int            `json:"countries"`
	OrgTypes  int            `json:"org_types"`
	YearMin   int            `json:"year_min,omitempty"`
	YearMax   int            `json:"year_max,omitempty"`
	HasYears  bool           `json:"has_years"`
	ByYear    map[int]int    `json:"by_year"`
	ByOrgType map[string]int `json:"by_org_type"`
	ByCountry map[string]int `json:"by_country"`
	ByScope   map[string]int `json:"by_scope"`
}

// Summarize computes aggregate counts over records. Empty cells do not
// count toward the distinct totals.
func Summarize(records []Record) Stats {
	st := Stats{
		Rows:      len(records),
		ByYear:    map[int]int{},
		ByOrgType: map[string]int{},
		ByCountry: map[string]int{},
		ByScope:   map[string]int{},
	}
	for _, r := range records {
		if r.Year != nil {
			y := *r.Year
			st.ByYear[y]++
			if !st.HasYears || y < st.YearMin {
				st.YearMin = y
			}
			if !st.HasYears || y > st.YearMax {
				st.YearMax = y
			}
			st.HasYears = true
		}
		if r.OrgType != "" {
			st.ByOrgType[r.OrgType]++
		}
		if r.Country != "" {
			st.ByCountry[r.Country]++
		}
		if r.Scope != "" {
			st.ByScope[r.Scope]++
		}
	}
	st.Countries = len(st.ByCountry)
	st.OrgTypes = len(st.ByOrgType)
	return st
}
