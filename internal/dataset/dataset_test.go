package dataset

import (
	"strings"
	"testing"
)

const sampleCSV = `id,title,organisation,org_type,country,year,scope,link,summary,source,date_added
s1,National Data Strategy,DCMS,central,United Kingdom,2020,national,https://example.org/nds,Framework for unlocking the value of data across the economy.,gov.uk,2024-01-10
s2,Data Vision 2030,Digital Agency,agency,Denmark,2023,agency,https://example.org/dv,Conceptual vision for public data reuse.,web,2024-02-01
s3,Health Data Plan,NHS,health,United Kingdom,n/a,departmental,https://example.org/hdp,Plan for health data interoperability.,gov.uk,2024-03-05
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Title != "National Data Strategy" || records[0].Country != "United Kingdom" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[0].Year == nil || *records[0].Year != 2020 {
		t.Fatalf("year not coerced: %+v", records[0].Year)
	}
	if records[2].Year != nil {
		t.Fatalf("non-numeric year should be nil, got %v", *records[2].Year)
	}
	if records[2].RawYear != "n/a" {
		t.Fatalf("raw year lost: %q", records[2].RawYear)
	}
}

func TestParseMissingColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("id,title\n1,x\n"))
	if err == nil || !strings.Contains(err.Error(), "missing columns") {
		t.Fatalf("expected missing columns error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParseShortRow(t *testing.T) {
	csv := "id,title,organisation,org_type,country,year,scope,link,summary,source,date_added\ns1,Only Title\n"
	records, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if records[0].Title != "Only Title" || records[0].Summary != "" {
		t.Fatalf("short row not padded: %+v", records[0])
	}
}

func TestValidateRecords(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	t.Run("sample_issues", func(t *testing.T) {
		issues := ValidateRecords(records)
		// Row 3 (line 4): year not YYYY.
		found := false
		for _, is := range issues {
			if is.Line == 4 && is.Field == "year" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected year issue on line 4, got %v", issues)
		}
	})

	t.Run("clean_rows_pass", func(t *testing.T) {
		if issues := ValidateRecords(records[:2]); len(issues) != 0 {
			t.Fatalf("expected no issues, got %v", issues)
		}
	})

	t.Run("rule_set", func(t *testing.T) {
		bad := Record{
			Title:        "",
			Organisation: "Org",
			RawYear:      "20x1",
			Scope:        "continental",
			Link:         "ftp://example.org",
			Summary:      strings.Repeat("a", 281),
		}
		issues := ValidateRecords([]Record{bad})
		fields := map[string]bool{}
		for _, is := range issues {
			fields[is.Field] = true
		}
		for _, f := range []string{"title", "year", "scope", "link", "summary"} {
			if !fields[f] {
				t.Fatalf("expected issue for %q, got %v", f, issues)
			}
		}
	})
}

func TestApplyFilter(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	t.Run("year_range_drops_unparsed", func(t *testing.T) {
		got := Apply(records, Filter{YearFrom: 2020, YearTo: 2023})
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
	})

	t.Run("country", func(t *testing.T) {
		got := Apply(records, Filter{Countries: []string{"united kingdom"}})
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
	})

	t.Run("scope_and_year", func(t *testing.T) {
		got := Apply(records, Filter{Scopes: []string{"agency"}, YearFrom: 2021})
		if len(got) != 1 || got[0].ID != "s2" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("empty_filter_matches_all", func(t *testing.T) {
		if got := Apply(records, Filter{}); len(got) != 3 {
			t.Fatalf("expected all records, got %d", len(got))
		}
	})
}

func TestSearch(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	t.Run("substring_hit", func(t *testing.T) {
		got := Search(records, "health data", 0)
		if len(got) != 1 || got[0].ID != "s3" {
			t.Fatalf("unexpected hits: %+v", got)
		}
	})

	t.Run("token_hit", func(t *testing.T) {
		got := Search(records, "vision reuse", 0)
		if len(got) == 0 {
			t.Fatal("expected at least one hit")
		}
		if got[0].ID != "s2" {
			t.Fatalf("best hit = %q", got[0].ID)
		}
	})

	t.Run("miss", func(t *testing.T) {
		if got := Search(records, "quantum submarine", 0); len(got) != 0 {
			t.Fatalf("expected no hits, got %+v", got)
		}
	})

	t.Run("empty_query_passthrough", func(t *testing.T) {
		if got := Search(records, "  ", 0); len(got) != 3 {
			t.Fatalf("expected all records, got %d", len(got))
		}
	})

	t.Run("limit", func(t *testing.T) {
		if got := Search(records, "", 2); len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
	})
}

func TestScore(t *testing.T) {
	if Score("data strategy", "National Data Strategy for everyone") != 100 {
		t.Fatal("full substring should score 100")
	}
	if s := Score("strategy denmark", "data strategy document"); s != 50 {
		t.Fatalf("half token match = %d, want 50", s)
	}
	if Score("", "anything") != 100 {
		t.Fatal("empty query should score 100")
	}
}

func TestSummarize(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	st := Summarize(records)
	if st.Rows != 3 || st.Countries != 2 || st.OrgTypes != 3 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if !st.HasYears || st.YearMin != 2020 || st.YearMax != 2023 {
		t.Fatalf("year span wrong: %+v", st)
	}
	if st.ByScope["national"] != 1 || st.ByYear[2020] != 1 {
		t.Fatalf("count maps wrong: %+v", st)
	}

	empty := Summarize(nil)
	if empty.Rows != 0 || empty.HasYears {
		t.Fatalf("empty stats wrong: %+v", empty)
	}
}
