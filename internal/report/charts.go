package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/solardome/strategy-explorer/internal/dataset"
	"github.com/solardome/strategy-explorer/internal/gap"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

var (
	barBlue = drawing.ColorFromHex("1d70b8")
	barRed  = drawing.ColorFromHex("d4351c")
	barTeal = drawing.ColorFromHex("28a197")
)

// RenderGapChart draws one bar per axis showing the signed change needed.
// Conflicting axes are drawn in red.
func RenderGapChart(w io.Writer, rows []gap.Row) error {
	if len(rows) == 0 {
		return fmt.Errorf("no gap rows to chart")
	}
	bars := make([]chart.Value, 0, len(rows))
	for _, r := range rows {
		fill := barBlue
		if r.Conflict {
			fill = barRed
		}
		bars = append(bars, chart.Value{
			Value: float64(r.ChangeNeeded),
			Label: r.Axis,
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		})
	}
	bc := chart.BarChart{
		Title:        "Change needed per lens",
		Width:        1080,
		Height:       420,
		BarWidth:     60,
		UseBaseValue: true,
		BaseValue:    0.0,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: chart.Style{FontSize: 7},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: -100, Max: 100},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

func WriteGapChart(path string, rows []gap.Row) error {
	return writeChart(path, func(w io.Writer) error {
		return RenderGapChart(w, rows)
	})
}

func WriteMaturityChart(path string, scores map[string]int) error {
	return writeChart(path, func(w io.Writer) error {
		bars := make([]chart.Value, 0, len(scores))
		for _, theme := range rubric.Themes() {
			bars = append(bars, chart.Value{
				Value: float64(scores[theme.Name]),
				Label: theme.Name,
				Style: chart.Style{FillColor: barTeal, StrokeColor: barTeal},
			})
		}
		if len(bars) == 0 {
			return fmt.Errorf("no maturity scores to chart")
		}
		bc := chart.BarChart{
			Title:    "Maturity by theme",
			Width:    800,
			Height:   360,
			BarWidth: 80,
			Background: chart.Style{
				Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
			},
			XAxis: chart.Style{FontSize: 8},
			YAxis: chart.YAxis{
				Range: &chart.ContinuousRange{Min: 0, Max: 5},
			},
			Bars: bars,
		}
		return bc.Render(chart.PNG, w)
	})
}

// WriteDatasetCharts renders the by-year bar chart and by-scope pie chart
// into dir. Charts with no data are skipped.
func WriteDatasetCharts(dir string, stats *dataset.Stats) ([]string, error) {
	if stats == nil {
		return nil, nil
	}
	var written []string

	if len(stats.ByYear) > 0 {
		years := make([]int, 0, len(stats.ByYear))
		for y := range stats.ByYear {
			years = append(years, y)
		}
		sort.Ints(years)
		bars := make([]chart.Value, 0, len(years))
		for _, y := range years {
			bars = append(bars, chart.Value{
				Value: float64(stats.ByYear[y]),
				Label: strconv.Itoa(y),
				Style: chart.Style{FillColor: barBlue, StrokeColor: barBlue},
			})
		}
		path := filepath.Join(dir, "strategies-by-year.png")
		err := writeChart(path, func(w io.Writer) error {
			bc := chart.BarChart{
				Title:    "Strategies by year",
				Width:    900,
				Height:   360,
				BarWidth: 40,
				Background: chart.Style{
					Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
				},
				Bars: bars,
			}
			return bc.Render(chart.PNG, w)
		})
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if len(stats.ByScope) > 0 {
		scopes := make([]string, 0, len(stats.ByScope))
		for s := range stats.ByScope {
			scopes = append(scopes, s)
		}
		sort.Strings(scopes)
		values := make([]chart.Value, 0, len(scopes))
		for _, s := range scopes {
			values = append(values, chart.Value{
				Value: float64(stats.ByScope[s]),
				Label: fmt.Sprintf("%s (%d)", s, stats.ByScope[s]),
			})
		}
		path := filepath.Join(dir, "strategies-by-scope.png")
		err := writeChart(path, func(w io.Writer) error {
			pc := chart.PieChart{
				Title:  "Strategies by scope",
				Width:  600,
				Height: 600,
				Values: values,
			}
			return pc.Render(chart.PNG, w)
		})
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeChart(path string, render func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f)
}
