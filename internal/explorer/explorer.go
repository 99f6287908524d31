// Package explorer runs a full gap-analysis pass: load profiles, aggregate
// maturity, rank gaps, seed actions and write the report artifacts.
package explorer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/solardome/strategy-explorer/internal/advisor"
	"github.com/solardome/strategy-explorer/internal/dataset"
	"github.com/solardome/strategy-explorer/internal/gap"
	"github.com/solardome/strategy-explorer/internal/maturity"
	"github.com/solardome/strategy-explorer/internal/profile"
	"github.com/solardome/strategy-explorer/internal/report"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

const DefaultTopN = 3

type Config struct {
	CurrentPath  string
	TargetPath   string
	MaturityPath string
	DatasetPath  string

	OutJSONPath        string
	OutHTMLPath        string
	OutActionsCSVPath  string
	OutMaturityCSVPath string
	ChartDir           string
	ChecksumsPath      string
	RunLogPath         string

	TopN        int
	WriteHTML   bool
	WriteCharts bool
}

func Run(cfg Config) (report.Journey, error) {
	if strings.TrimSpace(cfg.OutJSONPath) == "" {
		cfg.OutJSONPath = "journey.json"
	}
	if strings.TrimSpace(cfg.OutHTMLPath) == "" {
		cfg.OutHTMLPath = report.DefaultHTMLPath(cfg.OutJSONPath)
	}
	if strings.TrimSpace(cfg.ChecksumsPath) == "" {
		cfg.ChecksumsPath = report.DefaultChecksumsPath(cfg.OutJSONPath)
	}
	if strings.TrimSpace(cfg.RunLogPath) == "" {
		cfg.RunLogPath = report.DefaultRunLogPath(cfg.OutJSONPath)
	}
	if cfg.TopN == 0 {
		cfg.TopN = DefaultTopN
	}

	log, logErr := report.NewRunLogger(cfg.RunLogPath)
	if logErr == nil {
		defer log.Close()
		log.Info("run.start", map[string]interface{}{
			"current_path":  cfg.CurrentPath,
			"target_path":   cfg.TargetPath,
			"maturity_path": cfg.MaturityPath,
			"dataset_path":  cfg.DatasetPath,
			"out_json":      cfg.OutJSONPath,
			"out_html":      cfg.OutHTMLPath,
			"top_n":         cfg.TopN,
		})
	} else {
		log = nil
	}

	in, err := loadInputs(cfg)
	if err != nil {
		if log != nil {
			log.Warn("run.load_inputs.error", map[string]interface{}{"error": err.Error()})
		}
		return report.Journey{}, err
	}
	if log != nil {
		log.Info("run.load_inputs.ok", map[string]interface{}{
			"input_count":  len(in.Digests),
			"dataset_rows": datasetRows(in.Stats),
		})
	}

	agg, err := maturity.Aggregate(in.MaturityScores)
	if err != nil {
		return report.Journey{}, fmt.Errorf("maturity profile: %w", err)
	}
	rows, err := gap.Analyze(in.Current, in.Target, agg.Level)
	if err != nil {
		return report.Journey{}, err
	}
	actions := gap.SeedActions(rows, cfg.TopN)
	hints := collectHints(agg.Level)

	journey := report.NewJourney(time.Now(), report.JourneyInputs{
		MaturityScores: in.MaturityScores,
		Maturity:       agg,
		Gaps:           rows,
		Actions:        actions,
		Hints:          hints,
		Stats:          in.Stats,
		Digests:        in.Digests,
	})
	if log != nil {
		log.Info("run.analyze.ok", map[string]interface{}{
			"run_id":    journey.RunID,
			"level":     journey.Maturity.Level,
			"conflicts": journey.Summary.Conflicts,
			"actions":   len(journey.Actions),
		})
	}

	if err := report.WriteJSON(cfg.OutJSONPath, journey); err != nil {
		if log != nil {
			log.Warn("run.report_json.error", map[string]interface{}{"error": err.Error()})
		}
		return report.Journey{}, err
	}
	artifactPaths := []string{cfg.OutJSONPath}

	if cfg.OutActionsCSVPath != "" {
		if err := report.WriteActionsCSV(cfg.OutActionsCSVPath, journey.Actions); err != nil {
			if log != nil {
				log.Warn("run.actions_csv.error", map[string]interface{}{"error": err.Error()})
			}
			return report.Journey{}, err
		}
		artifactPaths = append(artifactPaths, cfg.OutActionsCSVPath)
	}
	if cfg.OutMaturityCSVPath != "" {
		if err := report.WriteMaturityCSV(cfg.OutMaturityCSVPath, journey.Maturity.Scores, agg.Average, agg.Level); err != nil {
			if log != nil {
				log.Warn("run.maturity_csv.error", map[string]interface{}{"error": err.Error()})
			}
			return report.Journey{}, err
		}
		artifactPaths = append(artifactPaths, cfg.OutMaturityCSVPath)
	}

	if cfg.WriteHTML {
		if err := report.WriteHTML(cfg.OutHTMLPath, journey); err != nil {
			if log != nil {
				log.Warn("run.report_html.error", map[string]interface{}{"error": err.Error(), "path": cfg.OutHTMLPath})
			}
		} else {
			artifactPaths = append(artifactPaths, cfg.OutHTMLPath)
		}
	}

	if cfg.WriteCharts && cfg.ChartDir != "" {
		chartPaths, err := writeCharts(cfg.ChartDir, journey)
		if err != nil && log != nil {
			log.Warn("run.charts.error", map[string]interface{}{"error": err.Error()})
		}
		artifactPaths = append(artifactPaths, chartPaths...)
	}

	if err := report.WriteChecksums(cfg.ChecksumsPath, artifactPaths); err != nil {
		if log != nil {
			log.Warn("run.checksums.error", map[string]interface{}{"error": err.Error()})
		}
		return report.Journey{}, err
	}
	if log != nil {
		log.Info("run.complete", map[string]interface{}{
			"run_id":      journey.RunID,
			"report_json": cfg.OutJSONPath,
			"artifacts":   len(artifactPaths),
			"checksums":   cfg.ChecksumsPath,
		})
	}
	return journey, nil
}

type inputs struct {
	Current        profile.Scores
	Target         profile.Scores
	MaturityScores profile.MaturityScores
	Stats          *dataset.Stats
	Digests        []report.InputDigest
}

func loadInputs(cfg Config) (inputs, error) {
	var in inputs

	if cfg.CurrentPath == "" {
		in.Current = profile.DefaultScores()
		in.Digests = append(in.Digests, report.InputDigest{Kind: "current_profile", ReadOK: true})
	} else {
		scores, err := profile.LoadScores(cfg.CurrentPath)
		in.Digests = append(in.Digests, digestFor("current_profile", cfg.CurrentPath, err))
		if err != nil {
			return inputs{}, fmt.Errorf("current profile: %w", err)
		}
		in.Current = scores
	}

	if cfg.TargetPath == "" {
		in.Target = profile.DefaultScores()
		in.Digests = append(in.Digests, report.InputDigest{Kind: "target_profile", ReadOK: true})
	} else {
		scores, err := profile.LoadScores(cfg.TargetPath)
		in.Digests = append(in.Digests, digestFor("target_profile", cfg.TargetPath, err))
		if err != nil {
			return inputs{}, fmt.Errorf("target profile: %w", err)
		}
		in.Target = scores
	}

	if cfg.MaturityPath == "" {
		in.MaturityScores = profile.DefaultMaturity()
		in.Digests = append(in.Digests, report.InputDigest{Kind: "maturity_profile", ReadOK: true})
	} else {
		scores, err := profile.LoadMaturity(cfg.MaturityPath)
		in.Digests = append(in.Digests, digestFor("maturity_profile", cfg.MaturityPath, err))
		if err != nil {
			return inputs{}, fmt.Errorf("maturity profile: %w", err)
		}
		in.MaturityScores = scores
	}

	if cfg.DatasetPath != "" {
		records, err := dataset.Load(cfg.DatasetPath)
		in.Digests = append(in.Digests, digestFor("dataset_csv", cfg.DatasetPath, err))
		if err != nil {
			return inputs{}, err
		}
		stats := dataset.Summarize(records)
		in.Stats = &stats
	}

	return in, nil
}

func digestFor(kind, path string, loadErr error) report.InputDigest {
	d := report.InputDigest{Kind: kind, Path: path, ReadOK: loadErr == nil}
	if sum, err := report.FileSHA256(path); err == nil {
		d.SHA256 = sum
	}
	return d
}

func collectHints(level rubric.Level) []report.AxisHint {
	hints := make([]report.AxisHint, 0, len(rubric.AxisNames()))
	for _, name := range rubric.AxisNames() {
		hints = append(hints, report.AxisHint{Axis: name, Hint: advisor.Hint(name, level)})
	}
	return hints
}

func writeCharts(dir string, journey report.Journey) ([]string, error) {
	var written []string
	gapPath := filepath.Join(dir, "gap-changes.png")
	if err := report.WriteGapChart(gapPath, journey.Gaps); err != nil {
		return written, err
	}
	written = append(written, gapPath)

	maturityPath := filepath.Join(dir, "maturity-themes.png")
	if err := report.WriteMaturityChart(maturityPath, journey.Maturity.Scores); err != nil {
		return written, err
	}
	written = append(written, maturityPath)

	if journey.Dataset != nil {
		datasetPaths, err := report.WriteDatasetCharts(dir, journey.Dataset)
		written = append(written, datasetPaths...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func datasetRows(s *dataset.Stats) int {
	if s == nil {
		return 0
	}
	return s.Rows
}
