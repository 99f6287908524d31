package report

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/solardome/strategy-explorer/internal/gap"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

func WriteJSON(path string, value interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ActionsCSVHeader matches the columns a planning spreadsheet expects.
var ActionsCSVHeader = []string{"Priority", "Lens", "Direction", "Owner", "Timeline", "Metric", "Status"}

func WriteActionsCSV(path string, actions []gap.Action) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ActionsCSVHeader); err != nil {
		return err
	}
	for _, a := range actions {
		row := []string{
			strconv.Itoa(a.Priority),
			a.Axis,
			a.Direction,
			a.Owner,
			a.Timeline,
			a.Metric,
			a.Status,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteMaturityCSV exports the six theme scores plus an overall row.
func WriteMaturityCSV(path string, scores map[string]int, average float64, level rubric.Level) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Theme", "Score", "Level"}); err != nil {
		return err
	}
	for _, theme := range rubric.Themes() {
		v := scores[theme.Name]
		row := []string{theme.Name, strconv.Itoa(v), rubric.Level(v).String()}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	overall := []string{"Overall (average)", strconv.FormatFloat(average, 'f', 2, 64), level.String()}
	if err := w.Write(overall); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func DefaultHTMLPath(outJSONPath string) string {
	if strings.TrimSpace(outJSONPath) == "" {
		outJSONPath = "journey.json"
	}
	base := strings.TrimSuffix(filepath.Base(outJSONPath), filepath.Ext(outJSONPath))
	return filepath.Join(filepath.Dir(outJSONPath), base+".html")
}

func DefaultChecksumsPath(outJSONPath string) string {
	if strings.TrimSpace(outJSONPath) == "" {
		outJSONPath = "journey.json"
	}
	return filepath.Join(filepath.Dir(outJSONPath), "checksums.sha256")
}

func DefaultRunLogPath(outJSONPath string) string {
	if strings.TrimSpace(outJSONPath) == "" {
		outJSONPath = "journey.json"
	}
	return filepath.Join(filepath.Dir(outJSONPath), "strategy-explorer.run.log")
}

func WriteChecksums(checksumsPath string, artifactPaths []string) error {
	clean := make([]string, 0, len(artifactPaths))
	for _, p := range artifactPaths {
		if strings.TrimSpace(p) != "" {
			clean = append(clean, p)
		}
	}
	sort.Strings(clean)

	lines := make([]string, 0, len(clean))
	for _, p := range clean {
		sum, err := FileSHA256(p)
		if err != nil {
			return fmt.Errorf("checksum read failed for %s: %w", p, err)
		}
		lines = append(lines, fmt.Sprintf("%s  %s", sum, filepath.Base(p)))
	}
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}

	dir := filepath.Dir(checksumsPath)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	return os.WriteFile(checksumsPath, []byte(content), 0o644)
}

func FileSHA256(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
