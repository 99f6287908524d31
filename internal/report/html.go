package report

import (
	"html/template"
	"os"
	"path/filepath"
)

var journeyTemplate = template.Must(template.New("journey").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Strategy journey report</title>
<style>
  body { font-family: Arial, sans-serif; margin: 0; color: #0b0c0c; background: #f3f2f1; }
  header { background: #1d70b8; color: #ffffff; padding: 20px 32px; }
  header h1 { margin: 0; font-size: 28px; }
  header p { margin: 4px 0 0; opacity: 0.85; font-size: 13px; }
  main { max-width: 1080px; margin: 0 auto; padding: 24px 32px; }
  section { background: #ffffff; border: 1px solid #b1b4b6; margin-bottom: 24px; padding: 16px 20px; }
  h2 { margin-top: 0; font-size: 20px; border-bottom: 2px solid #1d70b8; padding-bottom: 6px; }
  table { border-collapse: collapse; width: 100%; font-size: 14px; }
  th, td { border-bottom: 1px solid #b1b4b6; padding: 6px 10px; text-align: left; }
  th { background: #f3f2f1; }
  .level { display: inline-block; background: #28a197; color: #ffffff; padding: 2px 10px; font-weight: bold; }
  .conflict { color: #d4351c; font-weight: bold; }
  .conflict-note { color: #d4351c; font-size: 13px; }
  .muted { color: #505a5f; }
</style>
</head>
<body>
<header>
  <h1>Strategy journey report</h1>
  <p>Run {{.RunID}} · generated {{.GeneratedAt}} · schema {{.SchemaVersion}}</p>
</header>
<main>

<section>
  <h2>Maturity</h2>
  <p>Overall: <span class="level">{{.Maturity.Level}}</span> (average {{printf "%.2f" .Maturity.Average}})</p>
  <table>
    <tr><th>Theme</th><th>Score</th></tr>
    {{range $theme, $score := .Maturity.Scores}}<tr><td>{{$theme}}</td><td>{{$score}}</td></tr>
    {{end}}
  </table>
</section>

<section>
  <h2>Journey summary</h2>
  <table>
    <tr><th>Toward left pole</th><th>Toward right pole</th><th>Unchanged</th><th>Conflicts</th></tr>
    <tr>
      <td>{{.Summary.TowardLeft}}</td>
      <td>{{.Summary.TowardRight}}</td>
      <td>{{.Summary.Unchanged}}</td>
      <td{{if gt .Summary.Conflicts 0}} class="conflict"{{end}}>{{.Summary.Conflicts}}</td>
    </tr>
  </table>
</section>

<section>
  <h2>Gaps by priority</h2>
  <table>
    <tr><th>Lens</th><th>Current</th><th>Target</th><th>Change</th><th>Direction</th><th>Readiness check</th></tr>
    {{range .Gaps}}<tr>
      <td>{{.Axis}}</td>
      <td>{{.Current}}</td>
      <td>{{.Target}}</td>
      <td>{{.ChangeNeeded}}</td>
      <td>{{.Direction}}</td>
      <td>{{if .Conflict}}<span class="conflict-note">{{.ConflictNote}}</span>{{else}}<span class="muted">ok</span>{{end}}</td>
    </tr>
    {{end}}
  </table>
</section>

{{if .Actions}}
<section>
  <h2>Seeded actions</h2>
  <table>
    <tr><th>Priority</th><th>Lens</th><th>Direction</th><th>Owner</th><th>Timeline</th><th>Metric</th><th>Status</th></tr>
    {{range .Actions}}<tr>
      <td>{{.Priority}}</td>
      <td>{{.Axis}}</td>
      <td>{{.Direction}}</td>
      <td class="muted">{{.Owner}}</td>
      <td class="muted">{{.Timeline}}</td>
      <td class="muted">{{.Metric}}</td>
      <td>{{.Status}}</td>
    </tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .Hints}}
<section>
  <h2>Guidance by lens</h2>
  <table>
    <tr><th>Lens</th><th>Hint</th></tr>
    {{range .Hints}}<tr><td>{{.Axis}}</td><td>{{.Hint}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .Dataset}}
<section>
  <h2>Dataset</h2>
  <p>{{.Dataset.Rows}} strategies · {{.Dataset.Countries}} countries · {{.Dataset.OrgTypes}} organisation types{{if .Dataset.HasYears}} · {{.Dataset.YearMin}}&ndash;{{.Dataset.YearMax}}{{end}}</p>
</section>
{{end}}

{{if .Inputs}}
<section>
  <h2>Inputs</h2>
  <table>
    <tr><th>Kind</th><th>Path</th><th>SHA-256</th></tr>
    {{range .Inputs}}<tr>
      <td>{{.Kind}}</td>
      <td>{{if .Path}}{{.Path}}{{else}}<span class="muted">defaults</span>{{end}}</td>
      <td class="muted">{{.SHA256}}</td>
    </tr>
    {{end}}
  </table>
</section>
{{end}}

</main>
</body>
</html>
`))

func WriteHTML(path string, journey Journey) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return journeyTemplate.Execute(f, journey)
}
