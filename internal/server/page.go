package server

import (
	"html/template"

	"github.com/solardome/strategy-explorer/internal/dataset"
	"github.com/solardome/strategy-explorer/internal/rubric"
)

type indexData struct {
	Stats dataset.Stats
	Axes  []rubric.Axis
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Strategy Explorer</title>
<style>
  body { font-family: Arial, sans-serif; margin: 0; color: #0b0c0c; background: #f3f2f1; }
  header { background: #1d70b8; color: #ffffff; padding: 20px 32px; }
  header h1 { margin: 0; font-size: 28px; }
  main { max-width: 960px; margin: 0 auto; padding: 24px 32px; }
  section { background: #ffffff; border: 1px solid #b1b4b6; margin-bottom: 24px; padding: 16px 20px; }
  h2 { margin-top: 0; font-size: 20px; border-bottom: 2px solid #1d70b8; padding-bottom: 6px; }
  table { border-collapse: collapse; width: 100%; font-size: 14px; }
  th, td { border-bottom: 1px solid #b1b4b6; padding: 6px 10px; text-align: left; }
  code { background: #f3f2f1; padding: 1px 4px; }
  .muted { color: #505a5f; }
</style>
</head>
<body>
<header><h1>Strategy Explorer</h1></header>
<main>

<section>
  <h2>Dataset</h2>
  {{if gt .Stats.Rows 0}}
  <p>{{.Stats.Rows}} strategies · {{.Stats.Countries}} countries · {{.Stats.OrgTypes}} organisation types{{if .Stats.HasYears}} · {{.Stats.YearMin}}&ndash;{{.Stats.YearMax}}{{end}}</p>
  {{else}}
  <p class="muted">No dataset loaded.</p>
  {{end}}
</section>

<section>
  <h2>Ten lenses</h2>
  <table>
    <tr><th>Lens</th><th>0</th><th>100</th></tr>
    {{range .Axes}}<tr><td>{{.Name}}</td><td>{{.LeftLabel}}</td><td>{{.RightLabel}}</td></tr>
    {{end}}
  </table>
</section>

<section>
  <h2>API</h2>
  <table>
    <tr><td><code>GET /api/rubric</code></td><td>Lenses, themes and maturity levels</td></tr>
    <tr><td><code>GET /api/records</code></td><td>Search and filter strategies (<code>q</code>, <code>year_from</code>, <code>year_to</code>, <code>org_type</code>, <code>country</code>, <code>scope</code>, <code>limit</code>)</td></tr>
    <tr><td><code>GET /api/stats</code></td><td>Dataset summary</td></tr>
    <tr><td><code>POST /api/journey</code></td><td>Gap analysis from posted profiles</td></tr>
    <tr><td><code>POST /api/journey/chart</code></td><td>Gap chart as PNG</td></tr>
  </table>
</section>

</main>
</body>
</html>
`))
