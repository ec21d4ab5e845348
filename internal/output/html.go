package output

import (
	"html/template"
	"io"
	"strings"

	"github.com/panbanda/codegraph/pkg/analyzer"
)

// maxReportDependencies bounds the dependency list in the HTML report so
// large projects stay readable.
const maxReportDependencies = 50

var reportFuncs = template.FuncMap{
	"joinArrow": func(nodes []string) string {
		return strings.Join(nodes, " → ")
	},
}

var reportTemplate = template.Must(template.New("report").Funcs(reportFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
    <title>CodeGraph Analysis Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .metric { background: #f5f5f5; padding: 10px; margin: 10px 0; border-radius: 5px; }
        .warning { background: #fff3cd; border: 1px solid #ffeaa7; padding: 5px; margin: 5px 0; }
        .error { background: #f8d7da; border: 1px solid #f5c6cb; padding: 5px; margin: 5px 0; }
        .dependency { margin: 5px 0; padding: 5px; background: #e9ecef; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
    </style>
</head>
<body>
    <h1>CodeGraph Analysis Report</h1>

    <h2>Project Metrics</h2>
    <div class="metric">Total Files: {{.Metrics.TotalFiles}}</div>
    <div class="metric">Total Functions: {{.Metrics.TotalFunctions}}</div>
    <div class="metric">Average Complexity: {{.Metrics.AverageComplexity}}</div>
    <div class="metric">Dependencies: {{.Metrics.DependencyCount}}</div>
    <div class="metric">Circular Dependencies: {{.Metrics.CircularDependencies}}</div>

    <h2>Complexity Analysis</h2>
    <table>
        <tr><th>Function</th><th>File</th><th>Complexity</th><th>Warning</th></tr>
        {{range .Complexity}}<tr>
            <td>{{.Function}}</td>
            <td>{{.File}}</td>
            <td>{{.Class}}</td>
            <td>{{.Warning}}</td>
        </tr>
        {{end}}
    </table>

    <h2>Circular Dependencies</h2>
    {{range .Cycles}}<div class="{{.Severity}}">{{joinArrow .Nodes}}</div>
    {{else}}<div class="metric">No circular dependencies found!</div>
    {{end}}

    <h2>Dependencies</h2>
    <div>
        {{range .Dependencies}}<div class="dependency">{{.Source}} &rarr; {{.Target}} ({{.Kind}})</div>
        {{end}}
    </div>
</body>
</html>
`))

// RenderHTML writes the full analysis result as a standalone HTML report.
func RenderHTML(w io.Writer, result *analyzer.AnalysisResult) error {
	view := *result
	if len(view.Dependencies) > maxReportDependencies {
		view.Dependencies = view.Dependencies[:maxReportDependencies]
	}
	return reportTemplate.Execute(w, &view)
}
