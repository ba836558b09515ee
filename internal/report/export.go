package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatHTML    = "html"
	FormatYAML    = "yaml"
)

// Exporter writes results in the configured formats. Console output goes to
// Stdout; the file formats are written to OutputDir.
type Exporter struct {
	OutputDir string
	Formats   []string
	Stdout    io.Writer
}

// Export writes result in every configured format and returns the paths of
// the files written
func (e Exporter) Export(result *Result) ([]string, error) {
	var written []string
	for _, format := range e.Formats {
		if format == FormatConsole {
			if e.Stdout == nil {
				continue
			}
			if err := WriteConsole(e.Stdout, result); err != nil {
				return written, fmt.Errorf("failed to write console report: %w", err)
			}
			continue
		}

		path := filepath.Join(e.OutputDir, "edge_analysis."+format)
		var err error
		switch format {
		case FormatJSON:
			err = GenerateJSONReport(result, path)
		case FormatCSV:
			err = GenerateCSVExport(result, path)
		case FormatHTML:
			err = GenerateHTMLReport(result, path)
		case FormatYAML:
			err = GenerateYAMLReport(result, path)
		default:
			err = fmt.Errorf("unsupported format %q", format)
		}
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(outputPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// GenerateJSONReport writes the full result as indented JSON
func GenerateJSONReport(result *Result, outputPath string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	return writeFile(outputPath, data)
}

// GenerateYAMLReport writes the full result as YAML with the same field
// names and ordering as the JSON report
func GenerateYAMLReport(result *Result, outputPath string) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return writeFile(outputPath, buf.Bytes())
}

// blockStyle drops the flow and quoting styles carried over from JSON
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}

// GenerateCSVExport exports one row per group and scenario for spreadsheets
func GenerateCSVExport(result *Result, outputPath string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{{"section", "key", "games", "correct", "accuracy", "avg_confidence", "avg_edge", "estimated_roi", "kelly_fraction", "recommended"}}

	for _, g := range result.Groupings {
		for _, stat := range g.Ordered() {
			rows = append(rows, []string{
				g.Dimension, stat.Key,
				strconv.Itoa(stat.Games), strconv.Itoa(stat.Correct),
				formatFloat(stat.Accuracy), formatFloat(stat.AvgConfidence), formatFloat(stat.AvgEdge),
				"", "", "",
			})
		}
	}
	for _, sc := range result.Scenarios {
		kelly, recommended := "", ""
		if rec, ok := result.Recommendation(sc.Name); ok {
			kelly = formatFloat(rec.KellyFraction)
			recommended = strconv.FormatBool(rec.Recommended)
		}
		rows = append(rows, []string{
			"scenario", sc.Name,
			strconv.Itoa(sc.Stat.Games), strconv.Itoa(sc.Stat.Correct),
			formatFloat(sc.Stat.Accuracy), formatFloat(sc.Stat.AvgConfidence), formatFloat(sc.Stat.AvgEdge),
			formatFloat(sc.EstimatedROI), kelly, recommended,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to encode csv export: %w", err)
	}
	return writeFile(outputPath, buf.Bytes())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
	"num": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(`<!DOCTYPE html>
<html>
<head><title>Edge Analysis Report</title></head>
<body>
<h1>Edge Analysis Report</h1>
<p><strong>Run:</strong> {{.RunID}}</p>
<p><strong>Total Games:</strong> {{.Summary.TotalGames}}</p>
<p><strong>Overall Accuracy:</strong> {{pct .Summary.Accuracy}}</p>
<p><strong>ROI:</strong> {{.Summary.ProfitLoss.ROI.StringFixed 2}}%</p>
<p><strong>Max Drawdown:</strong> {{.Summary.ProfitLoss.MaxDrawdown.StringFixed 2}}</p>
<h2>Scenarios</h2>
<table>
<tr><th>Scenario</th><th>Games</th><th>Accuracy</th><th>Avg Edge</th><th>Est. ROI</th></tr>
{{range .Scenarios}}<tr><td>{{.Name}}</td><td>{{.Stat.Games}}</td><td>{{pct .Stat.Accuracy}}</td><td>{{num .Stat.AvgEdge}}</td><td>{{num .EstimatedROI}}%</td></tr>
{{end}}</table>
<h2>Kelly Sizing</h2>
<table>
<tr><th>Scenario</th><th>Recommended</th><th>Kelly</th><th>Stake</th><th>Reason</th></tr>
{{range .Kelly}}<tr><td>{{.Scenario}}</td><td>{{.Recommended}}</td><td>{{num .KellyPercentage}}%</td><td>{{.Stake.StringFixed 2}}</td><td>{{.Reason}}</td></tr>
{{end}}</table>
{{range .Groupings}}<h2>{{.Dimension}}</h2>
<table>
<tr><th>Key</th><th>Games</th><th>Accuracy</th><th>Avg Edge</th></tr>
{{range .Ordered}}<tr><td>{{.Key}}</td><td>{{.Games}}</td><td>{{pct .Accuracy}}</td><td>{{num .AvgEdge}}</td></tr>
{{end}}</table>
{{end}}</body>
</html>
`))

// GenerateHTMLReport creates a simple HTML report
func GenerateHTMLReport(result *Result, outputPath string) error {
	var buf bytes.Buffer
	if err := htmlReport.Execute(&buf, result); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return writeFile(outputPath, buf.Bytes())
}
