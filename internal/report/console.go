package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/yourusername/edge-analysis/internal/analysis"
)

var dimensionTitles = map[string]string{
	analysis.DimensionConfidence:      "Performance by Confidence Bracket",
	analysis.DimensionWeather:         "Performance by Weather Condition",
	analysis.DimensionTemperature:     "Performance by Temperature Range",
	analysis.DimensionWind:            "Performance by Wind Regime",
	analysis.DimensionWeekday:         "Performance by Day of Week",
	analysis.DimensionMonth:           "Performance by Month",
	analysis.DimensionDayType:         "Weekend vs Weekday",
	analysis.DimensionSide:            "Performance by Prediction Side",
	analysis.DimensionSideTemperature: "Prediction Side by Temperature",
}

// WriteConsole renders result as plain text
func WriteConsole(w io.Writer, result *Result) error {
	var b strings.Builder
	writeSummary(&b, result)
	writeModels(&b, result)
	for _, g := range result.Groupings {
		title, ok := dimensionTitles[g.Dimension]
		if !ok {
			continue
		}
		writeGrouping(&b, title, g)
	}
	writeRanking(&b, "Teams", result.Teams)
	writeRanking(&b, "Venues", result.Venues)
	for _, r := range result.ModelRegimes {
		writeRanking(&b, "Models in regime "+r.Dimension, r)
	}
	writeHighConfidenceSplit(&b, result.HighConfidence)
	if err := writeScenarios(&b, result); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummary(b *strings.Builder, result *Result) {
	s := result.Summary
	b.WriteString("Edge Analysis Report\n")
	b.WriteString("====================\n")
	b.WriteString(fmt.Sprintf("Run: %s\n", result.RunID))
	if result.Source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", result.Source))
	}
	b.WriteString(fmt.Sprintf("Records: %d\n", result.Records))
	b.WriteString(fmt.Sprintf("Total Games: %d\n", s.TotalGames))
	b.WriteString(fmt.Sprintf("Overall Accuracy: %.3f (%.1f%%)\n", s.Accuracy, s.Accuracy*100))
	b.WriteString(fmt.Sprintf("Average Confidence: %.3f\n", s.AvgConfidence))
	b.WriteString(fmt.Sprintf("Average Edge: %.3f\n", s.AvgEdge))
	b.WriteString(fmt.Sprintf("ROI: %s%%\n", s.ProfitLoss.ROI.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Max Drawdown: %s\n", s.ProfitLoss.MaxDrawdown.StringFixed(2)))
	if result.MalformedGameIDs > 0 {
		b.WriteString(fmt.Sprintf("Unparseable game IDs: %d\n", result.MalformedGameIDs))
	}

	if len(s.ConfidenceBrackets) > 0 {
		b.WriteString("\nReported Confidence Brackets\n")
		labels := make([]string, 0, len(s.ConfidenceBrackets))
		for label := range s.ConfidenceBrackets {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			stats := s.ConfidenceBrackets[label]
			b.WriteString(fmt.Sprintf("  %s: %d games, %.3f accuracy (%.1f%%)\n", label, stats.Games, stats.Accuracy, stats.Accuracy*100))
		}
	}
}

func writeModels(b *strings.Builder, result *Result) {
	if len(result.Models) == 0 {
		return
	}
	b.WriteString("\nModel Rankings by Accuracy\n")
	for i, m := range result.Models {
		b.WriteString(fmt.Sprintf("  %d. %s: %.3f accuracy, %.3f avg confidence\n", i+1, m.Name, m.Accuracy, m.AvgConfidence))
	}
}

func writeGrouping(b *strings.Builder, title string, g analysis.Grouping) {
	b.WriteString("\n" + title + "\n")
	if g.Len() == 0 {
		b.WriteString("  no data\n")
		return
	}
	for _, stat := range g.Ordered() {
		b.WriteString(fmt.Sprintf("  %s: %s\n", stat.Key, formatStat(stat)))
		if stat.Weather != nil && g.Dimension == analysis.DimensionWeather {
			b.WriteString(fmt.Sprintf("    Avg temp: %.1f°F, wind: %.1fmph, humidity: %.1f%%\n",
				stat.Weather.AvgTempF, stat.Weather.AvgWindMPH, stat.Weather.AvgHumidity))
		}
	}
}

func writeRanking(b *strings.Builder, title string, r Ranking) {
	b.WriteString(fmt.Sprintf("\nTop %s by Prediction Accuracy (min %d games)\n", title, r.MinGames+1))
	if r.Ranked == 0 {
		b.WriteString("  no group meets the minimum sample\n")
		return
	}
	for i, stat := range r.Top {
		b.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, stat.Key, formatStat(stat)))
	}
	b.WriteString(fmt.Sprintf("Bottom %s by Prediction Accuracy\n", title))
	offset := r.Ranked - len(r.Bottom)
	for i, stat := range r.Bottom {
		b.WriteString(fmt.Sprintf("  %d. %s: %s\n", offset+i+1, stat.Key, formatStat(stat)))
	}
}

func writeHighConfidenceSplit(b *strings.Builder, split OutcomeSplit) {
	if split.Scenario == "" {
		return
	}
	b.WriteString("\nHigh Confidence Outcomes\n")
	b.WriteString(fmt.Sprintf("  Correct predictions: %d (avg edge %.2f, avg confidence %.3f)\n",
		split.Correct.Games, split.Correct.AvgEdge, split.Correct.AvgConfidence))
	b.WriteString(fmt.Sprintf("  Incorrect predictions: %d (avg edge %.2f, avg confidence %.3f)\n",
		split.Incorrect.Games, split.Incorrect.AvgEdge, split.Incorrect.AvgConfidence))
}

func writeScenarios(b *strings.Builder, result *Result) error {
	b.WriteString("\nScenarios\n")
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  SCENARIO\tGAMES\tACCURACY\tAVG EDGE\tEST ROI\tKELLY\tSTAKE")
	for _, sc := range result.Scenarios {
		kelly := "-"
		stake := "-"
		if rec, ok := result.Recommendation(sc.Name); ok {
			if rec.Recommended {
				kelly = fmt.Sprintf("%.2f%%", rec.KellyPercentage)
				stake = rec.Stake.StringFixed(2)
			} else {
				kelly = "not recommended"
			}
		}
		fmt.Fprintf(tw, "  %s\t%d\t%.1f%%\t%.2f\t%.2f%%\t%s\t%s\n",
			sc.Name, sc.Stat.Games, sc.Stat.Accuracy*100, sc.Stat.AvgEdge, sc.EstimatedROI, kelly, stake)
	}
	return tw.Flush()
}

func formatStat(stat analysis.AggregateStat) string {
	return fmt.Sprintf("%d games, %.3f accuracy (%.1f%%), avg edge %.2f",
		stat.Games, stat.Accuracy, stat.Accuracy*100, stat.AvgEdge)
}
