// Package output renders analysis results for the terminal.
//
// All rendering uses ASCII layout with ANSI colors; colors are dropped when
// stdout is not a TTY or NO_COLOR is set.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/lakay-labs/tiraj/internal/analysis"
	"github.com/lakay-labs/tiraj/internal/match"
)

// ANSI color codes for match-type display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func colorize(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + colorReset
}

func typeColor(t match.Type) string {
	if t == match.Strict {
		return colorGreen
	}
	return colorYellow
}

// RenderResults renders the aggregated hit table.
func RenderResults(results []analysis.FormattedResult) string {
	if len(results) == 0 {
		return "No hits found.\n"
	}
	color := IsColorEnabled()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-16s %-8s %s\n", "Number", "Type", "Hits"))
	sb.WriteString(strings.Repeat("─", 32))
	sb.WriteString("\n")

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%-16s %-8s %d\n",
			r.Display,
			colorize(string(r.Type), typeColor(r.Type), color),
			r.Count))
	}
	return sb.String()
}

// RenderMariage renders the mariage pair list, one pair per line.
func RenderMariage(pairs []string) string {
	if len(pairs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Mariage pairs:\n")
	for _, p := range pairs {
		sb.WriteString("  " + p + "\n")
	}
	return sb.String()
}

// RenderLog renders the detailed per-input trail: every week checked, hits
// and explicit blanks alike.
func RenderLog(entries []analysis.LogEntry) string {
	if len(entries) == 0 {
		return "Nothing to analyze: no input mapped to a catalog set.\n"
	}
	color := IsColorEnabled()

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s (%02d) → %s\n", e.InputLabel, e.InputNumber, e.SetID))
		for _, wc := range e.Weeks {
			sb.WriteString(fmt.Sprintf("  Week %d  %s / %s", wc.Week, wc.Date1, wc.Date2))
			if len(wc.Hits) == 0 {
				sb.WriteString("  " + colorize("no hits", colorGray, color) + "\n")
				continue
			}
			sb.WriteString("\n")
			for _, h := range wc.Hits {
				sb.WriteString(fmt.Sprintf("    %s  %02d %s\n",
					h.Date, h.NumberFound,
					colorize(string(h.Type), typeColor(h.Type), color)))
			}
		}
	}
	return sb.String()
}

// RenderVerification renders the single-day verifier hits.
func RenderVerification(hits []analysis.VerificationHit) string {
	if len(hits) == 0 {
		return "No hits in the last 7 weeks.\n"
	}
	color := IsColorEnabled()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-6s %-12s %-8s %s\n", "Week", "Date", "Number", "Type"))
	sb.WriteString(strings.Repeat("─", 36))
	sb.WriteString("\n")
	for _, h := range hits {
		sb.WriteString(fmt.Sprintf("%-6d %-12s %-8s %s\n",
			h.Week, h.Date, fmt.Sprintf("%02d", h.Number),
			colorize(string(h.Type), typeColor(h.Type), color)))
	}
	return sb.String()
}
