package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Freedom18946/audio-analyzer/internal/engine"
	"github.com/Freedom18946/audio-analyzer/internal/quality"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusStyles = map[quality.Status]lipgloss.Style{
		quality.StatusGood:               lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
		quality.StatusIncomplete:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // gray
		quality.StatusSuspiciousFake:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
		quality.StatusSuspectedProcessed: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
		quality.StatusClipped:            lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
		quality.StatusSevereCompression:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
		quality.StatusLowDynamic:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
	}
)

func styleStatus(st quality.Status) string {
	if style, ok := statusStyles[st]; ok {
		return style.Render(string(st))
	}
	return string(st)
}

// WriteConsole renders the report as an aligned text table.
func WriteConsole(rep *Report, w io.Writer) error {
	if len(rep.Rows) == 0 {
		fmt.Fprintln(w, "No records to report.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render(strings.Join(rep.Columns, "\t")))
	for _, row := range rep.Rows {
		cells := make([]string, len(rep.Columns))
		for i, col := range rep.Columns {
			cells[i] = cellValue(&row, col)
			if col == ColStatus {
				cells[i] = styleStatus(row.Status)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// WriteSummary prints the aggregate statistics block: status
// distribution with percentages and the top five records by score.
func WriteSummary(rep *Report, stats engine.RunStats, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("--- Analysis Summary ---"))
	fmt.Fprintf(w, "%d records in %v (%d workers)\n",
		stats.Records, stats.Elapsed.Round(time.Millisecond), stats.Workers)

	counts := rep.StatusCounts()
	if len(counts) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Status distribution:"))
		total := len(rep.Rows)
		for _, sc := range counts {
			pct := float64(sc.Count) / float64(total) * 100
			fmt.Fprintf(w, "  %s: %d (%.1f%%)\n", styleStatus(sc.Status), sc.Count, pct)
		}
	}

	top := rep.Top(5)
	if len(top) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Top records by score:"))
		for i, row := range top {
			fmt.Fprintf(w, "  %d. [%3d] %s\n", i+1, row.Score, filepath.Base(row.Record.FilePath))
		}
	}
}

// WriteIncomplete lists records flagged incomplete with their missing
// counts.
func WriteIncomplete(rep *Report, w io.Writer) {
	rows := rep.Incomplete()
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Incomplete records:"))
	for _, row := range rows {
		fmt.Fprintf(w, "  %s %s\n",
			row.Record.FilePath,
			dimStyle.Render(fmt.Sprintf("(%d critical fields missing)", row.MissingCount)))
	}
}
