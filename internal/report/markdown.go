package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteMarkdown renders the report as a markdown table with a summary
// block.
func WriteMarkdown(rep *Report, w io.Writer) error {
	var b strings.Builder

	b.WriteString("# Audio Quality Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Records:** %d\n\n", len(rep.Rows)))

	counts := rep.StatusCounts()
	if len(counts) > 0 {
		b.WriteString("## Status Distribution\n\n")
		b.WriteString("| Status | Count |\n")
		b.WriteString("|--------|-------|\n")
		for _, sc := range counts {
			b.WriteString(fmt.Sprintf("| %s | %d |\n", sc.Status, sc.Count))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Results\n\n")
	if len(rep.Rows) == 0 {
		b.WriteString("*No records to report.*\n")
	} else {
		b.WriteString("| " + strings.Join(rep.Columns, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat("---|", len(rep.Columns)) + "\n")
		for _, row := range rep.Rows {
			cells := make([]string, len(rep.Columns))
			for i, col := range rep.Columns {
				cells[i] = escapeMarkdown(cellValue(&row, col))
			}
			b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
