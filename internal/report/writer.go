package report

import (
	"fmt"
	"io"
	"os"
)

// Output formats.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatConsole  = "console"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatMarkdown, FormatConsole}
}

// Write renders the report in the given format. An empty path writes to
// stdout. The output file is created only after the report is fully
// assembled, so a failed run leaves no partial output behind.
func Write(rep *Report, format, path string) error {
	var render func(*Report, io.Writer) error
	switch format {
	case FormatCSV:
		render = WriteCSV
	case FormatJSON:
		render = WriteJSON
	case FormatMarkdown:
		render = WriteMarkdown
	case FormatConsole:
		render = WriteConsole
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if path == "" {
		return render(rep, os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if err := render(rep, f); err != nil {
		return err
	}
	return f.Close()
}
