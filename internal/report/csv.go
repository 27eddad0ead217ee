package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Freedom18946/audio-analyzer/internal/metrics"
)

// utf8BOM is prepended so spreadsheet tools detect the encoding and
// non-ASCII file paths and notes survive a round trip.
const utf8BOM = "\ufeff"

// WriteCSV renders the report as UTF-8 CSV with a BOM.
func WriteCSV(rep *Report, w io.Writer) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rep.Columns); err != nil {
		return err
	}
	for _, row := range rep.Rows {
		record := make([]string, len(rep.Columns))
		for i, col := range rep.Columns {
			record[i] = cellValue(&row, col)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// cellValue renders one cell as text. Missing measurements render as
// empty cells.
func cellValue(row *Row, col string) string {
	switch col {
	case ColScore:
		return strconv.Itoa(row.Score)
	case ColStatus:
		return string(row.Status)
	case ColNotes:
		return row.Notes
	case metrics.ColFilePath:
		return row.Record.FilePath
	}
	if v := row.Record.Metric(col); v != nil {
		return strconv.FormatFloat(*v, 'g', -1, 64)
	}
	return ""
}
