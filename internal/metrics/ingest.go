package metrics

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads one extractor JSON file into a batch. The file must
// contain an array of measurement objects. Any parse or validation
// failure is fatal for the whole file; no partial batch is returned.
func LoadFile(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON array of measurement objects. Records are
// duck-typed: each object may carry any subset of the optional columns,
// and the batch column set is the union of keys seen across all objects.
// A null value counts as column-present, value-missing, exactly like an
// empty cell in a tabular schema.
func Parse(data []byte, source string) (*Batch, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	columns := make(map[string]bool)
	for _, obj := range raw {
		for key := range obj {
			columns[key] = true
		}
	}

	if err := ValidateRecords(raw, source); err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}

	return NewBatch(records, columns), nil
}
