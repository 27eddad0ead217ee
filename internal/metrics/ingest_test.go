package metrics

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDuckTypedRecords(t *testing.T) {
	data := []byte(`[
		{"filePath": "a.flac", "rmsDbAbove18k": -60.5, "lra": 10.0, "peakAmplitudeDb": -10.0},
		{"filePath": "b.flac", "lra": null, "peakAmplitude": 0.7}
	]`)
	b, err := Parse(data, "test.json")
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 2 {
		t.Fatalf("got %d records, want 2", b.Len())
	}

	// column set is the union of keys, null included
	for _, col := range []string{ColFilePath, ColRmsDbAbove18k, ColLRA, ColPeakAmplitudeDb, ColPeakAmplitude} {
		if !b.HasColumn(col) {
			t.Errorf("missing column %q", col)
		}
	}
	if b.HasColumn(ColRmsDbAbove16k) {
		t.Error("rmsDbAbove16k column should be absent")
	}

	a := b.Records[0]
	if a.FilePath != "a.flac" || a.RmsDbAbove18k == nil || *a.RmsDbAbove18k != -60.5 {
		t.Errorf("record a decoded wrong: %+v", a)
	}
	if b.Records[1].LRA != nil {
		t.Error("null lra should decode as nil")
	}
	if b.Records[1].PeakAmplitude == nil || *b.Records[1].PeakAmplitude != 0.7 {
		t.Errorf("record b peakAmplitude decoded wrong: %+v", b.Records[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json at all`},
		{"object instead of array", `{"filePath": "a.flac"}`},
		{"truncated", `[{"filePath": "a.flac"}`},
		{"missing filePath", `[{"lra": 10.0}]`},
		{"filePath wrong type", `[{"filePath": 42}]`},
		{"measurement wrong type", `[{"filePath": "a.flac", "lra": "loud"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), "test.json"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseEmptyBatch(t *testing.T) {
	b, err := Parse([]byte(`[]`), "test.json")
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("got %d records, want 0", b.Len())
	}
}

func TestParseToleratesUnknownColumns(t *testing.T) {
	data := []byte(`[{"filePath": "a.flac", "fileSizeBytes": 12345, "codec": "flac", "lra": 9.5}]`)
	b, err := Parse(data, "test.json")
	if err != nil {
		t.Fatal(err)
	}
	if b.Records[0].FileSizeBytes != 12345 {
		t.Errorf("fileSizeBytes = %d", b.Records[0].FileSizeBytes)
	}
	if !b.HasColumn("codec") {
		t.Error("unknown columns should still be tracked")
	}
}

func TestPeakField(t *testing.T) {
	tests := []struct {
		name    string
		columns map[string]bool
		want    string
		wantOK  bool
	}{
		{"db preferred", map[string]bool{ColPeakAmplitudeDb: true, ColPeakAmplitude: true}, ColPeakAmplitudeDb, true},
		{"linear fallback", map[string]bool{ColPeakAmplitude: true}, ColPeakAmplitude, true},
		{"neither", map[string]bool{ColLRA: true}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBatch(nil, tt.columns)
			got, ok := b.PeakField()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("PeakField() = %q,%v want %q,%v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	b1 := NewBatch([]Record{{FilePath: "a"}}, map[string]bool{ColFilePath: true, ColLRA: true})
	b2 := NewBatch([]Record{{FilePath: "b"}, {FilePath: "c"}}, map[string]bool{ColFilePath: true, ColPeakAmplitude: true})

	m := Merge(b1, b2)
	if m.Len() != 3 {
		t.Fatalf("merged length = %d, want 3", m.Len())
	}
	if m.Records[0].FilePath != "a" || m.Records[2].FilePath != "c" {
		t.Error("merge lost record order")
	}
	if !m.HasColumn(ColLRA) || !m.HasColumn(ColPeakAmplitude) {
		t.Error("merge should union column sets")
	}
}

func TestLoadFileAndDiscover(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	p1 := write("one.json", `[{"filePath": "a.flac", "lra": 10.0}]`)
	write("two.json", `[{"filePath": "b.flac", "peakAmplitude": 0.5}]`)
	write("skip.txt", `not input`)

	t.Run("plain path", func(t *testing.T) {
		b, err := LoadFile(p1)
		if err != nil {
			t.Fatal(err)
		}
		if b.Len() != 1 || b.Records[0].FilePath != "a.flac" {
			t.Errorf("unexpected batch: %+v", b.Records)
		}
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "absent.json")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("glob expansion", func(t *testing.T) {
		paths, err := Discover([]string{filepath.Join(dir, "*.json")})
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 2 {
			t.Fatalf("matched %d paths, want 2: %v", len(paths), paths)
		}
	})

	t.Run("glob with no matches is fatal", func(t *testing.T) {
		if _, err := Discover([]string{filepath.Join(dir, "*.xml")}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("load merges multiple inputs", func(t *testing.T) {
		b, err := Load([]string{filepath.Join(dir, "*.json")})
		if err != nil {
			t.Fatal(err)
		}
		if b.Len() != 2 {
			t.Fatalf("merged %d records, want 2", b.Len())
		}
		if !b.HasColumn(ColLRA) || !b.HasColumn(ColPeakAmplitude) {
			t.Error("merged batch missing columns from one input")
		}
	})
}
