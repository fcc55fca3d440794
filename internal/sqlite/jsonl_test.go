package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.jsonl")
	content := `{"cat_id":"c1","name":"מרשל"}
not json at all

{"cat_id":"c2","name":"לולה"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	records, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(records))
	}
}

func TestWriteJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"cat_id":"c1"}`),
		json.RawMessage(`{"cat_id":"c2"}`),
	}

	if err := writeJSONL(path, records); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	got, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		if string(got[i]) != string(records[i]) {
			t.Errorf("record %d mismatch: %s != %s", i, got[i], records[i])
		}
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only cats.jsonl in dir, found %d entries", len(entries))
	}
}

func TestWriteJSONLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.jsonl")
	if err := writeJSONL(path, nil); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}
	got, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}
