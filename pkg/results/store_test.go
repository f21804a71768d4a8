package results

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndForRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	now := time.Now()
	rows := []Row{
		{RunID: "run-1", Backend: "tree", Sample: "fibonacci", Elapsed: 10 * time.Microsecond, Value: 55, RecordedAt: now},
		{RunID: "run-1", Backend: "closure", Sample: "fibonacci", Elapsed: 8 * time.Microsecond, Value: 55, RecordedAt: now},
		{RunID: "run-2", Backend: "bytecode", Sample: "fibonacci", Elapsed: 5 * time.Microsecond, Value: 55, RecordedAt: now},
	}
	for _, r := range rows {
		if err := store.Record(r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.ForRun("run-1")
	if err != nil {
		t.Fatalf("ForRun: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Backend != "tree" || got[1].Backend != "closure" {
		t.Errorf("got = %+v, want tree then closure", got)
	}
	for _, r := range got {
		if r.Value != 55 {
			t.Errorf("row value = %v, want 55", r.Value)
		}
	}
}

func TestForRunEmptyWhenNoMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	got, err := store.ForRun("nonexistent")
	if err != nil {
		t.Fatalf("ForRun: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0", len(got))
	}
}
