package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/iris-go/internal/domain"
)

func sampleRecords() []domain.TranscriptRecord {
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	return []domain.TranscriptRecord{
		{SessionID: "s1", Timestamp: base, Input: "what time is it", Response: "The time is 10:00 AM", Source: "router"},
		{SessionID: "s1", Timestamp: base.Add(time.Minute), Input: "open firefox", Response: "Opening Firefox", Source: "router"},
		{SessionID: "s2", Timestamp: base.Add(2 * time.Minute), Input: "tell me a joke", Response: "Why do programmers...", Source: "gemini"},
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "transcript.db"))

	for _, rec := range sampleRecords() {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].Input != "tell me a joke" || records[2].Input != "what time is it" {
		t.Errorf("order wrong: %v", records)
	}
	if records[0].Source != "gemini" || records[0].SessionID != "s2" {
		t.Errorf("fields lost: %+v", records[0])
	}
}

func TestSQLiteStoreSearchAndLimit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "transcript.db"))
	for _, rec := range sampleRecords() {
		if err := store.Save(rec); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.Records(0, "firefox")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Input != "open firefox" {
		t.Errorf("search results = %v", records)
	}

	records, err = store.Records(2, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("limited results = %d, want 2", len(records))
	}
}

func TestSQLiteStoreClear(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "transcript.db"))
	for _, rec := range sampleRecords() {
		if err := store.Save(rec); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("records after clear = %d", len(records))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "transcript.jsonl"))

	want := sampleRecords()
	for _, rec := range want {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	// Newest first.
	reversed := []domain.TranscriptRecord{want[2], want[1], want[0]}
	if diff := cmp.Diff(reversed, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreSearchIsCaseInsensitive(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "transcript.jsonl"))
	for _, rec := range sampleRecords() {
		if err := store.Save(rec); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.Records(0, "FIREFOX")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("search results = %d, want 1", len(records))
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.jsonl"))

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records on missing file: %v", err)
	}
	if records != nil {
		t.Errorf("records = %v, want nil", records)
	}
}
