package highscore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsLeaderAndLast(t *testing.T) {
	tbl := New(nil)

	if l := tbl.Leader(); l != (Record{7500, "DFT"}) {
		t.Errorf("Expected DFT 7500 leader, got %v", l)
	}
	if l := tbl.Last(); l != (Record{6950, "GJL"}) {
		t.Errorf("Expected GJL 6950 last, got %v", l)
	}
}

func TestAppendEvictsWeakest(t *testing.T) {
	tbl := New(nil)

	if err := tbl.Append(Record{8000, "NEW"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if tbl.Leader() != (Record{8000, "NEW"}) {
		t.Errorf("Expected NEW as leader, got %v", tbl.Leader())
	}
	if tbl.Last() != (Record{7005, "DEW"}) {
		t.Errorf("Expected DEW as last, got %v", tbl.Last())
	}
	if n := len(tbl.Sorted()); n != len(Defaults) {
		t.Errorf("Expected size %d, got %d", len(Defaults), n)
	}
	t.Logf("✓ Weakest record evicted")
}

func TestAppendTooLowIsDropped(t *testing.T) {
	tbl := New(nil)
	if err := tbl.Append(Record{10, "LOW"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	for _, r := range tbl.Sorted() {
		if r.Initials == "LOW" {
			t.Error("Expected low score not to enter the table")
		}
	}
}

func TestQualifies(t *testing.T) {
	tbl := New(nil)
	if tbl.Qualifies(6950) {
		t.Error("Expected tie with last not to qualify")
	}
	if !tbl.Qualifies(6951) {
		t.Error("Expected 6951 to qualify")
	}
}

func TestSortedBestFirst(t *testing.T) {
	s := New(nil).Sorted()
	for i := 1; i < len(s); i++ {
		if s[i].Score > s[i-1].Score {
			t.Fatalf("Expected descending order, got %v", s)
		}
	}
}

func TestOpenCreatesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "highscores.json")

	tbl, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected file created: %v", err)
	}
	if err := tbl.Append(Record{9000, "ABC"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	if again.Leader() != (Record{9000, "ABC"}) {
		t.Errorf("Expected persisted leader ABC, got %v", again.Leader())
	}
}

func TestFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.json")
	if _, err := Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rows [][]any
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("Expected array of arrays: %v", err)
	}
	if len(rows) != 8 || len(rows[0]) != 2 {
		t.Errorf("Expected 8 rows of [score, initials], got %v", rows)
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.json")
	if err := os.WriteFile(path, []byte(`{"not": "rows"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestOpenTrimsOversizedTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.json")
	rows := `[[100,"A"],[1000,"B"],[200,"C"],[900,"D"],[300,"E"],[800,"F"],[400,"G"],[700,"H"],[500,"I"],[600,"J"]]`
	if err := os.WriteFile(path, []byte(rows), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s := tbl.Sorted()
	if len(s) != Capacity {
		t.Fatalf("Expected %d rows, got %d", Capacity, len(s))
	}
	if tbl.Leader() != (Record{1000, "B"}) {
		t.Errorf("Expected B 1000 leader, got %v", tbl.Leader())
	}
	if tbl.Last() != (Record{300, "E"}) {
		t.Errorf("Expected E 300 last, got %v", tbl.Last())
	}
	for _, r := range s {
		if r.Score < 300 {
			t.Errorf("Expected %v trimmed", r)
		}
	}
	t.Logf("✓ Loaded table trimmed to the best %d", Capacity)
}
