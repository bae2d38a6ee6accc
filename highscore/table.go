// Package highscore keeps the persistent top-8 table
// The table is a min-heap on (score, initials) so the weakest entry is evicted first
package highscore

import (
	"container/heap"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Record is one table row, persisted as [score, "INI"]
type Record struct {
	Score    int
	Initials string
}

// Less orders by score, then initials
func (r Record) Less(o Record) bool {
	if r.Score != o.Score {
		return r.Score < o.Score
	}
	return r.Initials < o.Initials
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Score, r.Initials})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var row []json.RawMessage
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	if len(row) != 2 {
		return fmt.Errorf("highscore row: expected 2 fields, got %d", len(row))
	}
	if err := json.Unmarshal(row[0], &r.Score); err != nil {
		return fmt.Errorf("highscore score: %w", err)
	}
	if err := json.Unmarshal(row[1], &r.Initials); err != nil {
		return fmt.Errorf("highscore initials: %w", err)
	}
	return nil
}

// Capacity is the number of rows the table keeps
const Capacity = 8

// Defaults is the table of a fresh installation
var Defaults = []Record{
	{7500, "DFT"},
	{7495, "DLS"},
	{7330, "SRC"},
	{7250, "RDA"},
	{7200, "MJP"},
	{7150, "JED"},
	{7005, "DEW"},
	{6950, "GJL"},
}

type recordHeap []Record

func (h recordHeap) Len() int           { return len(h) }
func (h recordHeap) Less(i, j int) bool { return h[i].Less(h[j]) }
func (h recordHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *recordHeap) Push(x any)        { *h = append(*h, x.(Record)) }
func (h *recordHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Table is the persisted highscore heap
// An empty path keeps the table in memory only
type Table struct {
	path    string
	records recordHeap
}

// New creates an in-memory table from records, Defaults when empty
// Only the Capacity best records are kept
func New(records []Record) *Table {
	if len(records) == 0 {
		records = Defaults
	}
	t := &Table{records: slices.Clone(records)}
	heap.Init(&t.records)
	for t.records.Len() > Capacity {
		heap.Pop(&t.records)
	}
	return t
}

// Open loads the table at path; a missing file is created with Defaults
func Open(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		t := New(nil)
		t.path = path
		return t, t.save()
	}
	if err != nil {
		return nil, fmt.Errorf("read highscores %s: %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse highscores %s: %w", path, err)
	}
	t := New(records)
	t.path = path
	return t, nil
}

// Leader returns the best record
func (t *Table) Leader() Record {
	return slices.MaxFunc(t.records, func(a, b Record) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
}

// Last returns the weakest record, the one a new entry must beat
func (t *Table) Last() Record {
	return t.records[0]
}

// Qualifies reports whether score earns a table entry
func (t *Table) Qualifies(score int) bool {
	return score > t.Last().Score
}

// Append pushes r and evicts the weakest record, then saves
// The table size never changes
func (t *Table) Append(r Record) error {
	if len(t.records) > 0 && !t.records[0].Less(r) {
		return t.save()
	}
	t.records[0] = r
	heap.Fix(&t.records, 0)
	return t.save()
}

// Sorted returns the records best first
func (t *Table) Sorted() []Record {
	out := slices.Clone([]Record(t.records))
	slices.SortFunc(out, func(a, b Record) int {
		switch {
		case b.Less(a):
			return -1
		case a.Less(b):
			return 1
		}
		return 0
	})
	return out
}

func (t *Table) save() error {
	if t.path == "" {
		return nil
	}
	data, err := json.Marshal([]Record(t.records))
	if err != nil {
		return fmt.Errorf("encode highscores: %w", err)
	}
	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create highscore dir %s: %w", dir, err)
		}
	}
	tmp := t.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write highscores %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, t.path); err != nil {
		return fmt.Errorf("replace highscores %s: %w", t.path, err)
	}
	return nil
}
