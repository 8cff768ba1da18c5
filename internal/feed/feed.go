// Package feed persists quest records and the date index under one output
// directory. The index merge is a pure function so the ordering and dedupe
// rules are testable without touching a filesystem.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/NAGOHUSA/MCQUESTS/internal/engine"
)

// DefaultDir is the output directory when neither the flag nor the
// environment override it.
const DefaultDir = "quests"

const indexFile = "index.json"

// ErrExists reports a quest file already present for the date. Generation is
// idempotent by default; callers opt into overwriting explicitly.
var ErrExists = errors.New("quest already exists for date")

// QuestPath returns the record path for a date within dir.
func QuestPath(dir, date string) string {
	return filepath.Join(dir, date+".json")
}

// IndexPath returns the index path within dir.
func IndexPath(dir string) string {
	return filepath.Join(dir, indexFile)
}

// WriteQuest writes the record as pretty-printed JSON at quests/<date>.json.
// Without force, an existing file for the date is left untouched and
// ErrExists is returned.
func WriteQuest(dir string, rec engine.Record, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create quest dir: %w", err)
	}
	path := QuestPath(dir, rec.Date)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%w: %s", ErrExists, rec.Date)
		}
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal quest %s: %w", rec.Date, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write quest %s: %w", rec.Date, err)
	}
	return path, nil
}

// ReadQuest loads one persisted record.
func ReadQuest(dir, date string) (engine.Record, error) {
	var rec engine.Record
	data, err := os.ReadFile(QuestPath(dir, date))
	if err != nil {
		return rec, fmt.Errorf("read quest %s: %w", date, err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("decode quest %s: %w", date, err)
	}
	return rec, nil
}

// Merge folds a new date into the existing index: deduplicated, sorted
// descending. Descending lexicographic equals descending chronological for
// YYYY-MM-DD strings.
func Merge(existing []string, date string) []string {
	set := make(map[string]bool, len(existing)+1)
	for _, d := range existing {
		if d != "" {
			set[d] = true
		}
	}
	set[date] = true

	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// ReadIndex loads the date index. A missing or corrupt index reads as empty:
// availability of the feed wins over strict corruption detection, and the
// next write rebuilds the file.
func ReadIndex(dir string) []string {
	data, err := os.ReadFile(IndexPath(dir))
	if err != nil {
		return nil
	}
	var dates []string
	if err := json.Unmarshal(data, &dates); err != nil {
		return nil
	}
	return dates
}

// WriteIndex rewrites the whole index file.
func WriteIndex(dir string, dates []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create quest dir: %w", err)
	}
	data, err := json.MarshalIndent(dates, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := os.WriteFile(IndexPath(dir), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// AppendIndex merges date into the on-disk index and rewrites it. Assumes
// single-process sequential invocation; concurrent writers would need a file
// lock around the read-merge-write.
func AppendIndex(dir, date string) error {
	return WriteIndex(dir, Merge(ReadIndex(dir), date))
}
