package feed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/NAGOHUSA/MCQUESTS/internal/engine"
)

func testRecord(date string) engine.Record {
	return engine.Record{
		ID:        date,
		Date:      date,
		Title:     engine.QuestTitle,
		Theme:     "Cozy Cottage",
		Color:     "#D9A066",
		Lore:      "lore",
		BiomeHint: "plains",
		Reward:    "a warm hearth",
		Steps:     []string{"Lay a cobblestone path from your door to the road"},
		Rules:     []string{"rule"},
		RedoHint:  "redo",
	}
}

func TestMergeSortsDescendingAndDedupes(t *testing.T) {
	got := Merge([]string{"2025-11-01", "2025-11-03", "2025-11-01"}, "2025-11-02")
	want := []string{"2025-11-03", "2025-11-02", "2025-11-01"}
	if len(got) != len(want) {
		t.Fatalf("merge=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merge[%d]=%q, want %q", i, got[i], want[i])
		}
	}

	// Merging an existing date changes nothing.
	again := Merge(got, "2025-11-02")
	if len(again) != len(want) {
		t.Fatalf("re-merge grew the index: %v", again)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec := testRecord("2025-11-03")

	path, err := WriteQuest(dir, rec, false)
	if err != nil {
		t.Fatalf("WriteQuest: %v", err)
	}
	if path != QuestPath(dir, "2025-11-03") {
		t.Fatalf("path=%q, want %q", path, QuestPath(dir, "2025-11-03"))
	}

	got, err := ReadQuest(dir, "2025-11-03")
	if err != nil {
		t.Fatalf("ReadQuest: %v", err)
	}
	if got.ID != rec.ID || got.Theme != rec.Theme || len(got.Steps) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestWriteQuestIdempotentByDefault(t *testing.T) {
	dir := t.TempDir()
	rec := testRecord("2025-11-03")

	if _, err := WriteQuest(dir, rec, false); err != nil {
		t.Fatalf("first write: %v", err)
	}

	rec.Theme = "Changed"
	if _, err := WriteQuest(dir, rec, false); !errors.Is(err, ErrExists) {
		t.Fatalf("second write err=%v, want ErrExists", err)
	}
	got, _ := ReadQuest(dir, "2025-11-03")
	if got.Theme != "Cozy Cottage" {
		t.Fatalf("existing file was overwritten without force")
	}

	if _, err := WriteQuest(dir, rec, true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
	got, _ = ReadQuest(dir, "2025-11-03")
	if got.Theme != "Changed" {
		t.Fatalf("forced write did not replace the file")
	}
}

func TestReadIndexMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()
	if got := ReadIndex(dir); got != nil {
		t.Fatalf("missing index=%v, want nil", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "index.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt index: %v", err)
	}
	if got := ReadIndex(dir); got != nil {
		t.Fatalf("corrupt index=%v, want nil", got)
	}

	// A corrupt index is rebuilt on the next append, not fatal.
	if err := AppendIndex(dir, "2025-11-03"); err != nil {
		t.Fatalf("AppendIndex over corrupt index: %v", err)
	}
	if got := ReadIndex(dir); len(got) != 1 || got[0] != "2025-11-03" {
		t.Fatalf("rebuilt index=%v", got)
	}
}

func TestAppendIndexIdempotent(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		if err := AppendIndex(dir, "2025-11-03"); err != nil {
			t.Fatalf("append #%d: %v", i+1, err)
		}
	}
	if err := AppendIndex(dir, "2025-11-05"); err != nil {
		t.Fatalf("append second date: %v", err)
	}

	got := ReadIndex(dir)
	if len(got) != 2 || got[0] != "2025-11-05" || got[1] != "2025-11-03" {
		t.Fatalf("index=%v, want [2025-11-05 2025-11-03]", got)
	}
}
