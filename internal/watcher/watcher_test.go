package watcher

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/lakay-labs/tiraj/internal/draw"
)

type memTarget struct {
	records []draw.Record
}

func (m *memTarget) InsertDraws(table string, records []draw.Record) error {
	m.records = append(m.records, records...)
	return nil
}

func TestShouldImport(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"draws.csv", true},
		{"/drop/dir/draws.csv", true},
		{"DRAWS.CSV", true},
		{"draws.Csv", true},
		{".draws.csv", false},
		{"/drop/dir/.partial.csv", false},
		{"draws.txt", false},
		{"draws.csv.bak", false},
		{"draws", false},
	}
	for _, c := range cases {
		if got := shouldImport(c.path); got != c.want {
			t.Errorf("shouldImport(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestNew_NilTarget(t *testing.T) {
	if _, err := New(t.TempDir(), "matin", nil); err == nil {
		t.Fatal("expected error for nil target")
	}
}

func TestNew_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := New(dir, "matin", &memTarget{}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestNew_PathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path, "matin", &memTarget{}); err == nil {
		t.Fatal("expected error for non-directory path")
	}
}

func TestImportExisting(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.csv", "notes.txt", ".hidden.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "processed"), 0755); err != nil {
		t.Fatal(err)
	}

	w, err := New(dir, "matin", &memTarget{})
	if err != nil {
		t.Fatal(err)
	}

	var imported []string
	w.importFn = func(path string) {
		imported = append(imported, filepath.Base(path))
	}
	w.importExisting()

	sort.Strings(imported)
	want := []string{"a.csv", "b.csv"}
	if len(imported) != len(want) {
		t.Fatalf("imported %v, want %v", imported, want)
	}
	for i := range want {
		if imported[i] != want[i] {
			t.Fatalf("imported %v, want %v", imported, want)
		}
	}
}

func TestImportFile_ArchivesToProcessed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draws.csv")
	csv := "date,f1,f2,f3,f4,f5,f6,f7\n2024-01-09,10,20,30,40,50,60,70\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	target := &memTarget{}
	w, err := New(dir, "matin", target)
	if err != nil {
		t.Fatal(err)
	}
	w.importFile(path)

	if len(target.records) != 1 {
		t.Fatalf("got %d records, want 1", len(target.records))
	}
	if target.records[0].Fields[0].Value != 10 {
		t.Errorf("first field = %+v, want 10", target.records[0].Fields[0])
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("original file still present after import")
	}
	archived := filepath.Join(dir, "processed", "draws.csv")
	if _, err := os.Stat(archived); err != nil {
		t.Errorf("archived file missing: %v", err)
	}
}

func TestImportFile_BadFileStaysPut(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.csv")

	target := &memTarget{}
	w, err := New(dir, "matin", target)
	if err != nil {
		t.Fatal(err)
	}
	w.importFile(path)

	if len(target.records) != 0 {
		t.Errorf("got %d records for unreadable file, want 0", len(target.records))
	}
	if _, err := os.Stat(filepath.Join(dir, "processed")); !os.IsNotExist(err) {
		t.Errorf("processed dir created despite failed import")
	}
}
