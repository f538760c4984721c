package migrations_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colorsense/api/migrations"
	"github.com/google/go-cmp/cmp"
)

func TestReadMigrationFilesShipped(t *testing.T) {
	got, err := migrations.ReadMigrationFiles(".")
	if err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for _, m := range got {
		names = append(names, m.Name)
	}
	want := []string{"create_kv_store", "create_color_history"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("shipped migrations mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMigrationFilesOrderAndSkips(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"010_later.sql":  "SELECT 10;",
		"002_second.sql": "SELECT 2;",
		"notes.txt":      "ignored",
		"bad_name.sql":   "ignored",
		"001_first.sql":  "SELECT 1;",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	got, err := migrations.ReadMigrationFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []migrations.Migration{
		{Version: 1, Name: "first", SQL: "SELECT 1;"},
		{Version: 2, Name: "second", SQL: "SELECT 2;"},
		{Version: 10, Name: "later", SQL: "SELECT 10;"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadMigrationFiles mismatch (-want +got):\n%s", diff)
	}

	pending := migrations.Pending(got, map[int]bool{1: true, 10: true})
	if len(pending) != 1 || pending[0].Version != 2 {
		t.Errorf("Pending = %+v, want only version 2", pending)
	}
}

func TestReadMigrationFilesMissingDir(t *testing.T) {
	if _, err := migrations.ReadMigrationFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
