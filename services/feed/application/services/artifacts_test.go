package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ghuser/orderline/services/feed/domain/models"
)

func TestWriteArtifacts(t *testing.T) {
	t.Run("writes both views as independent files", func(t *testing.T) {
		dir := t.TempDir()
		directory := models.CustomerDirectory{"555": "Bo"}
		catalog := models.ItemCatalog{"Pen": {Price: 1.0, Orders: 2}}

		if err := WriteArtifacts(dir, directory, catalog); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var gotDir models.CustomerDirectory
		readJSON(t, filepath.Join(dir, DirectoryArtifact), &gotDir)
		if !reflect.DeepEqual(gotDir, directory) {
			t.Fatalf("directory roundtrip: got %v, want %v", gotDir, directory)
		}

		var gotCat models.ItemCatalog
		readJSON(t, filepath.Join(dir, CatalogArtifact), &gotCat)
		if !reflect.DeepEqual(gotCat, catalog) {
			t.Fatalf("catalog roundtrip: got %v, want %v", gotCat, catalog)
		}
	})

	t.Run("empty views produce empty objects", func(t *testing.T) {
		dir := t.TempDir()

		if err := WriteArtifacts(dir, models.CustomerDirectory{}, models.ItemCatalog{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		raw, err := os.ReadFile(filepath.Join(dir, DirectoryArtifact))
		if err != nil {
			t.Fatalf("read artifact: %v", err)
		}
		if string(raw) != "{}" {
			t.Fatalf("expected empty object, got %q", raw)
		}
	})

	t.Run("unwritable directory reports an error", func(t *testing.T) {
		err := WriteArtifacts(filepath.Join(t.TempDir(), "missing"), models.CustomerDirectory{}, models.ItemCatalog{})
		if err == nil {
			t.Fatal("expected an error for a missing target directory")
		}
	})
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
}
