package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghuser/orderline/services/feed/domain/models"
)

const (
	// DirectoryArtifact is the file name of the derived customer directory.
	DirectoryArtifact = "customers.json"
	// CatalogArtifact is the file name of the derived item catalog.
	CatalogArtifact = "items.json"
)

// WriteArtifacts serializes the two derived views into dir as independent
// JSON files. Both views are encoded before either file is touched, so a
// serialization failure emits nothing.
func WriteArtifacts(dir string, directory models.CustomerDirectory, catalog models.ItemCatalog) error {
	dirBytes, err := json.MarshalIndent(directory, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", DirectoryArtifact, err)
	}
	catBytes, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", CatalogArtifact, err)
	}

	if err := os.WriteFile(filepath.Join(dir, DirectoryArtifact), dirBytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", DirectoryArtifact, err)
	}
	if err := os.WriteFile(filepath.Join(dir, CatalogArtifact), catBytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", CatalogArtifact, err)
	}
	return nil
}
