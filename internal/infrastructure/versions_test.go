package infrastructure_test

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/cloudkeep/cloudkeep/internal/infrastructure"
)

func TestVersionCatalog(t *testing.T) {
	fs := afero.NewMemMapFs()
	contents := []byte("versions:\n  - \"1.9\"\n  - \"1.10\"\n  - \"1.2\"\n")
	if err := afero.WriteFile(fs, "/versions.yml", contents, 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	catalog, err := infrastructure.NewVersionCatalog(fs, "/versions.yml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("Versions sort by dotted numeric order", func(t *testing.T) {
		supported, err := catalog.Supported()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		expected := []string{"1.2", "1.9", "1.10"}
		if len(supported) != len(expected) {
			t.Fatalf("Expected %d versions, got %d", len(expected), len(supported))
		}
		for i, version := range expected {
			if supported[i] != version {
				t.Errorf("Expected version %s at position %d, got %s", version, i, supported[i])
			}
		}
	})

	t.Run("The latest version is the highest one", func(t *testing.T) {
		latest, err := catalog.Latest()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if latest != "1.10" {
			t.Errorf("Expected 1.10, got %s", latest)
		}
	})
}

func TestVersionCatalogEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/versions.yml", []byte("versions: []\n"), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := infrastructure.NewVersionCatalog(fs, "/versions.yml"); err == nil {
		t.Error("Expected an error for an empty catalog")
	}
}

func TestVersionCatalogMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	if _, err := infrastructure.NewVersionCatalog(fs, "/missing.yml"); err == nil {
		t.Error("Expected an error for a missing catalog file")
	}
}
