package shop

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogStarter(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) == 0 {
		t.Fatalf("empty default catalog")
	}
	starter := catalog[0]
	if starter.Price != 0 || starter.Category != CategoryFood || !starter.Owned {
		t.Fatalf("first item %+v is not a free pre-owned food", starter)
	}
	for _, item := range catalog[1:] {
		if item.Owned {
			t.Fatalf("item %q unexpectedly pre-owned", item.ID)
		}
		if item.Price <= 0 {
			t.Fatalf("item %q has non-positive price", item.ID)
		}
	}
}

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `
items:
  - id: kibble
    name: Kibble
    description: Crunchy pet food
    price: 0
    category: food
    owned: true
  - id: frisbee
    name: Frisbee
    price: 40
    category: toy
`)

	items, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "kibble" || !items[0].Owned || items[0].Category != CategoryFood {
		t.Fatalf("first item=%+v", items[0])
	}
	if items[1].Price != 40 || items[1].Category != CategoryToy {
		t.Fatalf("second item=%+v", items[1])
	}
}

func TestLoadCatalogRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no items", "items: []\n"},
		{"missing id", "items:\n  - name: X\n    price: 1\n    category: toy\n"},
		{"duplicate id", "items:\n  - id: a\n    name: A\n    price: 1\n    category: toy\n  - id: a\n    name: B\n    price: 1\n    category: toy\n"},
		{"missing name", "items:\n  - id: a\n    price: 1\n    category: toy\n"},
		{"bad category", "items:\n  - id: a\n    name: A\n    price: 1\n    category: hat\n"},
		{"negative price", "items:\n  - id: a\n    name: A\n    price: -5\n    category: toy\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCatalog(t, tc.body)
			if _, err := LoadCatalog(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
