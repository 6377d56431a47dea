package shop

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCatalog returns the built-in seed catalog. The starter food is
// free and pre-owned so the pet can always be fed once it is equipped.
func DefaultCatalog() []Item {
	return []Item{
		{ID: "basic-food", Name: "Basic Pet Food", Description: "Plain but reliable pet food", Price: 0, Category: CategoryFood, Image: "basic_food", Owned: true},
		{ID: "pizza", Name: "Pizza", Description: "A tasty treat for your pet", Price: 50, Category: CategoryFood, Image: "pizza"},
		{ID: "ball", Name: "Ball", Description: "A fun toy to play with", Price: 30, Category: CategoryToy, Image: "circle.fill"},
		{ID: "tshirt", Name: "T-Shirt", Description: "A stylish shirt for your pet", Price: 100, Category: CategoryClothing, Image: "tshirt.fill"},
		{ID: "sunglasses", Name: "Sunglasses", Description: "Cool shades for your pet", Price: 75, Category: CategoryAccessory, Image: "eyeglasses"},
	}
}

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// LoadCatalog reads a catalog from a YAML file. Entries must carry an id,
// a name, a valid category, and a non-negative price.
func LoadCatalog(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("catalog %s has no items", path)
	}

	seen := make(map[string]bool, len(f.Items))
	for i, item := range f.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %d is missing an id", i)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("catalog item id %q is duplicated", item.ID)
		}
		seen[item.ID] = true
		if item.Name == "" {
			return nil, fmt.Errorf("catalog item %q is missing a name", item.ID)
		}
		if !item.Category.IsValid() {
			return nil, fmt.Errorf("catalog item %q has invalid category %q", item.ID, item.Category)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("catalog item %q has negative price %d", item.ID, item.Price)
		}
	}
	return f.Items, nil
}
