package shop

import (
	"fmt"
	"strings"
)

// Category is the equip slot an item occupies. The pet can wear at most one
// item per category.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryToy       Category = "toy"
	CategoryClothing  Category = "clothing"
	CategoryAccessory Category = "accessory"
)

// Categories lists all categories in display order.
var Categories = []Category{CategoryFood, CategoryToy, CategoryClothing, CategoryAccessory}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryToy, CategoryClothing, CategoryAccessory:
		return true
	default:
		return false
	}
}

// ParseCategory parses user input to a Category.
func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid item category: %q", input)
	}
	return c, nil
}

// Item is a single shop catalog entry.
type Item struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       int      `yaml:"price"`
	Category    Category `yaml:"category"`
	Image       string   `yaml:"image"`
	Owned       bool     `yaml:"owned"`
	Equipped    bool     `yaml:"-"`
}
