package news

import (
	"fmt"
	"strings"
)

// Category is one of the fixed top-headlines sections.
type Category string

const (
	General       Category = "general"
	Sports        Category = "sports"
	Health        Category = "health"
	Entertainment Category = "entertainment"
	Business      Category = "business"
	Science       Category = "science"
	Technology    Category = "technology"
)

var categories = []Category{General, Sports, Health, Entertainment, Business, Science, Technology}

// Categories returns every category in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Label returns the capitalized section name.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", name)
	}
	return c, nil
}
