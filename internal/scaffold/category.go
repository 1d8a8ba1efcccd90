package scaffold

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is the samples-site section a sample is listed under.
type Category string

// Categories in the order the interactive menu shows them.
var Categories = []Category{
	"Analysis",
	"Augmented Reality",
	"Cloud and Portal",
	"Layers",
	"Edit and Manage Data",
	"Maps",
	"Scenes",
	"Routing and Logistics",
	"Utility Networks",
	"Search and Query",
	"Visualization",
}

// ParseCategory accepts a 1-based menu number or a category name in any case.
// An empty input yields the empty category.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(Categories) {
			return "", fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidCategory, n, len(Categories))
		}
		return Categories[n-1], nil
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// CategoryNames returns the categories as plain strings.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}
