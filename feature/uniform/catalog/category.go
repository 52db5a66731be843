package catalog

import (
	"fmt"
	"strings"

	"uniform-manager/feature/uniform/errs"
)

// Category is one of the five canonical inventory categories.
type Category string

const (
	UniformNo3     Category = "Uniform No 3"
	UniformNo4     Category = "Uniform No 4"
	AccessoriesNo3 Category = "Accessories No 3"
	AccessoriesNo4 Category = "Accessories No 4"
	Shirt          Category = "Shirt"
)

// Categories lists the canonical categories in display order.
var Categories = []Category{UniformNo3, UniformNo4, AccessoriesNo3, AccessoriesNo4, Shirt}

// categoryAliases maps legacy labels (in key form) to their canonical category.
var categoryAliases = map[string]Category{
	"uniform 3":       UniformNo3,
	"no 3":            UniformNo3,
	"uniform no3":     UniformNo3,
	"uniform 4":       UniformNo4,
	"no 4":            UniformNo4,
	"uniform no4":     UniformNo4,
	"accessories 3":   AccessoriesNo3,
	"accessory no 3":  AccessoriesNo3,
	"accessories no3": AccessoriesNo3,
	"accessories 4":   AccessoriesNo4,
	"accessory no 4":  AccessoriesNo4,
	"accessories no4": AccessoriesNo4,
	"t shirt":         Shirt,
	"tshirt":          Shirt,
	"shirts":          Shirt,
	"t shirts":        Shirt,
}

var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]Category {
	idx := make(map[string]Category, len(Categories)+len(categoryAliases))
	for _, c := range Categories {
		idx[labelKey(string(c))] = c
	}
	for alias, c := range categoryAliases {
		idx[alias] = c
	}
	return idx
}

// ParseCategory canonicalizes a raw category label.
func ParseCategory(raw string) (Category, error) {
	key := labelKey(raw)
	if key == "" {
		return "", errs.NewValidationError("category", raw, "category is required")
	}
	if c, ok := categoryIndex[key]; ok {
		return c, nil
	}
	return "", errs.NewValidationError("category", raw,
		fmt.Sprintf("unrecognized category %q; allowed: %s", strings.TrimSpace(raw), allowedCategories()))
}

func allowedCategories() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// IsAccessoryCategory reports whether c holds unsized accessories.
func (c Category) IsAccessoryCategory() bool {
	return c == AccessoriesNo3 || c == AccessoriesNo4
}

// IsMainCategory reports whether c holds sized main items.
func (c Category) IsMainCategory() bool {
	return c == UniformNo3 || c == UniformNo4 || c == Shirt
}

// accessoryCounterpart is the accessory category paired with a main category.
// Shirt has no numbered counterpart and pairs with the No 3 set.
func (c Category) accessoryCounterpart() Category {
	switch c {
	case UniformNo4:
		return AccessoriesNo4
	case UniformNo3, Shirt:
		return AccessoriesNo3
	default:
		return c
	}
}

// labelKey reduces a label to its comparison form: lower case, separators as
// single spaces, dots dropped.
func labelKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ", ".", "", "/", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
