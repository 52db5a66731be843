package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"uniform-manager/feature/uniform/errs"
)

// Descriptor identifies an item by category, type and size. Size is "" for
// unsized items.
type Descriptor struct {
	Category Category
	Type     string
	Size     string
	// RawSize keeps the size as sent, for the whitespace-insensitive match tier.
	RawSize string
}

// Key is the identity used to sum and diff issued items.
func (d Descriptor) Key() string {
	return d.LogicalKey() + "|" + d.Size
}

// LogicalKey ignores size. Two descriptors with the same logical key and
// different sizes form a size change.
func (d Descriptor) LogicalKey() string {
	return string(d.Category) + "|" + Fold(d.Type)
}

func (d Descriptor) String() string {
	if d.Size == "" {
		return string(d.Category) + " / " + d.Type
	}
	return string(d.Category) + " / " + d.Type + " / " + d.Size
}

// Fold returns the case-folded form of s for case-insensitive comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// CanonicalType resolves legacy spellings of known types. Unknown types come
// back trimmed with inner whitespace collapsed; free-form types are allowed.
func CanonicalType(raw string) string {
	key := labelKey(raw)
	if key == "" {
		return ""
	}
	if name, ok := mainIndex[key]; ok {
		return name
	}
	if name, ok := accessoryIndex[key]; ok {
		return name
	}
	if name, ok := typeAliases[key]; ok {
		return name
	}
	return strings.Join(strings.Fields(raw), " ")
}

// Normalize canonicalizes a category and type. A known accessory tagged with a
// main category is moved to its accessory category.
func Normalize(rawCategory, rawType string) (Category, string, error) {
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return "", "", err
	}
	typ := CanonicalType(rawType)
	if typ == "" {
		return "", "", errs.NewValidationError("type", rawType, "type is required")
	}
	if category.IsMainCategory() && IsAccessory(typ) {
		category = CategoryFor(typ, category)
	}
	return category, typ, nil
}

// NormalizeDescriptor canonicalizes a full descriptor.
func NormalizeDescriptor(rawCategory, rawType, rawSize string) (Descriptor, error) {
	category, typ, err := Normalize(rawCategory, rawType)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Category: category,
		Type:     typ,
		Size:     NormalizeSize(rawSize),
		RawSize:  rawSize,
	}, nil
}

// Tolerant normalizes a stored descriptor. Values that no longer parse are
// kept as stored so old records can still be diffed.
func Tolerant(rawCategory, rawType, rawSize string) Descriptor {
	d, err := NormalizeDescriptor(rawCategory, rawType, rawSize)
	if err == nil {
		return d
	}
	return Descriptor{
		Category: Category(strings.TrimSpace(rawCategory)),
		Type:     strings.TrimSpace(rawType),
		Size:     NormalizeSize(rawSize),
		RawSize:  rawSize,
	}
}
