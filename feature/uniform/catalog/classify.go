package catalog

import "strings"

// IsMainItem reports whether typ is one of the canonical main items.
// Only an exact phrase counts.
func IsMainItem(typ string) bool {
	_, ok := mainIndex[labelKey(CanonicalType(typ))]
	return ok
}

// IsAccessory reports whether typ is an accessory. Known accessories are
// looked up in the table; unknown types fall back to keyword matching.
func IsAccessory(typ string) bool {
	key := labelKey(CanonicalType(typ))
	if key == "" {
		return false
	}
	if _, ok := mainIndex[key]; ok {
		return false
	}
	if _, ok := accessoryIndex[key]; ok {
		return true
	}
	for _, word := range strings.Fields(key) {
		for _, kw := range accessoryKeywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}

// IsCustomOrdered reports whether typ is personalised per member. Such items
// are never held in stock.
func IsCustomOrdered(typ string) bool {
	key := labelKey(typ)
	for _, kw := range customKeywords {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}

// CategoryFor returns the accessory category of typ. Types missing from the
// table follow the numbering of the main category they arrived with.
func CategoryFor(typ string, arrivedWith Category) Category {
	if name, ok := accessoryIndex[labelKey(CanonicalType(typ))]; ok {
		return accessoryCategories[name]
	}
	return arrivedWith.accessoryCounterpart()
}

// RequiresSize reports whether an item of this category and type must carry a size.
func RequiresSize(category Category, typ string) bool {
	if IsMainItem(typ) {
		return true
	}
	if IsAccessory(typ) || IsCustomOrdered(typ) || category.IsAccessoryCategory() {
		return false
	}
	return category.IsMainCategory()
}

// TracksStock reports whether issuing typ moves stock.
func TracksStock(typ string) bool {
	return !IsAccessory(typ) && !IsCustomOrdered(typ)
}
