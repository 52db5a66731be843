package catalog

// Main items are matched by exact phrase only. A short name such as "Beret"
// must never match inside a longer accessory name such as "Beret Logo Pin".
var mainItems = []string{
	"Uniform No 3 Male",
	"Uniform No 3 Female",
	"Uniform No 4",
	"Boot",
	"PVC Shoes",
	"Beret",
	"Digital Shirt",
	"Company Shirt",
	"Inner APM Shirt",
}

// typeAliases maps legacy type names (in key form) to their canonical type.
// The old top/bottom split of the gendered uniforms collapses into one type.
var typeAliases = map[string]string{
	"cloth no 3 male":      "Uniform No 3 Male",
	"pants no 3 male":      "Uniform No 3 Male",
	"trousers no 3 male":   "Uniform No 3 Male",
	"baju no 3 lelaki":     "Uniform No 3 Male",
	"cloth no 3 female":    "Uniform No 3 Female",
	"pants no 3 female":    "Uniform No 3 Female",
	"trousers no 3 female": "Uniform No 3 Female",
	"baju no 3 perempuan":  "Uniform No 3 Female",
	"cloth no 4":           "Uniform No 4",
	"pants no 4":           "Uniform No 4",
	"trousers no 4":        "Uniform No 4",
	"baju no 4":            "Uniform No 4",
	"boots":                "Boot",
	"pvc shoe":             "PVC Shoes",
	"epaulette":            "Apulet",
	"epulet":               "Apulet",
	"apulets":              "Apulet",
	"name tag":             "Nametag",
	"shoulder tag":         "Shoulder Badge",
	"beret pin":            "Beret Logo Pin",
	"celbar":               "Cel Bar",
	"inner apm t shirt":    "Inner APM Shirt",
	"digital t shirt":      "Digital Shirt",
	"company t shirt":      "Company Shirt",
}

// accessoryCategories is the exhaustive category_for(type) table for known accessories.
var accessoryCategories = map[string]Category{
	"Apulet":          AccessoriesNo3,
	"Integrity Badge": AccessoriesNo3,
	"Shoulder Badge":  AccessoriesNo3,
	"Cel Bar":         AccessoriesNo3,
	"Beret Logo Pin":  AccessoriesNo3,
	"Belt No 3":       AccessoriesNo3,
	"Nametag":         AccessoriesNo3,
	"APM Tag":         AccessoriesNo4,
	"Belt No 4":       AccessoriesNo4,
	"Name Plate":      AccessoriesNo4,
}

// accessoryKeywords classify unknown free-form types as accessories.
// They are matched as whole words.
var accessoryKeywords = []string{
	"badge", "pin", "tag", "belt", "bar", "apulet", "logo", "plate", "button", "nametag",
}

// customKeywords identify member-personalised items (matched on the key form).
var customKeywords = []string{"nametag", "name tag", "name plate"}

var (
	mainIndex      = indexByKey(mainItems)
	accessoryIndex = buildAccessoryIndex()
)

func indexByKey(names []string) map[string]string {
	idx := make(map[string]string, len(names))
	for _, n := range names {
		idx[labelKey(n)] = n
	}
	return idx
}

func buildAccessoryIndex() map[string]string {
	idx := make(map[string]string, len(accessoryCategories))
	for n := range accessoryCategories {
		idx[labelKey(n)] = n
	}
	return idx
}
