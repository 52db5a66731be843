package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	noSize = map[string]struct{}{
		"": {}, "-": {}, "N/A": {}, "NA": {}, "NULL": {}, "NONE": {}, "UNDEFINED": {},
	}
	sizeAliases = map[string]string{
		"2XL": "XXL",
		"3XL": "XXXL",
	}
	numericToken = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// NormalizeSize trims, collapses whitespace and upper-cases a size. Every
// placeholder for "no size" becomes "".
func NormalizeSize(raw string) string {
	s := strings.ToUpper(strings.Join(strings.Fields(raw), " "))
	if _, ok := noSize[s]; ok {
		return ""
	}
	if alias, ok := sizeAliases[s]; ok {
		return alias
	}
	return s
}

// SquashSize drops all whitespace and folds case.
func SquashSize(raw string) string {
	return Fold(strings.Join(strings.Fields(raw), ""))
}

// NumericToken returns the first integer or decimal number in a size.
func NumericToken(size string) (float64, bool) {
	tok := numericToken.FindString(size)
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
