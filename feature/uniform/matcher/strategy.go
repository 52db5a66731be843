package matcher

import (
	"strings"

	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/models"
)

// Strategy is one matching tier. Tiers are tried in order and the first tier
// with any hit decides.
type Strategy struct {
	Name  string
	Match func(want catalog.Descriptor, have models.StockRecord) bool
}

// Type tiers.
var (
	ExactType = Strategy{
		Name: "exact-type",
		Match: func(want catalog.Descriptor, have models.StockRecord) bool {
			return catalog.Fold(catalog.CanonicalType(have.Type)) == catalog.Fold(want.Type)
		},
	}
	ContainsType = Strategy{
		Name: "contains-type",
		Match: func(want catalog.Descriptor, have models.StockRecord) bool {
			w := catalog.Fold(want.Type)
			h := catalog.Fold(catalog.CanonicalType(have.Type))
			if w == "" || h == "" {
				return false
			}
			return strings.Contains(h, w) || strings.Contains(w, h)
		},
	}
)

// Size tiers. The first three only apply when a size was requested.
var (
	ExactSize = Strategy{
		Name: "exact-size",
		Match: func(want catalog.Descriptor, have models.StockRecord) bool {
			return want.Size != "" && catalog.NormalizeSize(have.Size) == want.Size
		},
	}
	LooseSize = Strategy{
		Name: "loose-size",
		Match: func(want catalog.Descriptor, have models.StockRecord) bool {
			if want.Size == "" {
				return false
			}
			raw := want.RawSize
			if raw == "" {
				raw = want.Size
			}
			return catalog.SquashSize(have.Size) == catalog.SquashSize(raw)
		},
	}
	NumericSize = Strategy{
		Name: "numeric-size",
		Match: func(want catalog.Descriptor, have models.StockRecord) bool {
			if want.Size == "" {
				return false
			}
			w, ok := catalog.NumericToken(want.Size)
			if !ok {
				return false
			}
			h, ok := catalog.NumericToken(have.Size)
			return ok && w == h
		},
	}
	NoSize = Strategy{
		Name: "no-size",
		Match: func(want catalog.Descriptor, have models.StockRecord) bool {
			return want.Size == "" && catalog.NormalizeSize(have.Size) == ""
		},
	}
)

// DefaultTypeTiers and DefaultSizeTiers are the production tier orders.
var (
	DefaultTypeTiers = []Strategy{ExactType, ContainsType}
	DefaultSizeTiers = []Strategy{ExactSize, LooseSize, NumericSize, NoSize}
)
