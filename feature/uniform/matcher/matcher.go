package matcher

import (
	"context"
	"sort"

	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/errs"
	"uniform-manager/feature/uniform/models"
)

// Source lists the stock records of a canonical category.
type Source interface {
	Candidates(ctx context.Context, category catalog.Category) ([]models.StockRecord, error)
}

// Match is a resolved stock record and the tiers that found it.
type Match struct {
	Record   models.StockRecord
	TypeTier string
	SizeTier string
}

// Matcher resolves descriptors to stock records through ordered tiers.
type Matcher struct {
	typeTiers []Strategy
	sizeTiers []Strategy
}

// New creates a Matcher with the default tiers.
func New() *Matcher {
	return &Matcher{typeTiers: DefaultTypeTiers, sizeTiers: DefaultSizeTiers}
}

// NewWithTiers creates a Matcher with custom tiers.
func NewWithTiers(typeTiers, sizeTiers []Strategy) *Matcher {
	return &Matcher{typeTiers: typeTiers, sizeTiers: sizeTiers}
}

// Find loads candidates from src and resolves want against them.
func (m *Matcher) Find(ctx context.Context, src Source, want catalog.Descriptor) (Match, error) {
	candidates, err := src.Candidates(ctx, want.Category)
	if err != nil {
		return Match{}, err
	}
	return m.Resolve(want, candidates)
}

// Resolve picks the single stock record matching want. No hit, or more than
// one hit in the deciding tier, is a NotFoundError with diagnostics.
func (m *Matcher) Resolve(want catalog.Descriptor, candidates []models.StockRecord) (Match, error) {
	inCategory := make([]models.StockRecord, 0, len(candidates))
	for _, c := range candidates {
		if cat, err := catalog.ParseCategory(c.Category); err == nil && cat == want.Category {
			inCategory = append(inCategory, c)
		}
	}

	typed, typeTier := firstTier(m.typeTiers, want, inCategory)
	if len(typed) == 0 {
		return Match{}, notFound(want, inCategory, nil, false)
	}

	hits, sizeTier := firstTier(m.sizeTiers, want, typed)
	switch len(hits) {
	case 1:
		return Match{Record: hits[0], TypeTier: typeTier, SizeTier: sizeTier}, nil
	case 0:
		return Match{}, notFound(want, inCategory, typed, false)
	default:
		return Match{}, notFound(want, inCategory, hits, true)
	}
}

func firstTier(tiers []Strategy, want catalog.Descriptor, pool []models.StockRecord) ([]models.StockRecord, string) {
	for _, tier := range tiers {
		var hits []models.StockRecord
		for _, c := range pool {
			if tier.Match(want, c) {
				hits = append(hits, c)
			}
		}
		if len(hits) > 0 {
			return hits, tier.Name
		}
	}
	return nil, ""
}

func notFound(want catalog.Descriptor, inCategory, typed []models.StockRecord, ambiguous bool) *errs.NotFoundError {
	e := &errs.NotFoundError{
		Category:  string(want.Category),
		Type:      want.Type,
		Size:      want.Size,
		Ambiguous: ambiguous,
	}
	if typed == nil {
		e.AvailableTypes = distinct(inCategory, func(r models.StockRecord) string { return catalog.CanonicalType(r.Type) })
	}
	e.AvailableSizes = distinct(typed, func(r models.StockRecord) string { return catalog.NormalizeSize(r.Size) })
	return e
}

func distinct(recs []models.StockRecord, field func(models.StockRecord) string) []string {
	seen := make(map[string]struct{}, len(recs))
	var out []string
	for _, r := range recs {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
