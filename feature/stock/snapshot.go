package stock

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"uniform-manager/core/storage"
	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/models"
)

// Source is the read side of the inventory.
type Source interface {
	ListStock(ctx context.Context) ([]models.StockRecord, error)
	ListIssued(ctx context.Context) ([]models.IssuedItem, error)
}

// StockLine is the quantity on hand for one canonical key.
type StockLine struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Size     *string `json:"size"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
}

// DemandLine is what members currently hold of one canonical key.
type DemandLine struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Size     *string `json:"size"`
	Issued   int     `json:"issued"`
	Missing  int     `json:"missing"`
	Members  int     `json:"members"`
}

// Snapshot is a read-only view of stock and issued demand.
type Snapshot struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	Stock       []StockLine  `json:"stock"`
	Demand      []DemandLine `json:"demand"`
}

// Service builds, caches, exports and publishes snapshots.
type Service struct {
	src    Source
	client storage.Client
	bucket string
	region string
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	cached *Snapshot
	sf     singleflight.Group
}

// NewService creates a new snapshot service. client may be nil when
// publishing is not needed.
func NewService(src Source, client storage.Client, bucket, region string, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		src:    src,
		client: client,
		bucket: bucket,
		region: region,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot returns a cached snapshot, rebuilding it once the TTL has passed.
// Concurrent callers share one rebuild.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap := s.fresh(); snap != nil {
		return snap, nil
	}

	result, err, _ := s.sf.Do("snapshot", func() (any, error) {
		if snap := s.fresh(); snap != nil {
			return snap, nil
		}
		snap, err := s.Build(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cached = snap
		s.mu.Unlock()
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Invalidate drops the cached snapshot.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Service) fresh() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil || s.cfg.TTL() <= 0 {
		return nil
	}
	if s.now().Sub(s.cached.GeneratedAt) > s.cfg.TTL() {
		return nil
	}
	return s.cached
}

// Build reads the inventory and aggregates it by canonical key.
func (s *Service) Build(ctx context.Context) (*Snapshot, error) {
	var (
		recs     []models.StockRecord
		items    []models.IssuedItem
		stockErr error
		itemsErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		recs, stockErr = s.src.ListStock(ctx)
	}()
	go func() {
		defer wg.Done()
		items, itemsErr = s.src.ListIssued(ctx)
	}()
	wg.Wait()

	if stockErr != nil {
		return nil, stockErr
	}
	if itemsErr != nil {
		return nil, itemsErr
	}

	snap := &Snapshot{
		GeneratedAt: s.now(),
		Stock:       aggregateStock(recs),
		Demand:      aggregateDemand(items),
	}
	s.logger.Debug("Built stock snapshot",
		zap.Int("stock_lines", len(snap.Stock)),
		zap.Int("demand_lines", len(snap.Demand)))
	return snap, nil
}

func aggregateStock(recs []models.StockRecord) []StockLine {
	byKey := make(map[string]*StockLine)
	descs := make(map[string]catalog.Descriptor)
	for _, r := range recs {
		d := catalog.Tolerant(r.Category, r.Type, r.Size)
		key := d.Key()
		line, ok := byKey[key]
		if !ok {
			line = &StockLine{Category: string(d.Category), Type: d.Type, Size: optional(d.Size)}
			byKey[key] = line
			descs[key] = d
		}
		line.Quantity += r.Quantity
	}

	out := make([]StockLine, 0, len(byKey))
	for _, key := range sortedKeys(descs) {
		line := byKey[key]
		line.Status = string(models.StatusFor(line.Quantity))
		out = append(out, *line)
	}
	return out
}

func aggregateDemand(items []models.IssuedItem) []DemandLine {
	byKey := make(map[string]*DemandLine)
	descs := make(map[string]catalog.Descriptor)
	members := make(map[string]map[uint]struct{})
	for _, it := range items {
		d := catalog.Tolerant(it.Category, it.Type, it.Size)
		key := d.Key()
		line, ok := byKey[key]
		if !ok {
			line = &DemandLine{Category: string(d.Category), Type: d.Type, Size: optional(d.Size)}
			byKey[key] = line
			descs[key] = d
			members[key] = make(map[uint]struct{})
		}
		line.Issued += it.Quantity
		if it.Status == models.ItemMissing {
			line.Missing += it.Quantity
		}
		members[key][it.RecordID] = struct{}{}
	}

	out := make([]DemandLine, 0, len(byKey))
	for _, key := range sortedKeys(descs) {
		line := byKey[key]
		line.Members = len(members[key])
		out = append(out, *line)
	}
	return out
}

// sortedKeys orders keys by canonical category, then type, then size.
func sortedKeys(descs map[string]catalog.Descriptor) []string {
	rank := make(map[catalog.Category]int, len(catalog.Categories))
	for i, c := range catalog.Categories {
		rank[c] = i
	}
	rankOf := func(c catalog.Category) int {
		if r, ok := rank[c]; ok {
			return r
		}
		return len(rank)
	}

	keys := make([]string, 0, len(descs))
	for k := range descs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := descs[keys[i]], descs[keys[j]]
		if ra, rb := rankOf(a.Category), rankOf(b.Category); ra != rb {
			return ra < rb
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Size < b.Size
	})
	return keys
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
