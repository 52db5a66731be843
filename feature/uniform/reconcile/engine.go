package reconcile

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/errs"
	"uniform-manager/feature/uniform/matcher"
	"uniform-manager/feature/uniform/models"
	"uniform-manager/feature/uniform/store"
)

// Repository is the persistence the engine needs.
type Repository interface {
	matcher.Source
	// GetRecord returns nil when the member has no record yet.
	GetRecord(ctx context.Context, memberID string) (*models.UniformRecord, error)
	// WithinTx runs fn atomically.
	WithinTx(ctx context.Context, fn func(store.Tx) error) error
}

// Engine reconciles a member's desired item set against stock.
type Engine struct {
	repo    Repository
	matcher *matcher.Matcher
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock used for received dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine.
func NewEngine(repo Repository, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{repo: repo, matcher: matcher.New(), logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile replaces the member's item set with req.Items and moves stock by
// the net difference. Either every change is applied or none is. A lost race
// on the member record is retried once.
func (e *Engine) Reconcile(ctx context.Context, req Request) (*Result, error) {
	lines, err := normalize(req.Items)
	if err != nil {
		return nil, err
	}

	var res *Result
	for attempt := 0; attempt < 2; attempt++ {
		res, err = e.reconcile(ctx, req.MemberID, lines, req.DryRun)
		if err == nil || !errors.Is(err, errs.ErrConcurrencyConflict) {
			break
		}
		e.logger.Debug("Retrying reconciliation after conflict",
			zap.String("member_id", req.MemberID), zap.Error(err))
	}
	return res, err
}

// stockChange is everything planned against one stock record.
type stockChange struct {
	record      models.StockRecord
	desc        catalog.Descriptor
	restore     int
	deduct      int
	deductIndex int
}

func (e *Engine) reconcile(ctx context.Context, memberID string, lines []line, dryRun bool) (*Result, error) {
	start := time.Now()

	rec, err := e.repo.GetRecord(ctx, memberID)
	if err != nil {
		return nil, err
	}
	old := sumStored(rec)
	requested := sumRequested(lines)
	restores, deductions := diff(old, requested)

	src := &categoryCache{src: e.repo, byCategory: make(map[catalog.Category][]models.StockRecord)}
	changes := make(map[uint]*stockChange)
	batch := &errs.BatchError{}
	var warnings []errs.Problem

	for _, r := range restores {
		m, err := e.matcher.Find(ctx, src, r.desc)
		if errors.Is(err, errs.ErrNotFound) {
			e.logger.Warn("Returned item has no stock record, not restocked",
				zap.String("member_id", memberID), zap.String("item", r.desc.String()))
			warnings = append(warnings, errs.ToProblem(r.index, err))
			continue
		}
		if err != nil {
			return nil, err
		}
		change(changes, m.Record, r.desc).restore += r.amount
	}

	for _, d := range deductions {
		m, err := e.matcher.Find(ctx, src, d.desc)
		if errors.Is(err, errs.ErrNotFound) {
			if catalog.IsMainItem(d.desc.Type) {
				batch.Add(d.index, err)
			} else {
				e.logger.Warn("Custom item has no stock record, not deducted",
					zap.String("member_id", memberID), zap.String("item", d.desc.String()))
				warnings = append(warnings, errs.ToProblem(d.index, err))
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		c := change(changes, m.Record, d.desc)
		if c.deduct == 0 {
			c.deductIndex = d.index
			c.desc = d.desc
		}
		c.deduct += d.amount
	}

	ordered := sortedChanges(changes)
	for _, c := range ordered {
		if available := c.record.Quantity + c.restore; c.deduct > available {
			batch.Add(c.deductIndex, insufficient(c.desc, available, c.deduct))
		}
	}
	if err := batch.ErrOrNil(); err != nil {
		return nil, err
	}

	items, changed := merge(old, requested, e.now().UTC())
	res := &Result{
		MemberID: memberID,
		Items:    Render(items),
		Changed:  changed,
		Warnings: warnings,
		DryRun:   dryRun,
	}

	if dryRun {
		res.Movements = simulate(ordered)
		return res, nil
	}

	if rec == nil {
		rec = &models.UniformRecord{MemberID: memberID}
	}
	rec.Items = items

	var movements []Movement
	err = e.repo.WithinTx(ctx, func(tx store.Tx) error {
		movements = movements[:0]
		for _, c := range ordered {
			if c.restore == 0 {
				continue
			}
			after, err := tx.AdjustQuantity(ctx, c.record.ID, c.restore)
			if err != nil {
				return err
			}
			movements = append(movements, movement(after, c.restore))
		}
		for _, c := range ordered {
			if c.deduct == 0 {
				continue
			}
			after, err := tx.AdjustQuantity(ctx, c.record.ID, -c.deduct)
			var short *errs.InsufficientStockError
			if errors.As(err, &short) {
				b := &errs.BatchError{}
				b.Add(c.deductIndex, insufficient(c.desc, short.Available, short.Requested))
				return b
			}
			if err != nil {
				return err
			}
			movements = append(movements, movement(after, -c.deduct))
		}
		return tx.SaveRecord(ctx, rec)
	})
	if err != nil {
		var conflict *errs.ConcurrencyConflictError
		if errors.As(err, &conflict) && conflict.MemberID == "" {
			conflict.MemberID = memberID
		}
		return nil, err
	}

	res.Movements = movements
	for _, m := range movements {
		e.logger.Debug("Stock moved",
			zap.String("member_id", memberID),
			zap.Uint("stock_id", m.StockID),
			zap.Int("delta", m.Delta),
			zap.Int("quantity", m.Quantity))
	}
	e.logger.Info("Reconciled uniform record",
		zap.String("member_id", memberID),
		zap.Int("items", len(items)),
		zap.Int("changed", changed),
		zap.Int("movements", len(movements)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", time.Since(start)))
	return res, nil
}

func change(changes map[uint]*stockChange, rec models.StockRecord, desc catalog.Descriptor) *stockChange {
	c, ok := changes[rec.ID]
	if !ok {
		c = &stockChange{record: rec, desc: desc, deductIndex: -1}
		changes[rec.ID] = c
	}
	return c
}

func sortedChanges(changes map[uint]*stockChange) []*stockChange {
	out := make([]*stockChange, 0, len(changes))
	for _, c := range changes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].record.ID < out[j].record.ID })
	return out
}

func insufficient(d catalog.Descriptor, available, requested int) *errs.InsufficientStockError {
	return &errs.InsufficientStockError{
		Category:  string(d.Category),
		Type:      d.Type,
		Size:      d.Size,
		Available: available,
		Requested: requested,
	}
}

func movement(rec models.StockRecord, delta int) Movement {
	return Movement{
		StockID:  rec.ID,
		Category: rec.Category,
		Type:     rec.Type,
		Size:     optional(rec.Size),
		Delta:    delta,
		Quantity: rec.Quantity,
		Status:   string(rec.Status),
	}
}

// simulate computes the movements a dry run would apply.
func simulate(ordered []*stockChange) []Movement {
	qty := make(map[uint]int, len(ordered))
	for _, c := range ordered {
		qty[c.record.ID] = c.record.Quantity
	}
	var out []Movement
	step := func(c *stockChange, delta int) {
		rec := c.record
		qty[rec.ID] += delta
		rec.Quantity = qty[rec.ID]
		rec.Status = models.StatusFor(rec.Quantity)
		out = append(out, movement(rec, delta))
	}
	for _, c := range ordered {
		if c.restore > 0 {
			step(c, c.restore)
		}
	}
	for _, c := range ordered {
		if c.deduct > 0 {
			step(c, -c.deduct)
		}
	}
	return out
}

// categoryCache reads each category's candidates once per reconciliation.
type categoryCache struct {
	src        matcher.Source
	byCategory map[catalog.Category][]models.StockRecord
}

func (c *categoryCache) Candidates(ctx context.Context, category catalog.Category) ([]models.StockRecord, error) {
	if recs, ok := c.byCategory[category]; ok {
		return recs, nil
	}
	recs, err := c.src.Candidates(ctx, category)
	if err != nil {
		return nil, err
	}
	c.byCategory[category] = recs
	return recs, nil
}
