package uniform

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"uniform-manager/core/idempotency"
	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/reconcile"
)

// ErrRecordNotFound is returned when a member has no uniform record.
var ErrRecordNotFound = errors.New("uniform record not found")

// Service is the entry point for uniform updates.
type Service struct {
	repo   reconcile.Repository
	engine *reconcile.Engine
	guard  *idempotency.Guard
	logger *zap.Logger
}

// NewService creates a Service. A nil guard disables duplicate suppression.
func NewService(repo reconcile.Repository, guard *idempotency.Guard, logger *zap.Logger, opts ...reconcile.Option) *Service {
	return &Service{
		repo:   repo,
		engine: reconcile.NewEngine(repo, logger, opts...),
		guard:  guard,
		logger: logger,
	}
}

// Reconcile applies a member's desired item set. Dry runs bypass the guard.
func (s *Service) Reconcile(ctx context.Context, req reconcile.Request) (*reconcile.Result, error) {
	if req.DryRun || s.guard == nil {
		return s.engine.Reconcile(ctx, req)
	}
	key := idempotency.Key(req.MemberID, RequestParts(req.Items))
	return idempotency.Do(ctx, s.guard, key, func(ctx context.Context) (*reconcile.Result, error) {
		return s.engine.Reconcile(ctx, req)
	})
}

// Record returns the current items of a member.
func (s *Service) Record(ctx context.Context, memberID string) ([]reconcile.IssuedItem, error) {
	rec, err := s.repo.GetRecord(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: member %s", ErrRecordNotFound, memberID)
	}
	return reconcile.Render(rec.Items), nil
}

// RequestParts lists the (category, type) pairs a request touches, normalized
// where possible so spelling variants share a key.
func RequestParts(items []reconcile.Item) []string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		category, typ, err := catalog.Normalize(it.Category, it.Type)
		if err != nil {
			parts = append(parts, it.Category+"|"+it.Type)
			continue
		}
		parts = append(parts, string(category)+"|"+typ)
	}
	return parts
}
