package uniform

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"uniform-manager/core/idempotency"
	"uniform-manager/feature/uniform/reconcile"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Uniform feature.
func NewFeature(repo reconcile.Repository, guard *idempotency.Guard, logger *zap.Logger) *Feature {
	svc := NewService(repo, guard, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "uniform"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service, shared with the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
