package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"uniform-manager/core/config"
	"uniform-manager/core/database"
	"uniform-manager/core/idempotency"
	"uniform-manager/core/loader"
	"uniform-manager/core/logger"
	"uniform-manager/core/middleware/auth"
	"uniform-manager/core/middleware/rayid"
	"uniform-manager/core/redis"
	"uniform-manager/core/storage"

	"uniform-manager/feature/integrity"
	"uniform-manager/feature/stock"
	"uniform-manager/feature/uniform"
	"uniform-manager/feature/uniform/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "uniform-manager/docs/swagger"
)

// @title Uniform Manager API
// @version 1.0
// @description API for reconciling member uniform records against central stock.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the uniform manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Required: stock and records live there)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		st := store.New(db)

		// 4. Idempotency cache: Redis when configured so every instance shares it
		cache := newGuardCache(ctx, cfg.Redis, logg)
		guard := idempotency.NewGuard(cache, cfg.Reconcile.DedupWindow(), cfg.Reconcile.CleanupHorizon(), logg)

		// 5. Initialize Storage (Optional: only snapshot publishing and bucket checks need it)
		var client storage.Client
		if c, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage client unavailable, publishing disabled", zap.Error(err))
		} else {
			client = c
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(uniform.NewFeature(st, guard, logg))
		mgr.Register(stock.NewFeature(stock.NewService(st, client, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Snapshot, logg)))
		mgr.Register(integrity.NewFeature(client, cfg.Storage.Bucket, logg, db))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		if cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key not configured, requests are not authenticated")
		}

		// 7. Load Features
		if _, err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newGuardCache picks the shared Redis cache when configured, falling back to
// the in-process cache when Redis is absent or unreachable.
func newGuardCache(ctx context.Context, cfg redis.Config, logg *zap.Logger) idempotency.Cache {
	if !cfg.Enabled() {
		logg.Info("Redis not configured, using in-process idempotency cache")
		return idempotency.NewMemoryCache()
	}
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		logg.Warn("Redis unavailable, using in-process idempotency cache", zap.Error(err))
		return idempotency.NewMemoryCache()
	}
	logg.Info("Using Redis idempotency cache", zap.String("addr", cfg.Addr))
	return idempotency.NewRedisCache(client, "uniform:idem:")
}

func init() {
	RootCmd.AddCommand(startCmd)
}
