package cmd

import (
	"context"
	"fmt"

	"uniform-manager/core/config"
	"uniform-manager/core/database"
	"uniform-manager/core/logger"
	"uniform-manager/core/storage"
	"uniform-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the database and storage",
	Long:  `Checks the database schema against the models and the storage bucket for its required folders.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix bucket folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check integrity of the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runServer bool) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	var client storage.Client
	if runStructure {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	var db *gorm.DB
	if runServer {
		if db, err = database.Connect(cfg.Database); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	svc := integrity.NewService(client, cfg.Storage.Bucket, logg, db)
	failed := false

	if runStructure {
		logg.Info("Checking folder structure...", zap.String("bucket", cfg.Storage.Bucket))
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else {
				failed = true
			}
		}
	}

	if runServer {
		logg.Info("Checking database schema...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckServer()
		if err != nil {
			return fmt.Errorf("server check failed: %w", err)
		}

		for table, tbl := range report.Tables {
			if tbl.Status == "ok" {
				logg.Info("Table matches", zap.String("table", table))
				continue
			}
			logg.Warn("Table mismatch",
				zap.String("table", table),
				zap.Strings("missing_columns", tbl.MissingColumns),
				zap.Strings("type_mismatches", tbl.TypeMismatches),
			)
		}
		for _, e := range report.Errors {
			logg.Error("Schema error", zap.String("error", e))
		}
		if !report.Matched {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("integrity checks found problems")
	}
	logg.Info("All integrity checks passed")
	return nil
}
