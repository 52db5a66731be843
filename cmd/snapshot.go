package cmd

import (
	"fmt"
	"os"

	"uniform-manager/core/storage"
	"uniform-manager/feature/stock"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	snapshotOut     string
	snapshotPublish bool
)

// snapshotCmd exports the forecast stock snapshot.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export the stock snapshot for forecasting",
	Long: `Builds the read-only stock snapshot (stock per canonical item plus issued demand),
writes it as an Excel workbook and optionally publishes it to the storage bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, l, st, err := openStore()
		if err != nil {
			return err
		}
		defer l.Sync()

		var client storage.Client
		if snapshotPublish {
			client, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		svc := stock.NewService(st, client, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Snapshot, l)

		snap, err := svc.Snapshot(ctx)
		if err != nil {
			return err
		}
		l.Info("Snapshot built",
			zap.Int("stock_lines", len(snap.Stock)),
			zap.Int("demand_lines", len(snap.Demand)),
		)

		if snapshotOut != "" {
			data, err := svc.Export(ctx)
			if err != nil {
				return err
			}
			if err := os.WriteFile(snapshotOut, data, 0644); err != nil {
				return fmt.Errorf("failed to save workbook: %w", err)
			}
			l.Info("Workbook saved", zap.String("file", snapshotOut), zap.Int("bytes", len(data)))
		}

		if snapshotPublish {
			res, err := svc.Publish(ctx)
			if err != nil {
				return err
			}
			l.Info("Snapshot published",
				zap.String("bucket", res.Bucket),
				zap.String("object", res.Object),
				zap.Int64("size", res.Size),
			)
		}
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "stock_snapshot.xlsx", "Workbook output file (empty to skip)")
	snapshotCmd.Flags().BoolVar(&snapshotPublish, "publish", false, "Upload the workbook to the storage bucket")
	RootCmd.AddCommand(snapshotCmd)
}
