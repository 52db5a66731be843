package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"uniform-manager/core/idempotency"
	"uniform-manager/feature/uniform"
	"uniform-manager/feature/uniform/errs"
	"uniform-manager/feature/uniform/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunReconcile bool
	jsonReconcile   bool
)

// reconcileCmd applies a member's desired uniform items from a JSON file.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <memberId> <items.json>",
	Short: "Reconcile a member's uniform record from a JSON file",
	Long: `Reads {"items":[...]} from a file (or "-" for stdin) and reconciles the member's
record against central stock, exactly as PUT /uniform/:memberId does.

Examples:
  # Preview stock movements without writing
  reconcile M-1001 items.json --dry-run

  # Apply and print the full result
  reconcile M-1001 items.json --json`,
	Args: cobra.ExactArgs(2),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Plan stock movements without writing")
	reconcileCmd.Flags().BoolVar(&jsonReconcile, "json", false, "Print the full result as JSON")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	memberID, path := args[0], args[1]

	cfg, l, st, err := openStore()
	if err != nil {
		return err
	}
	defer l.Sync()

	data, err := readInput(path)
	if err != nil {
		return err
	}

	var payload uniform.UpdatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	req, err := payload.Request(memberID, dryRunReconcile)
	if err != nil {
		printProblems(l, err)
		return err
	}

	// A one-shot process cannot see another's requests; the in-process guard
	// still rejects accidental repeats within the run.
	guard := idempotency.NewGuard(idempotency.NewMemoryCache(), cfg.Reconcile.DedupWindow(), cfg.Reconcile.CleanupHorizon(), l)
	svc := uniform.NewService(st, guard, l)

	res, err := svc.Reconcile(cmd.Context(), req)
	if err != nil {
		printProblems(l, err)
		return err
	}

	printReconcileResult(l, res)
	if jsonReconcile {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// printReconcileResult prints a formatted reconciliation report using logger.
func printReconcileResult(l *zap.Logger, res *reconcile.Result) {
	msg := "Reconciliation applied"
	if res.DryRun {
		msg = "Dry-run mode: No changes were made."
	}
	l.Info(msg,
		zap.String("member", res.MemberID),
		zap.Int("items", len(res.Items)),
		zap.Int("changed", res.Changed),
		zap.Int("movements", len(res.Movements)),
	)

	for _, m := range res.Movements {
		l.Info("Stock movement",
			zap.Uint("stock_id", m.StockID),
			zap.String("category", m.Category),
			zap.String("type", m.Type),
			zap.Stringp("size", m.Size),
			zap.Int("delta", m.Delta),
			zap.Int("quantity", m.Quantity),
		)
	}
	for _, w := range res.Warnings {
		l.Warn("Skipped item", zap.Int("index", w.Index), zap.String("code", w.Code), zap.String("message", w.Message))
	}
}

func printProblems(l *zap.Logger, err error) {
	var batch *errs.BatchError
	if !errors.As(err, &batch) {
		return
	}
	for _, p := range batch.Problems {
		l.Error("Rejected item", zap.Int("index", p.Index), zap.String("code", p.Code), zap.String("message", p.Message))
	}
}
