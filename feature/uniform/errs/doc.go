// Package errs defines the error taxonomy of the uniform reconciliation flow.
//
// Every typed error matches a sentinel through errors.Is, and BatchError carries
// all item-level problems of a rejected request at once:
//
//	var batch *errs.BatchError
//	if errors.As(err, &batch) {
//		for _, p := range batch.Problems { ... }
//	}
package errs
