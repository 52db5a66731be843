package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Problem codes used in API responses.
const (
	CodeValidation        = "validation"
	CodeNotFound          = "not_found"
	CodeInsufficientStock = "insufficient_stock"
	CodeConflict          = "conflict"
	CodeInternal          = "internal"
)

// Problem is the serializable form of one item-level error or warning.
type Problem struct {
	Index          int      `json:"index"`
	Code           string   `json:"code"`
	Message        string   `json:"message"`
	Field          string   `json:"field,omitempty"`
	Category       string   `json:"category,omitempty"`
	Type           string   `json:"type,omitempty"`
	Size           *string  `json:"size,omitempty"`
	Available      *int     `json:"available,omitempty"`
	Requested      *int     `json:"requested,omitempty"`
	AvailableTypes []string `json:"availableTypes,omitempty"`
	AvailableSizes []string `json:"availableSizes,omitempty"`

	err error
}

// Err returns the error the problem was built from.
func (p Problem) Err() error {
	return p.err
}

// ToProblem describes err for the item at index.
func ToProblem(index int, err error) Problem {
	p := Problem{Index: index, Message: err.Error(), err: err}

	var ve *ValidationError
	var nf *NotFoundError
	var is *InsufficientStockError
	var cc *ConcurrencyConflictError
	switch {
	case errors.As(err, &ve):
		p.Code = CodeValidation
		p.Field = ve.Field
	case errors.As(err, &nf):
		p.Code = CodeNotFound
		p.Category, p.Type, p.Size = nf.Category, nf.Type, sizePtr(nf.Size)
		p.AvailableTypes = nf.AvailableTypes
		p.AvailableSizes = nf.AvailableSizes
	case errors.As(err, &is):
		p.Code = CodeInsufficientStock
		p.Category, p.Type, p.Size = is.Category, is.Type, sizePtr(is.Size)
		available, requested := is.Available, is.Requested
		p.Available, p.Requested = &available, &requested
	case errors.As(err, &cc):
		p.Code = CodeConflict
	default:
		p.Code = CodeInternal
	}
	return p
}

func sizePtr(size string) *string {
	if size == "" {
		return nil
	}
	return &size
}

// BatchError collects every item-level problem of a rejected request.
type BatchError struct {
	Problems []Problem
}

// Add appends a problem for the item at index.
func (b *BatchError) Add(index int, err error) {
	b.Problems = append(b.Problems, ToProblem(index, err))
}

// ErrOrNil returns b when it holds problems.
func (b *BatchError) ErrOrNil() error {
	if b == nil || len(b.Problems) == 0 {
		return nil
	}
	return b
}

func (b *BatchError) Error() string {
	msgs := make([]string, len(b.Problems))
	for i, p := range b.Problems {
		msgs[i] = fmt.Sprintf("item %d: %s", p.Index, p.Message)
	}
	return fmt.Sprintf("%d problem(s): %s", len(b.Problems), strings.Join(msgs, "; "))
}

// Unwrap exposes the underlying errors so errors.Is and errors.As see every problem.
func (b *BatchError) Unwrap() []error {
	out := make([]error, 0, len(b.Problems))
	for _, p := range b.Problems {
		if p.err != nil {
			out = append(out, p.err)
		}
	}
	return out
}
