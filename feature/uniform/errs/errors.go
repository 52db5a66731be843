package errs

import (
	"errors"
	"fmt"
	"strings"

	"uniform-manager/core/idempotency"
)

// Sentinel errors for errors.Is checks.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("stock record not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrConcurrencyConflict = errors.New("concurrent stock modification")
	ErrDuplicateRequest    = idempotency.ErrDuplicateRequest
)

// DuplicateRequestError is raised by the idempotency guard.
type DuplicateRequestError = idempotency.DuplicateRequestError

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a descriptor that matched no stock record, or more than one.
type NotFoundError struct {
	Category       string
	Type           string
	Size           string
	Ambiguous      bool
	AvailableTypes []string
	AvailableSizes []string
}

func (e *NotFoundError) Error() string {
	what := fmt.Sprintf("%s / %s", e.Category, e.Type)
	if e.Size != "" {
		what += " / " + e.Size
	}
	if e.Ambiguous {
		return fmt.Sprintf("stock record for %s is ambiguous; sizes in stock: %s", what, list(e.AvailableSizes))
	}
	msg := fmt.Sprintf("no stock record for %s", what)
	if len(e.AvailableTypes) > 0 {
		msg += fmt.Sprintf("; types in stock: %s", list(e.AvailableTypes))
	}
	if len(e.AvailableSizes) > 0 {
		msg += fmt.Sprintf("; sizes in stock: %s", list(e.AvailableSizes))
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientStockError reports a deduction larger than what stock can cover.
type InsufficientStockError struct {
	Category  string
	Type      string
	Size      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s / %s / %s: available %d, requested %d",
		e.Category, e.Type, sizeOrNone(e.Size), e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ConcurrencyConflictError reports a conditional update that lost its race twice.
type ConcurrencyConflictError struct {
	StockID  uint
	MemberID string
}

func (e *ConcurrencyConflictError) Error() string {
	if e.MemberID != "" {
		return fmt.Sprintf("uniform record for member %s was modified concurrently", e.MemberID)
	}
	return fmt.Sprintf("stock record %d was modified concurrently", e.StockID)
}

func (e *ConcurrencyConflictError) Is(target error) bool {
	return target == ErrConcurrencyConflict
}

func list(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func sizeOrNone(size string) string {
	if size == "" {
		return "no size"
	}
	return size
}
