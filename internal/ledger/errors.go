package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrChainConflict is returned when an append observes a different latest
// transaction than the one it chained to. The append is aborted; the caller
// may retry from a fresh read.
var ErrChainConflict = errors.New("ledger chain conflict: predecessor changed during append")

// ValidationError reports a malformed sale request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid sale request: " + e.Reason
}

// InsufficientStockError reports a cart line that asks for more units than
// the catalog holds. The whole sale is rejected when any line fails.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d", e.Name, e.Requested, e.Available)
}
