package ledger

import "errors"

// Sentinel errors for the ledger core. Soft outcomes (task already credited,
// submission already pending) are not errors; they are flags on the typed
// results so callers can render "already done" instead of an error banner.
var (
	ErrNotFound          = errors.New("ledger: not found")
	ErrInvalidArgument   = errors.New("ledger: invalid argument")
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
	ErrInvalidState      = errors.New("ledger: invalid state")
)
