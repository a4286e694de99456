package ledger

import "errors"

var (
	// ErrInvalidAmount is returned for a zero or otherwise disallowed amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance is returned when a withdrawal exceeds the staked principal.
	ErrInsufficientBalance = errors.New("insufficient staked balance")
	// ErrAccountNotFound is returned for an operation on an account without a ledger
	// record where creating one is not implied.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransferFailed is returned when the token movement backing an operation did not complete.
	ErrTransferFailed = errors.New("token transfer failed")
	// ErrUnauthorized is returned when the caller may not invoke an operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrArithmeticOverflow is returned when an amount or accumulator leaves its range.
	// Values are never wrapped or truncated.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	// ErrPoolNotFound is returned when the pool has not been instantiated yet.
	ErrPoolNotFound = errors.New("pool not found")
	// ErrInvalidPoolParams is returned when instantiating with incomplete parameters.
	ErrInvalidPoolParams = errors.New("invalid pool parameters")
	// ErrPoolExists is returned when instantiating an already instantiated pool.
	ErrPoolExists = errors.New("pool already exists")
	// ErrCommitFailed is returned when persisting the staged state failed after the
	// transfer went through.
	ErrCommitFailed = errors.New("failed to commit ledger state")
	// ErrReverseTransferFailed accompanies ErrCommitFailed when the reversal of
	// the transfer did not go through either.
	ErrReverseTransferFailed = errors.New("reverse transfer failed")
	// ErrRollbackFailed accompanies ErrTransferFailed when a payout failed after
	// its state was committed and the previous state could not be written back.
	ErrRollbackFailed = errors.New("ledger rollback failed")
	// ErrInvariantViolation is returned by the invariant checks.
	ErrInvariantViolation = errors.New("ledger invariant violated")
)
