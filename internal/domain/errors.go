package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for operations against empty structures.
var (
	ErrEmptyLedger = errors.New("history is empty, nothing to undo")
	ErrEmptyQueue  = errors.New("customer queue is empty")
)

// ValidationError reports a rejected input field. Nothing is mutated
// before validation passes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an id unknown to the active set.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InvalidStateError reports an illegal lifecycle transition, e.g.
// selling an already-sold phone or undoing a non-reversible entry.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string { return e.Reason }

// InconsistentStateError reports a ledger entry whose referenced
// record no longer exists when the entry is being reversed.
type InconsistentStateError struct {
	Reason string
}

func (e *InconsistentStateError) Error() string { return e.Reason }
