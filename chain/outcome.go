package chain

import (
	"github.com/pkg/errors"
	"github.com/vitelabs/go-ledger/ledger"
)

type OutcomeStatus uint8

const (
	Succeeded OutcomeStatus = iota
	Duplicate
	NotFound
	Insufficient
	Overflow
	Invalid
)

func (s OutcomeStatus) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Duplicate:
		return "duplicate"
	case NotFound:
		return "not-found"
	case Insufficient:
		return "insufficient"
	case Overflow:
		return "overflow"
	}
	return "invalid"
}

// Outcome is the result of applying one transaction of a batch.
type Outcome struct {
	Tx     ledger.Transaction
	Status OutcomeStatus
	Err    error
}

func (o Outcome) Succeeded() bool {
	return o.Status == Succeeded
}

func newOutcome(tx ledger.Transaction, err error) Outcome {
	return Outcome{Tx: tx, Status: statusOf(err), Err: err}
}

func statusOf(err error) OutcomeStatus {
	if err == nil {
		return Succeeded
	}
	switch errors.Cause(err) {
	case ErrDuplicateAccount:
		return Duplicate
	case ErrAccountNotFound:
		return NotFound
	case ErrInsufficientBalance:
		return Insufficient
	case ErrBalanceOverflow:
		return Overflow
	}
	return Invalid
}
