package pending

import (
	"github.com/inconshreveable/log15"
	"github.com/vitelabs/go-ledger/ledger"
)

var log = log15.New("module", "pending")

// Queue holds transactions accepted since the last mining tick. Append and
// DrainAll are safe for concurrent use and are independent of the ledger lock.
type Queue interface {
	// Append durably records one transaction.
	Append(tx ledger.Transaction) error
	// DrainAll returns every queued transaction in append order and empties
	// the queue. On error the queue keeps its contents.
	DrainAll() ([]ledger.Transaction, error)
	Close() error
}
