package pending

import (
	"sync"

	"github.com/vitelabs/go-ledger/ledger"
)

// MemQueue is a volatile Queue.
type MemQueue struct {
	mu  sync.Mutex
	txs []ledger.Transaction
}

func NewMemQueue() *MemQueue {
	return &MemQueue{}
}

func (q *MemQueue) Append(tx ledger.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.txs = append(q.txs, tx.Copy())
	return nil
}

func (q *MemQueue) DrainAll() ([]ledger.Transaction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	txs := q.txs
	q.txs = nil
	return txs, nil
}

func (q *MemQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.txs)
}

func (q *MemQueue) Close() error {
	return nil
}
