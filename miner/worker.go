package miner

import (
	"fmt"
	"sync"

	"github.com/olebedev/emitter"
	"github.com/vitelabs/go-ledger/ledger"
	"github.com/vitelabs/go-ledger/pending"
	"go.uber.org/atomic"
)

// worker
type worker struct {
	chain   Chain
	sources []pending.Queue
	events  *emitter.Emitter

	// a tick that fires while another is mining waits here
	mu sync.Mutex

	mining *atomic.Bool
	mined  *atomic.Uint64
}

func newWorker(chain Chain, sources []pending.Queue, events *emitter.Emitter) *worker {
	return &worker{
		chain:   chain,
		sources: sources,
		events:  events,
		mining:  atomic.NewBool(false),
		mined:   atomic.NewUint64(0),
	}
}

func (self *worker) mine() (*Result, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	self.mining.Store(true)
	defer self.mining.Store(false)

	batch := self.drain()
	log.Info(fmt.Sprintf("Mining block with %d transactions", len(batch)))

	block, outcomes, err := self.chain.ApplyBatchAndAppend(batch)
	if err != nil {
		log.Crit("append mined block failed", "err", err)
		return nil, err
	}
	self.mined.Inc()

	result := &Result{Block: block, Outcomes: outcomes}
	log.Info(fmt.Sprintf("Block #%d has been mined", block.Index), "hash", block.Hash,
		"transactions", len(block.Transactions), "failed", result.Failed())
	self.events.Emit(TopicBlockMined, result)
	return result, nil
}

// drain collects every source in order. A source that fails keeps its
// records for the next tick and does not stop the others.
func (self *worker) drain() []ledger.Transaction {
	var batch []ledger.Transaction
	for i, source := range self.sources {
		txs, err := source.DrainAll()
		if err != nil {
			log.Error("drain pending source failed", "source", i, "err", err)
			continue
		}
		batch = append(batch, txs...)
	}
	return batch
}

// wait blocks until no tick is running.
func (self *worker) wait() {
	self.mu.Lock()
	self.mu.Unlock()
}
