// Package miner closes the pending batch into a new block on every tick.
package miner

import (
	"time"

	"github.com/inconshreveable/log15"
	"github.com/olebedev/emitter"
	"github.com/robfig/cron"
	"github.com/vitelabs/go-ledger/chain"
	"github.com/vitelabs/go-ledger/common"
	"github.com/vitelabs/go-ledger/ledger"
	"github.com/vitelabs/go-ledger/pending"
)

var log = log15.New("module", "miner")

// TopicBlockMined is emitted with the *Result of every appended block.
const TopicBlockMined = "miner.block"

// Chain wraps the ledger method required for mining.
type Chain interface {
	ApplyBatchAndAppend(batch []ledger.Transaction) (*ledger.Block, []chain.Outcome, error)
}

// Result describes one mined block.
type Result struct {
	Block    *ledger.Block
	Outcomes []chain.Outcome
}

func (r *Result) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			n++
		}
	}
	return n
}

type Miner struct {
	common.LifecycleStatus
	interval time.Duration
	worker   *worker
	cron     *cron.Cron
	events   *emitter.Emitter
}

// NewMiner mines every interval (rounded up to whole seconds). Each tick
// drains sources in order and concatenates them into the batch.
func NewMiner(chain Chain, interval time.Duration, sources ...pending.Queue) *Miner {
	events := emitter.New(16)
	return &Miner{
		interval: interval,
		worker:   newWorker(chain, sources, events),
		events:   events,
	}
}

func (self *Miner) Init() {
	self.PreInit()
	defer self.PostInit()
}

func (self *Miner) Start() {
	if !self.PreStart() {
		return
	}
	defer self.PostStart()

	self.cron = cron.New()
	self.cron.Schedule(cron.Every(self.interval), cron.FuncJob(self.tick))
	self.cron.Start()
	log.Info("miner started", "interval", self.interval)
}

// Stop halts the schedule and waits for an in-flight tick to finish.
func (self *Miner) Stop() {
	if !self.PreStop() {
		return
	}
	defer self.PostStop()

	self.cron.Stop()
	self.worker.wait()
	log.Info("miner stopped", "mined", self.MinedBlocks())
}

func (self *Miner) tick() {
	if self.Stopped() {
		return
	}
	self.worker.mine()
}

// MineOnce runs one mining cycle synchronously.
func (self *Miner) MineOnce() (*Result, error) {
	return self.worker.mine()
}

func (self *Miner) Emitter() *emitter.Emitter {
	return self.events
}

func (self *Miner) Mining() bool {
	return self.worker.mining.Load()
}

func (self *Miner) MinedBlocks() uint64 {
	return self.worker.mined.Load()
}
