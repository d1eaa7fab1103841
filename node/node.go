// Package node assembles the ledger, pending queues, miner and transport.
package node

import (
	"os"
	"sync"

	"github.com/inconshreveable/log15"
	"github.com/olebedev/emitter"
	"github.com/pkg/errors"
	"github.com/vitelabs/go-ledger/chain"
	"github.com/vitelabs/go-ledger/command"
	"github.com/vitelabs/go-ledger/common"
	"github.com/vitelabs/go-ledger/config"
	"github.com/vitelabs/go-ledger/ledger"
	"github.com/vitelabs/go-ledger/miner"
	"github.com/vitelabs/go-ledger/pending"
	"github.com/vitelabs/go-ledger/server"
)

var (
	log = log15.New("module", "gledger/node")
)

// Node owns one ledger and everything that feeds it.
type Node struct {
	config *Config

	state     *chain.State
	durable   pending.Queue
	local     *pending.MemQueue
	miner     *miner.Miner
	processor *command.Processor
	server    *server.Server

	running bool
	stop    chan struct{}
	lock    sync.RWMutex
}

func New(conf *Config) (*Node, error) {
	if !conf.Pending.Valid() {
		return nil, errors.Wrapf(ErrUnknownBackend, "backend %q", conf.Pending.Backend)
	}
	if conf.ListenAddr == "" {
		return nil, ErrEmptyListenAddr
	}
	return &Node{
		config: conf,
		stop:   make(chan struct{}),
	}, nil
}

func (node *Node) Start() error {
	node.lock.Lock()
	defer node.lock.Unlock()

	if node.running {
		return ErrNodeRunning
	}
	if err := node.openDataDir(); err != nil {
		return err
	}

	durable, err := node.openQueue()
	if err != nil {
		log.Error("open pending queue failed", "backend", node.config.Pending.Backend, "err", err)
		return err
	}

	node.durable = durable
	node.local = pending.NewMemQueue()
	node.state = chain.NewState()
	node.miner = miner.NewMiner(node.state, node.config.MinerInterval(), node.durable, node.local)
	node.processor = command.NewProcessor(node.durable, node.state)
	node.server = server.New(node.config.ListenAddr, node.processor)

	if err := node.server.Start(); err != nil {
		log.Error("start server failed", "err", err)
		node.durable.Close()
		return err
	}

	node.stop = make(chan struct{})
	node.watchBlocks(node.miner.Emitter().On(miner.TopicBlockMined), node.stop)

	node.miner.Init()
	if node.config.Miner.Enabled {
		node.miner.Start()
	}

	node.running = true
	log.Info("Node started", "listen", node.listenAddr(), "backend", node.config.Pending.Backend,
		"miner", node.config.Miner.Enabled, "interval", node.config.MinerInterval())
	return nil
}

func (node *Node) Stop() error {
	node.lock.Lock()
	defer node.lock.Unlock()

	if !node.running {
		return ErrNodeStopped
	}
	// unblock node.Wait
	defer close(node.stop)
	node.running = false

	log.Info("Begin Stop Server... ")
	if err := node.server.Stop(); err != nil {
		log.Error("Node stop server error", "err", err)
	}

	log.Info("Begin Stop Miner... ")
	node.miner.Stop()
	node.miner.Emitter().Off(miner.TopicBlockMined)

	if err := node.durable.Close(); err != nil {
		log.Error("Node close pending queue error", "err", err)
	}
	log.Info("Node stopped", "height", node.state.Height())
	return nil
}

// watchBlocks logs a ledger summary after every mined block.
func (node *Node) watchBlocks(events <-chan emitter.Event, stop <-chan struct{}) {
	state := node.state
	common.Go(func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				result := ev.Args[0].(*miner.Result)
				log.Info("Ledger status", "height", result.Block.Index+1, "accounts", state.AccountCount(),
					"supply", state.TotalSupply().String(), "failed", result.Failed())
			case <-stop:
				return
			}
		}
	})
}

func (node *Node) Wait() {
	node.lock.RLock()
	if !node.running {
		node.lock.RUnlock()
		return
	}
	stop := node.stop
	node.lock.RUnlock()
	<-stop
}

// AddTransaction feeds the in-process pending set. It is mined after the
// durable queue's contents on the next tick.
func (node *Node) AddTransaction(tx ledger.Transaction) error {
	node.lock.RLock()
	defer node.lock.RUnlock()

	if !node.running {
		return ErrNodeStopped
	}
	return node.local.Append(tx)
}

func (node *Node) Config() *Config {
	return node.config
}

func (node *Node) State() *chain.State {
	node.lock.RLock()
	defer node.lock.RUnlock()
	return node.state
}

func (node *Node) Miner() *miner.Miner {
	node.lock.RLock()
	defer node.lock.RUnlock()
	return node.miner
}

func (node *Node) Processor() *command.Processor {
	node.lock.RLock()
	defer node.lock.RUnlock()
	return node.processor
}

// ListenAddr is the bound server address, or "" before Start.
func (node *Node) ListenAddr() string {
	node.lock.RLock()
	defer node.lock.RUnlock()
	return node.listenAddr()
}

func (node *Node) listenAddr() string {
	if node.server == nil {
		return ""
	}
	addr := node.server.Addr()
	if addr == nil {
		return ""
	}
	return addr.String()
}

func (node *Node) openDataDir() error {
	if node.config.DataDir == "" {
		return nil
	}
	if err := os.MkdirAll(node.config.DataDir, 0700); err != nil {
		return errors.Wrapf(err, "open data dir %s", node.config.DataDir)
	}
	log.Info("Open DataDir", "dir", node.config.DataDir)
	return nil
}

func (node *Node) openQueue() (pending.Queue, error) {
	switch node.config.Pending.Backend {
	case config.BackendFile:
		return pending.NewFileLog(node.config.QueueFile())
	case config.BackendLevelDB:
		return pending.NewLevelDBQueue(node.config.LevelDBDir())
	case config.BackendMemory:
		return pending.NewMemQueue(), nil
	}
	return nil, ErrUnknownBackend
}
