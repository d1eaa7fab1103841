package node

import (
	"github.com/vitelabs/go-ledger/common"
	"github.com/vitelabs/go-ledger/config"
)

var DefaultNodeConfig = Config{
	Name:       "gledger",
	DataDir:    common.DefaultDataDir(),
	ListenAddr: common.DefaultListenAddr,
	Miner: config.Miner{
		Enabled:       true,
		MinerInterval: common.DefaultMinerInterval,
	},
	Pending: config.Pending{
		Backend:    config.BackendFile,
		FileName:   common.DefaultQueueFile,
		LevelDBDir: common.DefaultQueueDir,
	},
	Log: config.Log{
		Level: common.DefaultLogLevel,
		Dir:   "runlog",
	},
}
