package node

import (
	"path/filepath"
	"time"

	"github.com/vitelabs/go-ledger/common"
	"github.com/vitelabs/go-ledger/config"
)

type Config struct {
	Name       string `json:"ConfigName"`
	DataDir    string `json:"DataDir"`
	ListenAddr string `json:"ListenAddr"`

	Miner   config.Miner   `json:"Miner"`
	Pending config.Pending `json:"Pending"`
	Log     config.Log     `json:"Log"`
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.DataDir == "" {
		return p
	}
	return filepath.Join(c.DataDir, p)
}

// QueueFile is the JSON-lines pending log used by the file backend.
func (c *Config) QueueFile() string {
	name := c.Pending.FileName
	if name == "" {
		name = common.DefaultQueueFile
	}
	return c.resolve(name)
}

func (c *Config) LevelDBDir() string {
	dir := c.Pending.LevelDBDir
	if dir == "" {
		dir = common.DefaultQueueDir
	}
	return c.resolve(dir)
}

// RunLogDir holds the rotated node log.
func (c *Config) RunLogDir() string {
	dir := c.Log.Dir
	if dir == "" {
		dir = "runlog"
	}
	return c.resolve(dir)
}

func (c *Config) MinerInterval() time.Duration {
	if c.Miner.MinerInterval <= 0 {
		return common.DefaultMinerInterval * time.Second
	}
	return c.Miner.Interval()
}
