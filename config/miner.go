package config

import "time"

type Miner struct {
	Enabled       bool `json:"Enabled"`
	MinerInterval int  `json:"MinerInterval"` // seconds
}

// Interval returns the tick period.
func (m Miner) Interval() time.Duration {
	return time.Duration(m.MinerInterval) * time.Second
}

func MergeMinerConfig(base Miner, cfg *Miner) Miner {
	if cfg == nil {
		return base
	}
	if cfg.Enabled {
		base.Enabled = cfg.Enabled
	}
	if cfg.MinerInterval > 0 {
		base.MinerInterval = cfg.MinerInterval
	}
	return base
}
