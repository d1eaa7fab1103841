package common

import (
	"os"
	"os/user"
	"path/filepath"
)

const (
	DefaultListenAddr    = "127.0.0.1:7878"
	DefaultMinerInterval = 10 // seconds
	DefaultQueueFile     = "transactions.json"
	DefaultQueueDir      = "pending"
	DefaultLogLevel      = "info"
)

// DefaultDataDir is $HOME/.goledger
func DefaultDataDir() string {
	home := HomeDir()
	if home != "" {
		return filepath.Join(home, ".goledger")
	}
	return ""
}

func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
