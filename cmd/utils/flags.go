package utils

import (
	"github.com/vitelabs/go-ledger/common"
	"gopkg.in/urfave/cli.v1"
)

var (
	// Config settings
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Json configuration file",
	}

	// General settings
	DataDirFlag = DirectoryFlag{
		Name:  "datadir",
		Usage: "use for store all files",
	}

	// Server settings
	ListenAddrFlag = cli.StringFlag{
		Name:  "listen", //mapping:ListenAddr
		Usage: "Command server listening address (host:port)",
	}

	//Miner
	MinerFlag = cli.BoolTFlag{
		Name:  "miner",
		Usage: "Enable the Miner",
	}

	MinerIntervalFlag = cli.IntFlag{
		Name:  "minerinterval",
		Usage: "Miner Interval(unit: second)",
	}

	//Pending
	PendingBackendFlag = cli.StringFlag{
		Name:  "pending", //mapping:Pending.Backend
		Usage: "Pending transaction store (file,leveldb,memory)",
	}

	//Log Lvl
	LogLvlFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level (info,eror,warn,dbug)",
	}

	// Client settings
	ServerAddrFlag = cli.StringFlag{
		Name:  "server",
		Usage: "Address of the gledger command server",
		Value: common.DefaultListenAddr,
	}
)

// merge flags
func MergeFlags(flagsSet ...[]cli.Flag) []cli.Flag {

	mergeFlags := []cli.Flag{}

	for _, flags := range flagsSet {

		mergeFlags = append(mergeFlags, flags...)
	}
	return mergeFlags
}
