package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/vitelabs/go-ledger/cmd/nodemanager"
	"github.com/vitelabs/go-ledger/cmd/params"
	"github.com/vitelabs/go-ledger/cmd/utils"
	"gopkg.in/urfave/cli.v1"
)

// gledger runs a single ledger node behind a line-oriented TCP command server.

var (
	log = log15.New("module", "gledger/main")

	app = cli.NewApp()

	//config
	configFlags = []cli.Flag{
		utils.ConfigFileFlag,
	}
	//general
	generalFlags = []cli.Flag{
		utils.DataDirFlag,
		utils.ListenAddrFlag,
	}

	//Miner
	minerFlags = []cli.Flag{
		utils.MinerFlag,
		utils.MinerIntervalFlag,
	}

	//Pending
	pendingFlags = []cli.Flag{
		utils.PendingBackendFlag,
	}

	//Log
	logFlags = []cli.Flag{
		utils.LogLvlFlag,
	}

	versionCommand = cli.Command{
		Action:    versionAction,
		Name:      "version",
		Usage:     "Print version numbers",
		ArgsUsage: " ",
		Category:  "MISCELLANEOUS COMMANDS",
	}
)

func init() {
	app.Name = filepath.Base(os.Args[0])
	app.HideVersion = false
	app.Version = params.Version
	app.Compiled = time.Now()
	app.Usage = "single-node ledger daemon"

	app.Commands = []cli.Command{
		versionCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = utils.MergeFlags(configFlags, generalFlags, minerFlags, pendingFlags, logFlags)

	app.Action = action
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func action(ctx *cli.Context) error {

	//Make sure No subCommands were entered,Only the flags
	if args := ctx.Args(); len(args) > 0 {
		return fmt.Errorf("invalid command: %q", args[0])
	}

	nodeManager, err := nodemanager.NewDefaultNodeManager(ctx, nodemanager.DefaultNodeMaker{})
	if err != nil {
		return fmt.Errorf("new node error, %+v", err)
	}

	log.Info("gledger starting", "version", params.Version)
	return nodeManager.Start()
}

func versionAction(ctx *cli.Context) error {
	fmt.Println("gledger")
	fmt.Println("Version:", params.Version)
	fmt.Println("Architecture:", runtime.GOARCH)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("Operating System:", runtime.GOOS)
	return nil
}
