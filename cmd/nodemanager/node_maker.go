package nodemanager

import (
	"encoding/json"
	"io/ioutil"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/vitelabs/go-ledger/cmd/utils"
	"github.com/vitelabs/go-ledger/common"
	"github.com/vitelabs/go-ledger/config"
	"github.com/vitelabs/go-ledger/node"
	"gopkg.in/urfave/cli.v1"
)

type NodeMaker interface {

	//create Node
	MakeNode(ctx *cli.Context) (*node.Node, error)

	//create NodeConfig
	MakeNodeConfig(ctx *cli.Context) (*node.Config, error)
}

type DefaultNodeMaker struct {
}

func (maker DefaultNodeMaker) MakeNode(ctx *cli.Context) (*node.Node, error) {
	nodeConfig, err := maker.MakeNodeConfig(ctx)
	if err != nil {
		return nil, err
	}

	n, err := node.New(nodeConfig)
	if err != nil {
		log.Error("Failed to create the node", "err", err)
		return nil, err
	}
	return n, nil
}

func (maker DefaultNodeMaker) MakeNodeConfig(ctx *cli.Context) (*node.Config, error) {
	cfg := node.DefaultNodeConfig

	// 1: Load config file.
	if err := loadConfigFile(ctx.GlobalString(utils.ConfigFileFlag.Name), &cfg); err != nil {
		return nil, err
	}

	// 2: Apply flags, Overwrite the configuration file configuration
	mappingNodeConfig(ctx, &cfg)

	// 3: Config log to terminal and file
	setupLog(&cfg)

	return &cfg, nil
}

func loadConfigFile(file string, cfg *node.Config) error {
	if file == "" {
		return nil
	}
	jsonConf, err := ioutil.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "read config file %s", file)
	}
	if err := json.Unmarshal(jsonConf, cfg); err != nil {
		return errors.Wrapf(err, "unmarshal config file %s", file)
	}
	return nil
}

// mappingNodeConfig applies node-related command line flags to the config.
func mappingNodeConfig(ctx *cli.Context, cfg *node.Config) {

	//Global Config
	if dataDir := ctx.GlobalString(utils.DataDirFlag.Name); len(dataDir) > 0 {
		cfg.DataDir = dataDir
	}

	//Server Config
	if ctx.GlobalIsSet(utils.ListenAddrFlag.Name) {
		cfg.ListenAddr = ctx.GlobalString(utils.ListenAddrFlag.Name)
	}

	//Miner Config
	if ctx.GlobalIsSet(utils.MinerFlag.Name) {
		cfg.Miner.Enabled = ctx.GlobalBoolT(utils.MinerFlag.Name)
	}
	cfg.Miner = config.MergeMinerConfig(cfg.Miner, &config.Miner{
		MinerInterval: ctx.GlobalInt(utils.MinerIntervalFlag.Name),
	})

	//Pending Config
	if ctx.GlobalIsSet(utils.PendingBackendFlag.Name) {
		cfg.Pending.Backend = ctx.GlobalString(utils.PendingBackendFlag.Name)
	}

	//Log Config
	if ctx.GlobalIsSet(utils.LogLvlFlag.Name) {
		cfg.Log.Level = ctx.GlobalString(utils.LogLvlFlag.Name)
	}
}

func setupLog(cfg *node.Config) {
	handlers := []log15.Handler{common.TerminalHandler(cfg.Log.Level)}
	if cfg.DataDir != "" {
		handlers = append(handlers, common.LogHandler(cfg.RunLogDir(), "", "gledger.log", cfg.Log.Level))
	}
	log15.Root().SetHandler(log15.MultiHandler(handlers...))
}
