package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/vitelabs/go-ledger/cmd/params"
	"github.com/vitelabs/go-ledger/cmd/utils"
	"github.com/vitelabs/go-ledger/common"
	"gopkg.in/urfave/cli.v1"
)

const historyFile = ".ledger_client_history"

var (
	app = cli.NewApp()

	timeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "Per-command network timeout",
		Value: 30 * time.Second,
	}

	okColor   = color.New(color.FgGreen).SprintFunc()
	warnColor = color.New(color.FgYellow).SprintFunc()
	errColor  = color.New(color.FgRed).SprintFunc()
)

func init() {
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.Version
	app.Usage = "interactive client for a gledger node"
	app.Flags = []cli.Flag{
		utils.ServerAddrFlag,
		timeoutFlag,
	}
	app.Action = action
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errColor(err))
		os.Exit(1)
	}
}

func action(ctx *cli.Context) error {
	addr := ctx.String(utils.ServerAddrFlag.Name)
	c, err := dial(addr, ctx.Duration(timeoutFlag.Name))
	if err != nil {
		return err
	}
	defer c.Close()
	fmt.Println(okColor("Connected to " + addr))

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := filepath.Join(common.HomeDir(), historyFile)
	if f, err := os.Open(history); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if isExit(input) {
			return nil
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		resp, err := c.Send(input)
		if err != nil {
			return err
		}
		fmt.Println(colorize(resp))
	}
}

func colorize(resp string) string {
	switch {
	case strings.HasPrefix(resp, "Invalid"), strings.HasPrefix(resp, "Failed"):
		return errColor(resp)
	case resp == "Account not found.":
		return warnColor(resp)
	}
	return okColor(resp)
}
