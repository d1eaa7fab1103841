package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/vitelabs/go-ledger/chain"
	"github.com/vitelabs/go-ledger/ledger"
	"github.com/vitelabs/go-ledger/pending"
)

const (
	CmdCreateAccount = "create-account"
	CmdTransfer      = "transfer"
	CmdBalance       = "balance"
)

const (
	RespInvalidCommand  = "Invalid command."
	RespInvalidBalance  = "Invalid balance amount."
	RespInvalidAmount   = "Invalid transfer amount."
	RespAccountNotFound = "Account not found."
	RespQueueFailed     = "Failed to queue transaction."
)

// BalanceReader is the read side of the ledger state.
type BalanceReader interface {
	ReadBalance(id string) (uint64, error)
}

// Processor turns one client command into a response line. Mutating commands
// are only queued; their effect shows after the next mined block.
type Processor struct {
	queue  pending.Queue
	ledger BalanceReader
	log    log15.Logger
}

func NewProcessor(queue pending.Queue, reader BalanceReader) *Processor {
	return &Processor{
		queue:  queue,
		ledger: reader,
		log:    log15.New("module", "command"),
	}
}

func (p *Processor) Process(command string) string {
	args := strings.Fields(command)
	if len(args) == 0 {
		return RespInvalidCommand
	}

	switch {
	case args[0] == CmdCreateAccount && len(args) == 3:
		return p.createAccount(args[1], args[2])
	case args[0] == CmdTransfer && len(args) == 4:
		return p.transfer(args[1], args[2], args[3])
	case args[0] == CmdBalance && len(args) == 2:
		return p.balance(args[1])
	}
	return RespInvalidCommand
}

func (p *Processor) createAccount(id, balanceArg string) string {
	balance, err := strconv.ParseUint(balanceArg, 10, 64)
	if err != nil {
		return RespInvalidBalance
	}
	if err := p.enqueue(ledger.NewCreateAccount(id, balance)); err != nil {
		return RespQueueFailed
	}
	return fmt.Sprintf("Account %s with balance %d added to mempool", id, balance)
}

func (p *Processor) transfer(from, to, amountArg string) string {
	amount, err := strconv.ParseUint(amountArg, 10, 64)
	if err != nil {
		return RespInvalidAmount
	}
	if err := p.enqueue(ledger.NewTransfer(from, to, amount)); err != nil {
		return RespQueueFailed
	}
	return fmt.Sprintf("Transaction %s with balance %d added to mempool", from, amount)
}

func (p *Processor) balance(id string) string {
	balance, err := p.ledger.ReadBalance(id)
	if errors.Cause(err) == chain.ErrAccountNotFound {
		return RespAccountNotFound
	}
	if err != nil {
		p.log.Error("read balance failed", "account", id, "err", err)
		return RespAccountNotFound
	}
	return fmt.Sprintf("Balance for %s: %d", id, balance)
}

func (p *Processor) enqueue(tx ledger.Transaction) error {
	if err := p.queue.Append(tx); err != nil {
		p.log.Error("queue transaction failed", "tx", tx, "err", err)
		return err
	}
	p.log.Debug("transaction queued", "tx", tx)
	return nil
}
