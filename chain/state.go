package chain

import (
	"math/big"
	"sync"

	"github.com/inconshreveable/log15"
	"github.com/vitelabs/go-ledger/ledger"
)

// State owns the accounts and the chain behind one lock. Callers only get
// transactional entry points, never the lock itself.
type State struct {
	mu sync.Mutex

	accounts *Accounts
	chain    *Chain

	log log15.Logger
}

func NewState() *State {
	return &State{
		accounts: NewAccounts(),
		chain:    NewChain(),
		log:      log15.New("module", "chain"),
	}
}

// ApplyBatchAndAppend appends a block recording the whole batch, then applies
// every transaction in order. A failed transaction is reported in its Outcome
// and neither aborts the batch nor rolls back earlier ones. The returned error
// is only ever ErrChainIntegrity, in which case nothing was applied.
func (s *State) ApplyBatchAndAppend(batch []ledger.Transaction) (*ledger.Block, []Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head := s.chain.Head()
	block := ledger.NewBlock(head.Index+1, batch, head.Hash)
	if err := s.chain.Append(block); err != nil {
		return nil, nil, err
	}

	outcomes := make([]Outcome, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		outcome := newOutcome(tx, s.accounts.Apply(tx))
		s.logOutcome(block.Index, outcome)
		outcomes = append(outcomes, outcome)
	}
	return block, outcomes, nil
}

func (s *State) logOutcome(index uint64, o Outcome) {
	if !o.Succeeded() {
		s.log.Warn("transaction failed", "block", index, "tx", o.Tx, "status", o.Status, "err", o.Err)
		return
	}
	switch o.Tx.Type() {
	case ledger.TxCreateAccount:
		s.log.Info("Creating account", "block", index, "account", o.Tx.CreateAccount.AccountID, "balance", o.Tx.CreateAccount.Balance)
	case ledger.TxTransfer:
		t := o.Tx.Transfer
		s.log.Info("Transferring", "block", index, "amount", t.Amount, "from", t.FromAccount, "to", t.ToAccount)
	}
}

func (s *State) ReadBalance(id string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.GetBalance(id)
}

func (s *State) Head() *ledger.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.Head()
}

func (s *State) Height() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.Len()
}

func (s *State) Blocks() []*ledger.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.Blocks()
}

func (s *State) AccountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.Len()
}

func (s *State) TotalSupply() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.TotalSupply()
}
