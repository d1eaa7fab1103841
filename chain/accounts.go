package chain

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/vitelabs/go-ledger/ledger"
)

type Account struct {
	ID      string
	Balance uint64
}

// Accounts is the balance state machine. It is not safe for concurrent use;
// State serializes access to it.
type Accounts struct {
	accounts map[string]*Account
}

func NewAccounts() *Accounts {
	return &Accounts{
		accounts: make(map[string]*Account),
	}
}

// CreateAccount never overwrites: an existing id keeps its balance.
func (a *Accounts) CreateAccount(id string, initialBalance uint64) error {
	if _, ok := a.accounts[id]; ok {
		return errors.Wrapf(ErrDuplicateAccount, "account %s", id)
	}
	a.accounts[id] = &Account{ID: id, Balance: initialBalance}
	return nil
}

func (a *Accounts) Transfer(from, to string, amount uint64) error {
	fromAccount, ok := a.accounts[from]
	if !ok {
		return errors.Wrapf(ErrAccountNotFound, "from account %s", from)
	}
	toAccount, ok := a.accounts[to]
	if !ok {
		return errors.Wrapf(ErrAccountNotFound, "to account %s", to)
	}
	if fromAccount.Balance < amount {
		return errors.Wrapf(ErrInsufficientBalance, "account %s has %d, needs %d", from, fromAccount.Balance, amount)
	}
	if fromAccount == toAccount {
		return nil
	}
	if toAccount.Balance > math.MaxUint64-amount {
		return errors.Wrapf(ErrBalanceOverflow, "crediting %d to account %s", amount, to)
	}

	fromAccount.Balance -= amount
	toAccount.Balance += amount
	return nil
}

func (a *Accounts) GetBalance(id string) (uint64, error) {
	account, ok := a.accounts[id]
	if !ok {
		return 0, errors.Wrapf(ErrAccountNotFound, "account %s", id)
	}
	return account.Balance, nil
}

// Apply executes one transaction against the accounts.
func (a *Accounts) Apply(tx ledger.Transaction) error {
	switch tx.Type() {
	case ledger.TxCreateAccount:
		return a.CreateAccount(tx.CreateAccount.AccountID, tx.CreateAccount.Balance)
	case ledger.TxTransfer:
		t := tx.Transfer
		return a.Transfer(t.FromAccount, t.ToAccount, t.Amount)
	}
	return ledger.ErrInvalidTransaction
}

func (a *Accounts) Len() int {
	return len(a.accounts)
}

// TotalSupply sums every balance.
func (a *Accounts) TotalSupply() *big.Int {
	total := new(big.Int)
	for _, account := range a.accounts {
		total.Add(total, new(big.Int).SetUint64(account.Balance))
	}
	return total
}
