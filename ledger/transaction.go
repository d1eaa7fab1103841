package ledger

import (
	"encoding/json"
	"fmt"
)

type TxType uint8

const (
	TxUnknown TxType = iota
	TxCreateAccount
	TxTransfer
)

func (t TxType) String() string {
	switch t {
	case TxCreateAccount:
		return "CreateAccount"
	case TxTransfer:
		return "Transfer"
	}
	return "Unknown"
}

type CreateAccount struct {
	AccountID string `json:"account_id" msgpack:"account_id"`
	Balance   uint64 `json:"balance" msgpack:"balance"`
}

type Transfer struct {
	FromAccount string `json:"from_account" msgpack:"from_account"`
	ToAccount   string `json:"to_account" msgpack:"to_account"`
	Amount      uint64 `json:"amount" msgpack:"amount"`
}

// Transaction is a tagged union: exactly one variant is set. Encoded it is
// keyed by the variant name, e.g. {"Transfer":{"from_account":...}}, so
// records stay self-describing and unknown fields are ignored on decode.
// Decoding also accepts the older form that nests the variant under
// "transaction_type".
type Transaction struct {
	CreateAccount *CreateAccount `json:"CreateAccount,omitempty" msgpack:"CreateAccount,omitempty"`
	Transfer      *Transfer      `json:"Transfer,omitempty" msgpack:"Transfer,omitempty"`
}

type plainTransaction Transaction

func (tx *Transaction) UnmarshalJSON(data []byte) error {
	var rec struct {
		plainTransaction
		Wrapped *plainTransaction `json:"transaction_type"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*tx = Transaction(rec.plainTransaction)
	if tx.CreateAccount == nil && tx.Transfer == nil && rec.Wrapped != nil {
		*tx = Transaction(*rec.Wrapped)
	}
	return nil
}

func NewCreateAccount(accountID string, balance uint64) Transaction {
	return Transaction{CreateAccount: &CreateAccount{AccountID: accountID, Balance: balance}}
}

func NewTransfer(from, to string, amount uint64) Transaction {
	return Transaction{Transfer: &Transfer{FromAccount: from, ToAccount: to, Amount: amount}}
}

// Copy returns a transaction that shares no memory with tx.
func (tx Transaction) Copy() Transaction {
	var cpy Transaction
	if tx.CreateAccount != nil {
		c := *tx.CreateAccount
		cpy.CreateAccount = &c
	}
	if tx.Transfer != nil {
		t := *tx.Transfer
		cpy.Transfer = &t
	}
	return cpy
}

func (tx Transaction) Type() TxType {
	switch {
	case tx.CreateAccount != nil && tx.Transfer == nil:
		return TxCreateAccount
	case tx.Transfer != nil && tx.CreateAccount == nil:
		return TxTransfer
	}
	return TxUnknown
}

func (tx Transaction) Validate() error {
	if tx.Type() == TxUnknown {
		return ErrInvalidTransaction
	}
	return nil
}

func (tx Transaction) String() string {
	switch tx.Type() {
	case TxCreateAccount:
		return fmt.Sprintf("CreateAccount{%s, %d}", tx.CreateAccount.AccountID, tx.CreateAccount.Balance)
	case TxTransfer:
		t := tx.Transfer
		return fmt.Sprintf("Transfer{%s -> %s, %d}", t.FromAccount, t.ToAccount, t.Amount)
	}
	return "Invalid{}"
}
