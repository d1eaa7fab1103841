package chain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitelabs/go-ledger/ledger"
)

func TestCreateAccount(t *testing.T) {
	a := NewAccounts()
	require.NoError(t, a.CreateAccount("alice", 100))

	balance, err := a.GetBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)

	err = a.CreateAccount("alice", 5)
	assert.Equal(t, ErrDuplicateAccount, errors.Cause(err))
	balance, _ = a.GetBalance("alice")
	assert.Equal(t, uint64(100), balance)
	assert.Equal(t, 1, a.Len())
}

func TestGetBalanceNotFound(t *testing.T) {
	_, err := NewAccounts().GetBalance("nobody")
	assert.Equal(t, ErrAccountNotFound, errors.Cause(err))
}

func TestTransfer(t *testing.T) {
	a := NewAccounts()
	require.NoError(t, a.CreateAccount("alice", 100))
	require.NoError(t, a.CreateAccount("bob", 0))

	require.NoError(t, a.Transfer("alice", "bob", 40))
	assertBalance(t, a, "alice", 60)
	assertBalance(t, a, "bob", 40)

	require.NoError(t, a.Transfer("alice", "bob", 60))
	assertBalance(t, a, "alice", 0)
	assertBalance(t, a, "bob", 100)
}

func TestTransferInsufficient(t *testing.T) {
	a := NewAccounts()
	require.NoError(t, a.CreateAccount("alice", 60))
	require.NoError(t, a.CreateAccount("bob", 40))

	err := a.Transfer("alice", "bob", 1000)
	assert.Equal(t, ErrInsufficientBalance, errors.Cause(err))
	assertBalance(t, a, "alice", 60)
	assertBalance(t, a, "bob", 40)
}

func TestTransferUnknownAccounts(t *testing.T) {
	a := NewAccounts()
	require.NoError(t, a.CreateAccount("alice", 60))

	err := a.Transfer("alice", "ghost", 10)
	assert.Equal(t, ErrAccountNotFound, errors.Cause(err))
	assertBalance(t, a, "alice", 60)
	_, err = a.GetBalance("ghost")
	assert.Error(t, err, "transfer must not create the receiver")

	err = a.Transfer("ghost", "alice", 10)
	assert.Equal(t, ErrAccountNotFound, errors.Cause(err))
	assertBalance(t, a, "alice", 60)
}

func TestTransferToSelf(t *testing.T) {
	a := NewAccounts()
	require.NoError(t, a.CreateAccount("alice", 60))

	require.NoError(t, a.Transfer("alice", "alice", 60))
	assertBalance(t, a, "alice", 60)

	err := a.Transfer("alice", "alice", 61)
	assert.Equal(t, ErrInsufficientBalance, errors.Cause(err))
	assertBalance(t, a, "alice", 60)
}

func TestTransferOverflow(t *testing.T) {
	a := NewAccounts()
	require.NoError(t, a.CreateAccount("whale", math.MaxUint64))
	require.NoError(t, a.CreateAccount("alice", 1))

	err := a.Transfer("alice", "whale", 1)
	assert.Equal(t, ErrBalanceOverflow, errors.Cause(err))
	assertBalance(t, a, "alice", 1)
	assertBalance(t, a, "whale", math.MaxUint64)
}

func TestApply(t *testing.T) {
	a := NewAccounts()
	assert.NoError(t, a.Apply(ledger.NewCreateAccount("alice", 10)))
	assert.NoError(t, a.Apply(ledger.NewCreateAccount("bob", 0)))
	assert.NoError(t, a.Apply(ledger.NewTransfer("alice", "bob", 10)))
	assert.Equal(t, ledger.ErrInvalidTransaction, a.Apply(ledger.Transaction{}))
	assertBalance(t, a, "bob", 10)
}

func TestTotalSupplyConserved(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ids := []string{"a", "b", "c", "d", "e"}

	a := NewAccounts()
	for _, id := range ids {
		require.NoError(t, a.CreateAccount(id, uint64(r.Intn(1000))))
	}
	supply := a.TotalSupply()

	for i := 0; i < 2000; i++ {
		from := ids[r.Intn(len(ids))]
		to := ids[r.Intn(len(ids))]
		if r.Intn(10) == 0 {
			to = "missing"
		}
		amount := uint64(r.Intn(600))

		fromBefore, _ := a.GetBalance(from)
		toBefore, _ := a.GetBalance(to)
		err := a.Transfer(from, to, amount)
		fromAfter, _ := a.GetBalance(from)
		toAfter, _ := a.GetBalance(to)

		if err != nil || from == to {
			assert.Equal(t, fromBefore, fromAfter)
			assert.Equal(t, toBefore, toAfter)
		} else {
			assert.Equal(t, fromBefore-amount, fromAfter)
			assert.Equal(t, toBefore+amount, toAfter)
		}
		assert.Equal(t, 0, supply.Cmp(a.TotalSupply()))
	}
}

func assertBalance(t *testing.T, a *Accounts, id string, want uint64) {
	t.Helper()
	balance, err := a.GetBalance(id)
	require.NoError(t, err)
	assert.Equal(t, want, balance, "balance of %s", id)
}
