package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack"
)

func TestTransactionType(t *testing.T) {
	assert.Equal(t, TxCreateAccount, NewCreateAccount("alice", 100).Type())
	assert.Equal(t, TxTransfer, NewTransfer("alice", "bob", 1).Type())
	assert.Equal(t, TxUnknown, Transaction{}.Type())

	both := NewCreateAccount("alice", 1)
	both.Transfer = &Transfer{FromAccount: "a", ToAccount: "b"}
	assert.Equal(t, TxUnknown, both.Type())
	assert.Equal(t, ErrInvalidTransaction, both.Validate())
	assert.NoError(t, NewTransfer("a", "b", 0).Validate())
}

func TestTransactionJSONRecord(t *testing.T) {
	data, err := json.Marshal(NewCreateAccount("alice", 100))
	require.NoError(t, err)
	assert.Equal(t, `{"CreateAccount":{"account_id":"alice","balance":100}}`, string(data))

	data, err = json.Marshal(NewTransfer("alice", "bob", 40))
	require.NoError(t, err)
	assert.Equal(t, `{"Transfer":{"from_account":"alice","to_account":"bob","amount":40}}`, string(data))
}

func TestTransactionDecodeIgnoresUnknownFields(t *testing.T) {
	var tx Transaction
	err := json.Unmarshal([]byte(`{"Transfer":{"from_account":"a","to_account":"b","amount":7,"memo":"x"},"version":2}`), &tx)
	require.NoError(t, err)
	assert.Equal(t, NewTransfer("a", "b", 7), tx)
}

func TestTransactionDecodeWrappedForm(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"transaction_type":{"CreateAccount":{"account_id":"alice","balance":100}}}`), &tx))
	assert.Equal(t, NewCreateAccount("alice", 100), tx)

	tx = Transaction{}
	require.NoError(t, json.Unmarshal([]byte(`{"transaction_type":{"Transfer":{"from_account":"alice","to_account":"bob","amount":40}}}`), &tx))
	assert.Equal(t, NewTransfer("alice", "bob", 40), tx)

	// re-encoding uses the flat form
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Equal(t, `{"Transfer":{"from_account":"alice","to_account":"bob","amount":40}}`, string(data))

	tx = Transaction{}
	require.NoError(t, json.Unmarshal([]byte(`{"transaction_type":{}}`), &tx))
	assert.Equal(t, ErrInvalidTransaction, tx.Validate())
}

func TestTransactionMsgpack(t *testing.T) {
	tx := NewTransfer("alice", "bob", 40)
	data, err := msgpack.Marshal(&tx)
	require.NoError(t, err)

	var decoded Transaction
	require.NoError(t, msgpack.Unmarshal(data, &decoded))
	assert.Equal(t, tx, decoded)
	assert.Nil(t, decoded.CreateAccount)
}
