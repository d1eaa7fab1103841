package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesisBlock(t *testing.T) {
	g := GenesisBlock()
	assert.Equal(t, uint64(0), g.Index)
	assert.Equal(t, GenesisPrevHash, g.PrevHash)
	assert.Empty(t, g.Transactions)
	assert.True(t, g.IsGenesis())
	assert.True(t, g.VerifyHash())
	assert.Len(t, g.Hash, 64)

	// fixed timestamp, so genesis is identical across calls
	assert.Equal(t, g.Hash, GenesisBlock().Hash)
}

func TestNewBlock(t *testing.T) {
	before := time.Now().Unix()
	txs := []Transaction{NewCreateAccount("alice", 100), NewTransfer("alice", "bob", 1)}
	b := NewBlock(1, txs, GenesisBlock().Hash)
	after := time.Now().Unix()

	assert.True(t, b.Timestamp >= before && b.Timestamp <= after)
	assert.Equal(t, txs, b.Transactions)
	assert.Equal(t, ComputeHash(b.Index, b.Timestamp, txs, b.PrevHash), b.Hash)

	// the block owns its own copy of the batch
	txs[0].CreateAccount.AccountID = "mallory"
	assert.Equal(t, "alice", b.Transactions[0].CreateAccount.AccountID)
	assert.True(t, b.VerifyHash())
}

func TestComputeHashInputs(t *testing.T) {
	txs := []Transaction{NewTransfer("alice", "bob", 40)}
	base := ComputeHash(2, 1000, txs, "abc")

	assert.Equal(t, base, ComputeHash(2, 1000, []Transaction{NewTransfer("alice", "bob", 40)}, "abc"))
	assert.NotEqual(t, base, ComputeHash(3, 1000, txs, "abc"))
	assert.NotEqual(t, base, ComputeHash(2, 1001, txs, "abc"))
	assert.NotEqual(t, base, ComputeHash(2, 1000, []Transaction{NewTransfer("alice", "bob", 41)}, "abc"))
	assert.NotEqual(t, base, ComputeHash(2, 1000, txs, "abd"))
	assert.Equal(t, ComputeHash(1, 5, nil, "x"), ComputeHash(1, 5, []Transaction{}, "x"))
}

func TestBlockRehashAfterDecode(t *testing.T) {
	b := NewBlockAt(4, 1700000000, []Transaction{NewCreateAccount("bob", 0), NewTransfer("alice", "bob", 40)}, "prev")

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded Block
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.VerifyHash())
	assert.Equal(t, b.Hash, decoded.Hash)

	decoded.Transactions[1].Transfer.Amount = 400
	assert.False(t, decoded.VerifyHash())
}

func TestEmptyBlockRehashAfterDecode(t *testing.T) {
	b := NewBlockAt(1, 1700000000, nil, GenesisBlock().Hash)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"transactions":[]`)

	var decoded Block
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.VerifyHash())
}
