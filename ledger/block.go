package ledger

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/vitelabs/go-ledger/common/types"
)

// GenesisPrevHash is the prev hash of block 0.
const GenesisPrevHash = "0"

type Block struct {
	Index        uint64        `json:"index"`
	Timestamp    int64         `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	PrevHash     string        `json:"prev_hash"`
	Hash         string        `json:"hash"`
}

// NewBlock stamps the block with the current wall-clock second.
func NewBlock(index uint64, transactions []Transaction, prevHash string) *Block {
	return NewBlockAt(index, time.Now().Unix(), transactions, prevHash)
}

func NewBlockAt(index uint64, timestamp int64, transactions []Transaction, prevHash string) *Block {
	txs := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		txs[i] = tx.Copy()
	}

	block := &Block{
		Index:        index,
		Timestamp:    timestamp,
		Transactions: txs,
		PrevHash:     prevHash,
	}
	block.Hash = block.ComputeHash()
	return block
}

// GenesisBlock has a fixed timestamp so every process derives the same hash.
func GenesisBlock() *Block {
	return NewBlockAt(0, 0, nil, GenesisPrevHash)
}

func (b *Block) IsGenesis() bool {
	return b.Index == 0
}

func (b *Block) ComputeHash() string {
	return ComputeHash(b.Index, b.Timestamp, b.Transactions, b.PrevHash)
}

// VerifyHash re-hashes the stored fields and compares with the stored hash.
func (b *Block) VerifyHash() bool {
	return b.Hash == b.ComputeHash()
}

// ComputeHash digests index and timestamp as fixed-width big-endian integers,
// followed by the canonical encoding of transactions and the prev hash.
func ComputeHash(index uint64, timestamp int64, transactions []Transaction, prevHash string) string {
	var header [16]byte
	binary.BigEndian.PutUint64(header[:8], index)
	binary.BigEndian.PutUint64(header[8:], uint64(timestamp))

	return types.DataListHash(header[:], EncodeTransactions(transactions), []byte(prevHash)).Hex()
}

// EncodeTransactions is the canonical serialization used for hashing. A nil
// and an empty batch encode identically.
func EncodeTransactions(transactions []Transaction) []byte {
	if transactions == nil {
		transactions = []Transaction{}
	}
	// only strings and integers below, marshalling cannot fail
	data, _ := json.Marshal(transactions)
	return data
}
