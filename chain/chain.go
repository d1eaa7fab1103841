package chain

import (
	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/vitelabs/go-ledger/ledger"
)

const recentBlockCacheSize = 256

// Chain is the append-only block sequence anchored at the genesis block. It
// is not safe for concurrent use; State serializes access to it.
type Chain struct {
	blocks []*ledger.Block

	// hash -> *ledger.Block for recently appended or looked-up blocks
	recent *lru.Cache
}

func NewChain() *Chain {
	recent, err := lru.New(recentBlockCacheSize)
	if err != nil {
		panic(err)
	}

	genesis := ledger.GenesisBlock()
	recent.Add(genesis.Hash, genesis)
	return &Chain{
		blocks: []*ledger.Block{genesis},
		recent: recent,
	}
}

// Append accepts block only if it extends the head: the next index, a prev
// hash resolving to the head and a hash matching its own fields.
func (c *Chain) Append(block *ledger.Block) error {
	if block == nil {
		return errors.Wrap(ErrChainIntegrity, "nil block")
	}
	head := c.Head()
	if block.Index != c.Len() {
		return errors.Wrapf(ErrChainIntegrity, "invalid index: expected %d, got %d", c.Len(), block.Index)
	}
	prev := c.GetBlockByHash(block.PrevHash)
	if prev == nil {
		return errors.Wrapf(ErrChainIntegrity, "unknown prev hash %s", block.PrevHash)
	}
	if prev != head {
		return errors.Wrapf(ErrChainIntegrity, "prev hash %s links block %d, head is %d", block.PrevHash, prev.Index, head.Index)
	}
	if !block.VerifyHash() {
		return errors.Wrapf(ErrChainIntegrity, "invalid hash %s for block %d", block.Hash, block.Index)
	}

	c.blocks = append(c.blocks, block)
	c.recent.Add(block.Hash, block)
	return nil
}

func (c *Chain) Len() uint64 {
	return uint64(len(c.blocks))
}

func (c *Chain) Head() *ledger.Block {
	return c.blocks[len(c.blocks)-1]
}

func (c *Chain) Genesis() *ledger.Block {
	return c.blocks[0]
}

// GetBlockByHash returns nil when no block has the hash.
func (c *Chain) GetBlockByHash(hash string) *ledger.Block {
	if value, ok := c.recent.Get(hash); ok {
		return value.(*ledger.Block)
	}
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if c.blocks[i].Hash == hash {
			c.recent.Add(hash, c.blocks[i])
			return c.blocks[i]
		}
	}
	return nil
}

// Blocks returns a snapshot of the block list.
func (c *Chain) Blocks() []*ledger.Block {
	blocks := make([]*ledger.Block, len(c.blocks))
	copy(blocks, c.blocks)
	return blocks
}
