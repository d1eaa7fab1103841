package chain

import "github.com/pkg/errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDuplicateAccount    = errors.New("account already exists")
	ErrBalanceOverflow     = errors.New("balance overflow")

	// ErrChainIntegrity means a block did not extend the head. Only the miner
	// appends, so seeing it indicates a bug rather than bad input.
	ErrChainIntegrity = errors.New("chain integrity violation")
)
