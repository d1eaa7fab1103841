package types

import (
	"encoding/hex"
	"fmt"

	"github.com/vitelabs/go-ledger/crypto"
)

const (
	HashSize = 32
)

type Hash [HashSize]byte

func BytesToHash(b []byte) (Hash, error) {
	var h Hash
	err := h.SetBytes(b)
	return h, err
}

func (h *Hash) SetBytes(b []byte) error {
	if len(b) != HashSize {
		return fmt.Errorf("error hash size %v", len(b))
	}
	copy(h[:], b)
	return nil
}

// Hex renders the hash as lowercase hex.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

// DataListHash hashes the concatenation of data.
func DataListHash(data ...[]byte) Hash {
	h, _ := BytesToHash(crypto.Hash256(data...))
	return h
}
