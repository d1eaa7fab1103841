package crypto

import "golang.org/x/crypto/blake2b"

// Hash256 returns the 32-byte BLAKE2b digest of the concatenation of data.
func Hash256(data ...[]byte) []byte {
	d, _ := blake2b.New256(nil)
	for _, item := range data {
		d.Write(item)
	}
	return d.Sum(nil)
}
