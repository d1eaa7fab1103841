package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestHash256(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3, 4}

	if !bytes.Equal(Hash256(a, b), Hash256([]byte{1, 2, 3, 4})) {
		t.Fatal("not equal")
	}
	if len(Hash256()) != 32 {
		t.Fatalf("unexpected digest size %d", len(Hash256()))
	}

	// blake2b-256 of the empty input
	want := "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if got := hex.EncodeToString(Hash256()); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
