package ledger

import "github.com/pkg/errors"

var (
	ErrInvalidTransaction = errors.New("transaction must carry exactly one of CreateAccount or Transfer")
)
