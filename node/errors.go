package node

import (
	"github.com/pkg/errors"
)

var (
	ErrNodeStopped     = errors.New("node not started")
	ErrNodeRunning     = errors.New("node already running")
	ErrUnknownBackend  = errors.New("unknown pending backend")
	ErrEmptyListenAddr = errors.New("listen address is empty")
)
