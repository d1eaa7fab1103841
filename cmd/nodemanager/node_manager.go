package nodemanager

import (
	"github.com/inconshreveable/log15"
	"github.com/vitelabs/go-ledger/node"
)

var (
	log = log15.New("module", "gledger/nodemanager")
)

type NodeManager interface {
	Start() error

	Stop() error

	Node() *node.Node
}
