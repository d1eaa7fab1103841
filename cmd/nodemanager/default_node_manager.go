package nodemanager

import (
	"github.com/vitelabs/go-ledger/node"
	"gopkg.in/urfave/cli.v1"
)

// DefaultNodeManager runs one ledger node built from the command line and
// blocks in Start until that node is stopped.
type DefaultNodeManager struct {
	ctx  *cli.Context
	node *node.Node
}

func NewDefaultNodeManager(ctx *cli.Context, maker NodeMaker) (*DefaultNodeManager, error) {
	n, err := maker.MakeNode(ctx)
	if err != nil {
		return nil, err
	}
	return &DefaultNodeManager{ctx: ctx, node: n}, nil
}

func (m *DefaultNodeManager) Start() error {
	if err := StartNode(m.node); err != nil {
		return err
	}
	log.Info("ledger node serving", "addr", m.node.ListenAddr(), "datadir", m.node.Config().DataDir)
	m.node.Wait()
	return nil
}

// Stop returns node.ErrNodeStopped when the node is not running.
func (m *DefaultNodeManager) Stop() error {
	return StopNode(m.node)
}

func (m *DefaultNodeManager) Node() *node.Node {
	return m.node
}
