package nodemanager

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/vitelabs/go-ledger/node"
)

// StartNode starts n and stops it on SIGINT or SIGTERM. Ten more interrupts
// during shutdown force a panic.
func StartNode(n *node.Node) error {
	log.Info("Begin StartNode... ")
	if err := n.Start(); err != nil {
		log.Error("Error staring ledger node", "err", err)
		return err
	}

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(c)
		<-c
		go StopNode(n)
		for i := 10; i > 0; i-- {
			<-c
			if i > 1 {
				log.Warn("Already shutting down, interrupt more to panic.", "times", i-1)
			}
		}
		panic("forced shutdown")
	}()
	return nil
}

func StopNode(n *node.Node) error {
	log.Info("Begin StopNode...")
	if err := n.Stop(); err != nil {
		log.Warn("StopNode", "err", err)
		return err
	}
	return nil
}
