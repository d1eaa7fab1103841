package server

import (
	"bufio"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitelabs/go-ledger/chain"
	"github.com/vitelabs/go-ledger/command"
	"github.com/vitelabs/go-ledger/pending"
)

type echoProcessor struct{}

func (echoProcessor) Process(cmd string) string {
	return "echo:" + cmd
}

func startServer(t *testing.T, p Processor) *Server {
	s := New("127.0.0.1:0", p)
	require.NoError(t, s.Start())
	t.Cleanup(func() { s.Stop() })
	return s
}

type client struct {
	conn net.Conn
	rd   *bufio.Reader
}

func dial(t *testing.T, s *Server) *client {
	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &client{conn: conn, rd: bufio.NewReader(conn)}
}

func (c *client) send(t *testing.T, line string) string {
	_, err := io.WriteString(c.conn, line+"\n")
	require.NoError(t, err)
	return c.read(t)
}

func (c *client) read(t *testing.T) string {
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	resp, err := c.rd.ReadString('\n')
	require.NoError(t, err)
	return strings.TrimSuffix(resp, "\n")
}

func TestServerCommands(t *testing.T) {
	queue := pending.NewMemQueue()
	state := chain.NewState()
	s := startServer(t, command.NewProcessor(queue, state))
	c := dial(t, s)

	assert.Equal(t, "Account alice with balance 100 added to mempool", c.send(t, "create-account alice 100"))
	assert.Equal(t, "Transaction alice with balance 40 added to mempool", c.send(t, "transfer alice bob 40"))
	assert.Equal(t, "Account not found.", c.send(t, "balance alice"))
	assert.Equal(t, "Invalid command.", c.send(t, "fly away"))
	assert.Equal(t, "Invalid command.", c.send(t, ""))
	assert.Equal(t, 2, queue.Len())

	txs, err := queue.DrainAll()
	require.NoError(t, err)
	_, _, err = state.ApplyBatchAndAppend(txs)
	require.NoError(t, err)
	assert.Equal(t, "Balance for alice: 100", c.send(t, "balance alice"))
}

func TestServerPipelinedLines(t *testing.T) {
	s := startServer(t, echoProcessor{})
	c := dial(t, s)

	_, err := io.WriteString(c.conn, "a\nb\r\nc\n")
	require.NoError(t, err)
	assert.Equal(t, "echo:a", c.read(t))
	assert.Equal(t, "echo:b", c.read(t))
	assert.Equal(t, "echo:c", c.read(t))
}

func TestServerInvalidUTF8(t *testing.T) {
	s := startServer(t, echoProcessor{})
	c := dial(t, s)

	assert.Equal(t, "Invalid command.", c.send(t, "balance \xff\xfe"))
	// connection is still usable
	assert.Equal(t, "echo:ok", c.send(t, "ok"))
}

func TestServerOverLongLine(t *testing.T) {
	queue := pending.NewMemQueue()
	s := startServer(t, command.NewProcessor(queue, chain.NewState()))
	c := dial(t, s)

	long := "create-account " + strings.Repeat("x", MaxLineSize) + " 100"
	assert.Equal(t, "Invalid command.", c.send(t, long))
	assert.Equal(t, 0, queue.Len())

	// the rest of the stream is still read line by line
	assert.Equal(t, "Account alice with balance 100 added to mempool", c.send(t, "create-account alice 100"))
	assert.Equal(t, 1, queue.Len())
}

func TestServerClientsAreIndependent(t *testing.T) {
	s := startServer(t, echoProcessor{})
	a := dial(t, s)
	b := dial(t, s)

	assert.Equal(t, "echo:a1", a.send(t, "a1"))
	a.conn.Close()
	assert.Equal(t, "echo:b1", b.send(t, "b1"))

	assert.Eventually(t, func() bool { return s.Connections() == 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestServerConcurrentClients(t *testing.T) {
	queue := pending.NewMemQueue()
	s := startServer(t, command.NewProcessor(queue, chain.NewState()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		c := dial(t, s)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				io.WriteString(c.conn, "transfer alice bob 1\n")
				c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
				c.rd.ReadString('\n')
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 200, queue.Len())
}

func TestServerStopClosesConnections(t *testing.T) {
	s := New("127.0.0.1:0", echoProcessor{})
	require.NoError(t, s.Start())
	assert.Equal(t, ErrServerRunning, errors.Cause(s.Start()))

	c := dial(t, s)
	assert.Equal(t, "echo:x", c.send(t, "x"))

	require.NoError(t, s.Stop())
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, err := c.rd.ReadString('\n')
	assert.Error(t, err)
	assert.Equal(t, 0, s.Connections())

	assert.Equal(t, ErrServerStopped, s.Stop())
}
