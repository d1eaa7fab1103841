// Package server exposes a command processor over a line-oriented TCP socket.
package server

import (
	"bufio"
	"io"
	"net"
	"sync"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/vitelabs/go-ledger/common"
	"go.uber.org/atomic"
)

var log = log15.New("module", "server")

var (
	ErrServerRunning = errors.New("server already running")
	ErrServerStopped = errors.New("server not running")
)

const (
	invalidCommand = "Invalid command."

	// MaxLineSize bounds a single command line; longer lines are discarded.
	MaxLineSize = 64 * 1024
)

// Processor answers a single command line.
type Processor interface {
	Process(command string) string
}

// Server reads one command per line and writes one response line back.
// Every connection is served on its own goroutine.
type Server struct {
	addr      string
	processor Processor

	listener net.Listener
	conns    mapset.Set
	running  *atomic.Bool
	wg       sync.WaitGroup
	mu       sync.Mutex
}

func New(addr string, processor Processor) *Server {
	return &Server{
		addr:      addr,
		processor: processor,
		conns:     mapset.NewSet(),
		running:   atomic.NewBool(false),
	}
}

func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return ErrServerRunning
	}
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.addr)
	}
	s.listener = listener
	s.running.Store(true)

	s.wg.Add(1)
	common.Go(s.acceptLoop)
	log.Info("Server listening", "addr", listener.Addr().String())
	return nil
}

// Addr returns the bound address, which differs from the configured one
// when listening on port 0.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop closes the listener and every open connection, then waits for the
// connection goroutines to exit.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running.CAS(true, false) {
		s.mu.Unlock()
		return ErrServerStopped
	}
	err := s.listener.Close()
	for _, c := range s.conns.ToSlice() {
		c.(net.Conn).Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	log.Info("Server stopped", "addr", s.addr)
	return err
}

func (s *Server) Connections() int {
	return s.conns.Cardinality()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.running.Load() {
				log.Error("accept failed", "err", err)
			}
			return
		}

		s.mu.Lock()
		if !s.running.Load() {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.conns.Add(conn)
		s.wg.Add(1)
		s.mu.Unlock()

		common.Go(func() {
			defer s.wg.Done()
			s.handle(conn)
		})
	}
}

func (s *Server) handle(conn net.Conn) {
	remote := conn.RemoteAddr().String()
	log.Debug("New connection", "remote", remote)
	defer func() {
		s.conns.Remove(conn)
		conn.Close()
		log.Debug("Connection closed", "remote", remote)
	}()

	rd := bufio.NewReader(conn)
	wr := bufio.NewWriter(conn)
	for {
		line, tooLong, err := common.ReadLine(rd, MaxLineSize)
		if err == nil || len(line) > 0 || tooLong {
			if tooLong {
				log.Warn("discard over-long line", "remote", remote, "max", MaxLineSize)
			}
			if werr := s.reply(wr, line, tooLong); werr != nil {
				log.Warn("write failed", "remote", remote, "err", werr)
				return
			}
		}
		if err != nil {
			if err != io.EOF && s.running.Load() {
				log.Warn("read failed", "remote", remote, "err", err)
			}
			return
		}
	}
}

func (s *Server) reply(wr *bufio.Writer, line []byte, tooLong bool) error {
	resp := invalidCommand
	if !tooLong && utf8.Valid(line) {
		resp = s.processor.Process(string(line))
	}
	if _, err := wr.WriteString(resp + "\n"); err != nil {
		return err
	}
	return wr.Flush()
}
