package main

import (
	"bufio"
	"net"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// client sends one command line and waits for one response line.
type client struct {
	conn    net.Conn
	rd      *bufio.Reader
	timeout time.Duration
}

func dial(addr string, timeout time.Duration) (*client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "connect to %s", addr)
	}
	return newClient(conn, timeout), nil
}

func newClient(conn net.Conn, timeout time.Duration) *client {
	return &client{conn: conn, rd: bufio.NewReader(conn), timeout: timeout}
}

func (c *client) Send(line string) (string, error) {
	if c.timeout > 0 {
		c.conn.SetDeadline(time.Now().Add(c.timeout))
	}
	if _, err := c.conn.Write([]byte(line + "\n")); err != nil {
		return "", errors.Wrap(err, "send command")
	}
	resp, err := c.rd.ReadString('\n')
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}
	return strings.TrimRight(resp, "\r\n"), nil
}

func (c *client) Close() error {
	return c.conn.Close()
}

// isExit matches the quit command regardless of case.
func isExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "exit")
}
