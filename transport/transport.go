/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package transport implements the single-connection TCP transport the
// session package drives: connect, write, read-until-delimiter,
// read-exact-N and close, behind an OPENING/OPEN/CLOSED state machine.
// It never retries - reconnection policy lives one layer up in session.
package transport

import (
	"bufio"
	"context"
	"net"
	"sync/atomic"
	"time"

	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

type state int32

const (
	stateClosed state = iota
	stateOpening
	stateOpen
)

// Transport is a single TCP connection to a controller.
type Transport interface {
	// Connect dials addr ("host:port"), failing if already open.
	Connect(ctx context.Context, addr string) error

	// Write sends p in full.
	Write(p []byte) error

	// ReadUntil reads until and including delim, returning the bytes read
	// without the trailing delimiter.
	ReadUntil(delim byte) ([]byte, error)

	// ReadN reads exactly n bytes.
	ReadN(n int) ([]byte, error)

	// SetTimeout sets the read/write deadline applied to every subsequent
	// operation.
	SetTimeout(d time.Duration)

	// Close closes the connection. Idempotent.
	Close() error

	// State reports whether the transport is usable.
	State() State
}

// State is the externally observable connection state.
type State int32

const (
	Closed State = State(stateClosed)
	Opening State = State(stateOpening)
	Open State = State(stateOpen)
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Opening:
		return "opening"
	default:
		return "closed"
	}
}

type tcpTransport struct {
	conn    net.Conn
	r       *bufio.Reader
	st      atomic.Int32
	timeout time.Duration
	dialer  net.Dialer
}

// New returns a Transport in the Closed state, ready for Connect.
func New() Transport {
	t := &tcpTransport{timeout: 3 * time.Second}
	t.st.Store(int32(stateClosed))
	return t
}

func (t *tcpTransport) State() State { return State(t.st.Load()) }

func (t *tcpTransport) Connect(ctx context.Context, addr string) error {
	if State(t.st.Load()) != Closed {
		return icerr.Usagef("transport: Connect called while %s", t.State())
	}
	t.st.Store(int32(stateOpening))

	d := t.dialer
	if deadline, ok := ctx.Deadline(); ok {
		d.Deadline = deadline
	}

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		t.st.Store(int32(stateClosed))
		return icerr.Connectionf(err, "dial %s", addr)
	}

	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
		_ = tc.SetLinger(0)
	}

	t.conn = conn
	t.r = bufio.NewReader(conn)
	t.st.Store(int32(stateOpen))
	return nil
}

func (t *tcpTransport) ensureOpen() error {
	if State(t.st.Load()) != Open {
		return icerr.Connectionf(nil, "transport: not open (state=%s)", t.State())
	}
	return nil
}

func (t *tcpTransport) deadline() time.Time {
	if t.timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(t.timeout)
}

func (t *tcpTransport) SetTimeout(d time.Duration) { t.timeout = d }

func (t *tcpTransport) Write(p []byte) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}

	_ = t.conn.SetWriteDeadline(t.deadline())
	if _, err := t.conn.Write(p); err != nil {
		return t.fail(err)
	}
	return nil
}

func (t *tcpTransport) ReadUntil(delim byte) ([]byte, error) {
	if err := t.ensureOpen(); err != nil {
		return nil, err
	}

	_ = t.conn.SetReadDeadline(t.deadline())
	line, err := t.r.ReadBytes(delim)
	if err != nil {
		return nil, t.fail(err)
	}
	return line[:len(line)-1], nil
}

func (t *tcpTransport) ReadN(n int) ([]byte, error) {
	if err := t.ensureOpen(); err != nil {
		return nil, err
	}

	_ = t.conn.SetReadDeadline(t.deadline())
	buf := make([]byte, n)
	if _, err := readFull(t.r, buf); err != nil {
		return nil, t.fail(err)
	}
	return buf, nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	read := 0
	for read < len(buf) {
		n, err := r.Read(buf[read:])
		read += n
		if err != nil {
			return read, err
		}
	}
	return read, nil
}

// fail classifies a read/write error and, unless it is a timeout, tears
// down the connection: the caller (session) owns the reconnect policy.
func (t *tcpTransport) fail(err error) error {
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return icerr.Timeoutf(err, "transport i/o")
	}

	t.st.Store(int32(stateClosed))
	if t.conn != nil {
		_ = t.conn.Close()
	}
	return icerr.Connectionf(err, "transport i/o")
}

func (t *tcpTransport) Close() error {
	if State(t.st.Load()) == Closed {
		return nil
	}
	t.st.Store(int32(stateClosed))
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}
