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

// Package session implements the request/response contract on top of a
// transport.Transport: acknowledge framing, multi-line "$...$" collection,
// binary block upload and the single-reconnect policy on I/O errors. Every
// exported method takes the session's lock for the duration of one
// request/response exchange.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
	"github.com/ALBA-Synchrotron/pyIcePAP/protocol"
	"github.com/ALBA-Synchrotron/pyIcePAP/transport"
)

// nonAcknowledged lists the command prefixes that never produce a reply,
// even though they are writes.
var nonAcknowledged = []string{"PROG", "*PROG", "RESET", ":", "*ECAMDAT", "*LISTDAT", "*PARDAT"}

// Session drives one controller connection.
type Session struct {
	mu   sync.Mutex
	tr   transport.Transport
	addr string

	connectTimeout time.Duration
	ioTimeout      time.Duration
}

// New wraps tr, targeting addr ("host:port") for reconnects.
func New(tr transport.Transport, addr string, ioTimeout, connectTimeout time.Duration) *Session {
	if ioTimeout <= 0 {
		ioTimeout = 3 * time.Second
	}
	if connectTimeout <= 0 {
		connectTimeout = 3 * time.Second
	}
	tr.SetTimeout(ioTimeout)
	return &Session{tr: tr, addr: addr, ioTimeout: ioTimeout, connectTimeout: connectTimeout}
}

// Open dials the transport.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tr.Connect(ctx, s.addr)
}

// Close closes the transport.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tr.Close()
}

func isQuery(cmd string) bool { return strings.Contains(cmd, "?") }

func isNonAcknowledged(cmd string) bool {
	for _, p := range nonAcknowledged {
		if strings.HasPrefix(cmd, p) {
			return true
		}
		// address-prefixed form, e.g. "11:RESET"
		if i := strings.IndexByte(cmd, ':'); i >= 0 && strings.HasPrefix(cmd[i+1:], p) {
			return true
		}
	}
	return false
}

// firstWord returns the leading token of cmd, upper-cased, stripping any
// "<addr>:" address prefix first. The '?' of a query verb is kept, since
// the controller's reply echoes it back (e.g. "?STATUS ...").
func firstWord(cmd string) string {
	c := cmd
	if i := strings.IndexByte(c, ':'); i >= 0 {
		c = c[i+1:]
	}
	c = strings.TrimPrefix(c, "#")
	fields := strings.Fields(c)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// Do sends cmd and returns its parsed reply. Query commands (containing
// '?') always expect a reply; non-acknowledged writes (PROG, RESET, ':',
// table uploads, ...) send and return immediately; everything else is an
// acknowledged write, sent prefixed with '#' and expecting OK/ERROR.
func (s *Session) Do(ctx context.Context, cmd string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := isQuery(cmd)
	ack := !query && !isNonAcknowledged(cmd)

	wire := cmd
	if ack {
		wire = "#" + cmd
	}

	if err := s.writeWithReconnect(ctx, []byte(wire+"\r\n")); err != nil {
		return "", err
	}

	if !query && !ack {
		return "", nil
	}

	line, err := s.tr.ReadUntil('\n')
	if err != nil {
		return "", err
	}
	reply := strings.TrimRight(string(line), "\r")

	if strings.HasPrefix(reply, "$") {
		reply, err = s.readMultiLine(reply)
		if err != nil {
			return "", err
		}
	}

	return parseReply(cmd, reply)
}

// readMultiLine collects lines until one ending in "$" closes the block,
// per the "$...$" bracketing rule; split on '\n', trimmed of '\r'.
func (s *Session) readMultiLine(first string) (string, error) {
	var b strings.Builder
	b.WriteString(strings.TrimPrefix(first, "$"))

	for {
		line, err := s.tr.ReadUntil('\n')
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimRight(string(line), "\r")
		if strings.HasSuffix(trimmed, "$") {
			b.WriteString("\n")
			b.WriteString(strings.TrimSuffix(trimmed, "$"))
			return b.String(), nil
		}
		b.WriteString("\n")
		b.WriteString(trimmed)
	}
}

// parseReply implements the reply-matching contract: reply begins with
// the uppercased command -> strip it; else begins with the command's
// first word (without "ERROR") -> strip that; else CommandError. A
// "<prefix> ERROR <message>" always raises CommandError.
func parseReply(cmd, reply string) (string, error) {
	upperCmd := strings.ToUpper(cmd)
	w0 := firstWord(cmd)

	if strings.Contains(reply, "ERROR") {
		return "", icerr.Commandf(reply, "%s", reply)
	}

	if strings.HasPrefix(strings.ToUpper(reply), upperCmd) {
		return strings.TrimSpace(reply[len(upperCmd):]), nil
	}
	if w0 != "" && strings.HasPrefix(strings.ToUpper(reply), w0) {
		return strings.TrimSpace(reply[len(w0):]), nil
	}

	return "", icerr.Commandf(reply, "unmatched reply to %q", cmd)
}

// SendBlock uploads a binary table: header, payload, trailing CR, taking
// the lock for the write only (no reply is ever expected for a block).
func (s *Session) SendBlock(ctx context.Context, header string, words []uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := append([]byte(header+"\r\n"), protocol.EncodeBlockHeader(words)...)
	buf = append(buf, protocol.EncodeBlockPayload(words)...)
	buf = append(buf, '\r')

	return s.writeWithReconnect(ctx, buf)
}

// writeWithReconnect writes p, and on a non-timeout I/O error closes and
// reconnects exactly once before giving up. Timeouts propagate untouched.
func (s *Session) writeWithReconnect(ctx context.Context, p []byte) error {
	err := s.tr.Write(p)
	if err == nil {
		return nil
	}
	if icerr.IsTimeout(err) {
		return err
	}
	if !icerr.IsConnection(err) {
		return err
	}

	_ = s.tr.Close()
	if cerr := s.tr.Connect(ctx, s.addr); cerr != nil {
		return cerr
	}
	return s.tr.Write(p)
}
