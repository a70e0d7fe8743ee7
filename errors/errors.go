/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package errors

import (
	"errors"
	"fmt"
)

// Error is the type every public operation in this module returns. It
// carries a Kind so callers can branch without parsing Error() text, an
// optional controller reply (for CommandError) and an optional wrapped
// cause (for ConnectionError/Timeout arising from a net.Error).
type Error struct {
	kind   Kind
	msg    string
	reply  string
	parent error
}

func (e *Error) Error() string {
	if e.parent != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.parent)
	}

	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.parent
}

// Kind returns the taxonomy bucket this error belongs to.
func (e *Error) Kind() Kind {
	return e.kind
}

// Reply returns the raw controller reply text that produced a CommandError,
// or "" for every other kind.
func (e *Error) Reply() string {
	return e.reply
}

func newError(k Kind, parent error, format string, args ...interface{}) *Error {
	return &Error{
		kind:   k,
		msg:    fmt.Sprintf(format, args...),
		parent: parent,
	}
}

// Timeoutf builds a KindTimeout error.
func Timeoutf(parent error, format string, args ...interface{}) *Error {
	return newError(KindTimeout, parent, format, args...)
}

// Connectionf builds a KindConnection error.
func Connectionf(parent error, format string, args ...interface{}) *Error {
	return newError(KindConnection, parent, format, args...)
}

// Commandf builds a KindCommand error from a reply that could not be
// matched, or that the controller answered with "ERROR <reason>".
func Commandf(reply string, format string, args ...interface{}) *Error {
	e := newError(KindCommand, nil, format, args...)
	e.reply = reply
	return e
}

// Protocolf builds a KindProtocol error: malformed framing or truncated
// binary payload.
func Protocolf(format string, args ...interface{}) *Error {
	return newError(KindProtocol, nil, format, args...)
}

// Usagef builds a KindUsage error, raised before any I/O takes place.
func Usagef(format string, args ...interface{}) *Error {
	return newError(KindUsage, nil, format, args...)
}

// Is reports whether err (or any error it wraps) carries kind k.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == k
	}

	return false
}

func IsTimeout(err error) bool    { return Is(err, KindTimeout) }
func IsConnection(err error) bool { return Is(err, KindConnection) }
func IsCommand(err error) bool    { return Is(err, KindCommand) }
func IsProtocol(err error) bool   { return Is(err, KindProtocol) }
func IsUsage(err error) bool      { return Is(err, KindUsage) }
