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

// Package errors implements the controller error taxonomy: Timeout,
// ConnectionError, CommandError, ProtocolError and UsageError. Every error
// the transport, session and command surfaces return is one of these kinds,
// never a bare string, so callers can branch on Kind() instead of parsing
// messages.
package errors

// Kind classifies an Error into one of the five taxonomy buckets described
// by the protocol design.
type Kind uint8

const (
	// KindTimeout: a read or write did not complete within the session timeout.
	KindTimeout Kind = iota + 1

	// KindConnection: refused, reset, broken pipe, unreachable host, name
	// resolution failure.
	KindConnection

	// KindCommand: the controller returned a parseable "ERROR <reason>" for
	// the issued command, or a reply that could not be matched to the command.
	KindCommand

	// KindProtocol: malformed framing - missing closing '$', truncated
	// binary header, unexpected token count.
	KindProtocol

	// KindUsage: caller passed an invalid address, an unsorted table above
	// capacity, a signal outside the allowed set, etc. Raised before any I/O.
	KindUsage
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "Timeout"
	case KindConnection:
		return "ConnectionError"
	case KindCommand:
		return "CommandError"
	case KindProtocol:
		return "ProtocolError"
	case KindUsage:
		return "UsageError"
	default:
		return "UnknownError"
	}
}
