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

package errors_test

import (
	"errors"
	"net"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

func TestErrors(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "errors suite")
}

var _ = Describe("taxonomy", func() {
	It("reports the right kind for each constructor", func() {
		Expect(liberr.IsTimeout(liberr.Timeoutf(nil, "read"))).To(BeTrue())
		Expect(liberr.IsConnection(liberr.Connectionf(nil, "refused"))).To(BeTrue())
		Expect(liberr.IsCommand(liberr.Commandf("MOVE ERROR bad axis", "parse failed"))).To(BeTrue())
		Expect(liberr.IsProtocol(liberr.Protocolf("missing closing $"))).To(BeTrue())
		Expect(liberr.IsUsage(liberr.Usagef("invalid axis 199"))).To(BeTrue())
	})

	It("carries the raw controller reply on CommandError", func() {
		e := liberr.Commandf("MOVE ERROR bad axis", "controller refused command")
		Expect(e.Reply()).To(Equal("MOVE ERROR bad axis"))
	})

	It("unwraps to the parent net error", func() {
		parent := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
		e := liberr.Connectionf(parent, "dial 10.0.0.1:5000")
		Expect(errors.Unwrap(e)).To(Equal(error(parent)))
	})

	It("never confuses two different kinds", func() {
		e := liberr.Protocolf("truncated header")
		Expect(liberr.IsCommand(e)).To(BeFalse())
		Expect(liberr.IsTimeout(e)).To(BeFalse())
	})
})
