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

package transport_test

import (
	"context"
	"net"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/transport"
)

func TestTransport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "transport suite")
}

var _ = Describe("tcp transport", func() {
	var ln net.Listener

	BeforeEach(func() {
		var err error
		ln, err = net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = ln.Close()
	})

	It("connects, writes, reads until delimiter and closes", func() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
			buf := make([]byte, 5)
			_, _ = conn.Read(buf)
			_, _ = conn.Write([]byte("OK\r\n"))
		}()

		tr := transport.New()
		tr.SetTimeout(2 * time.Second)
		Expect(tr.Connect(context.Background(), ln.Addr().String())).To(Succeed())
		Expect(tr.State()).To(Equal(transport.Open))

		Expect(tr.Write([]byte("PING\n"))).To(Succeed())

		reply, err := tr.ReadUntil('\n')
		Expect(err).NotTo(HaveOccurred())
		Expect(string(reply)).To(Equal("OK\r"))

		Expect(tr.Close()).To(Succeed())
		Expect(tr.State()).To(Equal(transport.Closed))
		<-done
	})

	It("rejects operations before Connect", func() {
		tr := transport.New()
		Expect(tr.Write([]byte("x"))).To(HaveOccurred())
	})
})
