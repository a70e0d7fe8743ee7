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

package session_test

import (
	"context"
	"net"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/session"
	"github.com/ALBA-Synchrotron/pyIcePAP/transport"
)

func TestSession(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "session suite")
}

// echoDevice accepts one connection and answers canned line replies keyed
// by the literal bytes it receives, trimmed.
func echoDevice(t *testing.T, reply string) (addr string, stop func()) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		_, _ = conn.Read(buf)
		_, _ = conn.Write([]byte(reply))
	}()

	return ln.Addr().String(), func() { _ = ln.Close() }
}

var _ = Describe("Session.Do", func() {
	It("strips the echoed command from a query reply", func() {
		addr, stop := echoDevice(GinkgoT(), "?POS 1000\r\n")
		defer stop()

		s := session.New(transport.New(), addr, time.Second, time.Second)
		Expect(s.Open(context.Background())).To(Succeed())
		defer s.Close()

		reply, err := s.Do(context.Background(), "?POS")
		Expect(err).NotTo(HaveOccurred())
		Expect(reply).To(Equal("1000"))
	})

	It("raises CommandError on an ERROR reply", func() {
		addr, stop := echoDevice(GinkgoT(), "MOVE ERROR Wrong number of parameters\r\n")
		defer stop()

		s := session.New(transport.New(), addr, time.Second, time.Second)
		Expect(s.Open(context.Background())).To(Succeed())
		defer s.Close()

		_, err := s.Do(context.Background(), "MOVE 1000")
		Expect(err).To(HaveOccurred())
	})

	It("collects a multi-line $...$ reply", func() {
		addr, stop := echoDevice(GinkgoT(), "$?VER INFO\nSYSTEM 3.17\n$\r\n")
		defer stop()

		s := session.New(transport.New(), addr, time.Second, time.Second)
		Expect(s.Open(context.Background())).To(Succeed())
		defer s.Close()

		reply, err := s.Do(context.Background(), "?VER INFO")
		Expect(err).NotTo(HaveOccurred())
		Expect(reply).To(ContainSubstring("SYSTEM 3.17"))
	})
})
