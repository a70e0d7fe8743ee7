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

package axis_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	icepapaddr "github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/axis"
	"github.com/ALBA-Synchrotron/pyIcePAP/simulator"
	"github.com/ALBA-Synchrotron/pyIcePAP/session"
	"github.com/ALBA-Synchrotron/pyIcePAP/transport"
)

func TestAxis(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "axis suite")
}

var _ = Describe("Axis", func() {
	var (
		dev *simulator.Device
		sess *session.Session
		a11 *axis.Axis
	)

	BeforeEach(func() {
		dev = simulator.New([]int{11})
		addr, err := dev.Start()
		Expect(err).NotTo(HaveOccurred())

		sess = session.New(transport.New(), addr, 2*time.Second, 2*time.Second)
		Expect(sess.Open(context.Background())).To(Succeed())

		a, err := icepapaddr.New(11)
		Expect(err).NotTo(HaveOccurred())
		a11 = axis.New(sess, a)
	})

	AfterEach(func() {
		_ = sess.Close()
		_ = dev.Close()
	})

	It("toggles power", func() {
		Expect(a11.SetPower(context.Background(), true)).To(Succeed())
		on, err := a11.Power(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(on).To(BeTrue())
	})

	It("falls back from FPOS to POS on an unsupported firmware", func() {
		Expect(a11.SetPos(context.Background(), axis.RegAxis, 42)).To(Succeed())

		v, err := a11.FPos(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int64(42)))
	})

	It("reads and writes the position register", func() {
		Expect(a11.SetPos(context.Background(), axis.RegAxis, 900)).To(Succeed())
		v, err := a11.PosAxis(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int64(900)))
	})

	It("moves and stops", func() {
		Expect(a11.Move(context.Background(), 1234)).To(Succeed())
		v, err := a11.PosAxis(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int64(1234)))

		Expect(a11.Stop(context.Background())).To(Succeed())
	})

	It("reads velocity", func() {
		v, err := a11.Velocity(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(10.0))
	})
})
