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

package selector_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/selector"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
	"github.com/ALBA-Synchrotron/pyIcePAP/simulator"
)

func TestSelector(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "selector suite")
}

var _ = Describe("Parse", func() {
	var (
		dev  *simulator.Device
		ctrl *controller.Controller
	)

	BeforeEach(func() {
		dev = simulator.New([]int{1, 2, 5})
		addr, err := dev.Start()
		Expect(err).NotTo(HaveOccurred())

		ctrl, err = controller.New(context.Background(), controller.Options{
			Host:           addr,
			IOTimeout:      2 * time.Second,
			ConnectTimeout: 2 * time.Second,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = ctrl.Close()
		_ = dev.Close()
	})

	It("parses a comma separated list", func() {
		addrs, err := selector.Parse(context.Background(), ctrl, "1,5")
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(HaveLen(2))
		Expect(addrs[0].Int()).To(Equal(1))
		Expect(addrs[1].Int()).To(Equal(5))
	})

	It("resolves all to every discovered axis", func() {
		addrs, err := selector.Parse(context.Background(), ctrl, "all")
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(HaveLen(3))
	})

	It("resolves alive to the axes answering alive in their status word", func() {
		addrs, err := selector.Parse(context.Background(), ctrl, "alive")
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(HaveLen(3))
	})

	It("rejects a malformed selector", func() {
		_, err := selector.Parse(context.Background(), ctrl, "abc")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ParsePairs", func() {
	It("splits an <axis> <position> pair list", func() {
		addrs, values, err := selector.ParsePairs([]string{"1", "100", "5", "-200"})
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(HaveLen(2))
		Expect(values).To(Equal([]int64{100, -200}))
	})

	It("rejects an odd argument count", func() {
		_, _, err := selector.ParsePairs([]string{"1"})
		Expect(err).To(HaveOccurred())
	})
})
