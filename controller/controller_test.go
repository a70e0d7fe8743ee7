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

package controller_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
	"github.com/ALBA-Synchrotron/pyIcePAP/simulator"
)

func TestController(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "controller suite")
}

var _ = Describe("Controller", func() {
	var (
		dev  *simulator.Device
		ctrl *controller.Controller
	)

	BeforeEach(func() {
		dev = simulator.New([]int{11, 12})
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

	It("discovers racks and axes", func() {
		racks, err := ctrl.FindRacks(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(racks).To(ContainElement(1))

		axes, err := ctrl.FindAxes(context.Background(), 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(axes).To(HaveLen(2))
	})

	It("reads and writes position", func() {
		a11, _ := address.New(11)
		Expect(ctrl.SetPos(context.Background(), []address.Address{a11}, []int64{777})).To(Succeed())

		pos, err := ctrl.GetPos(context.Background(), []address.Address{a11})
		Expect(err).NotTo(HaveOccurred())
		Expect(pos).To(Equal([]int64{777}))
	})

	It("moves a group of axes atomically", func() {
		a11, _ := address.New(11)
		a12, _ := address.New(12)

		Expect(ctrl.Move(context.Background(), []controller.MoveSpec{
			{Addr: a11, Target: 100},
			{Addr: a12, Target: 200},
		})).To(Succeed())

		pos, err := ctrl.GetPos(context.Background(), []address.Address{a11, a12})
		Expect(err).NotTo(HaveOccurred())
		Expect(pos).To(Equal([]int64{100, 200}))
	})

	It("toggles power", func() {
		a11, _ := address.New(11)
		Expect(ctrl.SetPower(context.Background(), a11, true)).To(Succeed())

		on, err := ctrl.GetPower(context.Background(), []address.Address{a11})
		Expect(err).NotTo(HaveOccurred())
		Expect(on).To(Equal([]bool{true}))
	})

	It("parses the firmware version tree", func() {
		fw, err := ctrl.Version(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(fw.System.VER.Version).To(Equal(3.17))
	})
})
