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

package group_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/axis"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
	"github.com/ALBA-Synchrotron/pyIcePAP/group"
	"github.com/ALBA-Synchrotron/pyIcePAP/simulator"
)

func TestGroup(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "group suite")
}

var _ = Describe("Group", func() {
	var (
		dev  *simulator.Device
		ctrl *controller.Controller
		g    *group.Group
		a1   address.Address
		a5   address.Address
	)

	BeforeEach(func() {
		dev = simulator.New([]int{1, 5})
		addr, err := dev.Start()
		Expect(err).NotTo(HaveOccurred())

		ctrl, err = controller.New(context.Background(), controller.Options{
			Host:           addr,
			IOTimeout:      2 * time.Second,
			ConnectTimeout: 2 * time.Second,
		})
		Expect(err).NotTo(HaveOccurred())

		a1, err = address.New(1)
		Expect(err).NotTo(HaveOccurred())
		a5, err = address.New(5)
		Expect(err).NotTo(HaveOccurred())

		g = group.New(ctrl, []*axis.Axis{
			axis.New(ctrl.Session(), a1),
			axis.New(ctrl.Session(), a5),
		})
	})

	AfterEach(func() {
		_ = ctrl.Close()
		_ = dev.Close()
	})

	It("moves both axes and the motion generator converges", func() {
		Expect(g.StartMove(context.Background(), []int64{100, 200})).To(Succeed())

		gen := group.NewMotionGenerator(g)
		var lastPositions []int64
		for {
			states, positions, more, err := gen.Next(context.Background())
			Expect(err).NotTo(HaveOccurred())
			lastPositions = positions
			Expect(states).To(HaveLen(2))
			if !more {
				break
			}
		}
		Expect(lastPositions).To(Equal([]int64{100, 200}))
	})

	It("ensure_power restores only the axes it flipped", func() {
		Expect(ctrl.SetPower(context.Background(), a1, false)).To(Succeed())
		Expect(ctrl.SetPower(context.Background(), a5, true)).To(Succeed())

		restore, err := group.EnsurePower(context.Background(), g, true)
		Expect(err).NotTo(HaveOccurred())

		powers, err := g.GetPower(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(powers).To(Equal([]bool{true, true}))

		Expect(restore(context.Background())).To(Succeed())

		powers, err = g.GetPower(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(powers).To(Equal([]bool{false, true}))
	})

	It("rate limiter sleeps the residual period between samples", func() {
		rl := group.NewRateLimiter(20 * time.Millisecond)
		Expect(rl.Wait(context.Background())).To(Succeed()) // first call never sleeps

		start := time.Now()
		Expect(rl.Wait(context.Background())).To(Succeed())
		Expect(time.Since(start)).To(BeNumerically(">=", 10*time.Millisecond))
	})
})
