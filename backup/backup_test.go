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

package backup_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/backup"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
	"github.com/ALBA-Synchrotron/pyIcePAP/simulator"
)

func TestBackup(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "backup suite")
}

var _ = Describe("Snapshot round-trip", func() {
	var (
		dev  *simulator.Device
		ctrl *controller.Controller
	)

	BeforeEach(func() {
		dev = simulator.New([]int{11})
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

	It("captures, saves and loads a snapshot for a fixed axis set", func() {
		a11, err := address.New(11)
		Expect(err).NotTo(HaveOccurred())

		snap, err := backup.Capture(context.Background(), ctrl, "127.0.0.1", 5000, []address.Address{a11})
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Axes).To(HaveLen(1))
		Expect(snap.Axes[0].Addr).To(Equal(11))

		path := filepath.Join(os.TempDir(), "icepap_backup_test.ini")
		defer os.Remove(path)

		Expect(backup.Save(snap, path)).To(Succeed())

		loaded, err := backup.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Host).To(Equal("127.0.0.1"))
		Expect(loaded.Axes).To(HaveLen(1))
		Expect(loaded.Axes[0].Addr).To(Equal(11))
		Expect(loaded.Axes[0].Attributes["name"]).To(Equal(snap.Axes[0].Attributes["name"]))
	})

	It("check reports no differences against an unchanged controller", func() {
		a11, err := address.New(11)
		Expect(err).NotTo(HaveOccurred())

		snap, err := backup.Capture(context.Background(), ctrl, "127.0.0.1", 5000, []address.Address{a11})
		Expect(err).NotTo(HaveOccurred())

		diffs, err := backup.Check(context.Background(), ctrl, snap)
		Expect(err).NotTo(HaveOccurred())
		Expect(diffs).To(BeEmpty())
	})
})
