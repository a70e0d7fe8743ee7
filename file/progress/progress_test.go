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

package progress_test

import (
	"io"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/file/progress"
)

func TestProgress(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "progress suite")
}

var _ = Describe("File", func() {
	It("reports size and fires callbacks while reading", func() {
		tmp, err := os.CreateTemp("", "progress-*")
		Expect(err).NotTo(HaveOccurred())
		defer os.Remove(tmp.Name())
		_, err = tmp.Write(make([]byte, 100))
		Expect(err).NotTo(HaveOccurred())
		Expect(tmp.Close()).To(Succeed())

		pf, err := progress.Open(tmp.Name())
		Expect(err).NotTo(HaveOccurred())
		defer pf.Close()

		size, err := pf.SizeEOF()
		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(int64(100)))

		var lastStep int64
		eofCalled := false
		pf.RegisterFctIncrement(func(n int64) { lastStep = n })
		pf.RegisterFctEOF(func() { eofCalled = true })

		_, err = io.ReadAll(pf)
		Expect(err).NotTo(HaveOccurred())
		Expect(lastStep).To(Equal(int64(100)))
		Expect(eofCalled).To(BeTrue())
	})
})
