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

package address_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

func TestAddress(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "address suite")
}

var _ = Describe("address", func() {
	It("decodes rack and index", func() {
		a, err := address.New(151)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Rack()).To(Equal(15))
		Expect(a.Index()).To(Equal(1))
		Expect(a.Int()).To(Equal(151))
	})

	It("rejects the system address", func() {
		_, err := address.New(0)
		Expect(icerr.IsUsage(err)).To(BeTrue())
	})

	It("rejects an out-of-range rack", func() {
		_, err := address.New(161)
		Expect(icerr.IsUsage(err)).To(BeTrue())
	})

	It("rejects an out-of-range index", func() {
		_, err := address.New(19)
		Expect(icerr.IsUsage(err)).To(BeTrue())
	})

	It("builds from rack and index", func() {
		a, err := address.FromRackIndex(2, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Int()).To(Equal(23))
	})

	It("resolves aliases in both directions", func() {
		m := address.NewAliasMap()
		a, _ := address.New(11)
		m.Set("th1", a)

		got, ok := m.Resolve("th1")
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(a))

		name, ok := m.Name(a)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("th1"))
	})
})
