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

package fields_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/logger/fields"
)

func TestFields(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "fields suite")
}

var _ = Describe("fields", func() {
	It("chains Add and exposes Get", func() {
		f := fields.New().Add("axis", 11).Add("cmd", "MOVE")
		v, ok := f.Get("axis")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(11))
	})

	It("clones independently", func() {
		base := fields.New().Add("service", "icepapctl")
		derived := base.Clone().Add("axis", 11)

		_, ok := base.Get("axis")
		Expect(ok).To(BeFalse())

		v, ok := derived.Get("axis")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(11))
	})

	It("renders logrus.Fields", func() {
		f := fields.New().Add("axis", 11)
		l := f.Logrus()
		Expect(l["axis"]).To(Equal(11))
	})

	It("merges and deletes", func() {
		a := fields.New().Add("a", 1)
		b := fields.New().Add("b", 2)
		a.Merge(b)

		_, ok := a.Get("b")
		Expect(ok).To(BeTrue())

		a.Delete("b")
		_, ok = a.Get("b")
		Expect(ok).To(BeFalse())
	})
})
