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

package perm_test

import (
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/file/perm"
)

func TestPerm(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "perm suite")
}

var _ = Describe("Parse", func() {
	It("parses an octal string", func() {
		p, err := perm.Parse("0644")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.FileMode()).To(Equal(os.FileMode(0o644)))
	})

	It("parses a symbolic rwx triplet", func() {
		p, err := perm.Parse("rw-r--r--")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.FileMode()).To(Equal(os.FileMode(0o644)))
	})

	It("rejects a malformed symbolic string", func() {
		_, err := perm.Parse("rwxr-x")
		Expect(err).To(HaveOccurred())
	})

	It("round-trips through String", func() {
		p := perm.ParseFileMode(0o755)
		Expect(p.String()).To(Equal("0755"))
	})
})
