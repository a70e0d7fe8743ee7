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

package hookfile_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	logcfg "github.com/ALBA-Synchrotron/pyIcePAP/logger/config"
	"github.com/ALBA-Synchrotron/pyIcePAP/logger/hookfile"
)

func TestHookFile(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "hookfile suite")
}

var _ = Describe("hookfile", func() {
	It("rejects a missing path", func() {
		_, err := hookfile.New(logcfg.OptionsFile{}, nil)
		Expect(err).To(HaveOccurred())
	})

	It("creates the directory tree and appends entries", func() {
		dir := filepath.Join(os.TempDir(), "icepapctl-hookfile-test")
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "session.log")
		h, err := hookfile.New(logcfg.OptionsFile{
			Filepath:   path,
			Create:     true,
			CreatePath: true,
			OptionsStd: logcfg.OptionsStd{EnableAccessLog: true},
		}, nil)
		Expect(err).NotTo(HaveOccurred())
		defer h.Close()

		log := logrus.New()
		log.AddHook(h)
		log.Info("11:MOVE 1000")

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("11:MOVE 1000\n"))
	})
})
