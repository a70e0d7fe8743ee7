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

package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/logger"
	logcfg "github.com/ALBA-Synchrotron/pyIcePAP/logger/config"
	loglvl "github.com/ALBA-Synchrotron/pyIcePAP/logger/level"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "logger suite")
}

var _ = Describe("logger", func() {
	It("builds with no hooks configured", func() {
		l, err := logger.New(logger.Options{Level: loglvl.InfoLevel})
		Expect(err).NotTo(HaveOccurred())
		Expect(l).NotTo(BeNil())
		l.Info("discarded")
		Expect(l.Close()).NotTo(HaveOccurred())
	})

	It("persists entries to the configured file hook", func() {
		dir := filepath.Join(os.TempDir(), "icepapctl-logger-test")
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "icepap.log")

		l, err := logger.New(logger.Options{
			Level: loglvl.DebugLevel,
			File: &logcfg.OptionsFile{
				Filepath:   path,
				Create:     true,
				CreatePath: true,
			},
		})
		Expect(err).NotTo(HaveOccurred())

		l.Info("11:MOVE 1000")
		Expect(l.Close()).NotTo(HaveOccurred())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("11:MOVE 1000"))
	})
})
