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

package hookstderr_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	logcfg "github.com/ALBA-Synchrotron/pyIcePAP/logger/config"
	"github.com/ALBA-Synchrotron/pyIcePAP/logger/hookstderr"
)

func TestHookStdErr(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "hookstderr suite")
}

var _ = Describe("hookstderr", func() {
	It("returns nil when disabled", func() {
		h, err := hookstderr.New(&logcfg.OptionsStd{DisableStandard: true}, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(h).To(BeNil())
	})

	It("writes formatted entries to the given writer", func() {
		var buf bytes.Buffer
		h, err := hookstderr.NewWithWriter(&buf, &logcfg.OptionsStd{}, nil, &logrus.JSONFormatter{})
		Expect(err).NotTo(HaveOccurred())
		Expect(h).NotTo(BeNil())

		log := logrus.New()
		log.Out = &bytes.Buffer{}
		log.AddHook(h)
		log.WithField("msg", "dial 10.0.0.1:5000 refused").Error("")

		Expect(buf.String()).To(ContainSubstring("dial 10.0.0.1:5000 refused"))
	})

	It("writes the message verbatim in access-log mode", func() {
		var buf bytes.Buffer
		h, err := hookstderr.NewWithWriter(&buf, &logcfg.OptionsStd{EnableAccessLog: true}, nil, nil)
		Expect(err).NotTo(HaveOccurred())

		log := logrus.New()
		log.Out = &bytes.Buffer{}
		log.AddHook(h)
		log.Info("#POS 11 1000")

		Expect(buf.String()).To(Equal("#POS 11 1000\n"))
	})
})
