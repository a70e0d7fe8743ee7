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

package protocol_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ALBA-Synchrotron/pyIcePAP/protocol"
)

func TestProtocol(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "protocol suite")
}

var _ = Describe("Status", func() {
	It("decodes the documented bit layout", func() {
		// ready(9) + moving(10) + poweron(23) + mode=PROG(bits2-3=1)
		raw := uint32(1<<9 | 1<<10 | 1<<23 | 1<<2)
		s := protocol.NewStatus(raw)

		Expect(s.Ready()).To(BeTrue())
		Expect(s.Moving()).To(BeTrue())
		Expect(s.PowerOn()).To(BeTrue())
		Expect(s.Mode()).To(Equal(protocol.ModeProg))
		Expect(s.LimitPositive()).To(BeFalse())
	})

	It("decodes an all-ones word without raising, every field mapping to a defined value", func() {
		s := protocol.NewStatus(0xFFFFFFFF)
		Expect(s.Mode().String()).NotTo(Equal("unknown"))
		Expect(s.DisableCause().String()).NotTo(Equal("unknown"))
	})

	It("decodes word 0x00205013 per the documented scenario", func() {
		s := protocol.NewStatus(0x00205013)

		Expect(s.Present()).To(BeTrue())
		Expect(s.Alive()).To(BeTrue())
		Expect(s.Mode()).To(Equal(protocol.ModeOper))
		Expect(s.DisableCause()).To(Equal(protocol.DisableNotActive))
		Expect(s.DisableCause().String()).To(Equal("Motor power is DISABLED because axis is NOT ACTIVE"))
		Expect(s.Ready()).To(BeFalse())
		Expect(s.Moving()).To(BeFalse())
		Expect(s.StopCode()).To(Equal(protocol.StopCode(1)))
		Expect(s.StopCode().String()).To(Equal("Last motion stopped by a STOP command"))
		Expect(s.FivevPower()).To(BeTrue())
	})
})

var _ = Describe("ParseFirmwareVersion", func() {
	It("parses the nested SYSTEM/CONTROLLER/DRIVER tree", func() {
		lines := []string{
			"SYSTEM   3.17",
			"   CONTROLLER",
			"      VER   3.17 Jan 12 2021",
			"      DSP   3.10 Jan 12 2021",
			"   DRIVER",
			"      VER   3.17 Jan 12 2021",
			"      DSP   3.10 Jan 12 2021",
		}

		fw, err := protocol.ParseFirmwareVersion(lines)
		Expect(err).NotTo(HaveOccurred())
		Expect(fw.System.VER.Version).To(Equal(3.17))
		Expect(fw.System.Controller.VER.Timestamp).To(Equal("Jan 12 2021"))
		Expect(fw.System.Driver.DSP.Version).To(Equal(3.10))
	})
})

var _ = Describe("binary block framing", func() {
	It("round trips the header and checksum", func() {
		words := protocol.EncodeWords(protocol.DTypeInt32, []float64{1, -2, 3})
		hdr := protocol.EncodeBlockHeader(words)

		n, sum, err := protocol.DecodeBlockHeader(hdr)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(len(words)))
		Expect(sum).To(Equal(protocol.Checksum(words)))
	})

	It("rejects a bad start mark", func() {
		hdr := make([]byte, 12)
		_, _, err := protocol.DecodeBlockHeader(hdr)
		Expect(err).To(HaveOccurred())
	})
})
