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

package config_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "config suite")
}

var _ = Describe("Bind and Load", func() {
	It("resolves defaults when nothing is overridden", func() {
		v := viper.New()
		flags := pflag.NewFlagSet("icepapctl", pflag.ContinueOnError)
		config.Bind(v, flags)
		Expect(flags.Parse(nil)).To(Succeed())

		cfg, err := config.Load(v, flags)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Host).To(Equal("localhost"))
		Expect(cfg.Port).To(Equal(5000))
		Expect(cfg.IOTimeout).To(Equal(3 * time.Second))
		Expect(cfg.Simulate).To(BeFalse())
	})

	It("lets explicit flags override the defaults", func() {
		v := viper.New()
		flags := pflag.NewFlagSet("icepapctl", pflag.ContinueOnError)
		config.Bind(v, flags)
		Expect(flags.Parse([]string{"--host", "rack0", "--port", "5001", "--simulate"})).To(Succeed())

		cfg, err := config.Load(v, flags)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Host).To(Equal("rack0"))
		Expect(cfg.Port).To(Equal(5001))
		Expect(cfg.Simulate).To(BeTrue())
	})
})
