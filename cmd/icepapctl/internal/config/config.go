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

// Package config layers icepapctl's runtime configuration (connection
// target, timeouts, logging) over flags, environment variables and an
// optional config file using github.com/spf13/viper.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the fully resolved set of options driving one icepapctl
// invocation.
type Config struct {
	Host           string
	Port           int
	IOTimeout      time.Duration
	ConnectTimeout time.Duration
	Simulate       bool

	LogLevel string
	LogFile  string

	TableStyle string
}

// Bind registers the flags shared by every subcommand on root's persistent
// flag set and ties them to v, so CLI flags win over environment variables,
// which win over a config file, which wins over the defaults below.
func Bind(v *viper.Viper, flags *pflag.FlagSet) {
	flags.String("host", "localhost", "controller host name or address")
	flags.Int("port", 5000, "controller TCP port")
	flags.String("io-timeout", "3s", "per-command I/O timeout (Go duration syntax, e.g. 1h30m)")
	flags.String("connect-timeout", "3s", "connection timeout (Go duration syntax, e.g. 1h30m)")
	flags.Bool("simulate", false, "run against an in-process simulated controller instead of dialing --host")
	flags.String("log-level", "info", "log level: debug, info, warning, error")
	flags.String("log-file", "", "optional file to append a structured session transcript to")
	flags.String("table-style", "rounded", "table border style for state/status/pos/rinfo")
	flags.String("config", "", "optional config file (yaml/json/toml) read before flags/env")

	_ = v.BindPFlag("host", flags.Lookup("host"))
	_ = v.BindPFlag("port", flags.Lookup("port"))
	_ = v.BindPFlag("io-timeout", flags.Lookup("io-timeout"))
	_ = v.BindPFlag("connect-timeout", flags.Lookup("connect-timeout"))
	_ = v.BindPFlag("simulate", flags.Lookup("simulate"))
	_ = v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log-file", flags.Lookup("log-file"))
	_ = v.BindPFlag("table-style", flags.Lookup("table-style"))

	v.SetEnvPrefix("ICEPAPCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file named by --config (if any) and
// returns the resolved Config.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if cfgFile, _ := flags.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	ioTimeout, err := time.ParseDuration(v.GetString("io-timeout"))
	if err != nil {
		return Config{}, err
	}
	connTimeout, err := time.ParseDuration(v.GetString("connect-timeout"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Host:           v.GetString("host"),
		Port:           v.GetInt("port"),
		IOTimeout:      ioTimeout,
		ConnectTimeout: connTimeout,
		Simulate:       v.GetBool("simulate"),
		LogLevel:       v.GetString("log-level"),
		LogFile:        v.GetString("log-file"),
		TableStyle:     v.GetString("table-style"),
	}, nil
}
