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

// Package cli assembles the icepapctl subcommands over cobra, following
// the teacher's cobra package shape: one command constructor per file,
// registered onto a shared root by Execute.
package cli

import (
	"context"
	"fmt"

	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/config"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
	logcfg "github.com/ALBA-Synchrotron/pyIcePAP/logger"
	lcfg "github.com/ALBA-Synchrotron/pyIcePAP/logger/config"
	loglvl "github.com/ALBA-Synchrotron/pyIcePAP/logger/level"
	"github.com/ALBA-Synchrotron/pyIcePAP/simulator"
)

// app bundles the collaborators every subcommand needs: the open
// controller connection, the resolved configuration and the session
// logger. Built once in root's PersistentPreRunE and torn down in
// PersistentPostRunE.
type app struct {
	cfg  config.Config
	ctrl *controller.Controller
	log  logcfg.Logger
	sim  *simulator.Device
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}

	if cfg.Simulate {
		dev := simulator.New([]int{1, 2, 3, 11, 12})
		addr, err := dev.Start()
		if err != nil {
			return nil, fmt.Errorf("starting simulated controller: %w", err)
		}
		a.sim = dev
		a.ctrl, err = controller.New(ctx, controller.Options{
			Host:           addr,
			IOTimeout:      cfg.IOTimeout,
			ConnectTimeout: cfg.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		log.Info("connected to simulated controller at ", addr)
		return a, nil
	}

	host := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	a.ctrl, err = controller.New(ctx, controller.Options{
		Host:           host,
		IOTimeout:      cfg.IOTimeout,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	if err != nil {
		return nil, err
	}
	log.Info("connected to ", host)
	return a, nil
}

func newLogger(cfg config.Config) (logcfg.Logger, error) {
	opt := logcfg.Options{
		Level: loglvl.Parse(cfg.LogLevel),
		Console: &lcfg.OptionsStd{
			EnableAccessLog: false,
		},
	}

	if cfg.LogFile != "" {
		opt.File = &lcfg.OptionsFile{
			OptionsStd: lcfg.OptionsStd{EnableAccessLog: true},
			Filepath:   cfg.LogFile,
			Create:     true,
			CreatePath: true,
		}
	}

	return logcfg.New(opt)
}

func (a *app) Close() {
	if a.ctrl != nil {
		_ = a.ctrl.Close()
	}
	if a.sim != nil {
		_ = a.sim.Close()
	}
	if a.log != nil {
		_ = a.log.Close()
	}
}
