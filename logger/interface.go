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

// Package logger wires level, fields and the hook packages into the
// Logger used throughout the controller client: a console hook on
// stderr for warnings/errors plus an optional file hook
// carrying the full command/reply transcript, both fed by a single
// logrus.Logger instance.
package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"

	logcfg "github.com/ALBA-Synchrotron/pyIcePAP/logger/config"
	logfld "github.com/ALBA-Synchrotron/pyIcePAP/logger/fields"
	"github.com/ALBA-Synchrotron/pyIcePAP/logger/hookfile"
	"github.com/ALBA-Synchrotron/pyIcePAP/logger/hookstderr"
	loglvl "github.com/ALBA-Synchrotron/pyIcePAP/logger/level"
)

// Logger is the facade every package in this module logs through. It
// never panics or exits the process - PanicLevel/FatalLevel entries are
// still routed through logrus's default behavior, but callers that want
// to avoid that should stick to Error.
type Logger interface {
	SetLevel(lvl loglvl.Level)
	GetLevel() loglvl.Level

	WithFields(f logfld.Fields) *logrus.Entry

	Debug(args ...interface{})
	Info(args ...interface{})
	Warning(args ...interface{})
	Error(args ...interface{})

	// Close releases the file hook, if one was configured.
	Close() error
}

type logModel struct {
	log  *logrus.Logger
	file hookfile.HookFile
}

// Options configures New.
type Options struct {
	Level loglvl.Level

	// Console, when non-nil, enables the stderr hook.
	Console *logcfg.OptionsStd

	// File, when non-nil, enables the file hook carrying the
	// raw session transcript.
	File *logcfg.OptionsFile
}

// New builds a Logger from opt. A nil Console and nil File both disabled
// still returns a usable Logger whose entries are simply discarded.
func New(opt Options) (Logger, error) {
	l := logrus.New()
	l.SetLevel(opt.Level.Logrus())
	l.SetOutput(nullWriter{})

	m := &logModel{log: l}

	if opt.Console != nil {
		h, e := hookstderr.New(opt.Console, nil, &logrus.TextFormatter{DisableColors: opt.Console.DisableColor})
		if e != nil {
			return nil, e
		}
		if h != nil {
			h.RegisterHook(l)
		}
	}

	if opt.File != nil {
		h, e := hookfile.New(*opt.File, &logrus.JSONFormatter{})
		if e != nil {
			return nil, e
		}
		h.RegisterHook(l)
		m.file = h
	}

	return m, nil
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func (m *logModel) SetLevel(lvl loglvl.Level) { m.log.SetLevel(lvl.Logrus()) }
func (m *logModel) GetLevel() loglvl.Level     { return loglvl.ParseFromUint32(uint32(m.log.GetLevel())) }

func (m *logModel) WithFields(f logfld.Fields) *logrus.Entry {
	if f == nil {
		return logrus.NewEntry(m.log)
	}
	return m.log.WithFields(f.Logrus())
}

func (m *logModel) Debug(args ...interface{})   { m.log.WithField("msg", argsToMsg(args)).Debug("") }
func (m *logModel) Info(args ...interface{})    { m.log.WithField("msg", argsToMsg(args)).Info("") }
func (m *logModel) Warning(args ...interface{}) { m.log.WithField("msg", argsToMsg(args)).Warn("") }
func (m *logModel) Error(args ...interface{})   { m.log.WithField("msg", argsToMsg(args)).Error("") }

func (m *logModel) Close() error {
	if m.file == nil {
		return nil
	}
	return m.file.Close()
}

func argsToMsg(args []interface{}) string {
	if len(args) == 1 {
		if s, ok := args[0].(string); ok {
			return s
		}
	}

	return fmt.Sprint(args...)
}
