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

package hookfile

import (
	"os"
	"path/filepath"

	logcfg "github.com/ALBA-Synchrotron/pyIcePAP/logger/config"
	loglvl "github.com/ALBA-Synchrotron/pyIcePAP/logger/level"
	logtps "github.com/ALBA-Synchrotron/pyIcePAP/logger/types"
	"github.com/sirupsen/logrus"
)

// HookFile is a logrus hook appending entries to a file.
type HookFile interface {
	logtps.Hook
}

// New opens opt.Filepath (creating it and its parent directory when
// CreatePath/Create are set) and returns a hook that appends formatted
// entries to it.
func New(opt logcfg.OptionsFile, format logrus.Formatter) (HookFile, error) {
	if opt.Filepath == "" {
		return nil, errMissingFilePath
	}

	lvls := make([]logrus.Level, 0, len(opt.LogLevel))
	if len(opt.LogLevel) > 0 {
		for _, l := range opt.LogLevel {
			lvls = append(lvls, loglvl.Parse(l).Logrus())
		}
	} else {
		lvls = logrus.AllLevels
	}

	if opt.FileMode == 0 {
		opt.FileMode = 0644
	}

	if opt.PathMode == 0 {
		opt.PathMode = 0755
	}

	if opt.CreatePath {
		if e := os.MkdirAll(filepath.Dir(opt.Filepath), opt.PathMode); e != nil {
			return nil, e
		}
	}

	flags := os.O_WRONLY | os.O_APPEND
	if opt.Create {
		flags |= os.O_CREATE
	}

	fh, e := os.OpenFile(opt.Filepath, flags, opt.FileMode)
	if e != nil {
		return nil, e
	}

	n := &hkf{
		o: ohkf{
			format:           format,
			levels:           lvls,
			disableStack:     opt.DisableStack,
			disableTimestamp: opt.DisableTimestamp,
			enableTrace:      opt.EnableTrace,
			enableAccessLog:  opt.EnableAccessLog,
		},
		w: fh,
	}
	n.r.Store(true)

	return n, nil
}
