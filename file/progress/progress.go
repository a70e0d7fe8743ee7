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

// Package progress wraps a file being read with byte-count callbacks, so
// a firmware image load can drive an upload progress bar off the same
// io.Reader the loader already consumes.
package progress

import (
	"io"
	"os"
)

// FctIncrement is called after every Read with the cumulative number of
// bytes consumed so far.
type FctIncrement func(size int64)

// FctEOF is called once, the first time Read reports io.EOF.
type FctEOF func()

// File wraps an *os.File opened for reading with progress callbacks.
type File struct {
	f      *os.File
	read   int64
	onStep FctIncrement
	onEOF  FctEOF
	didEOF bool
}

// Open opens path for reading with progress tracking.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// SizeEOF returns the remaining byte count from the current position to
// the end of the file.
func (p *File) SizeEOF() (int64, error) {
	info, err := p.f.Stat()
	if err != nil {
		return 0, err
	}
	pos, err := p.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	return info.Size() - pos, nil
}

// RegisterFctIncrement registers fn to run after every Read. A nil fn
// disables the callback.
func (p *File) RegisterFctIncrement(fn FctIncrement) { p.onStep = fn }

// RegisterFctEOF registers fn to run once Read first reports io.EOF.
func (p *File) RegisterFctEOF(fn FctEOF) { p.onEOF = fn }

// Read implements io.Reader, tracking the cumulative byte count and
// firing the registered callbacks.
func (p *File) Read(b []byte) (int, error) {
	n, err := p.f.Read(b)
	if n > 0 {
		p.read += int64(n)
		if p.onStep != nil {
			p.onStep(p.read)
		}
	}
	if err == io.EOF && !p.didEOF {
		p.didEOF = true
		if p.onEOF != nil {
			p.onEOF()
		}
	}
	return n, err
}

// Close closes the underlying file.
func (p *File) Close() error { return p.f.Close() }
