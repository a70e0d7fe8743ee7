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

package protocol

// Source identifies where a table's position column is read from
// (*ECAMDAT/*PARDAT "source" argument).
type Source uint8

const (
	SourceAxis Source = iota
	SourceIndexer
	SourceExternal
	SourceInternal
)

func (s Source) String() string {
	switch s {
	case SourceAxis:
		return "AXIS"
	case SourceIndexer:
		return "INDEXER"
	case SourceExternal:
		return "EXTERNAL"
	case SourceInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// DType identifies the on-wire element type of a table upload.
type DType uint8

const (
	DTypeFloat DType = iota
	DTypeDouble
	DTypeInt32
	DTypeInt8
)

func (d DType) String() string {
	switch d {
	case DTypeFloat:
		return "FLOAT"
	case DTypeDouble:
		return "DOUBLE"
	case DTypeInt32:
		return "DWORD"
	case DTypeInt8:
		return "BYTE"
	default:
		return "UNKNOWN"
	}
}

// TableMode selects cyclic vs. non-cyclic playback for *LISTDAT tables.
type TableMode uint8

const (
	ModeNoCyclic TableMode = iota
	ModeCyclic
)

func (m TableMode) String() string {
	if m == ModeCyclic {
		return "CYCLIC"
	}
	return "NOCYCLIC"
}

// Table is the payload of a *ECAMDAT/*LISTDAT/*PARDAT upload: a source, an
// element type and the column data, in the caller's native slice type.
type Table struct {
	Source Source
	DType  DType
	Mode   TableMode

	Position []float64
	Slope    []float64 // optional, *PARDAT only
}
