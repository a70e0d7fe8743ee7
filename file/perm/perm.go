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

// Package perm parses the file permission a backup snapshot gets written
// with: an octal string ("0644") or a symbolic rwx triplet
// ("rw-r--r--"), the two forms --perm accepts on the command line.
package perm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Perm is a file permission, convertible back to os.FileMode for
// os.WriteFile / os.OpenFile.
type Perm os.FileMode

// Parse accepts an octal string ("0644") or a 9-character symbolic mode
// ("rw-r--r--").
func Parse(s string) (Perm, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseUint(s, 8, 32); err == nil {
		return Perm(v), nil
	}
	return parseSymbolic(s)
}

func parseSymbolic(s string) (Perm, error) {
	if len(s) != 9 {
		return 0, fmt.Errorf("perm: invalid mode %q", s)
	}
	var mode os.FileMode
	for i := 0; i < 3; i++ {
		group := s[i*3 : i*3+3]
		var v os.FileMode
		switch group[0] {
		case 'r':
			v |= 4
		case '-':
		default:
			return 0, fmt.Errorf("perm: invalid read flag in %q", group)
		}
		switch group[1] {
		case 'w':
			v |= 2
		case '-':
		default:
			return 0, fmt.Errorf("perm: invalid write flag in %q", group)
		}
		switch group[2] {
		case 'x':
			v |= 1
		case '-':
		default:
			return 0, fmt.Errorf("perm: invalid execute flag in %q", group)
		}
		mode |= v << uint(6-i*3)
	}
	return Perm(mode), nil
}

// ParseFileMode wraps an os.FileMode, e.g. one read back from os.Stat, as
// a Perm.
func ParseFileMode(m os.FileMode) Perm { return Perm(m) }

// FileMode returns p as an os.FileMode.
func (p Perm) FileMode() os.FileMode { return os.FileMode(p) }

// String renders p as a 4-digit octal string.
func (p Perm) String() string { return fmt.Sprintf("%04o", uint32(p)) }
