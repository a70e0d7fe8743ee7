/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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
 */

// Package console provides the colored, interactive terminal surface used by
// the icepapctl command line and REPL: colored output, padding helpers and
// prompts, layered over fatih/color.
package console

import (
	"fmt"
	"sync"

	"github.com/fatih/color"
)

// ColorType identifies a named color scheme (prompt text, status lines, ...).
type ColorType uint8

const (
	// ColorPrint is used for normal informational output.
	ColorPrint ColorType = iota
	// ColorPrompt is used for interactive prompts.
	ColorPrompt
	// ColorWarn is used for warning-level status lines.
	ColorWarn
	// ColorError is used for error-level status lines.
	ColorError
	// ColorOK is used for success confirmations.
	ColorOK
)

var lst sync.Map // ColorType -> color.Color

func GetColorType(id uint8) ColorType {
	return ColorType(id)
}

// SetColor configures the color attributes associated with a ColorType.
func SetColor(id ColorType, value ...int) {
	var cols = make([]color.Attribute, 0, len(value))

	for _, v := range value {
		cols = append(cols, color.Attribute(v))
	}

	a := color.New(cols...)
	if a == nil {
		lst.Store(id, color.Color{})
	} else {
		lst.Store(id, *a)
	}
}

// GetColor returns the color.Color registered for id, or an uncolored default.
func GetColor(id ColorType) *color.Color {
	if v, ok := lst.Load(id); ok {
		c := v.(color.Color)
		return &c
	}

	return &color.Color{}
}

func DelColor(id ColorType) {
	lst.Delete(id)
}

func (c ColorType) SetColor(col *color.Color) {
	if col == nil {
		lst.Store(c, color.Color{})
	} else {
		lst.Store(c, *col)
	}
}

func (c ColorType) Println(text string) {
	_, _ = GetColor(c).Println(text)
}

func (c ColorType) Print(text string) {
	_, _ = GetColor(c).Print(text)
}

func (c ColorType) Sprintf(format string, args ...interface{}) string {
	return GetColor(c).Sprintf(format, args...)
}

func (c ColorType) Printf(format string, args ...interface{}) {
	c.Print(fmt.Sprintf(format, args...))
}

func (c ColorType) PrintLnf(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

func init() {
	SetColor(ColorWarn, int(color.FgYellow))
	SetColor(ColorError, int(color.FgRed), int(color.Bold))
	SetColor(ColorOK, int(color.FgGreen))
	SetColor(ColorPrompt, int(color.FgCyan))
}
