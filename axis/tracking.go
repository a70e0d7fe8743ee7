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

package axis

import (
	"context"
	"strings"
)

// EcamMode selects the electronic cam output mode.
type EcamMode string

const (
	EcamOff   EcamMode = "OFF"
	EcamPulse EcamMode = "PULSE"
	EcamLow   EcamMode = "LOW"
	EcamHigh  EcamMode = "HIGH"
)

// Ecam reports the current electronic-cam output mode.
func (a *Axis) Ecam(ctx context.Context) (EcamMode, error) {
	reply, err := a.do(ctx, "?ECAM")
	if err != nil {
		return "", err
	}
	return EcamMode(strings.ToUpper(strings.TrimSpace(reply))), nil
}

// SetEcam sets the electronic-cam output mode.
func (a *Axis) SetEcam(ctx context.Context, mode EcamMode) error {
	_, err := a.do(ctx, "ECAM "+string(mode))
	return err
}

// Track starts following the master axis named by source.
func (a *Axis) Track(ctx context.Context, source string) error {
	_, err := a.do(ctx, "TRACK "+source)
	return err
}

// PTrack starts positional tracking (absolute position following).
func (a *Axis) PTrack(ctx context.Context, source string) error {
	_, err := a.do(ctx, "PTRACK "+source)
	return err
}

// LTrack starts tracking bound to the table loaded via SetListTable.
func (a *Axis) LTrack(ctx context.Context, source string) error {
	_, err := a.do(ctx, "LTRACK "+source)
	return err
}

// StopTrack stops any tracking mode in effect, equivalent to a plain STOP
// but kept distinct for readability at call sites.
func (a *Axis) StopTrack(ctx context.Context) error {
	return a.Stop(ctx)
}
