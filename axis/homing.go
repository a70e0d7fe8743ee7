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
	"fmt"
	"strings"
)

// Signal identifies one of the INFOA/INFOB/INFOC sync lines.
type Signal string

const (
	SignalLimitPositive Signal = "LIM+"
	SignalLimitNegative Signal = "LIM-"
	SignalHome          Signal = "HOME"
	SignalEncAux        Signal = "ENCAUX"
)

// Polarity is the configured active level of a sync signal.
type Polarity uint8

const (
	PolarityNormal Polarity = iota
	PolarityInverted
)

func (p Polarity) String() string {
	if p == PolarityInverted {
		return "NORMAL_INV"
	}
	return "NORMAL"
}

// SetInfo configures one of the three info lines (A/B/C) with its signal
// and polarity.
func (a *Axis) SetInfo(ctx context.Context, line string, sig Signal, pol Polarity) error {
	_, err := a.do(ctx, fmt.Sprintf("CFGINFO%s %s %s", line, sig, pol))
	return err
}

// HomeStatus reports the outcome of the last HOME search.
func (a *Axis) HomeStatus(ctx context.Context) (string, error) {
	reply, err := a.do(ctx, "?HOMESTAT")
	return strings.TrimSpace(reply), err
}

// SrchStatus reports the outcome of the last SRCH search.
func (a *Axis) SrchStatus(ctx context.Context) (string, error) {
	reply, err := a.do(ctx, "?SRCHSTAT")
	return strings.TrimSpace(reply), err
}

// Home starts a home search in the given direction. The command is sent
// twice: firmware before 3.x silently drops the first CFGHOME write while
// the driver is still applying a prior configuration change, so the
// reference tooling always repeats it once before trusting the result.
func (a *Axis) Home(ctx context.Context, dir int) error {
	cmd := fmt.Sprintf("HOME %d", dir)
	if _, err := a.do(ctx, cmd); err != nil {
		return err
	}
	_, err := a.do(ctx, cmd)
	return err
}

// Srch starts a search for signal, stopping on the given edge ("RISING"
// or "FALLING") while moving in direction dir.
func (a *Axis) Srch(ctx context.Context, sig Signal, edge string, dir int) error {
	_, err := a.do(ctx, fmt.Sprintf("SRCH %s %s %d", sig, edge, dir))
	return err
}
