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
	"strconv"
	"strings"

	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

// Register names one of the ?<REG>/<REG> <val> position/encoder pairs the
// controller exposes. The short-form accessors below (PosAxis, EncMotor,
// ...) are thin wrappers over GetPos/SetPos rather than a reflection-based
// table, so each one is still a concrete, greppable method.
type Register string

const (
	RegAxis   Register = "POS"
	RegIndexer Register = "POS INDEXER"
	RegShftEnc Register = "POS SHFTENC"
	RegTgtEnc Register = "POS TGTENC"
	RegEncIn  Register = "POS ENCIN"
	RegInpos  Register = "POS INPOS"
	RegAbsEnc Register = "POS ABSENC"
	RegMotor  Register = "POS MOTOR"
	RegEncMotor Register = "ENC MOTOR"
	RegEncAxis  Register = "ENC AXIS"
)

// GetPos reads the given position/encoder register.
func (a *Axis) GetPos(ctx context.Context, reg Register) (int64, error) {
	reply, err := a.do(ctx, "?"+string(reg))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(reply), 10, 64)
	if err != nil {
		return 0, icerr.Protocolf("axis %d %s: bad value %q", a.addr.Int(), reg, reply)
	}
	return v, nil
}

// SetPos writes the given position/encoder register.
func (a *Axis) SetPos(ctx context.Context, reg Register, v int64) error {
	_, err := a.do(ctx, fmt.Sprintf("%s %d", reg, v))
	return err
}

func (a *Axis) PosAxis(ctx context.Context) (int64, error)   { return a.GetPos(ctx, RegAxis) }
func (a *Axis) PosAbsEnc(ctx context.Context) (int64, error) { return a.GetPos(ctx, RegAbsEnc) }
func (a *Axis) EncMotor(ctx context.Context) (int64, error)  { return a.GetPos(ctx, RegEncMotor) }
func (a *Axis) EncAxis(ctx context.Context) (int64, error)   { return a.GetPos(ctx, RegEncAxis) }

// FPos is the fast position query, falling back to the slow ?POS on
// firmware that does not implement the fast dialect.
func (a *Axis) FPos(ctx context.Context) (int64, error) {
	reply, err := a.do(ctx, "?FPOS")
	if icerr.IsCommand(err) {
		return a.PosAxis(ctx)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(reply), 10, 64)
	if err != nil {
		return 0, icerr.Protocolf("axis %d FPOS: bad value %q", a.addr.Int(), reply)
	}
	return v, nil
}
