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

// Package axis implements the per-axis command surface: registers,
// velocity/acceleration, motion commands, homing, tracking, ecam and the
// table uploads (ecam/list/pardat).
package axis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
	"github.com/ALBA-Synchrotron/pyIcePAP/protocol"
	"github.com/ALBA-Synchrotron/pyIcePAP/session"
)

// commander is the subset of controller.Controller an Axis needs; kept as
// a narrow interface so axis never imports controller (controller imports
// axis indirectly only through group, never the reverse).
type commander interface {
	Do(ctx context.Context, cmd string) (string, error)
}

// sessionCommander adapts a *session.Session to commander.
type sessionCommander struct{ s *session.Session }

func (c sessionCommander) Do(ctx context.Context, cmd string) (string, error) { return c.s.Do(ctx, cmd) }

// Axis is a handle to one addressable driver.
type Axis struct {
	addr address.Address
	cmd  commander
	sess *session.Session // needed for table uploads (SendBlock)
}

// New builds an Axis bound to sess at addr.
func New(sess *session.Session, addr address.Address) *Axis {
	return &Axis{addr: addr, cmd: sessionCommander{sess}, sess: sess}
}

func (a *Axis) Address() address.Address { return a.addr }

func (a *Axis) do(ctx context.Context, cmd string) (string, error) {
	return a.cmd.Do(ctx, fmt.Sprintf("%d:%s", a.addr.Int(), cmd))
}

// Power reports whether the driver's power stage is enabled.
func (a *Axis) Power(ctx context.Context) (bool, error) {
	reply, err := a.do(ctx, "?POWER")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(reply), "ON"), nil
}

// SetPower turns the power stage on or off.
func (a *Axis) SetPower(ctx context.Context, on bool) error {
	state := "OFF"
	if on {
		state = "ON"
	}
	_, err := a.do(ctx, "POWER "+state)
	return err
}

// Name returns the user-assigned axis name.
func (a *Axis) Name(ctx context.Context) (string, error) {
	reply, err := a.do(ctx, "?NAME")
	return strings.TrimSpace(reply), err
}

// SetName assigns name to the axis.
func (a *Axis) SetName(ctx context.Context, name string) error {
	_, err := a.do(ctx, "NAME "+name)
	return err
}

// Status returns the 32-bit status word.
func (a *Axis) Status(ctx context.Context) (protocol.Status, error) {
	reply, err := a.do(ctx, "?STATUS")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(reply), 16, 32)
	if err != nil {
		return 0, icerr.Protocolf("axis %d STATUS: bad value %q", a.addr.Int(), reply)
	}
	return protocol.NewStatus(uint32(v)), nil
}

// FStatus is the fast status query, falling back to the slow ?STATUS on
// a firmware that only implements the legacy dialect.
func (a *Axis) FStatus(ctx context.Context) (protocol.Status, error) {
	reply, err := a.do(ctx, "?FSTATUS")
	if icerr.IsCommand(err) {
		return a.Status(ctx)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(reply), 16, 32)
	if err != nil {
		return 0, icerr.Protocolf("axis %d FSTATUS: bad value %q", a.addr.Int(), reply)
	}
	return protocol.NewStatus(uint32(v)), nil
}

// Velocity returns the configured velocity register.
func (a *Axis) Velocity(ctx context.Context) (float64, error) {
	return a.getFloat(ctx, "?VELOCITY")
}

// SetVelocity sets the velocity register.
func (a *Axis) SetVelocity(ctx context.Context, v float64) error {
	_, err := a.do(ctx, fmt.Sprintf("VELOCITY %g", v))
	return err
}

// AccTime returns the configured acceleration time register.
func (a *Axis) AccTime(ctx context.Context) (float64, error) {
	return a.getFloat(ctx, "?ACCTIME")
}

// SetAccTime sets the acceleration time register.
func (a *Axis) SetAccTime(ctx context.Context, v float64) error {
	_, err := a.do(ctx, fmt.Sprintf("ACCTIME %g", v))
	return err
}

func (a *Axis) getFloat(ctx context.Context, cmd string) (float64, error) {
	reply, err := a.do(ctx, cmd)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(reply), 64)
	if err != nil {
		return 0, icerr.Protocolf("axis %d %s: bad value %q", a.addr.Int(), cmd, reply)
	}
	return v, nil
}

// Move issues an absolute move of this single axis.
func (a *Axis) Move(ctx context.Context, pos int64) error {
	_, err := a.do(ctx, fmt.Sprintf("MOVE %d", pos))
	return err
}

// RMove issues a relative move.
func (a *Axis) RMove(ctx context.Context, delta int64) error {
	_, err := a.do(ctx, fmt.Sprintf("RMOVE %d", delta))
	return err
}

// CMove issues a continuous move in the given direction (+1/-1).
func (a *Axis) CMove(ctx context.Context, dir int) error {
	_, err := a.do(ctx, fmt.Sprintf("CMOVE %d", dir))
	return err
}

// Jog starts a velocity-controlled jog at speed (signed).
func (a *Axis) Jog(ctx context.Context, speed float64) error {
	_, err := a.do(ctx, fmt.Sprintf("JOG %g", speed))
	return err
}

// CJog starts a continuous jog in direction dir (+1/-1).
func (a *Axis) CJog(ctx context.Context, dir int) error {
	_, err := a.do(ctx, fmt.Sprintf("CJOG %d", dir))
	return err
}

// Stop stops this axis with controlled deceleration.
func (a *Axis) Stop(ctx context.Context) error {
	_, err := a.do(ctx, "STOP")
	return err
}

// Abort stops this axis immediately.
func (a *Axis) Abort(ctx context.Context) error {
	_, err := a.do(ctx, "ABORT")
	return err
}
