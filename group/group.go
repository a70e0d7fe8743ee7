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

// Package group composes a homogeneous set of axes belonging to the same
// controller into atomic multi-axis operations, and drives the
// cooperative motion-progress loop described by the command surface:
// a pull-based generator, an ensure-power scope and a rate limiter.
package group

import (
	"context"
	"time"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/axis"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
	"github.com/ALBA-Synchrotron/pyIcePAP/protocol"
)

// Group holds an ordered set of axes and exposes the atomic multi-axis
// operations the controller guarantees, plus per-axis fallback accessors
// so one unreachable axis never aborts the whole fan-out result.
type Group struct {
	ctrl  *controller.Controller
	addrs []address.Address
	axes  []*axis.Axis // parallel to addrs
}

// New builds a Group over axes, issuing its multi-axis commands through
// ctrl. It does not check that the axes belong to ctrl, and an empty
// axes slice yields an empty Group.
func New(ctrl *controller.Controller, axes []*axis.Axis) *Group {
	addrs := make([]address.Address, len(axes))
	for i, a := range axes {
		addrs[i] = a.Address()
	}
	return &Group{ctrl: ctrl, addrs: addrs, axes: append([]*axis.Axis(nil), axes...)}
}

// Addrs returns the group's axis addresses, in order.
func (g *Group) Addrs() []address.Address { return g.addrs }

// Axes returns the group's axis handles, in order.
func (g *Group) Axes() []*axis.Axis { return g.axes }

// GetStatus returns one status word per axis. It tries the one-shot
// multi-axis fan-out first and, on any failure, falls back to a
// per-axis query substituting the zero Status for an axis that also
// fails - preserving the ordered result length either way.
func (g *Group) GetStatus(ctx context.Context) ([]protocol.Status, error) {
	if v, err := g.ctrl.GetStatus(ctx, g.addrs); err == nil {
		return v, nil
	}
	out := make([]protocol.Status, len(g.axes))
	for i, a := range g.axes {
		if s, err := a.Status(ctx); err == nil {
			out[i] = s
		}
	}
	return out, nil
}

// GetPos returns one axis-register position per axis, with the same
// fan-out/fallback behavior as GetStatus.
func (g *Group) GetPos(ctx context.Context) ([]int64, error) {
	if v, err := g.ctrl.GetPos(ctx, g.addrs); err == nil {
		return v, nil
	}
	out := make([]int64, len(g.axes))
	for i, a := range g.axes {
		if p, err := a.PosAxis(ctx); err == nil {
			out[i] = p
		}
	}
	return out, nil
}

// GetFPos is GetPos using the fast query dialect, with the same
// fan-out/fallback behavior as GetStatus.
func (g *Group) GetFPos(ctx context.Context) ([]int64, error) {
	if v, err := g.ctrl.GetFPos(ctx, g.addrs); err == nil {
		return v, nil
	}
	out := make([]int64, len(g.axes))
	for i, a := range g.axes {
		if p, err := a.FPos(ctx); err == nil {
			out[i] = p
		}
	}
	return out, nil
}

// GetVelocity returns the velocity register of each axis.
func (g *Group) GetVelocity(ctx context.Context) ([]float64, error) {
	out := make([]float64, len(g.axes))
	for i, a := range g.axes {
		v, err := a.Velocity(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// GetAccTime returns the acceleration-time register of each axis.
func (g *Group) GetAccTime(ctx context.Context) ([]float64, error) {
	out := make([]float64, len(g.axes))
	for i, a := range g.axes {
		v, err := a.AccTime(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// GetPower returns one power state per axis, with the same fan-out /
// per-axis fallback behavior as GetStatus.
func (g *Group) GetPower(ctx context.Context) ([]bool, error) {
	if v, err := g.ctrl.GetPower(ctx, g.addrs); err == nil {
		return v, nil
	}
	out := make([]bool, len(g.axes))
	for i, a := range g.axes {
		if p, err := a.Power(ctx); err == nil {
			out[i] = p
		}
	}
	return out, nil
}

// IsMoving reports whether any axis in the group is currently moving.
func (g *Group) IsMoving(ctx context.Context) (bool, error) {
	states, err := g.GetStatus(ctx)
	if err != nil {
		return false, err
	}
	for _, s := range states {
		if s.Moving() {
			return true, nil
		}
	}
	return false, nil
}

// StartMove issues an atomic group move: targets[i] is the absolute
// destination of the i-th group axis. All listed axes start together.
func (g *Group) StartMove(ctx context.Context, targets []int64) error {
	if len(targets) != len(g.addrs) {
		return icerr.Usagef("StartMove: %d axes but %d targets", len(g.addrs), len(targets))
	}
	return g.ctrl.Move(ctx, g.specs(targets))
}

// StartRMove issues an atomic group relative move.
func (g *Group) StartRMove(ctx context.Context, deltas []int64) error {
	if len(deltas) != len(g.addrs) {
		return icerr.Usagef("StartRMove: %d axes but %d deltas", len(g.addrs), len(deltas))
	}
	return g.ctrl.RMove(ctx, g.specs(deltas))
}

// StartStop issues a controlled stop to every axis in the group.
func (g *Group) StartStop(ctx context.Context) error {
	return g.ctrl.Stop(ctx, g.addrs)
}

// StartAbort issues an immediate stop to every axis in the group.
func (g *Group) StartAbort(ctx context.Context) error {
	return g.ctrl.Abort(ctx, g.addrs)
}

// WaitStopped polls IsMoving at interval until it reports false or
// timeout elapses. A non-positive timeout waits indefinitely (bounded
// only by ctx). Returns false if timeout elapsed while still moving.
func (g *Group) WaitStopped(ctx context.Context, timeout, interval time.Duration) (bool, error) {
	deadline := time.Time{}
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		moving, err := g.IsMoving(ctx)
		if err != nil {
			return false, err
		}
		if !moving {
			return true, nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (g *Group) specs(values []int64) []controller.MoveSpec {
	specs := make([]controller.MoveSpec, len(g.addrs))
	for i, a := range g.addrs {
		specs[i] = controller.MoveSpec{Addr: a, Target: values[i]}
	}
	return specs
}
