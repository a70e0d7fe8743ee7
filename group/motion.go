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

package group

import (
	"context"
	"time"

	"github.com/ALBA-Synchrotron/pyIcePAP/protocol"
)

// MotionGenerator is a pull-based iterator over a group's motion
// progress: each Next reads states and positions once and reports
// whether the axes are still moving, the same shape as the source
// library's gen_motion generator without requiring goroutines.
type MotionGenerator struct {
	g    *Group
	done bool
}

// NewMotionGenerator returns a generator over g. Call Next in a loop;
// it stops yielding once no axis in the group reports moving.
func NewMotionGenerator(g *Group) *MotionGenerator {
	return &MotionGenerator{g: g}
}

// Next reads one (states, positions) sample. more is false once the
// sample shows every axis stopped; the caller should not call Next
// again after more is false.
func (m *MotionGenerator) Next(ctx context.Context) (states []protocol.Status, positions []int64, more bool, err error) {
	if m.done {
		return nil, nil, false, nil
	}

	states, err = m.g.GetStatus(ctx)
	if err != nil {
		return nil, nil, false, err
	}
	positions, err = m.g.GetPos(ctx)
	if err != nil {
		return nil, nil, false, err
	}

	moving := false
	for _, s := range states {
		if s.Moving() {
			moving = true
			break
		}
	}
	if !moving {
		m.done = true
	}
	return states, positions, moving, nil
}

// RateLimiter spaces successive MotionGenerator samples so the caller's
// poll loop runs no faster than period, sleeping the residual time since
// the previous tick - mirroring gen_rate_limiter's monotonic bookkeeping.
type RateLimiter struct {
	period time.Duration
	last   time.Time
}

// NewRateLimiter returns a limiter that never sleeps before its first
// Wait call.
func NewRateLimiter(period time.Duration) *RateLimiter {
	return &RateLimiter{period: period}
}

// Wait blocks until period has elapsed since the previous Wait call (a
// no-op the first time), or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r.last.IsZero() {
		r.last = time.Now()
		return nil
	}

	nap := r.period - time.Since(r.last)
	if nap > 0 {
		select {
		case <-time.After(nap):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.last = time.Now()
	return nil
}

// EnsurePower ensures every axis in g is powered to match on, returning a
// restore function that flips back only the axes this call actually
// changed - safe to nest, since each call only ever touches the delta it
// itself introduced. Call restore via defer, including on the error path,
// per the scoped-acquisition contract in the component design.
func EnsurePower(ctx context.Context, g *Group, on bool) (restore func(context.Context) error, err error) {
	powers, err := g.GetPower(ctx)
	if err != nil {
		return nil, err
	}

	var flipped []int
	for i, p := range powers {
		if p != on {
			if err := g.ctrl.SetPower(ctx, g.addrs[i], on); err != nil {
				// unwind whatever we already flipped before surfacing the error
				for _, j := range flipped {
					_ = g.ctrl.SetPower(ctx, g.addrs[j], !on)
				}
				return nil, err
			}
			flipped = append(flipped, i)
		}
	}

	restore = func(ctx context.Context) error {
		var firstErr error
		for _, i := range flipped {
			if err := g.ctrl.SetPower(ctx, g.addrs[i], !on); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
	return restore, nil
}
