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

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/group"
)

// runMotion drives one mpb bar per moving axis off group.MotionGenerator,
// the Go counterpart of the reference CLI's prompt_toolkit progress bar:
// each bar's current value is the axis's traveled distance from its
// position when the move started, its total the full distance to target.
func runMotion(ctx context.Context, g *group.Group, addrs []address.Address, targets []int64) error {
	initial, err := g.GetPos(ctx)
	if err != nil {
		return err
	}

	p := mpb.New(mpb.WithWidth(48))
	bars := make([]*mpb.Bar, len(addrs))
	for i, a := range addrs {
		total := abs64(targets[i] - initial[i])
		if total == 0 {
			total = 1
		}
		bars[i] = p.AddBar(total,
			mpb.PrependDecorators(decor.Name(fmt.Sprintf("axis %d", a.Int()), decor.WC{W: 10})),
			mpb.AppendDecorators(decor.CountersNoUnit("%d / %d"), decor.Percentage(decor.WCSyncSpace)),
		)
	}

	gen := group.NewMotionGenerator(g)
	limiter := group.NewRateLimiter(100 * time.Millisecond)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		_, positions, more, err := gen.Next(ctx)
		if err != nil {
			return err
		}

		for i := range addrs {
			traveled := abs64(positions[i] - initial[i])
			total := abs64(targets[i] - initial[i])
			if total == 0 {
				bars[i].SetCurrent(1)
				continue
			}
			if traveled > total {
				traveled = total
			}
			bars[i].SetCurrent(traveled)
		}

		if !more {
			break
		}
	}

	p.Wait()
	return nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
