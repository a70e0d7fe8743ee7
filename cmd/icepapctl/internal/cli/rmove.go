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
	"github.com/spf13/cobra"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/selector"
	"github.com/ALBA-Synchrotron/pyIcePAP/group"
)

func newRMoveCmd() *cobra.Command {
	var multiple bool

	cmd := &cobra.Command{
		Use:   "rmove <axis> <delta> [<axis> <delta> ...]",
		Short: "Move the given axes by relative deltas",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			addrs, deltas, err := selector.ParsePairs(args)
			if err != nil {
				return err
			}

			g := buildGroup(a, addrs)

			if multiple {
				return rmoveSequential(cmd, g, addrs, deltas)
			}

			initial, err := g.GetPos(ctx)
			if err != nil {
				return err
			}
			targets := make([]int64, len(initial))
			for i := range initial {
				targets[i] = initial[i] + deltas[i]
			}

			if err := g.StartRMove(ctx, deltas); err != nil {
				return err
			}
			return runMotion(ctx, g, addrs, targets)
		},
	}

	cmd.Flags().BoolVarP(&multiple, "multiple", "m", false, "move each axis in turn instead of all together")
	return cmd
}

// rmoveSequential moves one axis at a time, waiting for it to stop before
// starting the next - the turn-based variant of a group relative move
// that --multiple opts into.
func rmoveSequential(cmd *cobra.Command, g *group.Group, addrs []address.Address, deltas []int64) error {
	ctx := cmd.Context()

	for i := range addrs {
		axisGroup := buildGroup(appFrom(cmd), addrs[i:i+1])

		pos, err := axisGroup.GetPos(ctx)
		if err != nil {
			return err
		}
		target := []int64{pos[0] + deltas[i]}

		if err := axisGroup.StartRMove(ctx, deltas[i:i+1]); err != nil {
			return err
		}
		if err := runMotion(ctx, axisGroup, addrs[i:i+1], target); err != nil {
			return err
		}
	}
	return nil
}
