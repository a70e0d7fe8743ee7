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
	"github.com/ALBA-Synchrotron/pyIcePAP/axis"
	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/selector"
	"github.com/ALBA-Synchrotron/pyIcePAP/group"
)

func buildGroup(a *app, addrs []address.Address) *group.Group {
	axes := make([]*axis.Axis, len(addrs))
	for i, addr := range addrs {
		axes[i] = axis.New(a.ctrl.Session(), addr)
	}
	return group.New(a.ctrl, axes)
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <axis> <position> [<axis> <position> ...]",
		Short: "Move the given axes to absolute positions, together",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			addrs, targets, err := selector.ParsePairs(args)
			if err != nil {
				return err
			}

			g := buildGroup(a, addrs)
			if err := g.StartMove(ctx, targets); err != nil {
				return err
			}
			return runMotion(ctx, g, addrs, targets)
		},
	}
}
