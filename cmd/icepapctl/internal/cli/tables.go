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
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/selector"
)

func newTableFor(a *app, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	if a.cfg.TableStyle == "plain" {
		t.SetBorder(false)
		t.SetColumnSeparator("")
		t.SetCenterSeparator("")
	}
	return t
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state <selector>",
		Short: "Print a summary of each axis's state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			addrs, err := selector.Parse(ctx, a.ctrl, args[0])
			if err != nil {
				return err
			}

			g := buildGroup(a, addrs)
			states, err := g.GetStatus(ctx)
			if err != nil {
				return err
			}
			positions, err := g.GetFPos(ctx)
			if err != nil {
				return err
			}

			t := newTableFor(a, []string{"Axis", "Pos.", "Ready", "Alive", "Pres.", "Power", "5V", "Lim-", "Lim+", "Warn"})
			for i, addr := range addrs {
				s := states[i]
				t.Append([]string{
					addr.String(),
					strconv.FormatInt(positions[i], 10),
					yesNo(s.Ready()),
					yesNo(s.Alive()),
					yesNo(s.Present()),
					yesNo(s.PowerOn()),
					yesNo(s.FivevPower()),
					yesNo(s.LimitNegative()),
					yesNo(s.LimitPositive()),
					yesNo(s.Warning()),
				})
			}
			t.Render()
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <selector>",
		Short: "Print a summary of each axis's status (position, velocity, acceleration time)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			addrs, err := selector.Parse(ctx, a.ctrl, args[0])
			if err != nil {
				return err
			}

			g := buildGroup(a, addrs)
			states, err := g.GetStatus(ctx)
			if err != nil {
				return err
			}
			positions, err := g.GetFPos(ctx)
			if err != nil {
				return err
			}
			vel, err := g.GetVelocity(ctx)
			if err != nil {
				return err
			}
			acc, err := g.GetAccTime(ctx)
			if err != nil {
				return err
			}

			t := newTableFor(a, []string{"Axis", "Pos.", "Ready", "Vel.", "Acc. T."})
			for i, addr := range addrs {
				t.Append([]string{
					addr.String(),
					strconv.FormatInt(positions[i], 10),
					yesNo(states[i].Ready()),
					fmt.Sprintf("%g", vel[i]),
					fmt.Sprintf("%g", acc[i]),
				})
			}
			t.Render()
			return nil
		},
	}
}

func newPosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pos <selector>",
		Short: "Print a detailed position summary for each axis (axis, absolute encoder, motor encoder)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			addrs, err := selector.Parse(ctx, a.ctrl, args[0])
			if err != nil {
				return err
			}

			g := buildGroup(a, addrs)

			t := newTableFor(a, []string{"Axis", "AXIS", "ENC", "ABSENC", "MOTOR"})
			for i, addr := range addrs {
				ax := g.Axes()[i]
				posAxis, err := ax.PosAxis(ctx)
				if err != nil {
					return err
				}
				encAxis, err := ax.EncAxis(ctx)
				if err != nil {
					return err
				}
				absEnc, err := ax.PosAbsEnc(ctx)
				if err != nil {
					return err
				}
				encMotor, err := ax.EncMotor(ctx)
				if err != nil {
					return err
				}
				t.Append([]string{
					addr.String(),
					strconv.FormatInt(posAxis, 10),
					strconv.FormatInt(encAxis, 10),
					strconv.FormatInt(absEnc, 10),
					strconv.FormatInt(encMotor, 10),
				})
			}
			t.Render()
			return nil
		},
	}
}
