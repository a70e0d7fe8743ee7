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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ALBA-Synchrotron/pyIcePAP/console"
)

func newVerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ver",
		Short: "Print a summary of the firmware version tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			fw, err := a.ctrl.Version(cmd.Context())
			if err != nil {
				return err
			}
			console.ColorPrint.Printf("SYSTEM %g\n", fw.System.VER.Version)
			console.ColorPrint.Printf("CONTROLLER VER=%g DSP=%g FPGA=%g\n",
				fw.System.Controller.VER.Version, fw.System.Controller.DSP.Version, fw.System.Controller.FPGA.Version)
			console.ColorPrint.Printf("DRIVER VER=%g\n", fw.System.Driver.VER.Version)
			return nil
		},
	}
}

func newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Print the current system operation mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			mode, err := a.ctrl.Mode(cmd.Context())
			if err != nil {
				return err
			}
			console.ColorPrint.Println(mode.String())
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var rack int

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the whole system, or a single rack with --rack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			if err := a.ctrl.Reset(cmd.Context(), rack); err != nil {
				return err
			}
			console.ColorOK.Println("reset issued")
			return nil
		},
	}
	cmd.Flags().IntVar(&rack, "rack", -1, "rack to reset; omit to reset the whole system")
	return cmd
}

func newRebootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reboot",
		Short: "Power-cycle the whole system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			if err := a.ctrl.Reboot(cmd.Context()); err != nil {
				return err
			}
			console.ColorOK.Println("reboot issued")
			return nil
		},
	}
}

func newRInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rinfo",
		Short: "Print a summary of each present rack (rack number, axis count)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			racks, err := a.ctrl.FindRacks(ctx)
			if err != nil {
				return err
			}

			t := newTableFor(a, []string{"Rack #", "Axes"})
			for _, r := range racks {
				axes, err := a.ctrl.FindAxes(ctx, r)
				if err != nil {
					return err
				}
				t.Append([]string{strconv.Itoa(r), strconv.Itoa(len(axes))})
			}
			t.Render()
			return nil
		},
	}
}

func newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <command>",
		Short: "Send a raw command and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			raw := joinArgs(args)
			reply, err := a.ctrl.Send(cmd.Context(), raw)
			if err != nil {
				return err
			}
			fmt.Println(reply)
			return nil
		},
	}
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}
