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

	"github.com/spf13/cobra"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/backup"
	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/selector"
	"github.com/ALBA-Synchrotron/pyIcePAP/console"
	"github.com/ALBA-Synchrotron/pyIcePAP/file/perm"
)

func newSaveCmd() *cobra.Command {
	var selectorArg string
	var permArg string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Capture a configuration snapshot and save it to file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			var addrs []address.Address
			if selectorArg != "" {
				var err error
				addrs, err = selector.Parse(ctx, a.ctrl, selectorArg)
				if err != nil {
					return err
				}
			}

			snap, err := backup.Capture(ctx, a.ctrl, a.cfg.Host, a.cfg.Port, addrs)
			if err != nil {
				return err
			}

			mode, err := perm.Parse(permArg)
			if err != nil {
				return err
			}

			if err := backup.SaveWithPerm(snap, args[0], mode); err != nil {
				return err
			}

			console.ColorOK.Printf("saved %d axes to %s\n", len(snap.Axes), args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&selectorArg, "axes", "", `axis selector ("1,5,151" / "all" / "alive"); defaults to every discovered axis`)
	cmd.Flags().StringVar(&permArg, "perm", "0644", "permissions for the created file (octal or symbolic, e.g. rw-r--r--)")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Compare a saved configuration snapshot against the live controller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			snap, err := backup.Load(args[0])
			if err != nil {
				return err
			}

			diffs, err := backup.Check(ctx, a.ctrl, snap)
			if err != nil {
				return err
			}

			if len(diffs) == 0 {
				console.ColorOK.Println("no differences found")
				return nil
			}

			for _, d := range diffs {
				console.ColorWarn.Printf("axis %d:\n", d.Addr)
				for field, diff := range d.Fields {
					fmt.Printf("  %s: backup=%s live=%s\n", field, diff.Backup, diff.Live)
				}
			}
			return nil
		},
	}
}
