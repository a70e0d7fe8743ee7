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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/config"
)

type appKey struct{}

func withApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

func appFrom(cmd *cobra.Command) *app {
	a, _ := cmd.Context().Value(appKey{}).(*app)
	return a
}

// Execute builds the root command tree and runs it, returning any error
// a subcommand produced so main can map it to an exit code.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "icepapctl",
		Short:         "Command line client for a multi-axis stepper-motor controller",
		Long:          "icepapctl drives a rack-based multi-axis stepper-motor controller over its ASCII command protocol: motion, status, backup/restore and an interactive shell.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cmd.Flags())
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			cmd.SetContext(withApp(cmd.Context(), a))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a := appFrom(cmd); a != nil {
				a.Close()
			}
		},
	}
	root.SetContext(context.Background())

	config.Bind(v, root.PersistentFlags())

	root.AddCommand(
		newMoveCmd(),
		newRMoveCmd(),
		newStopCmd(),
		newStateCmd(),
		newStatusCmd(),
		newPosCmd(),
		newVerCmd(),
		newModeCmd(),
		newResetCmd(),
		newRebootCmd(),
		newRInfoCmd(),
		newSendCmd(),
		newSaveCmd(),
		newCheckCmd(),
		newUpdateCmd(),
		newShellCmd(),
	)

	return root
}
