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
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/ALBA-Synchrotron/pyIcePAP/console"
)

var shellVerbs = []prompt.Suggest{
	{Text: "?STATUS", Description: "query an axis's status word"},
	{Text: "?POS", Description: "query an axis's position"},
	{Text: "?VER INFO", Description: "query the full firmware version tree"},
	{Text: "?MODE", Description: "query the system operation mode"},
	{Text: "MOVE", Description: "start an absolute move"},
	{Text: "RMOVE", Description: "start a relative move"},
	{Text: "STOP", Description: "stop an axis"},
	{Text: "exit", Description: "leave the shell"},
}

// shell is the interactive REPL backing "icepapctl shell": every line is
// sent to the controller as a raw command and the reply is printed,
// the Go counterpart of the reference tooling's prompt_toolkit REPL.
type shell struct {
	ctx context.Context
	a   *app
}

func (s *shell) executor(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
		console.ColorPrint.Println("bye")
		os.Exit(0)
	}

	reply, err := s.a.ctrl.Send(s.ctx, line)
	if err != nil {
		console.ColorError.Println(err.Error())
		return
	}
	console.ColorPrint.Println(reply)
}

func (s *shell) completer(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	return prompt.FilterHasPrefix(shellVerbs, word, true)
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive command shell against the connected controller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &shell{ctx: cmd.Context(), a: appFrom(cmd)}
			p := prompt.New(
				s.executor,
				s.completer,
				prompt.OptPrefix("icepap> "),
				prompt.OptTitle("icepapctl shell"),
			)
			p.Run()
			return nil
		},
	}
}
