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

// Command icepapctl is the operator-facing CLI and REPL for a multi-axis
// stepper-motor controller: motion, status, backup/restore and firmware
// update, over the same client the controller/axis/group packages expose.
package main

import (
	"os"

	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/cli"
	"github.com/ALBA-Synchrotron/pyIcePAP/console"
	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cli.Execute()
	if err == nil {
		return 0
	}

	console.ColorError.Println(err.Error())

	switch {
	case icerr.IsTimeout(err), icerr.IsConnection(err), icerr.IsProtocol(err):
		return 2
	default:
		return 1
	}
}
