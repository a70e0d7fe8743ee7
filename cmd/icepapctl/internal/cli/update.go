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
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/cmd/icepapctl/internal/selector"
	"github.com/ALBA-Synchrotron/pyIcePAP/file/progress"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <selector> <firmware-file>",
		Short: "Upload a firmware image to the given axes and track progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()

			addrs, err := selector.Parse(ctx, a.ctrl, args[0])
			if err != nil {
				return err
			}

			words, err := readFirmwareWords(args[1])
			if err != nil {
				return err
			}

			if err := a.ctrl.Sprog(ctx, addrs); err != nil {
				return err
			}

			for _, addr := range addrs {
				if err := a.ctrl.Prog(ctx, addr, words); err != nil {
					return err
				}
			}

			return trackProgUpload(ctx, a, addrs)
		},
	}
}

// readFirmwareWords loads the little-endian firmware image at path, driving
// an mpb bar off the file's own read progress rather than a one-shot
// os.ReadFile so a multi-hundred-megabyte image shows activity immediately.
func readFirmwareWords(path string) ([]uint16, error) {
	pf, err := progress.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = pf.Close() }()

	size, err := pf.SizeEOF()
	if err != nil {
		return nil, err
	}

	p := mpb.New(mpb.WithWidth(48))
	bar := p.AddBar(size,
		mpb.PrependDecorators(decor.Name("reading firmware", decor.WC{W: 18})),
		mpb.AppendDecorators(decor.CountersKiloByte("% .1f / % .1f")),
	)
	pf.RegisterFctIncrement(func(n int64) { bar.SetCurrent(n) })
	pf.RegisterFctEOF(func() { bar.SetCurrent(size) })

	raw, err := io.ReadAll(pf)
	p.Wait()
	if err != nil {
		return nil, err
	}

	words := make([]uint16, len(raw)/2)
	for i := range words {
		words[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}
	return words, nil
}

// trackProgUpload polls "?PROG" for every addr until all report DONE,
// driving one mpb bar per axis, mirroring the reference programming
// tool's percent-based upload progress.
func trackProgUpload(ctx context.Context, a *app, addrs []address.Address) error {
	p := mpb.New(mpb.WithWidth(48))
	bars := make([]*mpb.Bar, len(addrs))
	for i, addr := range addrs {
		bars[i] = p.AddBar(100,
			mpb.PrependDecorators(decor.Name(fmt.Sprintf("axis %d", addr.Int()), decor.WC{W: 10})),
			mpb.AppendDecorators(decor.Percentage(decor.WCSyncSpace)),
		)
	}

	for {
		allDone := true
		for i, addr := range addrs {
			st, err := a.ctrl.GetProgStatus(ctx, addr)
			if err != nil {
				return err
			}
			bars[i].SetCurrent(int64(st.Percent))
			if !st.Done {
				allDone = false
			}
		}
		if allDone {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}

	p.Wait()
	return nil
}
