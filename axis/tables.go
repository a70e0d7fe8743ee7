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

package axis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
	"github.com/ALBA-Synchrotron/pyIcePAP/protocol"
)

const ecamTablePageSize = 200

// SetEcamTableOptions controls the implicit follow-up command after an
// ecam table upload.
type SetEcamTableOptions struct {
	// SuppressPulse, when true, skips the implicit "ECAM PULSE" the
	// reference tooling issues after every successful upload. Default
	// (false) matches that legacy behavior.
	SuppressPulse bool
}

// SetEcamTable uploads t as the axis's electronic-cam table. Entries are
// sorted by ascending position before transmission, matching the
// controller's requirement that ecam tables be monotonic.
func (a *Axis) SetEcamTable(ctx context.Context, t protocol.Table, opt SetEcamTableOptions) error {
	sorted := append([]float64(nil), t.Position...)
	sort.Float64s(sorted)

	if _, err := a.do(ctx, fmt.Sprintf("*ECAMDAT %s %s", t.Source, t.DType)); err != nil {
		return err
	}

	words := protocol.EncodeWords(t.DType, sorted)
	if err := a.sess.SendBlock(ctx, fmt.Sprintf("%d:*ECAMDAT", a.addr.Int()), words); err != nil {
		return err
	}

	if !opt.SuppressPulse {
		return a.SetEcam(ctx, EcamPulse)
	}
	return nil
}

// ClearEcamTable removes the uploaded ecam table.
func (a *Axis) ClearEcamTable(ctx context.Context) error {
	_, err := a.do(ctx, "ECAMDAT CLEAR")
	return err
}

// GetEcamTable downloads the full ecam table, paging through it at most
// ecamTablePageSize entries at a time.
func (a *Axis) GetEcamTable(ctx context.Context) ([]float64, error) {
	return a.getPagedTable(ctx, "ECAMDAT")
}

// getPagedTable implements the "<last_id>/<len> : <index> : <value>"
// paging contract shared by ECAMDAT and LISTDAT downloads: keep requesting pages
// until last_id == len-1.
func (a *Axis) getPagedTable(ctx context.Context, table string) ([]float64, error) {
	var out []float64
	offset := 0

	for {
		reply, err := a.do(ctx, fmt.Sprintf("?%s %d %d", table, ecamTablePageSize, offset))
		if err != nil {
			return nil, err
		}

		lastID, total, values, err := parseTablePage(reply)
		if err != nil {
			return nil, err
		}

		out = append(out, values...)
		offset += len(values)

		if lastID >= total-1 || len(values) == 0 {
			return out, nil
		}
	}
}

// parseTablePage parses lines of the form "last_id/len : index : value".
func parseTablePage(reply string) (lastID, total int, values []float64, err error) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) != 3 {
			return 0, 0, nil, icerr.Protocolf("table page: bad line %q", line)
		}

		frac := strings.Split(strings.TrimSpace(parts[0]), "/")
		if len(frac) != 2 {
			return 0, 0, nil, icerr.Protocolf("table page: bad fraction %q", parts[0])
		}
		lastID, _ = strconv.Atoi(strings.TrimSpace(frac[0]))
		total, _ = strconv.Atoi(strings.TrimSpace(frac[1]))

		v, perr := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if perr != nil {
			return 0, 0, nil, icerr.Protocolf("table page: bad value %q", parts[2])
		}
		values = append(values, v)
	}
	return lastID, total, values, nil
}

// SetListTable uploads t as the axis's list/tracking table.
func (a *Axis) SetListTable(ctx context.Context, t protocol.Table) error {
	if _, err := a.do(ctx, fmt.Sprintf("*LISTDAT %s %s", t.Mode, t.DType)); err != nil {
		return err
	}
	words := protocol.EncodeWords(t.DType, t.Position)
	return a.sess.SendBlock(ctx, fmt.Sprintf("%d:*LISTDAT", a.addr.Int()), words)
}

// GetListTable downloads the list table. The controller reports the
// table's length as one greater than the true element count; this is a
// documented firmware quirk and is compensated here rather than leaked to
// callers.
func (a *Axis) GetListTable(ctx context.Context) ([]float64, error) {
	values, err := a.getPagedTable(ctx, "LISTDAT")
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		values = values[:len(values)-1]
	}
	return values, nil
}

// SetParametricTable uploads a *PARDAT vector-data frame made of
// t.Position followed, when present, by t.Slope. No parameter column is
// sent.
func (a *Axis) SetParametricTable(ctx context.Context, t protocol.Table) error {
	if _, err := a.do(ctx, fmt.Sprintf("*PARDAT %s", t.Mode)); err != nil {
		return err
	}

	rows := t.Position
	if len(t.Slope) > 0 {
		rows = append(append([]float64(nil), t.Position...), t.Slope...)
	}

	words := protocol.EncodeWords(t.DType, rows)
	return a.sess.SendBlock(ctx, fmt.Sprintf("%d:*PARDAT", a.addr.Int()), words)
}
