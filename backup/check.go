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

package backup

import (
	"context"
	"strings"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
)

// FieldDiff is one differing key between a saved backup and the live
// controller: (backup value, live value). A value of KeyNotFoundInBackup
// or KeyNotFoundInIcePAP marks a key present on only one side.
type FieldDiff struct {
	Backup string
	Live   string
}

const (
	keyNotFoundInBackup = "KeyNotFoundInBackup"
	keyNotFoundInIcePAP = "KeyNotFoundInIcePAP"
)

// AxisDiff collects the field-level differences for one axis section.
type AxisDiff struct {
	Addr   int
	Fields map[string]FieldDiff
}

// Check re-captures the axes named in snap from the live controller and
// reports every field that differs, the way do_check diffs two
// configparser sections key by key (case- and whitespace-insensitive).
func Check(ctx context.Context, ctrl *controller.Controller, snap Snapshot) ([]AxisDiff, error) {
	addrs := make([]address.Address, len(snap.Axes))
	for i, as := range snap.Axes {
		a, err := address.New(as.Addr)
		if err != nil {
			return nil, err
		}
		addrs[i] = a
	}

	live, err := Capture(ctx, ctrl, snap.Host, snap.Port, addrs)
	if err != nil {
		return nil, err
	}

	liveByAddr := make(map[int]AxisSnapshot, len(live.Axes))
	for _, a := range live.Axes {
		liveByAddr[a.Addr] = a
	}

	var diffs []AxisDiff
	for _, bkpAxis := range snap.Axes {
		liveAxis, ok := liveByAddr[bkpAxis.Addr]
		if !ok {
			continue
		}
		fields := dictDiff(bkpAxis.Attributes, liveAxis.Attributes)
		if len(fields) > 0 {
			diffs = append(diffs, AxisDiff{Addr: bkpAxis.Addr, Fields: fields})
		}
	}
	return diffs, nil
}

// dictDiff implements the reference tooling's dict_cfg: keys only on one
// side are flagged with a KeyNotFound sentinel; keys on both sides are
// compared case- and whitespace-insensitively.
func dictDiff(backup, live map[string]string) map[string]FieldDiff {
	diff := map[string]FieldDiff{}

	for k, v := range backup {
		if lv, ok := live[k]; ok {
			if !strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(lv)) {
				diff[k] = FieldDiff{Backup: v, Live: lv}
			}
		} else {
			diff[k] = FieldDiff{Backup: v, Live: keyNotFoundInIcePAP}
		}
	}
	for k, v := range live {
		if _, ok := backup[k]; !ok {
			diff[k] = FieldDiff{Backup: keyNotFoundInBackup, Live: v}
		}
	}
	return diff
}
