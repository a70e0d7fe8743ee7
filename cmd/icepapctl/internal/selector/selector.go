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

// Package selector parses the icepapctl axis selector grammar: a
// comma-separated address list ("1,5,151"), the "all" keyword (every
// discovered axis) or the "alive" keyword (every discovered axis that
// answers alive in its status word).
package selector

import (
	"context"
	"strconv"
	"strings"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

// Parse resolves raw against ctrl. "all" and "alive" query the controller
// for the present axes; anything else is parsed as a comma-separated list
// of numeric addresses.
func Parse(ctx context.Context, ctrl *controller.Controller, raw string) ([]address.Address, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all":
		return ctrl.FindAllAxes(ctx)
	case "alive":
		return alive(ctx, ctrl)
	default:
		return parseList(raw)
	}
}

func alive(ctx context.Context, ctrl *controller.Controller) ([]address.Address, error) {
	all, err := ctrl.FindAllAxes(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := ctrl.GetStatus(ctx, all)
	if err != nil {
		return nil, err
	}

	var out []address.Address
	for i, s := range statuses {
		if s.Alive() {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func parseList(raw string) ([]address.Address, error) {
	parts := strings.Split(raw, ",")
	out := make([]address.Address, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, icerr.Usagef("axis selector: %q is not a valid address", p)
		}
		a, err := address.New(n)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, icerr.Usagef("axis selector %q resolved to no axes", raw)
	}
	return out, nil
}

// ParsePairs splits the "<addr> <pos> <addr> <pos> ..." argument list the
// move/rmove commands take, mirroring the reference CLI's pairs[::2]/
// pairs[1::2] slicing.
func ParsePairs(args []string) ([]address.Address, []int64, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, nil, icerr.Usagef("expected pairs of <axis> <position>, got %d argument(s)", len(args))
	}

	n := len(args) / 2
	addrs := make([]address.Address, n)
	values := make([]int64, n)
	for i := 0; i < n; i++ {
		raw, err := strconv.Atoi(args[2*i])
		if err != nil {
			return nil, nil, icerr.Usagef("%q is not a valid axis address", args[2*i])
		}
		a, err := address.New(raw)
		if err != nil {
			return nil, nil, err
		}
		v, err := strconv.ParseInt(args[2*i+1], 10, 64)
		if err != nil {
			return nil, nil, icerr.Usagef("%q is not a valid position", args[2*i+1])
		}
		addrs[i] = a
		values[i] = v
	}
	return addrs, values, nil
}
