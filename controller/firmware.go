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

package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

// Sprog switches the given addresses into programming mode ahead of Prog.
func (c *Controller) Sprog(ctx context.Context, addrs []address.Address) error {
	_, err := c.do(ctx, "SPROG "+joinAddrs(addrs))
	return err
}

// Prog uploads firmware to addr as a single binary block holding all of
// data. Each word is a native uint16 of the firmware
// image; it is the caller's responsibility to have already validated the
// image against the target hardware revision.
func (c *Controller) Prog(ctx context.Context, addr address.Address, data []uint16) error {
	header := fmt.Sprintf("%d:PROG DATA", addr.Int())
	return c.sess.SendBlock(ctx, header, data)
}

// ProgStatus is the parsed reply of "?PROG".
type ProgStatus struct {
	Percent int
	Done    bool
}

// GetProgStatus polls the firmware upload progress for addr.
func (c *Controller) GetProgStatus(ctx context.Context, addr address.Address) (ProgStatus, error) {
	reply, err := c.do1(ctx, addr, "?PROG")
	if err != nil {
		return ProgStatus{}, err
	}

	reply = strings.TrimSpace(reply)
	if strings.EqualFold(reply, "DONE") {
		return ProgStatus{Percent: 100, Done: true}, nil
	}

	var pct int
	if _, err := fmt.Sscanf(reply, "%d", &pct); err != nil {
		return ProgStatus{}, icerr.Protocolf("PROG status: unexpected reply %q", reply)
	}
	return ProgStatus{Percent: pct}, nil
}
