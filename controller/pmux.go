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
)

// PMux is one entry of the position-multiplexer table: a source axis
// driving a signal exposed on a target axis's sync connector.
type PMux struct {
	Source int
	Target int
	Signal string
}

// AddPMux registers m in the controller's multiplexer table.
func (c *Controller) AddPMux(ctx context.Context, m PMux) error {
	_, err := c.do(ctx, fmt.Sprintf("PMUX ADD %d %d %s", m.Source, m.Target, m.Signal))
	return err
}

// ClearPMux removes every multiplexer entry involving source.
func (c *Controller) ClearPMux(ctx context.Context, source int) error {
	_, err := c.do(ctx, fmt.Sprintf("PMUX REMOVE %d", source))
	return err
}

// GetPMux returns the current multiplexer table.
func (c *Controller) GetPMux(ctx context.Context) ([]PMux, error) {
	reply, err := c.do(ctx, "?PMUX")
	if err != nil {
		return nil, err
	}

	var out []PMux
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var m PMux
		if _, err := fmt.Sscanf(line, "%d %d %s", &m.Source, &m.Target, &m.Signal); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
