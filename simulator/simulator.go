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

// Package simulator implements a minimal in-process TCP device speaking
// enough of the controller's wire protocol to drive the test suites and
// the CLI's --simulate flag, grounded on the reference simulator's axis
// and system command tables.
package simulator

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
)

// axisState is one simulated axis's mutable register set.
type axisState struct {
	pos    int64
	power  bool
	moving bool
	target int64
}

// Device is a simulated controller listening on a loopback TCP port.
type Device struct {
	mu    sync.Mutex
	axes  map[int]*axisState
	ln    net.Listener
	close chan struct{}
}

// New builds a Device with one simulated axis per addr in axes.
func New(axes []int) *Device {
	d := &Device{axes: make(map[int]*axisState), close: make(chan struct{})}
	for _, a := range axes {
		d.axes[a] = &axisState{}
	}
	return d
}

// Start listens on 127.0.0.1:0 and serves connections until Close.
func (d *Device) Start() (addr string, err error) {
	d.ln, err = net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	go d.serve()
	return d.ln.Addr().String(), nil
}

func (d *Device) serve() {
	for {
		conn, err := d.ln.Accept()
		if err != nil {
			return
		}
		go d.handle(conn)
	}
}

func (d *Device) Close() error {
	close(d.close)
	if d.ln == nil {
		return nil
	}
	return d.ln.Close()
}

func (d *Device) handle(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		reply := d.dispatch(line)
		if reply != "" {
			_, _ = conn.Write([]byte(reply + "\r\n"))
		}
	}
}

// dispatch interprets one protocol line and returns the reply to send, or
// "" for commands that never produce one.
func (d *Device) dispatch(line string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	cmd := strings.TrimPrefix(line, "#")
	addr := 0
	hasAddr := false
	rest := cmd
	if i := strings.IndexByte(cmd, ':'); i >= 0 {
		addr, _ = strconv.Atoi(cmd[:i])
		hasAddr = true
		rest = cmd[i+1:]
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	verb := strings.ToUpper(strings.TrimPrefix(fields[0], "?"))
	query := strings.HasPrefix(fields[0], "?")

	switch verb {
	case "SYSSTAT":
		if len(fields) == 1 {
			return fmt.Sprintf("?SYSSTAT %X", d.rackMask())
		}
		rack, _ := strconv.Atoi(fields[1])
		return fmt.Sprintf("?SYSSTAT %d %X", rack, d.axisMask(rack))
	case "POS":
		if hasAddr {
			a := d.axes[addr]
			if a == nil {
				return "POS ERROR Unknown axis"
			}
			if query {
				return fmt.Sprintf("?POS %d", a.pos)
			}
			v, _ := strconv.ParseInt(fields[1], 10, 64)
			a.pos = v
			return "POS OK"
		}
		if query {
			return d.fanOutInt(verb, fields[1:], func(a *axisState) int64 { return a.pos })
		}
		return d.fanInSetInt(verb, fields[1:], func(a *axisState, v int64) { a.pos = v })
	case "STATUS", "FSTATUS":
		if hasAddr {
			a := d.axes[addr]
			if a == nil {
				return verb + " ERROR Unknown axis"
			}
			return fmt.Sprintf("?%s %08X", verb, d.statusWord(a))
		}
		return d.fanOutHex(verb, fields[1:], d.statusWord)
	case "POWER":
		if hasAddr {
			a := d.axes[addr]
			if a == nil {
				return "POWER ERROR Unknown axis"
			}
			if query {
				if a.power {
					return "?POWER ON"
				}
				return "?POWER OFF"
			}
			a.power = strings.EqualFold(fields[1], "ON")
			return "POWER OK"
		}
		return d.fanOutBool(verb, fields[1:], func(a *axisState) bool { return a.power })
	case "FPOS":
		if hasAddr {
			return "FPOS ERROR Unsupported on this firmware"
		}
		return "FPOS ERROR Unsupported on this firmware"
	case "VELOCITY":
		a := d.axes[addr]
		if a == nil {
			return "VELOCITY ERROR Unknown axis"
		}
		if query {
			return "?VELOCITY 10"
		}
		return "VELOCITY OK"
	case "NAME":
		if query {
			return "?NAME th1"
		}
		return "NAME OK"
	case "ECAM":
		if query {
			return "?ECAM OFF"
		}
		return "ECAM OK"
	case "MOVE", "MOVEP", "PMOVE", "RMOVE":
		if hasAddr {
			// "<addr>:MOVE <pos>" moves one axis: rewrite it to the pair form.
			fields = append([]string{fields[0], strconv.Itoa(addr)}, fields[1:]...)
		}
		return d.startMove(fields, verb == "RMOVE")
	case "STOP", "ABORT":
		for _, tok := range fields[1:] {
			a, _ := strconv.Atoi(tok)
			if ax := d.axes[a]; ax != nil {
				ax.moving = false
			}
		}
		return verb + " OK"
	case "MODE":
		if query {
			return "?MODE OPER"
		}
		return "MODE OK"
	case "VER":
		return "$?VER INFO\nSYSTEM 3.17\n   CONTROLLER\n      VER 3.17 Jan 12 2021\n   DRIVER\n      VER 3.17 Jan 12 2021\n$"
	default:
		return verb + " OK"
	}
}

func (d *Device) startMove(fields []string, relative bool) string {
	// fields[0]=MOVE/RMOVE/MOVEP/PMOVE, then optional GROUP/STRICT in any
	// order, then "<addr> <pos>" pairs.
	verb := strings.ToUpper(fields[0])
	i := 1
	for i < len(fields) && (strings.EqualFold(fields[i], "GROUP") || strings.EqualFold(fields[i], "STRICT")) {
		i++
	}
	for i+1 < len(fields) {
		addr, _ := strconv.Atoi(fields[i])
		target, _ := strconv.ParseInt(fields[i+1], 10, 64)
		if a := d.axes[addr]; a != nil {
			if relative {
				a.target = a.pos + target
			} else {
				a.target = target
			}
			a.moving = true
			a.pos = a.target // the simulator completes moves instantly
			a.moving = false
		}
		i += 2
	}
	return verb + " OK"
}

// fanOutInt replies with the echoed request followed by one decimal
// value per addr, in request order, so the reply begins with the exact
// query it answers (the session's reply-matching contract).
func (d *Device) fanOutInt(verb string, addrs []string, get func(*axisState) int64) string {
	parts := make([]string, 0, len(addrs))
	for _, tok := range addrs {
		addr, _ := strconv.Atoi(tok)
		a := d.axes[addr]
		if a == nil {
			return verb + " ERROR Unknown axis " + tok
		}
		parts = append(parts, strconv.FormatInt(get(a), 10))
	}
	return "?" + verb + " " + strings.Join(addrs, " ") + " " + strings.Join(parts, " ")
}

// fanInSetInt applies "<addr> <value>" pairs to set(axis, value).
func (d *Device) fanInSetInt(verb string, pairs []string, set func(*axisState, int64)) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		addr, _ := strconv.Atoi(pairs[i])
		v, _ := strconv.ParseInt(pairs[i+1], 10, 64)
		a := d.axes[addr]
		if a == nil {
			return verb + " ERROR Unknown axis " + pairs[i]
		}
		set(a, v)
	}
	return verb + " OK"
}

// fanOutHex replies with the echoed request followed by one 8-digit hex
// value per addr, in request order.
func (d *Device) fanOutHex(verb string, addrs []string, get func(*axisState) uint32) string {
	parts := make([]string, 0, len(addrs))
	for _, tok := range addrs {
		addr, _ := strconv.Atoi(tok)
		a := d.axes[addr]
		if a == nil {
			return verb + " ERROR Unknown axis " + tok
		}
		parts = append(parts, fmt.Sprintf("%08X", get(a)))
	}
	return "?" + verb + " " + strings.Join(addrs, " ") + " " + strings.Join(parts, " ")
}

// fanOutBool replies with the echoed request followed by ON/OFF per
// addr, in request order.
func (d *Device) fanOutBool(verb string, addrs []string, get func(*axisState) bool) string {
	parts := make([]string, 0, len(addrs))
	for _, tok := range addrs {
		addr, _ := strconv.Atoi(tok)
		a := d.axes[addr]
		if a == nil {
			return verb + " ERROR Unknown axis " + tok
		}
		if get(a) {
			parts = append(parts, "ON")
		} else {
			parts = append(parts, "OFF")
		}
	}
	return "?" + verb + " " + strings.Join(addrs, " ") + " " + strings.Join(parts, " ")
}

func (d *Device) rackMask() uint32 {
	var mask uint32
	for addr := range d.axes {
		mask |= 1 << uint(addr/10)
	}
	return mask
}

func (d *Device) axisMask(rack int) uint32 {
	var mask uint32
	for addr := range d.axes {
		if addr/10 == rack {
			mask |= 1 << uint(addr%10-1)
		}
	}
	return mask
}

func (d *Device) statusWord(a *axisState) uint32 {
	var w uint32
	w |= 1 << 0 // present
	w |= 1 << 1 // alive
	w |= 1 << 9 // ready
	if a.power {
		w |= 1 << 23
	}
	if a.moving {
		w |= 1 << 10
	}
	return w
}
