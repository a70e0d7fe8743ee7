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

// Package controller implements the system-level command surface: axis
// and rack discovery, multi-axis fan-out accessors, motion start/stop and
// firmware programming. Axis-scoped commands live in package axis.
package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
	"github.com/ALBA-Synchrotron/pyIcePAP/protocol"
	"github.com/ALBA-Synchrotron/pyIcePAP/session"
	"github.com/ALBA-Synchrotron/pyIcePAP/transport"
)

// Controller is a handle to one controller connection.
type Controller struct {
	sess    *session.Session
	aliases *address.AliasMap
}

// Options configures New.
type Options struct {
	// Host may be "host", "host:port" or "tcp://host[:port]". Default
	// port is 5000.
	Host string

	IOTimeout      time.Duration
	ConnectTimeout time.Duration
}

const defaultPort = "5000"

func normalizeHost(host string) string {
	host = strings.TrimPrefix(host, "tcp://")
	if !strings.Contains(host, ":") {
		host = host + ":" + defaultPort
	}
	return host
}

// New dials host and returns a ready Controller.
func New(ctx context.Context, opt Options) (*Controller, error) {
	addr := normalizeHost(opt.Host)
	sess := session.New(transport.New(), addr, opt.IOTimeout, opt.ConnectTimeout)
	if err := sess.Open(ctx); err != nil {
		return nil, err
	}
	return &Controller{sess: sess, aliases: address.NewAliasMap()}, nil
}

// NewWithSession wraps an already-open session (used by tests and the
// simulator-backed CLI --simulate mode).
func NewWithSession(sess *session.Session) *Controller {
	return &Controller{sess: sess, aliases: address.NewAliasMap()}
}

func (c *Controller) Close() error { return c.sess.Close() }

func (c *Controller) Aliases() *address.AliasMap { return c.aliases }

// Session returns the underlying session, so per-axis façades (package
// axis) and groups (package group) can be built against the same
// connection a Controller already holds open.
func (c *Controller) Session() *session.Session { return c.sess }

func (c *Controller) do(ctx context.Context, cmd string) (string, error) {
	return c.sess.Do(ctx, cmd)
}

// do1 issues cmd for a single axis address, addr-prefixed.
func (c *Controller) do1(ctx context.Context, addr address.Address, cmd string) (string, error) {
	return c.sess.Do(ctx, fmt.Sprintf("%d:%s", addr.Int(), cmd))
}

// FindRacks returns the racks that report present via ?SYSSTAT.
func (c *Controller) FindRacks(ctx context.Context) ([]int, error) {
	reply, err := c.do(ctx, "?SYSSTAT")
	if err != nil {
		return nil, err
	}

	mask, err := strconv.ParseUint(strings.TrimSpace(reply), 16, 32)
	if err != nil {
		return nil, icerr.Protocolf("SYSSTAT: bad mask %q", reply)
	}

	var racks []int
	for i := address.MinRack; i <= address.MaxRack; i++ {
		if mask&(1<<uint(i)) != 0 {
			racks = append(racks, i)
		}
	}
	return racks, nil
}

// FindAxes returns the addresses present in rack, discovered through
// "?SYSSTAT <rack>", one bit per driver index.
func (c *Controller) FindAxes(ctx context.Context, rack int) ([]address.Address, error) {
	reply, err := c.do(ctx, fmt.Sprintf("?SYSSTAT %d", rack))
	if err != nil {
		return nil, err
	}

	mask, err := strconv.ParseUint(strings.TrimSpace(reply), 16, 32)
	if err != nil {
		return nil, icerr.Protocolf("SYSSTAT %d: bad mask %q", rack, reply)
	}

	var axes []address.Address
	for i := address.MinIndex; i <= address.MaxIndex; i++ {
		if mask&(1<<uint(i-1)) != 0 {
			a, err := address.FromRackIndex(rack, i)
			if err != nil {
				return nil, err
			}
			axes = append(axes, a)
		}
	}
	return axes, nil
}

// FindAllAxes walks every present rack and concatenates FindAxes.
func (c *Controller) FindAllAxes(ctx context.Context) ([]address.Address, error) {
	racks, err := c.FindRacks(ctx)
	if err != nil {
		return nil, err
	}

	var all []address.Address
	for _, r := range racks {
		axes, err := c.FindAxes(ctx, r)
		if err != nil {
			return nil, err
		}
		all = append(all, axes...)
	}
	return all, nil
}

// GetStatus returns the raw status word for each of addrs, in the same
// order, via a single multi-axis "?STATUS <addr>..." fan-out query.
func (c *Controller) GetStatus(ctx context.Context, addrs []address.Address) ([]protocol.Status, error) {
	toks, err := c.fanOut(ctx, "?STATUS", addrs)
	if err != nil {
		return nil, err
	}
	out := make([]protocol.Status, len(toks))
	for i, t := range toks {
		v, err := strconv.ParseUint(t, 16, 32)
		if err != nil {
			return nil, icerr.Protocolf("STATUS: bad value %q", t)
		}
		out[i] = protocol.NewStatus(uint32(v))
	}
	return out, nil
}

// GetFStatus is GetStatus using the fast dialect ("?FSTATUS"), falling
// back to the slow query on a firmware that does not implement it.
func (c *Controller) GetFStatus(ctx context.Context, addrs []address.Address) ([]protocol.Status, error) {
	toks, err := c.fanOut(ctx, "?FSTATUS", addrs)
	if icerr.IsCommand(err) {
		return c.GetStatus(ctx, addrs)
	}
	if err != nil {
		return nil, err
	}
	out := make([]protocol.Status, len(toks))
	for i, t := range toks {
		v, err := strconv.ParseUint(t, 16, 32)
		if err != nil {
			return nil, icerr.Protocolf("FSTATUS: bad value %q", t)
		}
		out[i] = protocol.NewStatus(uint32(v))
	}
	return out, nil
}

// GetPos returns the axis-register position of each of addrs, via a
// single multi-axis "?POS <addr>..." fan-out query.
func (c *Controller) GetPos(ctx context.Context, addrs []address.Address) ([]int64, error) {
	return c.fanOutInt(ctx, "?POS", addrs)
}

// GetFPos is GetPos using the fast dialect ("?FPOS"), falling back to
// the slow query on a firmware that does not implement it.
func (c *Controller) GetFPos(ctx context.Context, addrs []address.Address) ([]int64, error) {
	out, err := c.fanOutInt(ctx, "?FPOS", addrs)
	if icerr.IsCommand(err) {
		return c.GetPos(ctx, addrs)
	}
	return out, err
}

// fanOut issues "<cmd> <addr>..." once and returns the reply tokens,
// which the controller guarantees are in the request's address order.
func (c *Controller) fanOut(ctx context.Context, cmd string, addrs []address.Address) ([]string, error) {
	reply, err := c.do(ctx, cmd+" "+joinAddrs(addrs))
	if err != nil {
		return nil, err
	}
	toks := strings.Fields(reply)
	if len(toks) != len(addrs) {
		return nil, icerr.Protocolf("%s: expected %d values, got %d (%q)", cmd, len(addrs), len(toks), reply)
	}
	return toks, nil
}

func (c *Controller) fanOutInt(ctx context.Context, cmd string, addrs []address.Address) ([]int64, error) {
	toks, err := c.fanOut(ctx, cmd, addrs)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(toks))
	for i, t := range toks {
		v, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, icerr.Protocolf("%s: bad value %q", cmd, t)
		}
		out[i] = v
	}
	return out, nil
}

// SetPos sets the axis-register position of each axis in addrs to the
// matching entry of vals, serialized as "<addr> <value>" pairs in a
// single POS command.
func (c *Controller) SetPos(ctx context.Context, addrs []address.Address, vals []int64) error {
	if len(addrs) != len(vals) {
		return icerr.Usagef("SetPos: %d addresses but %d values", len(addrs), len(vals))
	}
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = fmt.Sprintf("%d %d", a.Int(), vals[i])
	}
	_, err := c.do(ctx, "POS "+strings.Join(parts, " "))
	return err
}

// MoveSpec pairs an axis with its target position for a multi-axis move.
type MoveSpec struct {
	Addr   address.Address
	Target int64
}

// MoveOptions controls the GROUP/STRICT modifiers shared by MOVE, RMOVE,
// MOVEP and PMOVE. Group defaults to true (atomic start) per spec.
type MoveOptions struct {
	Group  bool
	Strict bool
}

// DefaultMoveOptions matches the source's move(pairs, group=True, strict=False).
func DefaultMoveOptions() MoveOptions { return MoveOptions{Group: true} }

func (o MoveOptions) modifiers() string {
	var b strings.Builder
	if o.Group {
		b.WriteString(" GROUP")
	}
	if o.Strict {
		b.WriteString(" STRICT")
	}
	return b.String()
}

// atomicGroup builds the space-joined "<addr> <pos>" argument list shared
// by MOVE/RMOVE group commands, which take effect on all listed axes at
// once (GROUP semantics).
func atomicGroup(specs []MoveSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = fmt.Sprintf("%d %d", s.Addr.Int(), s.Target)
	}
	return strings.Join(parts, " ")
}

// Move issues an absolute move. opts defaults to DefaultMoveOptions()
// (GROUP, not STRICT) when omitted.
func (c *Controller) Move(ctx context.Context, specs []MoveSpec, opts ...MoveOptions) error {
	o := resolveMoveOptions(opts)
	_, err := c.do(ctx, "MOVE"+o.modifiers()+" "+atomicGroup(specs))
	return err
}

func resolveMoveOptions(opts []MoveOptions) MoveOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return DefaultMoveOptions()
}

// RMove issues a relative move. See Move for opts semantics.
func (c *Controller) RMove(ctx context.Context, specs []MoveSpec, opts ...MoveOptions) error {
	o := resolveMoveOptions(opts)
	_, err := c.do(ctx, "RMOVE"+o.modifiers()+" "+atomicGroup(specs))
	return err
}

// MoveP issues an absolute move to a parametric position (movep): the
// controller positions the axis so its parametric register, not its
// motor register, reaches the target.
func (c *Controller) MoveP(ctx context.Context, specs []MoveSpec, opts ...MoveOptions) error {
	o := resolveMoveOptions(opts)
	_, err := c.do(ctx, "MOVEP"+o.modifiers()+" "+atomicGroup(specs))
	return err
}

// PMove issues an absolute move expressed in parametric-table units
// (pmove): equivalent to MOVEP but addressed through the PARDAT table's
// parameter axis rather than the raw parametric register.
func (c *Controller) PMove(ctx context.Context, specs []MoveSpec, opts ...MoveOptions) error {
	o := resolveMoveOptions(opts)
	_, err := c.do(ctx, "PMOVE"+o.modifiers()+" "+atomicGroup(specs))
	return err
}

// Stop stops addrs together (controlled deceleration).
func (c *Controller) Stop(ctx context.Context, addrs []address.Address) error {
	_, err := c.do(ctx, "STOP "+joinAddrs(addrs))
	return err
}

// Abort aborts addrs together (immediate stop).
func (c *Controller) Abort(ctx context.Context, addrs []address.Address) error {
	_, err := c.do(ctx, "ABORT "+joinAddrs(addrs))
	return err
}

func joinAddrs(addrs []address.Address) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// GetPower returns the power state of each axis in addrs, via a single
// multi-axis "?POWER <addr>..." fan-out query.
func (c *Controller) GetPower(ctx context.Context, addrs []address.Address) ([]bool, error) {
	toks, err := c.fanOut(ctx, "?POWER", addrs)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(toks))
	for i, t := range toks {
		out[i] = strings.EqualFold(t, "ON")
	}
	return out, nil
}

// SetPower turns power on or off for addr.
func (c *Controller) SetPower(ctx context.Context, addr address.Address, on bool) error {
	state := "OFF"
	if on {
		state = "ON"
	}
	_, err := c.do1(ctx, addr, "POWER "+state)
	return err
}

// Reset resets the whole system, or a single rack when rack >= 0.
func (c *Controller) Reset(ctx context.Context, rack int) error {
	cmd := "RESET"
	if rack >= 0 {
		cmd = fmt.Sprintf("RESET %d", rack)
	}
	_, err := c.do(ctx, cmd)
	return err
}

// Reboot power-cycles the whole system.
func (c *Controller) Reboot(ctx context.Context) error {
	_, err := c.do(ctx, "REBOOT")
	return err
}

// Mode returns the current system mode (OPER/PROG/TEST/FAIL).
func (c *Controller) Mode(ctx context.Context) (protocol.Mode, error) {
	reply, err := c.do(ctx, "?MODE")
	if err != nil {
		return 0, err
	}
	switch strings.ToUpper(strings.TrimSpace(reply)) {
	case "OPER":
		return protocol.ModeOper, nil
	case "PROG":
		return protocol.ModeProg, nil
	case "TEST":
		return protocol.ModeTest, nil
	case "FAIL":
		return protocol.ModeFail, nil
	default:
		return 0, icerr.Protocolf("MODE: unexpected reply %q", reply)
	}
}

// Version returns the full firmware version tree via "?VER INFO".
func (c *Controller) Version(ctx context.Context) (protocol.FirmwareVersion, error) {
	reply, err := c.do(ctx, "?VER INFO")
	if err != nil {
		return protocol.FirmwareVersion{}, err
	}
	return protocol.ParseFirmwareVersion(strings.Split(reply, "\n"))
}

// Send issues an arbitrary raw command, for the CLI's "send" subcommand
// and interactive shell.
func (c *Controller) Send(ctx context.Context, raw string) (string, error) {
	return c.do(ctx, raw)
}
