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

// Package backup persists and restores a controller's configuration as
// an ini-style file (gopkg.in/ini.v1): GENERAL/SYSTEM/CONTROLLER
// sections plus one AXIS_<n> section per backed-up axis, grounded on the
// reference tooling's IcePAPBackup class. It consumes only the command
// surface (package controller, package axis), never transport/session
// directly.
package backup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/ALBA-Synchrotron/pyIcePAP/address"
	"github.com/ALBA-Synchrotron/pyIcePAP/axis"
	"github.com/ALBA-Synchrotron/pyIcePAP/controller"
	"github.com/ALBA-Synchrotron/pyIcePAP/file/perm"
)

// Unknown is the sentinel value recorded for an attribute that failed to
// read, matching the reference tooling's "Unknown" marker rather than
// aborting the whole backup.
const Unknown = "Unknown"

// AxisSnapshot is one AXIS_<n> section: a fixed set of registers plus an
// open-ended attribute map so callers can add more without a schema
// migration, the way the source's configparser section behaves.
type AxisSnapshot struct {
	Addr       int
	Active     bool
	DriverVer  string
	Config     map[string]string
	Attributes map[string]string
}

// Snapshot is the full persisted state of one controller.
type Snapshot struct {
	Date, Time        string
	Host               string
	Port               int
	SystemVersion      string
	ControllerVersions map[string]string
	Axes               []AxisSnapshot
}

// registerAttrs lists the per-axis attributes captured in every backup,
// mirroring the reference tooling's `attrs` list.
var registerAttrs = []string{
	"velocity", "name", "acctime", "pos", "pos_absenc", "enc", "enc_motor",
}

// Capture reads a full Snapshot from ctrl for the given axes (all
// discovered axes if addrs is empty), querying through the command
// surface only.
func Capture(ctx context.Context, ctrl *controller.Controller, host string, port int, addrs []address.Address) (Snapshot, error) {
	var snap Snapshot
	snap.Host = host
	snap.Port = port

	fw, err := ctrl.Version(ctx)
	if err != nil {
		return snap, err
	}
	snap.SystemVersion = fmt.Sprintf("%g", fw.System.VER.Version)
	snap.ControllerVersions = map[string]string{
		"VER":  fmt.Sprintf("%g", fw.System.Controller.VER.Version),
		"DSP":  fmt.Sprintf("%g", fw.System.Controller.DSP.Version),
		"FPGA": fmt.Sprintf("%g", fw.System.Controller.FPGA.Version),
	}

	if len(addrs) == 0 {
		addrs, err = ctrl.FindAllAxes(ctx)
		if err != nil {
			return snap, err
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Int() < addrs[j].Int() })

	for _, a := range addrs {
		ax := axis.New(ctrl.Session(), a)
		snap.Axes = append(snap.Axes, captureAxis(ctx, ax, fw.System.Driver.VER.Version))
	}
	return snap, nil
}

func captureAxis(ctx context.Context, a *axis.Axis, driverVer float64) AxisSnapshot {
	as := AxisSnapshot{
		Addr:       a.Address().Int(),
		Active:     true,
		DriverVer:  fmt.Sprintf("%g", driverVer),
		Config:     map[string]string{},
		Attributes: map[string]string{},
	}

	if _, err := a.Power(ctx); err != nil {
		as.Active = false
	}

	for _, attr := range registerAttrs {
		as.Attributes[attr] = readAttr(ctx, a, attr)
	}

	// DISDIS is only meaningful on firmware before 3.x, a documented
	// device-generation distinction preserved verbatim from the source.
	if driverVer < 3 {
		as.Attributes["disdis"] = Unknown
	}

	return as
}

func readAttr(ctx context.Context, a *axis.Axis, attr string) string {
	var (
		v   interface{}
		err error
	)
	switch attr {
	case "velocity":
		v, err = a.Velocity(ctx)
	case "name":
		v, err = a.Name(ctx)
	case "acctime":
		v, err = a.AccTime(ctx)
	case "pos":
		v, err = a.PosAxis(ctx)
	case "pos_absenc":
		v, err = a.PosAbsEnc(ctx)
	case "enc":
		v, err = a.EncAxis(ctx)
	case "enc_motor":
		v, err = a.EncMotor(ctx)
	default:
		return Unknown
	}
	if err != nil {
		return Unknown
	}
	return fmt.Sprintf("%v", v)
}

// defaultSavePerm matches the reference tooling's backup files: readable by
// everyone, writable only by the owner.
var defaultSavePerm = perm.ParseFileMode(0o644)

// Save writes snap to filename as an ini-style file, with the default
// permissions a new backup file gets.
func Save(snap Snapshot, filename string) error {
	return SaveWithPerm(snap, filename, defaultSavePerm)
}

// SaveWithPerm writes snap to filename as an ini-style file, creating it
// (or truncating an existing one) with the given permissions instead of
// the process umask default.
func SaveWithPerm(snap Snapshot, filename string, mode perm.Perm) error {
	f := ini.Empty()

	gen, _ := f.NewSection("GENERAL")
	_, _ = gen.NewKey("DATE", snap.Date)
	_, _ = gen.NewKey("TIME", snap.Time)

	sys, _ := f.NewSection("SYSTEM")
	_, _ = sys.NewKey("HOST", snap.Host)
	_, _ = sys.NewKey("PORT", strconv.Itoa(snap.Port))
	_, _ = sys.NewKey("VERSION", snap.SystemVersion)

	ctl, _ := f.NewSection("CONTROLLER")
	for _, k := range sortedKeys(snap.ControllerVersions) {
		_, _ = ctl.NewKey("VER_"+k, snap.ControllerVersions[k])
	}

	for _, as := range snap.Axes {
		sec, _ := f.NewSection(fmt.Sprintf("AXIS_%d", as.Addr))
		_, _ = sec.NewKey("ACTIVE", strconv.FormatBool(as.Active))
		_, _ = sec.NewKey("VER_VER", as.DriverVer)
		for _, k := range sortedKeys(as.Config) {
			_, _ = sec.NewKey("CFG_"+k, as.Config[k])
		}
		for _, k := range sortedKeys(as.Attributes) {
			_, _ = sec.NewKey(k, as.Attributes[k])
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), mode.FileMode())
}

// Load reads a Snapshot back from filename.
func Load(filename string) (Snapshot, error) {
	var snap Snapshot

	f, err := ini.Load(filename)
	if err != nil {
		return snap, err
	}

	if gen, err := f.GetSection("GENERAL"); err == nil {
		snap.Date = gen.Key("DATE").String()
		snap.Time = gen.Key("TIME").String()
	}

	sys, err := f.GetSection("SYSTEM")
	if err != nil {
		return snap, err
	}
	snap.Host = sys.Key("HOST").String()
	snap.Port, _ = sys.Key("PORT").Int()
	snap.SystemVersion = sys.Key("VERSION").String()

	if ctl, err := f.GetSection("CONTROLLER"); err == nil {
		snap.ControllerVersions = map[string]string{}
		for _, k := range ctl.Keys() {
			snap.ControllerVersions[k.Name()] = k.String()
		}
	}

	for _, sec := range f.Sections() {
		if !isAxisSection(sec.Name()) {
			continue
		}
		var axisNum int
		fmt.Sscanf(sec.Name(), "AXIS_%d", &axisNum)

		as := AxisSnapshot{Addr: axisNum, Config: map[string]string{}, Attributes: map[string]string{}}
		as.Active, _ = sec.Key("ACTIVE").Bool()
		as.DriverVer = sec.Key("VER_VER").String()
		for _, k := range sec.Keys() {
			switch {
			case hasPrefix(k.Name(), "CFG_"):
				as.Config[k.Name()[4:]] = k.String()
			case k.Name() == "ACTIVE" || k.Name() == "VER_VER":
				// already captured above
			default:
				as.Attributes[k.Name()] = k.String()
			}
		}
		snap.Axes = append(snap.Axes, as)
	}

	sort.Slice(snap.Axes, func(i, j int) bool { return snap.Axes[i].Addr < snap.Axes[j].Addr })
	return snap, nil
}

func isAxisSection(name string) bool { return hasPrefix(name, "AXIS_") }

func hasPrefix(s, p string) bool { return len(s) >= len(p) && s[:len(p)] == p }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
