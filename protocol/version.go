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

package protocol

import (
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"

	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

// VersionLeaf is a single (version, timestamp) pair as reported by a leaf
// of the ?VER INFO tree.
type VersionLeaf struct {
	Version   float64
	Timestamp string
}

// DriverVersion is the per-driver subtree of a ?VER INFO reply.
type DriverVersion struct {
	VER VersionLeaf
	DSP VersionLeaf
	FPGA VersionLeaf
	PCB  VersionLeaf
	IO   VersionLeaf
}

// ControllerVersion is the per-controller subtree of a ?VER INFO reply.
type ControllerVersion struct {
	VER   VersionLeaf
	DSP   VersionLeaf
	FPGA  VersionLeaf
	PCB   VersionLeaf
	MCPU0 VersionLeaf
	MCPU1 VersionLeaf
	MCPU2 VersionLeaf
}

// FirmwareVersion is the full nested tree of a ?VER INFO reply.
type FirmwareVersion struct {
	System struct {
		VER        VersionLeaf
		Controller ControllerVersion
		Driver     DriverVersion
	}
}

// ParseFirmwareVersion decodes the indented lines of a "?VER INFO" reply.
// Indentation of 0/3/6 spaces encodes SYSTEM/{CONTROLLER,DRIVER}/leaf
// nesting; a line is "<indent><NAME> <version> <timestamp>".
func ParseFirmwareVersion(lines []string) (FirmwareVersion, error) {
	var fw FirmwareVersion
	var section string // "", "CONTROLLER", "DRIVER"

	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		indent := len(raw) - len(strings.TrimLeft(raw, " "))
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		name := strings.ToUpper(fields[0])

		switch indent {
		case 0:
			if name != "SYSTEM" {
				return fw, icerr.Protocolf("ver info: unexpected root token %q", name)
			}
			if len(fields) >= 2 {
				fw.System.VER = leafFrom(fields[1:])
			}
		case 3:
			section = name
		case 6:
			leaf := leafFrom(fields[1:])
			if err := assignLeaf(&fw, section, name, leaf); err != nil {
				return fw, err
			}
		default:
			return fw, icerr.Protocolf("ver info: unexpected indentation %d", indent)
		}
	}

	return fw, nil
}

func leafFrom(fields []string) VersionLeaf {
	var l VersionLeaf
	if len(fields) > 0 {
		l.Version, _ = strconv.ParseFloat(fields[0], 64)
	}
	if len(fields) > 1 {
		l.Timestamp = strings.Join(fields[1:], " ")
	}
	return l
}

func assignLeaf(fw *FirmwareVersion, section, name string, leaf VersionLeaf) error {
	switch section {
	case "CONTROLLER":
		switch name {
		case "VER":
			fw.System.Controller.VER = leaf
		case "DSP":
			fw.System.Controller.DSP = leaf
		case "FPGA":
			fw.System.Controller.FPGA = leaf
		case "PCB":
			fw.System.Controller.PCB = leaf
		case "MCPU0":
			fw.System.Controller.MCPU0 = leaf
		case "MCPU1":
			fw.System.Controller.MCPU1 = leaf
		case "MCPU2":
			fw.System.Controller.MCPU2 = leaf
		default:
			return icerr.Protocolf("ver info: unknown controller leaf %q", name)
		}
	case "DRIVER":
		switch name {
		case "VER":
			fw.System.Driver.VER = leaf
		case "DSP":
			fw.System.Driver.DSP = leaf
		case "FPGA":
			fw.System.Driver.FPGA = leaf
		case "PCB":
			fw.System.Driver.PCB = leaf
		case "IO":
			fw.System.Driver.IO = leaf
		default:
			return icerr.Protocolf("ver info: unknown driver leaf %q", name)
		}
	default:
		return icerr.Protocolf("ver info: leaf %q outside SYSTEM/CONTROLLER|DRIVER", name)
	}

	return nil
}

// SupportedVersions is the pinned minimum firmware version this client
// has been validated against; update when the wire format changes.
var SupportedVersions = map[string]string{
	"driver":     "3.0",
	"controller": "3.0",
}

// AtLeast reports whether v satisfies the given minimum, using semantic
// version comparison of v's shortest decimal form. Since v is a float, a
// reported version 3.10 arrives as 3.1 and is compared as 3.1.
func AtLeast(v float64, min string) bool {
	cur, err := goversion.NewVersion(strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return false
	}
	want, err := goversion.NewVersion(min)
	if err != nil {
		return false
	}
	return cur.GreaterThanOrEqual(want)
}
