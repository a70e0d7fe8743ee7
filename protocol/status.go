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

// Package protocol holds the wire-level data model shared by every command
// surface: the 32-bit axis status word, firmware version records and the
// enums (mode, indexer, stop code, table source/dtype) the controller and
// axis packages build commands from.
package protocol

import "fmt"

// Status wraps the 32-bit status word returned by ?STATUS/?FSTATUS.
type Status uint32

func NewStatus(v uint32) Status { return Status(v) }

func (s Status) Present() bool { return s&(1<<0) != 0 }
func (s Status) Alive() bool   { return s&(1<<1) != 0 }

type Mode uint8

const (
	ModeOper Mode = iota
	ModeProg
	ModeTest
	ModeFail
)

func (m Mode) String() string {
	switch m {
	case ModeOper:
		return "oper"
	case ModeProg:
		return "prog"
	case ModeTest:
		return "test"
	case ModeFail:
		return "fail"
	default:
		return "unknown"
	}
}

func (s Status) Mode() Mode { return Mode((s >> 2) & 0x3) }

type DisableCause uint8

const (
	DisableNone DisableCause = iota
	DisableNotActive
	DisableHardwareAlarm
	DisableRackSignal
	DisableRackSwitch
	DisableAxisSignal
	DisableAxisSwitch
	DisableSoftware
)

// disableCauseStrings is the authoritative disable-cause mapping: index by
// the 3-bit DISABLE field of the status word.
var disableCauseStrings = [...]string{
	"Motor power NOT DISABLED",
	"Motor power is DISABLED because axis is NOT ACTIVE",
	"Motor power is DISABLED by HARDWARE ALARM",
	"Motor power is DISABLED due to external RACK DISABLE SIGNAL",
	"Motor power is DISABLED by the RACK DISABLE SWITCH",
	"Motor power is DISABLED due to external AXIS DISABLE signal",
	"Motor power is DISABLED by the AXIS DISABLE SWITCH",
	"Motor power is DISABLED by SOFTWARE",
}

func (d DisableCause) String() string {
	if int(d) < len(disableCauseStrings) {
		return disableCauseStrings[d]
	}
	return "unknown"
}

func (s Status) DisableCause() DisableCause { return DisableCause((s >> 4) & 0x7) }

type Indexer uint8

const (
	IndexerInternal Indexer = iota
	IndexerInSystem
	IndexerExternal
	IndexerLinked
)

func (i Indexer) String() string {
	switch i {
	case IndexerInternal:
		return "internal"
	case IndexerInSystem:
		return "in_system"
	case IndexerExternal:
		return "external"
	case IndexerLinked:
		return "linked"
	default:
		return "unknown"
	}
}

func (s Status) Indexer() Indexer { return Indexer((s >> 7) & 0x3) }

func (s Status) Ready() bool    { return s&(1<<9) != 0 }
func (s Status) Moving() bool   { return s&(1<<10) != 0 }
func (s Status) Settling() bool { return s&(1<<11) != 0 }
func (s Status) OutOfWin() bool { return s&(1<<12) != 0 }
func (s Status) Warning() bool  { return s&(1<<13) != 0 }

type StopCode uint8

// stopCodeStrings is the authoritative stop-code mapping: index by the
// 4-bit STOPCODE field of the status word.
var stopCodeStrings = [...]string{
	"No abnormal stop condition",
	"Last motion stopped by a STOP command",
	"Last motion stopped by an ABORT command or condition",
	"Last motion stopped when the LIMIT+ was reached",
	"Last motion stopped when the LIMIT- was reached",
	"Last motion stopped by a configured stop condition",
	"Last motion stopped because the axis power was DISABLED",
	"Last motion stopped ERROR: movement in progress?",
	"Internal failure",
	"Motor failure",
	"Power overload",
	"Driver overheating",
	"Close loop error",
	"Control encoder error",
	"N/A",
	"External alarm",
}

func (c StopCode) String() string {
	if int(c) < len(stopCodeStrings) {
		return stopCodeStrings[c]
	}
	return "unknown"
}

func (s Status) StopCode() StopCode { return StopCode((s >> 14) & 0xF) }

func (s Status) LimitPositive() bool { return s&(1<<18) != 0 }
func (s Status) LimitNegative() bool { return s&(1<<19) != 0 }
func (s Status) Home() bool          { return s&(1<<20) != 0 }
func (s Status) FivevPower() bool    { return s&(1<<21) != 0 }
func (s Status) VerificationError() bool { return s&(1<<22) != 0 }
func (s Status) PowerOn() bool       { return s&(1<<23) != 0 }
func (s Status) Info() uint8         { return uint8((s >> 24) & 0xFF) }

func (s Status) Uint32() uint32 { return uint32(s) }

func (s Status) String() string {
	return fmt.Sprintf("Status(0x%08X mode=%s ready=%v moving=%v stopcode=%s)",
		uint32(s), s.Mode(), s.Ready(), s.Moving(), s.StopCode())
}
