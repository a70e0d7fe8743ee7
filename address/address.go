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

// Package address implements the rack/index addressing scheme used to
// number axes on the bus: a = rack*10 + index, with rack in [0,15] and
// index in [1,8]. Address 0 is reserved for the system/master node.
package address

import (
	"fmt"

	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

const (
	MinRack  = 0
	MaxRack  = 15
	MinIndex = 1
	MaxIndex = 8

	// System is the reserved address of the controller itself, never an axis.
	System = 0
)

// Address is a validated axis address in [1, 158] following rack*10+index.
type Address struct {
	rack  int
	index int
	raw   int
}

// New validates and builds an Address from its wire-level integer form.
func New(raw int) (Address, error) {
	if raw == System {
		return Address{}, icerr.Usagef("address %d is the system address, not an axis", raw)
	}

	rack := raw / 10
	index := raw % 10

	if rack < MinRack || rack > MaxRack {
		return Address{}, icerr.Usagef("address %d: rack %d out of range [%d,%d]", raw, rack, MinRack, MaxRack)
	}
	if index < MinIndex || index > MaxIndex {
		return Address{}, icerr.Usagef("address %d: index %d out of range [%d,%d]", raw, index, MinIndex, MaxIndex)
	}

	return Address{rack: rack, index: index, raw: raw}, nil
}

// FromRackIndex builds an Address from its (rack, index) pair.
func FromRackIndex(rack, index int) (Address, error) {
	return New(rack*10 + index)
}

func (a Address) Rack() int  { return a.rack }
func (a Address) Index() int { return a.index }
func (a Address) Int() int   { return a.raw }

func (a Address) String() string { return fmt.Sprintf("%d", a.raw) }

// IsValid reports whether raw decodes to a well-formed, non-system address.
func IsValid(raw int) bool {
	_, err := New(raw)
	return err == nil
}

// AliasMap resolves human-assigned axis names to addresses, and back. It
// is populated by Controller.GetName/SetName callers that want to address
// axes by name instead of by number, mirroring the alias table the
// original command-line tooling keeps alongside the numeric addresses.
type AliasMap struct {
	byName map[string]Address
	byAddr map[int]string
}

// NewAliasMap returns an empty, ready-to-use AliasMap.
func NewAliasMap() *AliasMap {
	return &AliasMap{
		byName: make(map[string]Address),
		byAddr: make(map[int]string),
	}
}

// Set records name as an alias for addr, overwriting any previous alias
// for either the name or the address.
func (m *AliasMap) Set(name string, addr Address) {
	if old, ok := m.byAddr[addr.Int()]; ok {
		delete(m.byName, old)
	}
	m.byName[name] = addr
	m.byAddr[addr.Int()] = name
}

// Resolve looks up an address by alias.
func (m *AliasMap) Resolve(name string) (Address, bool) {
	a, ok := m.byName[name]
	return a, ok
}

// Name looks up the alias registered for addr, if any.
func (m *AliasMap) Name(addr Address) (string, bool) {
	n, ok := m.byAddr[addr.Int()]
	return n, ok
}
