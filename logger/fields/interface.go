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

package fields

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// FuncWalk is called once per key/value pair by Walk and WalkLimit. Return
// false to stop the iteration early.
type FuncWalk func(key string, val interface{}) bool

// Fields is a thread-safe key/value bag attached to a log entry.
//
// Read operations (Get, Logrus, Walk) and single-key writes (Add, Store,
// Delete) are safe for concurrent use thanks to the underlying sync.Map.
// Composite operations (Map, Merge, Clean) need external synchronization
// if called concurrently with other writers - call Clone() first to hand
// an independent copy to another goroutine.
type Fields interface {
	json.Marshaler
	json.Unmarshaler

	// Clone returns an independent deep copy of the key set.
	Clone() Fields

	// Clean removes every key/value pair.
	Clean()

	// Add inserts or overwrites a key and returns the receiver for chaining.
	Add(key string, val interface{}) Fields

	// Delete removes key, if present, and returns the receiver for chaining.
	Delete(key string) Fields

	// Merge copies every key from f into the receiver, overwriting on conflict.
	Merge(f Fields) Fields

	// Walk visits every key/value pair in unspecified order.
	Walk(fct FuncWalk) Fields

	// WalkLimit visits only the keys named in validKeys, skipping missing ones.
	WalkLimit(fct FuncWalk, validKeys ...string) Fields

	// Get returns the value stored under key, if any.
	Get(key string) (val interface{}, ok bool)

	// Store is Add without the chaining return value.
	Store(key string, val interface{})

	// LoadOrStore returns the existing value for key, or stores val and
	// returns it with loaded=false.
	LoadOrStore(key string, val interface{}) (actual interface{}, loaded bool)

	// LoadAndDelete atomically removes key and returns its prior value.
	LoadAndDelete(key string) (val interface{}, loaded bool)

	// Logrus renders the current state as logrus.Fields.
	Logrus() logrus.Fields

	// Map replaces every value with the result of fct(key, value).
	Map(fct func(key string, val interface{}) interface{}) Fields
}

// New returns an empty Fields set.
func New() Fields {
	return &fldModel{}
}
