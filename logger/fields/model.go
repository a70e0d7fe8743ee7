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
	"sync"

	"github.com/sirupsen/logrus"
)

type fldModel struct {
	m sync.Map
}

func (o *fldModel) Add(key string, val interface{}) Fields {
	o.m.Store(key, val)
	return o
}

func (o *fldModel) Store(key string, val interface{}) {
	o.m.Store(key, val)
}

func (o *fldModel) Get(key string) (val interface{}, ok bool) {
	return o.m.Load(key)
}

func (o *fldModel) LoadOrStore(key string, val interface{}) (actual interface{}, loaded bool) {
	return o.m.LoadOrStore(key, val)
}

func (o *fldModel) LoadAndDelete(key string) (val interface{}, loaded bool) {
	return o.m.LoadAndDelete(key)
}

func (o *fldModel) Delete(key string) Fields {
	o.m.Delete(key)
	return o
}

func (o *fldModel) Clean() {
	o.m.Range(func(key, _ interface{}) bool {
		o.m.Delete(key)
		return true
	})
}

func (o *fldModel) Walk(fct FuncWalk) Fields {
	o.m.Range(func(key, val interface{}) bool {
		return fct(key.(string), val)
	})
	return o
}

func (o *fldModel) WalkLimit(fct FuncWalk, validKeys ...string) Fields {
	for _, k := range validKeys {
		if v, ok := o.m.Load(k); ok {
			if !fct(k, v) {
				break
			}
		}
	}
	return o
}

func (o *fldModel) Merge(f Fields) Fields {
	if f == nil || o == nil {
		return o
	}

	f.Walk(func(key string, val interface{}) bool {
		o.m.Store(key, val)
		return true
	})

	return o
}

func (o *fldModel) Map(fct func(key string, val interface{}) interface{}) Fields {
	o.m.Range(func(key, val interface{}) bool {
		o.m.Store(key, fct(key.(string), val))
		return true
	})
	return o
}

// Clone returns an independent copy; modifying the clone never affects the original.
func (o *fldModel) Clone() Fields {
	n := &fldModel{}
	o.m.Range(func(key, val interface{}) bool {
		n.m.Store(key, val)
		return true
	})
	return n
}

func (o *fldModel) Logrus() logrus.Fields {
	res := make(logrus.Fields)
	if o == nil {
		return res
	}

	o.m.Range(func(key, val interface{}) bool {
		res[key.(string)] = val
		return true
	})
	return res
}

func (o *fldModel) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Logrus())
}

func (o *fldModel) UnmarshalJSON(data []byte) error {
	raw := make(map[string]interface{})
	if e := json.Unmarshal(data, &raw); e != nil {
		return e
	}

	for k, v := range raw {
		o.m.Store(k, v)
	}

	return nil
}
