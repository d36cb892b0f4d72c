/*
 * Air - an evaluation core for a homoiconic expression language
 *
 * Copyright Air Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package interpreter

import "github.com/airlang-go/air/common"

// Pair is an ordered two-element composite, the structural building block
// every richer composite (List, Map) is expressed in terms of conceptually
// (spec.md §3.1). Pair is value-shaped: Clone deep-copies both members.
type Pair struct {
	First, Second Value
}

func NewPair(first, second Value) Pair { return Pair{First: first, Second: second} }

func (p Pair) Shape() Shape { return ShapePair }
func (p Pair) Clone() Value { return Pair{First: p.First.Clone(), Second: p.Second.Clone()} }
func (p Pair) Equal(o Value) bool {
	op, ok := o.(Pair)
	return ok && p.First.Equal(op.First) && p.Second.Equal(op.Second)
}
func (p Pair) String() string { return "(" + p.First.String() + " . " + p.Second.String() + ")" }

// Call is unevaluated call syntax: a function position and an input
// position (spec.md §3.1, §4.4). Under Form it is inert data; under Eval it
// triggers the call-dispatch protocol (component E, CallEval).
type Call struct {
	Func, Input Value
}

func NewCall(fn, input Value) Call { return Call{Func: fn, Input: input} }

func (c Call) Shape() Shape { return ShapeCall }
func (c Call) Clone() Value { return Call{Func: c.Func.Clone(), Input: c.Input.Clone()} }
func (c Call) Equal(o Value) bool {
	oc, ok := o.(Call)
	return ok && c.Func.Equal(oc.Func) && c.Input.Equal(oc.Input)
}
func (c Call) String() string { return "(" + c.Func.String() + " " + c.Input.String() + ")" }

// List is an ordered sequence of values.
type List struct {
	Items []Value
}

func NewList(items ...Value) List { return List{Items: items} }

func (l List) Shape() Shape { return ShapeList }
func (l List) Clone() Value {
	items := make([]Value, len(l.Items))
	for i, v := range l.Items {
		items[i] = v.Clone()
	}
	return List{Items: items}
}
func (l List) Equal(o Value) bool {
	ol, ok := o.(List)
	if !ok || len(l.Items) != len(ol.Items) {
		return false
	}
	for i, v := range l.Items {
		if !v.Equal(ol.Items[i]) {
			return false
		}
	}
	return true
}
func (l List) String() string {
	s := "["
	for i, v := range l.Items {
		if i > 0 {
			s += " "
		}
		s += v.String()
	}
	return s + "]"
}

// mapEntry keeps the original key Value alongside the canonical string form
// used to index common.OrderedMap, since an arbitrary Value is not
// Go-comparable (spec.md §3.1's Map keys may be any Value).
type mapEntry struct {
	key   Value
	value Value
}

// Map is an ordered key-value composite keyed by arbitrary Values,
// canonicalized through String() for lookup (spec.md §3.1). Order of
// insertion is preserved via common.OrderedMap, mirroring the teacher's own
// ordered-map idiom for deterministic iteration.
type Map struct {
	entries *common.OrderedMap[string, mapEntry]
}

func NewMap() Map {
	return Map{entries: common.NewOrderedMap[string, mapEntry]()}
}

func (m Map) Len() int { return m.entries.Len() }

func (m Map) Get(key Value) (Value, bool) {
	e, ok := m.entries.Get(key.String())
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (m Map) Set(key, value Value) Map {
	m.entries.Set(key.String(), mapEntry{key: key, value: value})
	return m
}

func (m Map) Range(f func(key, value Value) bool) {
	m.entries.Range(func(_ string, e mapEntry) bool {
		return f(e.key, e.value)
	})
}

func (m Map) Shape() Shape { return ShapeMap }

func (m Map) Clone() Value {
	clone := NewMap()
	m.Range(func(k, v Value) bool {
		clone.Set(k.Clone(), v.Clone())
		return true
	})
	return clone
}

func (m Map) Equal(o Value) bool {
	om, ok := o.(Map)
	if !ok || m.Len() != om.Len() {
		return false
	}
	equal := true
	m.Range(func(k, v Value) bool {
		ov, found := om.Get(k)
		if !found || !v.Equal(ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

func (m Map) String() string {
	s := "{"
	first := true
	m.Range(func(k, v Value) bool {
		if !first {
			s += " "
		}
		first = false
		s += k.String() + ": " + v.String()
		return true
	})
	return s + "}"
}
