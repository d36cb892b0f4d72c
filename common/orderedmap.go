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

package common

import "container/list"

// OrderedMap is a map with deterministic insertion-order iteration, used
// wherever the core needs a Go-comparable key: Ctx's binding table (keyed
// by Symbol) and, via a canonical string form, the Map value variant
// (spec.md §3.1, whose keys are arbitrary Values and therefore not
// naturally Go-comparable). The shape follows the teacher's own
// runtime/common/orderedmap package: a backing list.List for order plus an
// index map for O(1) lookup/removal.
type OrderedMap[K comparable, V any] struct {
	index   map[K]*list.Element
	entries *list.List
}

type omEntry[K comparable, V any] struct {
	key   K
	value V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index:   make(map[K]*list.Element),
		entries: list.New(),
	}
}

func (m *OrderedMap[K, V]) Len() int { return m.entries.Len() }

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	var zero V
	el, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return el.Value.(*omEntry[K, V]).value, true
}

func (m *OrderedMap[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Set inserts or updates key. It reports whether key was newly inserted.
func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	if el, ok := m.index[key]; ok {
		el.Value.(*omEntry[K, V]).value = value
		return false
	}
	el := m.entries.PushBack(&omEntry[K, V]{key: key, value: value})
	m.index[key] = el
	return true
}

func (m *OrderedMap[K, V]) Delete(key K) bool {
	el, ok := m.index[key]
	if !ok {
		return false
	}
	m.entries.Remove(el)
	delete(m.index, key)
	return true
}

// Range calls f for every entry in insertion order, stopping early if f
// returns false.
func (m *OrderedMap[K, V]) Range(f func(key K, value V) bool) {
	for el := m.entries.Front(); el != nil; el = el.Next() {
		e := el.Value.(*omEntry[K, V])
		if !f(e.key, e.value) {
			return
		}
	}
}

// Clone returns a shallow copy preserving insertion order.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	clone := NewOrderedMap[K, V]()
	m.Range(func(key K, value V) bool {
		clone.Set(key, value)
		return true
	})
	return clone
}

func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
