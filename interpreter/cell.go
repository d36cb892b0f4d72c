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

import "sync"

// cellState is the shared heap allocation behind every Cell value. Cell is
// reference-shaped (spec.md §3.2): Clone returns the same cellState, not a
// copy of it.
type cellState struct {
	mu  sync.Mutex
	val Value
}

// Cell is a single mutable slot, the simplest reference-shaped value and
// the storage Link borrows from (spec.md §3.1).
type Cell struct{ state *cellState }

func NewCell(v Value) Cell {
	return Cell{state: &cellState{val: v}}
}

func (c Cell) Get() Value {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.val
}

func (c Cell) Set(v Value) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.val = v
}

func (c Cell) Shape() Shape { return ShapeCell }

// Clone returns the same underlying cell: Cell shares representation rather
// than copying it, per spec.md §3.2.
func (c Cell) Clone() Value { return c }

func (c Cell) Equal(o Value) bool {
	oc, ok := o.(Cell)
	return ok && c.state == oc.state
}

func (c Cell) String() string { return "#cell" }
