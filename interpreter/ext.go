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

// extState is the shared heap allocation behind an Ext value.
type extState struct {
	tag     string
	payload any
}

// Ext is the host extension escape hatch: an opaque, reference-shaped
// payload the core passes through without interpreting (spec.md §3.1). A
// host registers its own primitives to construct and inspect a given tag's
// Ext values; the core only ever compares and clones them by reference.
type Ext struct{ state *extState }

func NewExt(tag string, payload any) Ext {
	return Ext{state: &extState{tag: tag, payload: payload}}
}

func (e Ext) Tag() string    { return e.state.tag }
func (e Ext) Payload() any   { return e.state.payload }
func (e Ext) Shape() Shape   { return ShapeExt }
func (e Ext) Clone() Value   { return e }
func (e Ext) Equal(o Value) bool {
	oe, ok := o.(Ext)
	return ok && e.state == oe.state
}
func (e Ext) String() string { return "#ext:" + e.state.tag }
