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

// Package interpreter implements the evaluation core: the value universe,
// evaluation contexts, process-wide configuration, the mode system, the
// function model, and the solver hook (spec.md components A-G).
package interpreter

import (
	"math/big"

	"github.com/airlang-go/air/common"
)

// Value is the universal type of the interpreter: every shape in spec.md
// §3.1 implements it. Value-shaped variants (Unit..Map) deep-copy on Clone;
// reference-shaped variants (Cell, Link, Ctx, Cfg, Func, Ext) share their
// underlying representation instead (spec.md §3.2).
type Value interface {
	Shape() Shape
	// Clone returns an independent value for value-shaped variants, or the
	// same shared reference for reference-shaped ones.
	Clone() Value
	Equal(other Value) bool
	String() string
}

// unitValue is the type of the sole Unit value: the universal "nothing to report" result
// used throughout evaluation-time failure handling (spec.md §7).
type unitValue struct{}

// Unit is the single inhabitant of the Unit shape.
var Unit Value = unitValue{}

func (unitValue) Shape() Shape      { return ShapeUnit }
func (unitValue) Clone() Value      { return Unit }
func (unitValue) Equal(o Value) bool {
	_, ok := o.(unitValue)
	return ok
}
func (unitValue) String() string { return "()" }

// Bit is a two-valued logic value.
type Bit bool

func (b Bit) Shape() Shape { return ShapeBit }
func (b Bit) Clone() Value { return b }
func (b Bit) Equal(o Value) bool {
	ob, ok := o.(Bit)
	return ok && b == ob
}
func (b Bit) String() string {
	if b {
		return "1"
	}
	return "0"
}

// Int is an arbitrary-precision signed integer. math/big is used directly
// rather than a third-party decimal library: the teacher's own
// github.com/onflow/fixed-point dependency has no source anywhere in the
// retrieval pack to ground its API against, so this is the one value
// variant built on the standard library (see DESIGN.md).
type Int struct{ v *big.Int }

func NewInt(v int64) Int { return Int{v: big.NewInt(v)} }

func IntFromBig(v *big.Int) Int { return Int{v: new(big.Int).Set(v)} }

func (i Int) Big() *big.Int  { return new(big.Int).Set(i.v) }
func (i Int) Shape() Shape   { return ShapeInt }
func (i Int) Clone() Value   { return i }
func (i Int) Equal(o Value) bool {
	oi, ok := o.(Int)
	return ok && i.v.Cmp(oi.v) == 0
}
func (i Int) String() string { return i.v.String() }

// Number is an arbitrary-precision rational, the decimal value variant of
// spec.md §3.1. big.Rat gives exact rational arithmetic without pulling in
// a fixed-point dependency this pack cannot ground (see Int above, and
// DESIGN.md).
type Number struct{ v *big.Rat }

func NewNumber(v *big.Rat) Number { return Number{v: new(big.Rat).Set(v)} }

func (n Number) Rat() *big.Rat { return new(big.Rat).Set(n.v) }
func (n Number) Shape() Shape  { return ShapeNumber }
func (n Number) Clone() Value  { return n }
func (n Number) Equal(o Value) bool {
	on, ok := o.(Number)
	return ok && n.v.Cmp(on.v) == 0
}
func (n Number) String() string { return n.v.RatString() }

// Byte is a single octet.
type Byte byte

func (b Byte) Shape() Shape { return ShapeByte }
func (b Byte) Clone() Value { return b }
func (b Byte) Equal(o Value) bool {
	ob, ok := o.(Byte)
	return ok && b == ob
}
func (b Byte) String() string { return string(rune(b)) }

// Text is a Unicode string, stored normalized to NFC and measured in
// grapheme clusters rather than bytes or runes (common.NormalizeText,
// common.GraphemeLen — grounded on github.com/rivo/uniseg and
// golang.org/x/text/unicode/norm, see SPEC_FULL.md's DOMAIN STACK).
type Text struct{ s string }

func NewText(s string) Text { return Text{s: common.NormalizeText(s)} }

func (t Text) Raw() string { return t.s }
func (t Text) Len() int    { return common.GraphemeLen(t.s) }
func (t Text) Shape() Shape { return ShapeText }
func (t Text) Clone() Value { return t }
func (t Text) Equal(o Value) bool {
	ot, ok := o.(Text)
	return ok && t.s == ot.s
}
func (t Text) String() string { return t.s }
