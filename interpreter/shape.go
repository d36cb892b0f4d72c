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

// Shape identifies a Value's outermost constructor, the thing every mode
// and driver dispatches on (spec.md §3.5).
type Shape int

const (
	ShapeUnit Shape = iota
	ShapeBit
	ShapeInt
	ShapeNumber
	ShapeByte
	ShapeText
	ShapeSymbol
	ShapeKey
	ShapePair
	ShapeCall
	ShapeList
	ShapeMap
	ShapeCell
	ShapeLink
	ShapeCtx
	ShapeCfg
	ShapeFunc
	ShapeExt
)

func (s Shape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapeBit:
		return "bit"
	case ShapeInt:
		return "int"
	case ShapeNumber:
		return "number"
	case ShapeByte:
		return "byte"
	case ShapeText:
		return "text"
	case ShapeSymbol:
		return "symbol"
	case ShapeKey:
		return "key"
	case ShapePair:
		return "pair"
	case ShapeCall:
		return "call"
	case ShapeList:
		return "list"
	case ShapeMap:
		return "map"
	case ShapeCell:
		return "cell"
	case ShapeLink:
		return "link"
	case ShapeCtx:
		return "ctx"
	case ShapeCfg:
		return "cfg"
	case ShapeFunc:
		return "func"
	case ShapeExt:
		return "ext"
	default:
		return "unknown"
	}
}

// isAtomic reports whether the Form/Eval drivers pass v through unchanged
// without recursing into it (spec.md §4.4, property P2). Atomic shapes are
// the explicitly-listed data leaves plus every reference-shaped variant
// (Cell, Link, Ctx, Cfg, Func, Ext): none of them are decomposed by the
// generic structural walk, they are only ever acted on through their own
// dedicated operations (Cell.Get, Link.TryShare, Ctx.Get, a Call dispatch,
// ...).
func isAtomic(s Shape) bool {
	switch s {
	case ShapePair, ShapeCall, ShapeList, ShapeMap, ShapeSymbol:
		return false
	default:
		return true
	}
}
