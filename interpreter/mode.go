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

// Mode is the value-to-value transformer of component D (spec.md §4.4):
// every call position, list item, map entry, and symbol is ultimately
// transformed by some Mode before the result is produced.
type Mode interface {
	Transform(cfg Cfg, access CtxAccess, input Value) Value
}

// idMode is the identity transformer: it returns input entirely
// unexamined (property P1). It is also the implicit mode for any CompMode
// slot left nil.
type idMode struct{}

// IdMode is the identity Mode.
var IdMode Mode = idMode{}

func (idMode) Transform(_ Cfg, _ CtxAccess, input Value) Value { return input }

// formMode is the structural-walk primitive mode: Call positions are
// treated as inert data (spec.md §4.4).
type formMode struct{}

// FormMode is the Form primitive Mode, wrapping the Form driver.
var FormMode Mode = formMode{}

func (formMode) Transform(cfg Cfg, access CtxAccess, input Value) Value {
	return Form(cfg, access, input)
}

// evalMode is the structural-walk primitive mode that also invokes Call
// positions (spec.md §4.4).
type evalMode struct{}

// EvalMode is the Eval primitive Mode, wrapping the Eval driver.
var EvalMode Mode = evalMode{}

func (evalMode) Transform(cfg Cfg, access CtxAccess, input Value) Value {
	return Eval(cfg, access, input)
}

// SymbolFlavor governs how a PrimMode or CompMode resolves a Ctx-kind
// symbol once its value-layer prefix has already selected context lookup
// (spec.md §4.3's mode-layer Ref/Move prefixes).
type SymbolFlavor int

const (
	// SymbolFlavorPlain resolves the symbol and returns a clone of its
	// bound value — the default, unmarked behavior.
	SymbolFlavorPlain SymbolFlavor = iota
	// SymbolFlavorRef resolves the symbol and returns a const Link ('*'
	// prefix): over the bound Cell itself when the value is a Cell,
	// otherwise over a fresh Cell holding a clone of the bound value.
	SymbolFlavorRef
	// SymbolFlavorMove resolves the symbol, removes its binding, and
	// returns the bare value ('^' prefix); requires TierMutable.
	SymbolFlavorMove
)

// CodeMode governs what happens at a Call position: whether it is walked
// as inert data (CodeModeForm) or invoked (CodeModeEval).
type CodeMode int

const (
	CodeModeForm CodeMode = iota
	CodeModeEval
)

// PrimMode is the compact representation of component D: one uniform
// symbol-resolution flavour applied to every symbol encountered, and one
// CodeMode applied to every Call position, with Pair/List/Map recursing
// using this same PrimMode (spec.md §4.4's "compact representation").
type PrimMode struct {
	Symbol SymbolFlavor
	Call   CodeMode
}

func (m PrimMode) Transform(cfg Cfg, access CtxAccess, input Value) Value {
	switch input.Shape() {
	case ShapeSymbol:
		return resolveSymbol(cfg, access, input.(Symbol), m.Symbol)
	case ShapePair:
		p := input.(Pair)
		return Pair{First: m.Transform(cfg, access, p.First), Second: m.Transform(cfg, access, p.Second)}
	case ShapeList:
		l := input.(List)
		items := make([]Value, len(l.Items))
		for i, v := range l.Items {
			items[i] = m.Transform(cfg, access, v)
		}
		return List{Items: items}
	case ShapeMap:
		mp := input.(Map)
		out := NewMap()
		mp.Range(func(k, v Value) bool {
			out.Set(m.Transform(cfg, access, k), m.Transform(cfg, access, v))
			return true
		})
		return out
	case ShapeCall:
		c := input.(Call)
		if m.Call == CodeModeForm {
			return Call{Func: m.Transform(cfg, access, c.Func), Input: m.Transform(cfg, access, c.Input)}
		}
		return evalCall(cfg, access, c)
	default:
		return input
	}
}

// PairMode applies a distinct Mode to each side of a Pair value
// (spec.md §4.4's CompMode, specialized to the pair shape).
type PairMode struct {
	First, Second Mode
}

// MapMode applies a distinct Mode to a Map's keys and a distinct Mode to
// its values.
type MapMode struct {
	Key, Value Mode
}

// CallMode selects Form or Eval behavior for a Call position. Under
// CodeModeForm the func/input sub-trees continue to be walked by the
// enclosing CompMode; under CodeModeEval the Call goes through the
// CallEval protocol.
type CallMode struct {
	Code CodeMode
}

// CompMode gives full per-shape control: an optional sub-mode for each of
// {symbol, pair, call, list, map}. A nil slot means Id for that shape
// (spec.md §4.4): the value is returned untouched, never even examined.
type CompMode struct {
	Symbol Mode
	Pair   *PairMode
	Call   *CallMode
	List   Mode
	Map    *MapMode
}

func (m CompMode) Transform(cfg Cfg, access CtxAccess, input Value) Value {
	switch input.Shape() {
	case ShapeSymbol:
		if m.Symbol == nil {
			return input
		}
		return m.Symbol.Transform(cfg, access, input)
	case ShapePair:
		if m.Pair == nil {
			return input
		}
		p := input.(Pair)
		first, second := p.First, p.Second
		if m.Pair.First != nil {
			first = m.Pair.First.Transform(cfg, access, first)
		}
		if m.Pair.Second != nil {
			second = m.Pair.Second.Transform(cfg, access, second)
		}
		return Pair{First: first, Second: second}
	case ShapeList:
		if m.List == nil {
			return input
		}
		l := input.(List)
		items := make([]Value, len(l.Items))
		for i, v := range l.Items {
			items[i] = m.List.Transform(cfg, access, v)
		}
		return List{Items: items}
	case ShapeMap:
		if m.Map == nil {
			return input
		}
		mp := input.(Map)
		out := NewMap()
		mp.Range(func(k, v Value) bool {
			outK, outV := k, v
			if m.Map.Key != nil {
				outK = m.Map.Key.Transform(cfg, access, k)
			}
			if m.Map.Value != nil {
				outV = m.Map.Value.Transform(cfg, access, v)
			}
			out.Set(outK, outV)
			return true
		})
		return out
	case ShapeCall:
		if m.Call == nil {
			return input
		}
		c := input.(Call)
		if m.Call.Code == CodeModeForm {
			return Call{Func: m.Transform(cfg, access, c.Func), Input: m.Transform(cfg, access, c.Input)}
		}
		return evalCall(cfg, access, c)
	default:
		return input
	}
}

// FuncMode is a Mode whose transformation engine is a user-supplied Func
// value: applying it means calling fn with input under access's tier
// (spec.md §4.4).
type FuncMode struct{ Fn Func }

func (m FuncMode) Transform(cfg Cfg, access CtxAccess, input Value) Value {
	return Dispatch(cfg, access, m.Fn, input)
}

