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

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/airlang-go/air/common"
)

// Form performs the structural walk of component E: it recurses into
// composite shapes and resolves symbols, but treats every Call position as
// inert data — no function is ever invoked (spec.md §4.4, §4.5).
func Form(cfg Cfg, access CtxAccess, input Value) Value {
	return walk(cfg, access, input, false)
}

// Eval performs the same structural walk as Form, except that a Call
// position triggers the call-dispatch protocol instead of being treated as
// data (spec.md §4.4, §4.5).
func Eval(cfg Cfg, access CtxAccess, input Value) Value {
	return walk(cfg, access, input, true)
}

// walk is the single outer loop shared by Form and Eval (spec.md §4.5):
// the two drivers differ only in what happens at a Call position.
// Atomic shapes (property P2) and Symbol resolution are handled
// identically either way. Key values are not resolved: they fall through
// to the atomic case and are returned unchanged, prefix included.
func walk(cfg Cfg, access CtxAccess, input Value, invokeCalls bool) Value {
	if !cfg.Step() {
		return Unit
	}

	switch input.Shape() {
	case ShapeSymbol:
		return resolveSymbolPlain(cfg, access, input.(Symbol))
	case ShapePair:
		p := input.(Pair)
		return Pair{
			First:  walk(cfg, access, p.First, invokeCalls),
			Second: walk(cfg, access, p.Second, invokeCalls),
		}
	case ShapeList:
		l := input.(List)
		items := make([]Value, len(l.Items))
		for i, v := range l.Items {
			items[i] = walk(cfg, access, v, invokeCalls)
		}
		return List{Items: items}
	case ShapeMap:
		mp := input.(Map)
		out := NewMap()
		mp.Range(func(k, v Value) bool {
			out.Set(walk(cfg, access, k, invokeCalls), walk(cfg, access, v, invokeCalls))
			return true
		})
		return out
	case ShapeCall:
		c := input.(Call)
		if !invokeCalls {
			return Call{Func: walk(cfg, access, c.Func, false), Input: walk(cfg, access, c.Input, false)}
		}
		return evalCall(cfg, access, c)
	default:
		// Every other shape is atomic: returned unexamined (property P1/P2).
		return input
	}
}

// resolveSymbolPlain resolves a Symbol the way the generic Form/Eval walk
// does: no mode-layer Ref/Move flavour is in play, only the value-layer
// prefix (spec.md §4.3, §4.5).
func resolveSymbolPlain(cfg Cfg, access CtxAccess, sym Symbol) Value {
	return resolveSymbol(cfg, access, sym, SymbolFlavorPlain)
}

// resolveSymbol implements symbol resolution shared by the generic walk and
// PrimMode: the value-layer prefix selects Literal/Shift/Ctx behavior
// (spec.md §4.3), and for the Ctx case, flavor additionally selects plain
// resolution, a shared Ref borrow, or a destructive Move.
func resolveSymbol(cfg Cfg, access CtxAccess, sym Symbol, flavor SymbolFlavor) Value {
	kind, rest := sym.Token().Recognize()
	switch kind {
	case common.PrefixKindLiteral:
		return NewSymbol(rest)
	case common.PrefixKindShift:
		return NewSymbol(rest)
	default: // common.PrefixKindCtx
		return resolveCtxSymbol(cfg, access, rest, flavor)
	}
}

func resolveCtxSymbol(cfg Cfg, access CtxAccess, sym common.Symbol, flavor SymbolFlavor) Value {
	if access.Tier == TierFree {
		return Unit
	}
	binding, ok := access.Ctx.Get(sym)
	if !ok {
		return Unit
	}

	switch flavor {
	case SymbolFlavorRef:
		// Ref always hands back a shared (read-only) borrow (spec.md §4.3's
		// '*' mode-layer prefix), regardless of the binding's own contract.
		if cell, isCell := binding.Value.(Cell); isCell {
			return NewLink(cell, true)
		}
		return NewLink(NewCell(binding.Value.Clone()), true)
	case SymbolFlavorMove:
		if access.Tier != TierMutable {
			return Unit
		}
		if !access.Ctx.Remove(sym) {
			return Unit
		}
		return binding.Value
	default:
		return binding.Value.Clone()
	}
}

// evalCall implements the five-step CallEval protocol (spec.md §4.5,
// §4.6): evaluate the function position, evaluate the input position,
// resolve what the function's own mode does to that input, then dispatch
// the call and let the result pass back through unchanged.
func evalCall(cfg Cfg, access CtxAccess, call Call) Value {
	var result Value
	trace(cfg, "air.eval_call", []attribute.KeyValue{
		attribute.String("shape", "call"),
	}, func() {
		result = evalCallInner(cfg, access, call)
	})
	return result
}

func evalCallInner(cfg Cfg, access CtxAccess, call Call) Value {
	// Step 1: evaluate the function position.
	fnValue := walk(cfg, access, call.Func, true)
	fn, ok := fnValue.(Func)
	if !ok {
		// Step 2: call-without-function is inert under Eval (property P3): the
		// evaluated function position simply was not callable.
		return Call{Func: fnValue, Input: walk(cfg, access, call.Input, true)}
	}

	// Step 3: evaluate the input position under the function's declared
	// input mode, defaulting to a full Eval when the function carries no
	// mode metadata of its own (spec.md §4.4's default_mode).
	input := call.Input
	if mode, hasMode := inputModeOf(fn); hasMode {
		input = mode.Transform(cfg, access, input)
	} else {
		input = walk(cfg, access, input, true)
	}

	// Step 4: dispatch the function's call setup hook if it has one,
	// handing it Pair(fn, arg) so it can still reach the original
	// function; otherwise dispatch fn itself (spec.md §3.6, §4.5 step 4).
	// Step 5: return the result unchanged — no further evaluation is
	// applied to it (spec.md §4.6).
	if setup, ok := fn.CallSetup(); ok {
		return Dispatch(cfg, access, setup, NewPair(fn, input))
	}
	return Dispatch(cfg, access, fn, input)
}

// inputModeOf reports the Mode a function wants applied to its own input
// position, if it carries one. Functions installed without a mode fall back
// to a full Eval of the input (the walk above), matching original_source's
// DEFAULT_MODE of CodeMode::Eval for Call positions.
func inputModeOf(fn Func) (Mode, bool) {
	return fn.ForwardMode()
}
