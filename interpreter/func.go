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

// FuncKind distinguishes the two ways a Func can be implemented.
type FuncKind int

const (
	FuncKindPrimitive FuncKind = iota
	FuncKindComposite
)

// PrimitiveFn is a primitive function body: host Go code invoked directly
// with the call's input and the context access it was granted.
type PrimitiveFn func(cfg Cfg, access CtxAccess, input Value) Value

// CompositeFunc is a function whose body is itself an Air Value, evaluated
// against a fresh working copy of a prelude context (spec.md §4.6's
// composite call protocol).
type CompositeFunc struct {
	// Prelude is cloned (CloneDeep) at the start of every call.
	Prelude Ctx
	// InputSymbol is bound to the call's input within the cloned prelude.
	InputSymbol common.Symbol
	// CtxSymbol, when the call's resolved access tier is not TierFree, is
	// bound to the caller's own context (shared, per that tier) within the
	// cloned prelude.
	CtxSymbol common.Symbol
	// Body is evaluated (via Eval) against the working context to produce
	// the call's result.
	Body Value
}

type funcState struct {
	name        string
	tier        Tier
	kind        FuncKind
	prim        PrimitiveFn
	comp        *CompositeFunc
	forwardMode Mode
	reverseMode Mode
	callSetup   *Func
	solveSetup  *Func
}

// Func is the unified function value: one of six variants formed by
// crossing {Free, Const, Mutable} access tiers with {Primitive, Composite}
// implementations (spec.md §3.6, §4.6), plus the optional call/solve setup
// hooks every variant may carry (spec.md §3.6, §4.7).
type Func struct{ state *funcState }

// FuncOption configures the optional setup hooks a Func carries, supplied
// to any of the six New*Prim/New*Comp constructors.
type FuncOption func(*funcState)

// WithCallSetup installs fn as the Func's call setup: CallEval dispatches
// fn instead of the Func itself, passing it Pair(Func, arg) so the setup
// can still reach the original function (spec.md §3.6, §4.5 step 4).
func WithCallSetup(fn Func) FuncOption {
	return func(s *funcState) { cp := fn; s.callSetup = &cp }
}

// WithSolveSetup installs fn as the Func's solve setup: a reverse query
// against the Func calls fn with Pair(Func, expected_output) instead of
// falling back to the process-wide solver (spec.md §4.7).
func WithSolveSetup(fn Func) FuncOption {
	return func(s *funcState) { cp := fn; s.solveSetup = &cp }
}

// WithMode installs the Func's mode pair (spec.md §3.6): forward is applied
// to a call's input before dispatch; reverse is applied to the expected
// output before a reverse query against this Func is resolved (spec.md
// §4.7). Either may be nil, leaving the corresponding direction at its
// default (full Eval forward, no adaptation in reverse).
func WithMode(forward, reverse Mode) FuncOption {
	return func(s *funcState) { s.forwardMode = forward; s.reverseMode = reverse }
}

func newPrimFunc(tier Tier, name string, f PrimitiveFn, opts ...FuncOption) Func {
	st := &funcState{name: name, tier: tier, kind: FuncKindPrimitive, prim: f}
	for _, opt := range opts {
		opt(st)
	}
	return Func{state: st}
}

func newCompFunc(tier Tier, name string, c CompositeFunc, opts ...FuncOption) Func {
	comp := c
	st := &funcState{name: name, tier: tier, kind: FuncKindComposite, comp: &comp}
	for _, opt := range opts {
		opt(st)
	}
	return Func{state: st}
}

func NewFreePrim(name string, f PrimitiveFn, opts ...FuncOption) Func {
	return newPrimFunc(TierFree, name, f, opts...)
}
func NewConstPrim(name string, f PrimitiveFn, opts ...FuncOption) Func {
	return newPrimFunc(TierConst, name, f, opts...)
}
func NewMutablePrim(name string, f PrimitiveFn, opts ...FuncOption) Func {
	return newPrimFunc(TierMutable, name, f, opts...)
}

func NewFreeComp(name string, c CompositeFunc, opts ...FuncOption) Func {
	return newCompFunc(TierFree, name, c, opts...)
}
func NewConstComp(name string, c CompositeFunc, opts ...FuncOption) Func {
	return newCompFunc(TierConst, name, c, opts...)
}
func NewMutableComp(name string, c CompositeFunc, opts ...FuncOption) Func {
	return newCompFunc(TierMutable, name, c, opts...)
}

// CallSetup returns the Func's call setup hook, if any (spec.md §3.6).
func (f Func) CallSetup() (Func, bool) {
	if f.state.callSetup == nil {
		return Func{}, false
	}
	return *f.state.callSetup, true
}

// SolveSetup returns the Func's solve setup hook, if any (spec.md §3.6,
// §4.7).
func (f Func) SolveSetup() (Func, bool) {
	if f.state.solveSetup == nil {
		return Func{}, false
	}
	return *f.state.solveSetup, true
}

// ForwardMode returns the Mode applied to a call's input before dispatch,
// if the Func carries one (spec.md §3.6).
func (f Func) ForwardMode() (Mode, bool) {
	if f.state.forwardMode == nil {
		return nil, false
	}
	return f.state.forwardMode, true
}

// ReverseMode returns the Mode applied to the expected output before a
// reverse query against this Func is resolved, if the Func carries one
// (spec.md §3.6, §4.7).
func (f Func) ReverseMode() (Mode, bool) {
	if f.state.reverseMode == nil {
		return nil, false
	}
	return f.state.reverseMode, true
}

func (f Func) Name() string { return f.state.name }
func (f Func) Tier() Tier   { return f.state.tier }
func (f Func) Kind() FuncKind { return f.state.kind }

func (f Func) Shape() Shape { return ShapeFunc }
func (f Func) Clone() Value { return f }
func (f Func) Equal(o Value) bool {
	of, ok := o.(Func)
	return ok && f.state == of.state
}
func (f Func) String() string {
	if f.state.name == "" {
		return "#func"
	}
	return "#func:" + f.state.name
}

// Dispatch invokes fn with input under the calling context access,
// implementing the access-tier compatibility table of spec.md §4.6:
//
//	F tier    Caller tier   Action
//	Free      any           call with no context
//	Const     Free          call with no context
//	Const     Const         call with caller context as read-only
//	Const     Mutable       call with caller context demoted to read-only
//	Mutable   Free          call with no context (pure behaviour)
//	Mutable   Const         refuse: return Unit
//	Mutable   Mutable       call with exclusive borrow of caller context
func Dispatch(cfg Cfg, caller CtxAccess, fn Func, input Value) Value {
	access, ok := resolveAccess(caller, fn.state.tier)
	if !ok {
		return Unit
	}

	switch fn.state.kind {
	case FuncKindPrimitive:
		return fn.state.prim(cfg, access, input)
	case FuncKindComposite:
		return dispatchComposite(cfg, access, fn.state.comp, input)
	default:
		return Unit
	}
}

func dispatchComposite(cfg Cfg, access CtxAccess, comp *CompositeFunc, input Value) Value {
	bodyCtx := comp.Prelude.CloneDeep()
	bodyCtx.Bind(comp.InputSymbol, input.Clone(), ContractNone, false)
	if access.Tier != TierFree {
		// The caller's own context is handed to the body as a Link, never
		// as a bare Ctx (spec.md §4.6's composite call protocol, §9's
		// design note): a fresh Link is unborrowed by construction, so it
		// is guaranteed unborrowed again the moment this call returns.
		ctxLink := NewLink(NewCell(access.Ctx), access.Tier == TierConst)
		bodyCtx.Bind(comp.CtxSymbol, ctxLink, ContractNone, false)
	}

	return Eval(cfg, CtxAccess{Tier: TierMutable, Ctx: bodyCtx}, comp.Body)
}

// resolveAccess implements the access-tier compatibility table documented
// on Dispatch, returning the CtxAccess the callee should run under and
// whether the call is permitted at all.
func resolveAccess(caller CtxAccess, required Tier) (CtxAccess, bool) {
	switch required {
	case TierFree:
		return CtxAccess{Tier: TierFree}, true
	case TierConst:
		if caller.Tier == TierFree {
			return CtxAccess{Tier: TierFree}, true
		}
		return CtxAccess{Tier: TierConst, Ctx: caller.Ctx}, true
	case TierMutable:
		switch caller.Tier {
		case TierFree:
			return CtxAccess{Tier: TierFree}, true
		case TierConst:
			return CtxAccess{}, false
		default:
			return CtxAccess{Tier: TierMutable, Ctx: caller.Ctx}, true
		}
	default:
		return CtxAccess{}, false
	}
}
