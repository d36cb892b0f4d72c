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
	"sync"

	"golang.org/x/mod/semver"

	"github.com/airlang-go/air/common"
)

// Tier is the access level at which a Ctx is presented to a mode or a
// function body (spec.md §4.6): Free callers get no context at all, Const
// callers get a read-only borrow, Mutable callers get an exclusive one.
type Tier int

const (
	TierFree Tier = iota
	TierConst
	TierMutable
)

func (t Tier) String() string {
	switch t {
	case TierFree:
		return "free"
	case TierConst:
		return "const"
	case TierMutable:
		return "mutable"
	default:
		return "unknown"
	}
}

// Contract constrains what may happen to a binding after it is made
// (spec.md §3.3). Contracts only ever tighten over a binding's lifetime
// (property P6): rank order is None < Still < Final < Static < Const.
type Contract int

const (
	ContractNone Contract = iota
	ContractStill
	ContractFinal
	ContractStatic
	ContractConst
)

func (c Contract) String() string {
	switch c {
	case ContractNone:
		return "none"
	case ContractStill:
		return "still"
	case ContractFinal:
		return "final"
	case ContractStatic:
		return "static"
	case ContractConst:
		return "constant"
	default:
		return "unknown"
	}
}

// Reassignable reports whether a binding under this contract may still be
// rebound to a different value.
func (c Contract) Reassignable() bool { return c <= ContractStill }

// Removable reports whether a binding under this contract may still be
// deleted from its Ctx outright.
func (c Contract) Removable() bool { return c <= ContractFinal }

// LinkMutable reports whether a Link taken over this binding's value may
// still acquire an exclusive (mutating) borrow.
func (c Contract) LinkMutable() bool { return c <= ContractFinal }

// Tighten reports whether moving from c to next is a legal contract
// transition: contracts may only ever get stricter (property P6).
func (c Contract) Tighten(next Contract) bool { return next >= c }

// Binding is one entry in a Ctx's binding table.
//
// static marks a binding as part of the context's permanent structural
// layer (e.g. a prelude-installed primitive), independent of its
// reassignment/mutation Contract: removing a binding requires both
// Contract.Removable() and !static. This resolves spec.md's Binding having
// both a Contract with its own Static variant and a separate static flag —
// see DESIGN.md's Open Questions.
type Binding struct {
	Value    Value
	Contract Contract
	Static   bool
}

func (b *Binding) removable() bool { return b.Contract.Removable() && !b.Static }

// ctxState is the shared heap allocation behind every Ctx value handle.
type ctxState struct {
	mu       sync.RWMutex
	bindings *common.OrderedMap[common.Symbol, *Binding]
	meta     *common.OrderedMap[common.Key, Value]
}

// Ctx is an evaluation context: a table of Symbol bindings plus a
// meta-context of host-facing configuration entries such as "version"
// (spec.md §3.3). Ctx is reference-shaped: Clone shares the same state.
type Ctx struct{ state *ctxState }

func NewCtx() Ctx {
	return Ctx{state: &ctxState{
		bindings: common.NewOrderedMap[common.Symbol, *Binding](),
		meta:     common.NewOrderedMap[common.Key, Value](),
	}}
}

func (c Ctx) Shape() Shape { return ShapeCtx }
func (c Ctx) Clone() Value { return c }
func (c Ctx) Equal(o Value) bool {
	oc, ok := o.(Ctx)
	return ok && c.state == oc.state
}
func (c Ctx) String() string { return "#ctx" }

// Get returns the binding for sym, if any.
func (c Ctx) Get(sym common.Symbol) (*Binding, bool) {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return c.state.bindings.Get(sym)
}

// Bind creates or replaces the binding for sym. It fails if sym is already
// bound under a non-reassignable contract.
func (c Ctx) Bind(sym common.Symbol, value Value, contract Contract, static bool) bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if existing, ok := c.state.bindings.Get(sym); ok && !existing.Contract.Reassignable() {
		return false
	}
	c.state.bindings.Set(sym, &Binding{Value: value, Contract: contract, Static: static})
	return true
}

// Remove deletes sym's binding if its contract and static flag allow it.
func (c Ctx) Remove(sym common.Symbol) bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	existing, ok := c.state.bindings.Get(sym)
	if !ok || !existing.removable() {
		return false
	}
	return c.state.bindings.Delete(sym)
}

// Retighten narrows sym's contract. It fails if the binding is missing or
// next would loosen the contract (property P6).
func (c Ctx) Retighten(sym common.Symbol, next Contract) bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	existing, ok := c.state.bindings.Get(sym)
	if !ok || !existing.Contract.Tighten(next) {
		return false
	}
	existing.Contract = next
	return true
}

// CloneDeep returns a fresh Ctx whose bindings are independent copies of
// c's: the starting working copy a composite function call takes of its
// prelude (spec.md §4.6's composite call protocol), as opposed to Clone,
// which only ever shares c's underlying state per spec.md §3.2.
func (c Ctx) CloneDeep() Ctx {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	fresh := NewCtx()
	c.state.bindings.Range(func(sym common.Symbol, b *Binding) bool {
		fresh.state.bindings.Set(sym, &Binding{Value: b.Value.Clone(), Contract: b.Contract, Static: b.Static})
		return true
	})
	c.state.meta.Range(func(k common.Key, v Value) bool {
		fresh.state.meta.Set(k, v.Clone())
		return true
	})
	return fresh
}

// CtxAccess bundles a context together with the tier at which it is being
// presented to the mode or function currently running (spec.md §4.6).
// Ctx is nil (the zero Ctx) when Tier is TierFree.
type CtxAccess struct {
	Tier Tier
	Ctx  Ctx
}

// Symbols returns every bound symbol in insertion order.
func (c Ctx) Symbols() []common.Symbol {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return c.state.bindings.Keys()
}

// MetaGet reads a meta-context entry (spec.md §3.3), readable at Const tier
// and above.
func (c Ctx) MetaGet(key common.Key) (Value, bool) {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return c.state.meta.Get(key)
}

// MetaSet writes a meta-context entry. Only a Mutable-tier caller may call
// this; the "version" key is additionally validated as a semver string
// using golang.org/x/mod/semver, the library the teacher's go.mod lists
// directly for version comparisons.
func (c Ctx) MetaSet(tier Tier, key common.Key, value Value) bool {
	if tier != TierMutable {
		return false
	}
	if key.String() == "version" {
		text, ok := value.(Text)
		if !ok || !semver.IsValid(canonicalizeSemver(text.Raw())) {
			return false
		}
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.meta.Set(key, value)
	return true
}

// canonicalizeSemver prefixes a bare "major.minor.patch" string with "v",
// the form golang.org/x/mod/semver requires.
func canonicalizeSemver(s string) string {
	if len(s) > 0 && s[0] == 'v' {
		return s
	}
	return "v" + s
}
