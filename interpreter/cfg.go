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

	"github.com/kr/pretty"

	"github.com/airlang-go/air/common"
)

// Well-known abort-type keys, matching original_source's
// lib/src/semantics/cfg.rs ABORT_TYPE_STEPS / ABORT_TYPE_BUG exactly,
// spelled with the literal-prefix convention (spec.md §4.3).
const (
	AbortTypeSteps = "_steps"
	AbortTypeBug   = "_bug"
)

// Well-known Cfg store keys a host reads (via Lookup or Snapshot) to learn
// why an evaluation aborted (spec.md §6.3).
var (
	ErrorAbortTypeKey    = common.KeyFromStringUnchecked("_error.abort.type")
	ErrorAbortMessageKey = common.KeyFromStringUnchecked("_error.abort.message")
)

// cfgState is the shared heap allocation behind every Cfg value handle.
type cfgState struct {
	mu        sync.Mutex
	scopes    []*common.OrderedMap[common.Key, Value]
	steps     uint64
	maxSteps  uint64
	aborted   bool
	abortType string
	tracer    Tracer
}

// Cfg is the process-wide evaluation configuration: a scoped key-value
// store, a step budget, and an abort flag (spec.md §3.4, component C). Cfg
// is reference-shaped: Clone shares the same state.
type Cfg struct{ state *cfgState }

// NewCfg creates a Cfg with a single root scope and the given step budget.
func NewCfg(maxSteps uint64) Cfg {
	return Cfg{state: &cfgState{
		scopes:   []*common.OrderedMap[common.Key, Value]{common.NewOrderedMap[common.Key, Value]()},
		steps:    maxSteps,
		maxSteps: maxSteps,
	}}
}

func (c Cfg) Shape() Shape { return ShapeCfg }
func (c Cfg) Clone() Value { return c }
func (c Cfg) Equal(o Value) bool {
	oc, ok := o.(Cfg)
	return ok && c.state == oc.state
}
func (c Cfg) String() string { return "#cfg" }

// SetTracer installs the callback that Form/Eval/call dispatch report
// structural evaluation events to (spec.md's AMBIENT STACK logging note).
// A nil tracer disables reporting entirely.
func (c Cfg) SetTracer(t Tracer) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.tracer = t
}

func (c Cfg) tracerOrNil() Tracer {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.tracer
}

// BeginScope pushes a fresh, empty scope onto the stack (spec.md §4.1).
func (c Cfg) BeginScope() {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.scopes = append(c.state.scopes, common.NewOrderedMap[common.Key, Value]())
}

// EndScope pops the innermost scope. It fails (leaving the stack untouched)
// if only the root scope remains, keeping scope push/pop balanced
// (property P5).
func (c Cfg) EndScope() bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if len(c.state.scopes) <= 1 {
		return false
	}
	c.state.scopes = c.state.scopes[:len(c.state.scopes)-1]
	return true
}

// ExtendScope binds key to value at the current depth, iff key is not
// already bound there (spec.md §3.4/§4.1): it fails silently, leaving the
// existing binding untouched, rather than overwrite it.
func (c Cfg) ExtendScope(key common.Key, value Value) bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	scope := c.state.scopes[len(c.state.scopes)-1]
	if _, ok := scope.Get(key); ok {
		return false
	}
	scope.Set(key, value)
	return true
}

// Lookup searches scopes from innermost (deepest) to outermost (shallowest),
// returning the deepest live binding for key (spec.md §3.4's import).
func (c Cfg) Lookup(key common.Key) (Value, bool) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	for i := len(c.state.scopes) - 1; i >= 0; i-- {
		if v, ok := c.state.scopes[i].Get(key); ok {
			return v, true
		}
	}
	return nil, false
}

// Export binds key to value at the shallowest scope level that does not
// already hold key (spec.md §3.4/§4.1), scanning from the root inwards, so
// a module publishes a binding as far out as possible without disturbing
// any scope that already holds key. It fails if every scope holds key.
func (c Cfg) Export(key common.Key, value Value) bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	for i := 0; i < len(c.state.scopes); i++ {
		if _, ok := c.state.scopes[i].Get(key); !ok {
			c.state.scopes[i].Set(key, value)
			return true
		}
	}
	return false
}

// Step consumes one unit of step budget. It returns false, and aborts the
// Cfg with AbortTypeSteps, once the budget is exhausted (spec.md's step
// budget monotonicity property P4): steps only ever decrease between a
// Recover and the next abort.
func (c Cfg) Step() bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if c.state.aborted {
		return false
	}
	if c.state.steps == 0 {
		c.state.aborted = true
		c.state.abortType = AbortTypeSteps
		c.writeAbortKeysLocked(AbortTypeSteps, "evaluation step budget exhausted")
		return false
	}
	c.state.steps--
	return true
}

// writeAbortKeysLocked publishes the well-known abort-type/message pair
// (spec.md §6.3) into the root scope so a host can retrieve them with
// Lookup or Snapshot regardless of how deeply scoped the aborting
// evaluation was. Caller must already hold c.state.mu.
func (c Cfg) writeAbortKeysLocked(abortType, message string) {
	root := c.state.scopes[0]
	root.Set(ErrorAbortTypeKey, NewKey(common.KeyFromStringUnchecked(abortType)))
	root.Set(ErrorAbortMessageKey, NewText(message))
}

// SetSteps lowers the remaining step budget to n. Following
// original_source's lib/src/semantics/cfg.rs exactly, this can only ever
// lower the budget; Recover is the sole path back up to the configured
// maximum.
func (c Cfg) SetSteps(n uint64) bool {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if n > c.state.steps {
		return false
	}
	c.state.steps = n
	return true
}

// Abort marks the Cfg as aborted with the given abort-type key and
// human-readable message, e.g. AbortTypeBug for a core invariant violation
// (spec.md §7's bug-assertion policy).
func (c Cfg) Abort(abortType, message string) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.aborted = true
	c.state.abortType = abortType
	c.writeAbortKeysLocked(abortType, message)
}

// Aborted reports whether the Cfg is currently aborted, and if so with
// which abort-type key.
func (c Cfg) Aborted() (bool, string) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.aborted, c.state.abortType
}

// Recover clears the abort flag and restores the step budget to its
// configured maximum, the only operation allowed to raise the budget.
func (c Cfg) Recover() {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.aborted = false
	c.state.abortType = ""
	c.state.steps = c.state.maxSteps
	root := c.state.scopes[0]
	root.Delete(ErrorAbortTypeKey)
	root.Delete(ErrorAbortMessageKey)
}

// Snapshot returns the deepest-binding view of every scope as a single Map
// (spec.md §4.1: "snapshot() → Map<Key,Value>"), the same view a host
// reaches one key at a time through Lookup: a key bound in more than one
// scope shows only its innermost value.
func (c Cfg) Snapshot() Map {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	out := NewMap()
	for i := len(c.state.scopes) - 1; i >= 0; i-- {
		c.state.scopes[i].Range(func(k common.Key, v Value) bool {
			key := NewKey(k)
			if _, ok := out.Get(key); !ok {
				out = out.Set(key, v)
			}
			return true
		})
	}
	return out
}

// DebugDump renders the Cfg's full scope stack and step state using
// github.com/kr/pretty, the teacher pack's %#v replacement for diagnostic
// dumps — for a human reading logs, not for a host reading back bindings
// (that is Snapshot's job).
func (c Cfg) DebugDump() string {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	type scopeDump struct {
		Keys []string
	}
	dump := struct {
		Steps, MaxSteps uint64
		Aborted         bool
		AbortType       string
		Scopes          []scopeDump
	}{
		Steps:     c.state.steps,
		MaxSteps:  c.state.maxSteps,
		Aborted:   c.state.aborted,
		AbortType: c.state.abortType,
	}
	for _, scope := range c.state.scopes {
		keys := make([]string, 0, scope.Len())
		for _, k := range scope.Keys() {
			keys = append(keys, k.String())
		}
		dump.Scopes = append(dump.Scopes, scopeDump{Keys: keys})
	}
	return pretty.Sprint(dump)
}
