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

// unitSolver is the default solver: a named, inspectable FreePrim function
// rather than a bare Go closure, so a host that snapshots or prints the
// solver slot sees a real function value (original_source's
// lib/src/semantics/solver.rs unit_solver).
var unitSolver = NewFreePrim("unit_solver", func(_ Cfg, _ CtxAccess, _ Value) Value {
	return Unit
})

// UnitSolver returns the default solver function: it answers every
// reverse query with Unit.
func UnitSolver() Func { return unitSolver }

// SolverScope is a host-created handle standing in for the thread-local
// solver slot original_source keeps per-thread (lib/src/semantics/
// solver.rs's SOLVER). Go has no native thread-locals, so a host that wants
// an isolated solver per goroutine creates one SolverScope per goroutine
// and threads it through explicitly.
type SolverScope struct {
	mu     sync.Mutex
	solver Func
}

// NewSolverScope creates a scope seeded with the default unit solver.
func NewSolverScope() *SolverScope {
	return &SolverScope{solver: unitSolver}
}

// TrySet installs fn as this scope's solver. It mirrors original_source's
// try_borrow_mut pattern: on contention it silently does nothing rather
// than blocking, reported back via ok. sync.Mutex.TryLock is the one
// standard-library primitive this module reaches for directly — no
// try-lock primitive appears anywhere in the retrieval pack, so there is no
// ecosystem dependency to ground this one spot on (see DESIGN.md).
func (s *SolverScope) TrySet(fn Func) (ok bool) {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	s.solver = fn
	return true
}

// Get returns the currently installed solver.
func (s *SolverScope) Get() Func {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solver
}

// Solve answers a reverse query asking what input to fn would have produced
// expectedOutput, implementing spec.md §4.7's precedence: fn's own solve
// setup is tried first; absent that, the scope's installed process-wide
// solver is consulted. Either way the resolver is called forward with
// Pair(fn, expectedOutput) as its input (property P8), and a Unit answer
// means no solution was found. expectedOutput passes through fn's own
// reverse mode first, per spec.md §3.6: reverse is applied to the expected
// output whenever the function is invoked via a reverse-query.
func (s *SolverScope) Solve(cfg Cfg, access CtxAccess, fn Func, expectedOutput Value) Value {
	if mode, ok := fn.ReverseMode(); ok {
		expectedOutput = mode.Transform(cfg, access, expectedOutput)
	}
	query := NewPair(fn, expectedOutput)
	if setup, ok := fn.SolveSetup(); ok {
		return Dispatch(cfg, access, setup, query)
	}
	return Dispatch(cfg, access, s.Get(), query)
}
