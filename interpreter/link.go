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
	"fmt"
	"sync"
)

// linkState tracks a runtime (not compile-time) borrow discipline over a
// Cell: at most one mutable borrow, or any number of concurrent shared
// borrows, never both at once (spec.md §3.1, property P7). A violating
// attempt never panics; it reports failure so the caller can fold it into
// Unit, per spec.md §7.
type linkState struct {
	mu        sync.Mutex
	cell      Cell
	isConst   bool
	shared    int
	exclusive bool
}

// Link is a shared, reference-counted borrow handle over a Cell, carrying
// the const flag spec.md §3.1/§3.2 requires: a const Link only ever permits
// shared borrows (TryMutate always fails), a non-const one permits either a
// single exclusive borrow or any number of shared borrows.
type Link struct{ state *linkState }

// NewLink wraps cell in a fresh Link. isConst fixes whether the link's
// target is shared immutably (true) or mutably (false) for its lifetime.
func NewLink(cell Cell, isConst bool) Link {
	return Link{state: &linkState{cell: cell, isConst: isConst}}
}

func (l Link) Shape() Shape { return ShapeLink }

// Clone returns the same link handle: Link shares representation, per
// spec.md §3.2.
func (l Link) Clone() Value { return l }

// Equal compares by payload equality, the evaluation-time notion of
// equality spec.md §3.2 calls for. Use IdentityKey for the pointer-identity
// comparison debug traces want instead.
func (l Link) Equal(o Value) bool {
	ol, ok := o.(Link)
	if !ok {
		return false
	}
	return l.state.cell.Get().Equal(ol.state.cell.Get())
}

func (l Link) String() string { return "#link" }

// IsConst reports whether this Link only ever grants shared (read-only)
// borrows over its target.
func (l Link) IsConst() bool { return l.state.isConst }

// IdentityKey returns a value suitable for pointer-identity comparison in
// debug traces (spec.md §3.2), as opposed to Equal's payload comparison.
func (l Link) IdentityKey() string { return fmt.Sprintf("%p", l.state) }

// TryShare registers one shared borrow and returns a snapshot of the
// underlying cell's value. It fails (ok == false) if an exclusive borrow is
// currently held.
func (l Link) TryShare() (value Value, ok bool) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	if l.state.exclusive {
		return nil, false
	}
	l.state.shared++
	return l.state.cell.Get(), true
}

// ReleaseShared releases one shared borrow previously acquired by
// TryShare. It is a no-op if no shared borrow is outstanding.
func (l Link) ReleaseShared() {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	if l.state.shared > 0 {
		l.state.shared--
	}
}

// TryMutate acquires the exclusive borrow, applies f to the current value,
// stores the result, and releases the borrow. It fails (ok == false,
// leaving the cell untouched) if any borrow — shared or exclusive — is
// already outstanding.
func (l Link) TryMutate(f func(current Value) Value) (ok bool) {
	l.state.mu.Lock()
	if l.state.isConst || l.state.exclusive || l.state.shared > 0 {
		l.state.mu.Unlock()
		return false
	}
	l.state.exclusive = true
	l.state.mu.Unlock()

	l.state.cell.Set(f(l.state.cell.Get()))

	l.state.mu.Lock()
	l.state.exclusive = false
	l.state.mu.Unlock()
	return true
}
