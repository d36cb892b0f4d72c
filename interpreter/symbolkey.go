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

// Symbol is the identifier shape: the syntactic form that the Form/Eval
// drivers resolve against a Ctx (spec.md §3.1, §4.3).
type Symbol struct{ sym common.Symbol }

func NewSymbol(sym common.Symbol) Symbol { return Symbol{sym: sym} }

func (s Symbol) Token() common.Symbol { return s.sym }
func (s Symbol) Shape() Shape         { return ShapeSymbol }
func (s Symbol) Clone() Value         { return s }
func (s Symbol) Equal(o Value) bool {
	os, ok := o.(Symbol)
	return ok && s.sym == os.sym
}
func (s Symbol) String() string { return s.sym.String() }

// Key is the identifier shape used by Cfg's scoped store (spec.md §3.1,
// §4.2). It shares Symbol's prefix grammar but is a distinct Go type so the
// two token universes are never silently interchanged.
type Key struct{ key common.Key }

func NewKey(key common.Key) Key { return Key{key: key} }

func (k Key) Token() common.Key { return k.key }
func (k Key) Shape() Shape      { return ShapeKey }
func (k Key) Clone() Value      { return k }
func (k Key) Equal(o Value) bool {
	ok2, ok := o.(Key)
	return ok && k.key == ok2.key
}
func (k Key) String() string { return k.key.String() }
