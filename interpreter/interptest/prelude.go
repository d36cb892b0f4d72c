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

// Package interptest is a small fixture prelude used by the interpreter
// package's own tests to exercise call dispatch end-to-end. It is
// deliberately not a standard library of primitives — spec.md places that
// out of scope — it exists only so tests can build scenarios like
// "call a free primitive with a pair input" without hand-rolling a Func
// literal in every test body.
package interptest

import (
	"math/big"

	"github.com/airlang-go/air/common"
	"github.com/airlang-go/air/interpreter"
)

// Double is a FreePrim that doubles an Int input, returning Unit for any
// other shape.
func Double() interpreter.Func {
	return interpreter.NewFreePrim("double", func(_ interpreter.Cfg, _ interpreter.CtxAccess, input interpreter.Value) interpreter.Value {
		i, ok := input.(interpreter.Int)
		if !ok {
			return interpreter.Unit
		}
		return interpreter.IntFromBig(new(big.Int).Mul(i.Big(), big.NewInt(2)))
	})
}

// Plus is a FreePrim expecting a Pair of Ints and returning their sum.
func Plus() interpreter.Func {
	return interpreter.NewFreePrim("plus", func(_ interpreter.Cfg, _ interpreter.CtxAccess, input interpreter.Value) interpreter.Value {
		p, ok := input.(interpreter.Pair)
		if !ok {
			return interpreter.Unit
		}
		a, aok := p.First.(interpreter.Int)
		b, bok := p.Second.(interpreter.Int)
		if !aok || !bok {
			return interpreter.Unit
		}
		return interpreter.IntFromBig(new(big.Int).Add(a.Big(), b.Big()))
	})
}

// First is a FreePrim returning the first element of a Pair input.
func First() interpreter.Func {
	return interpreter.NewFreePrim("first", func(_ interpreter.Cfg, _ interpreter.CtxAccess, input interpreter.Value) interpreter.Value {
		p, ok := input.(interpreter.Pair)
		if !ok {
			return interpreter.Unit
		}
		return p.First
	})
}

// Second is a FreePrim returning the second element of a Pair input.
func Second() interpreter.Func {
	return interpreter.NewFreePrim("second", func(_ interpreter.Cfg, _ interpreter.CtxAccess, input interpreter.Value) interpreter.Value {
		p, ok := input.(interpreter.Pair)
		if !ok {
			return interpreter.Unit
		}
		return p.Second
	})
}

// NewPrelude builds a Ctx with double/plus/first/second bound as static,
// non-removable entries, ready to seed a composite function's prelude or a
// top-level test Ctx.
func NewPrelude() interpreter.Ctx {
	ctx := interpreter.NewCtx()
	bind := func(name string, fn interpreter.Func) {
		sym, err := common.NewSymbol(name)
		if err != nil {
			panic(err)
		}
		ctx.Bind(sym, fn, interpreter.ContractConst, true)
	}
	bind("double", Double())
	bind("plus", Plus())
	bind("first", First())
	bind("second", Second())
	return ctx
}
