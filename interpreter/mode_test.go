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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdModeIsIdentityOnEveryShape(t *testing.T) {
	t.Parallel()
	cfg := NewCfg(100)
	access := CtxAccess{Tier: TierFree}

	values := []Value{
		Unit, Bit(true), NewInt(5), NewText("hi"),
		NewPair(NewInt(1), NewInt(2)),
		NewList(NewInt(1), NewInt(2)),
		NewCall(NewInt(1), NewInt(2)),
	}
	for _, v := range values {
		assert.True(t, IdMode.Transform(cfg, access, v).Equal(v))
	}
}

func TestFormTreatsCallAsData(t *testing.T) {
	t.Parallel()
	cfg := NewCfg(100)
	sym := mustSymbol(t, "x")
	ctx := NewCtx()
	ctx.Bind(sym, NewInt(9), ContractNone, false)
	access := CtxAccess{Tier: TierConst, Ctx: ctx}

	call := NewCall(NewSymbol(sym), NewInt(1))
	result := FormMode.Transform(cfg, access, call).(Call)

	// The Func position is resolved (Form still does symbol resolution)
	// but the call itself is never invoked.
	assert.True(t, result.Func.Equal(NewInt(9)))
	assert.True(t, result.Input.Equal(NewInt(1)))
}

func TestCompModeNilSlotIsIdentity(t *testing.T) {
	t.Parallel()
	cfg := NewCfg(100)
	access := CtxAccess{Tier: TierFree}

	mode := CompMode{} // every slot nil
	pair := NewPair(NewInt(1), NewInt(2))
	assert.True(t, mode.Transform(cfg, access, pair).Equal(pair))
}

func TestCompModePairAppliesPerSide(t *testing.T) {
	t.Parallel()
	cfg := NewCfg(100)
	access := CtxAccess{Tier: TierFree}

	passIntThrough := FuncMode{Fn: NewFreePrim("pass-int", func(_ Cfg, _ CtxAccess, input Value) Value {
		i, ok := input.(Int)
		if !ok {
			return input
		}
		return IntFromBig(i.Big())
	})}
	mode := CompMode{Pair: &PairMode{First: passIntThrough, Second: IdMode}}

	pair := NewPair(NewInt(3), NewInt(4))
	result := mode.Transform(cfg, access, pair).(Pair)
	assert.True(t, result.First.Equal(NewInt(3)))
	assert.True(t, result.Second.Equal(NewInt(4)))
}

func TestPrimModeRefFlavorReturnsLink(t *testing.T) {
	t.Parallel()
	cfg := NewCfg(100)
	ctx := NewCtx()
	sym := mustSymbol(t, "x")
	ctx.Bind(sym, NewInt(1), ContractNone, false)
	access := CtxAccess{Tier: TierMutable, Ctx: ctx}

	mode := PrimMode{Symbol: SymbolFlavorRef, Call: CodeModeEval}
	result := mode.Transform(cfg, access, NewSymbol(sym))
	_, isLink := result.(Link)
	assert.True(t, isLink)
}

func TestPrimModeMoveFlavorRequiresMutableTier(t *testing.T) {
	t.Parallel()
	cfg := NewCfg(100)
	ctx := NewCtx()
	sym := mustSymbol(t, "x")
	ctx.Bind(sym, NewInt(1), ContractNone, false)

	mode := PrimMode{Symbol: SymbolFlavorMove, Call: CodeModeEval}

	// Const tier: Move is refused, binding untouched.
	constAccess := CtxAccess{Tier: TierConst, Ctx: ctx}
	assert.Equal(t, Unit, mode.Transform(cfg, constAccess, NewSymbol(sym)))
	_, stillBound := ctx.Get(sym)
	assert.True(t, stillBound)

	// Mutable tier: Move succeeds and removes the binding.
	mutAccess := CtxAccess{Tier: TierMutable, Ctx: ctx}
	result := mode.Transform(cfg, mutAccess, NewSymbol(sym))
	assert.True(t, result.Equal(NewInt(1)))
	_, stillBound = ctx.Get(sym)
	assert.False(t, stillBound)
}
