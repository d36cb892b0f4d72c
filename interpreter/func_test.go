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

// External test package: these tests only exercise exported API, and
// interptest itself depends on package interpreter, so they are kept out
// of the internal "interpreter" test package to avoid a needless
// same-package/helper-package entanglement.
package interpreter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlang-go/air/common"
	"github.com/airlang-go/air/interpreter"
	"github.com/airlang-go/air/interpreter/interptest"
)

func mustSym(t *testing.T, s string) common.Symbol {
	t.Helper()
	sym, err := common.NewSymbol(s)
	require.NoError(t, err)
	return sym
}

func TestDispatchFreePrim(t *testing.T) {
	t.Parallel()
	cfg := interpreter.NewCfg(100)
	fn := interptest.Double()

	result := interpreter.Dispatch(cfg, interpreter.CtxAccess{Tier: interpreter.TierFree}, fn, interpreter.NewInt(21))
	assert.True(t, result.Equal(interpreter.NewInt(42)))
}

func TestDispatchFreeCallerOnConstFuncGetsNoContext(t *testing.T) {
	t.Parallel()
	cfg := interpreter.NewCfg(100)
	fn := interpreter.NewConstPrim("sees-no-ctx", func(_ interpreter.Cfg, access interpreter.CtxAccess, _ interpreter.Value) interpreter.Value {
		if access.Tier != interpreter.TierFree || access.Ctx != (interpreter.Ctx{}) {
			return interpreter.Unit
		}
		return interpreter.NewInt(1)
	})

	// Const-tier function, Free caller: call proceeds with no context.
	result := interpreter.Dispatch(cfg, interpreter.CtxAccess{Tier: interpreter.TierFree}, fn, interpreter.Unit)
	assert.True(t, result.Equal(interpreter.NewInt(1)))
}

func TestDispatchMutableFuncRefusesConstCaller(t *testing.T) {
	t.Parallel()
	cfg := interpreter.NewCfg(100)
	fn := interpreter.NewMutablePrim("needs-exclusive-ctx", func(_ interpreter.Cfg, access interpreter.CtxAccess, _ interpreter.Value) interpreter.Value {
		return access.Ctx.Symbols()[0] // would panic if reached
	})
	ctx := interpreter.NewCtx()

	result := interpreter.Dispatch(cfg, interpreter.CtxAccess{Tier: interpreter.TierConst, Ctx: ctx}, fn, interpreter.Unit)
	assert.Equal(t, interpreter.Unit, result)
}

func TestDispatchMutableFuncFreeCallerGetsNoContext(t *testing.T) {
	t.Parallel()
	cfg := interpreter.NewCfg(100)
	fn := interpreter.NewMutablePrim("pure-under-free-caller", func(_ interpreter.Cfg, access interpreter.CtxAccess, _ interpreter.Value) interpreter.Value {
		if access.Tier != interpreter.TierFree || access.Ctx != (interpreter.Ctx{}) {
			return interpreter.Unit
		}
		return interpreter.NewInt(2)
	})

	result := interpreter.Dispatch(cfg, interpreter.CtxAccess{Tier: interpreter.TierFree}, fn, interpreter.Unit)
	assert.True(t, result.Equal(interpreter.NewInt(2)))
}

func TestDispatchConstFuncDemotesMutableCallerCtx(t *testing.T) {
	t.Parallel()
	cfg := interpreter.NewCfg(100)
	fn := interpreter.NewConstPrim("demoted", func(_ interpreter.Cfg, access interpreter.CtxAccess, _ interpreter.Value) interpreter.Value {
		if access.Tier != interpreter.TierConst {
			return interpreter.Unit
		}
		return interpreter.NewInt(3)
	})
	ctx := interpreter.NewCtx()

	result := interpreter.Dispatch(cfg, interpreter.CtxAccess{Tier: interpreter.TierMutable, Ctx: ctx}, fn, interpreter.Unit)
	assert.True(t, result.Equal(interpreter.NewInt(3)))
}

func TestDispatchConstPrimSeesCallerCtx(t *testing.T) {
	t.Parallel()
	cfg := interpreter.NewCfg(100)
	ctx := interpreter.NewCtx()
	x := mustSym(t, "x")
	ctx.Bind(x, interpreter.NewInt(7), interpreter.ContractNone, false)

	fn := interpreter.NewConstPrim("read-x", func(_ interpreter.Cfg, access interpreter.CtxAccess, _ interpreter.Value) interpreter.Value {
		b, ok := access.Ctx.Get(x)
		if !ok {
			return interpreter.Unit
		}
		return b.Value
	})

	result := interpreter.Dispatch(cfg, interpreter.CtxAccess{Tier: interpreter.TierConst, Ctx: ctx}, fn, interpreter.Unit)
	assert.True(t, result.Equal(interpreter.NewInt(7)))
}

func TestDispatchCompositeBindsInputAndCallsPrelude(t *testing.T) {
	t.Parallel()
	cfg := interpreter.NewCfg(1000)
	prelude := interptest.NewPrelude()
	inputSym := mustSym(t, "n")
	plusSym := mustSym(t, "plus")

	plusCall := interpreter.NewCall(
		interpreter.NewSymbol(plusSym),
		interpreter.NewPair(interpreter.NewSymbol(inputSym), interpreter.NewInt(1)),
	)

	fn := interpreter.NewFreeComp("increment", interpreter.CompositeFunc{
		Prelude:     prelude,
		InputSymbol: inputSym,
		Body:        plusCall,
	})

	result := interpreter.Dispatch(cfg, interpreter.CtxAccess{Tier: interpreter.TierFree}, fn, interpreter.NewInt(4))
	assert.True(t, result.Equal(interpreter.NewInt(5)))
}

func TestEvalCallSetupInterceptsBeforeWrappedBodyRuns(t *testing.T) {
	t.Parallel()
	cfg := interpreter.NewCfg(100)
	var sawFnName string
	setup := interpreter.NewFreePrim("logging-setup", func(_ interpreter.Cfg, _ interpreter.CtxAccess, input interpreter.Value) interpreter.Value {
		pair, ok := input.(interpreter.Pair)
		if !ok {
			return interpreter.Unit
		}
		if fn, ok := pair.First.(interpreter.Func); ok {
			sawFnName = fn.Name()
		}
		i, ok := pair.Second.(interpreter.Int)
		if !ok {
			return interpreter.Unit
		}
		return interpreter.IntFromBig(i.Big())
	})
	wrapped := interpreter.NewFreePrim("identity-wrapped", func(_ interpreter.Cfg, _ interpreter.CtxAccess, _ interpreter.Value) interpreter.Value {
		t.Fatal("call setup must intercept dispatch, the wrapped body must never run")
		return interpreter.Unit
	}, interpreter.WithCallSetup(setup))

	sym := mustSym(t, "wrapped")
	ctx := interpreter.NewCtx()
	ctx.Bind(sym, wrapped, interpreter.ContractNone, false)
	call := interpreter.NewCall(interpreter.NewSymbol(sym), interpreter.NewInt(9))

	result := interpreter.Eval(cfg, interpreter.CtxAccess{Tier: interpreter.TierConst, Ctx: ctx}, call)
	assert.True(t, result.Equal(interpreter.NewInt(9)))
	assert.Equal(t, "identity-wrapped", sawFnName)
}
