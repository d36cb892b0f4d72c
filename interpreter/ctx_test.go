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
	"github.com/stretchr/testify/require"

	"github.com/airlang-go/air/common"
)

func mustSymbol(t *testing.T, s string) common.Symbol {
	t.Helper()
	sym, err := common.NewSymbol(s)
	require.NoError(t, err)
	return sym
}

func TestCtxBindAndGet(t *testing.T) {
	t.Parallel()
	ctx := NewCtx()
	x := mustSymbol(t, "x")

	assert.True(t, ctx.Bind(x, NewInt(1), ContractNone, false))
	b, ok := ctx.Get(x)
	require.True(t, ok)
	assert.True(t, b.Value.Equal(NewInt(1)))
}

func TestCtxContractMonotonicity(t *testing.T) {
	t.Parallel()
	ctx := NewCtx()
	x := mustSymbol(t, "x")
	ctx.Bind(x, NewInt(1), ContractNone, false)

	// Tightening succeeds.
	assert.True(t, ctx.Retighten(x, ContractFinal))
	// Loosening fails: contracts only ever tighten (property P6).
	assert.False(t, ctx.Retighten(x, ContractNone))

	b, _ := ctx.Get(x)
	assert.Equal(t, ContractFinal, b.Contract)
}

func TestCtxRemoveHonoursContractAndStatic(t *testing.T) {
	t.Parallel()
	ctx := NewCtx()
	x := mustSymbol(t, "x")
	y := mustSymbol(t, "y")
	ctx.Bind(x, NewInt(1), ContractStatic, false)
	ctx.Bind(y, NewInt(2), ContractNone, true)

	assert.False(t, ctx.Remove(x), "Static contract forbids removal")
	assert.False(t, ctx.Remove(y), "static flag forbids removal even under ContractNone")
}

func TestCtxReassignRespectsContract(t *testing.T) {
	t.Parallel()
	ctx := NewCtx()
	x := mustSymbol(t, "x")
	ctx.Bind(x, NewInt(1), ContractFinal, false)

	assert.False(t, ctx.Bind(x, NewInt(2), ContractFinal, false))
	b, _ := ctx.Get(x)
	assert.True(t, b.Value.Equal(NewInt(1)))
}

func TestCtxCloneDeepIsIndependent(t *testing.T) {
	t.Parallel()
	ctx := NewCtx()
	x := mustSymbol(t, "x")
	ctx.Bind(x, NewInt(1), ContractNone, false)

	clone := ctx.CloneDeep()
	clone.Bind(x, NewInt(2), ContractNone, false)

	original, _ := ctx.Get(x)
	cloned, _ := clone.Get(x)
	assert.True(t, original.Value.Equal(NewInt(1)))
	assert.True(t, cloned.Value.Equal(NewInt(2)))
}

func TestCtxMetaSetRequiresMutableTier(t *testing.T) {
	t.Parallel()
	ctx := NewCtx()
	versionKey, err := common.NewKey("version")
	require.NoError(t, err)

	assert.False(t, ctx.MetaSet(TierConst, versionKey, NewText("1.0.0")))
	assert.True(t, ctx.MetaSet(TierMutable, versionKey, NewText("1.0.0")))

	v, ok := ctx.MetaGet(versionKey)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", v.String())
}

func TestCtxMetaSetRejectsInvalidVersion(t *testing.T) {
	t.Parallel()
	ctx := NewCtx()
	versionKey, err := common.NewKey("version")
	require.NoError(t, err)

	assert.False(t, ctx.MetaSet(TierMutable, versionKey, NewText("not-a-version!!")))
}
