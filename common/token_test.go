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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizePrefix(t *testing.T) {
	t.Parallel()

	kind, rest := RecognizePrefix("_x")
	assert.Equal(t, PrefixKindLiteral, kind)
	assert.Equal(t, "x", rest)

	kind, rest = RecognizePrefix(".x")
	assert.Equal(t, PrefixKindShift, kind)
	assert.Equal(t, "x", rest)

	kind, rest = RecognizePrefix(":x")
	assert.Equal(t, PrefixKindCtx, kind)
	assert.Equal(t, "x", rest)

	kind, rest = RecognizePrefix("x")
	assert.Equal(t, PrefixKindCtx, kind)
	assert.Equal(t, "x", rest)
}

func TestNewSymbolValidation(t *testing.T) {
	t.Parallel()

	sym, err := NewSymbol("hello")
	require.NoError(t, err)
	assert.Equal(t, Symbol("hello"), sym)

	_, err = NewSymbol("")
	assert.Error(t, err)

	_, err = NewSymbol("bad symbol")
	assert.Error(t, err)
}

func TestSymbolRecognizeRoundTrip(t *testing.T) {
	t.Parallel()

	sym, err := NewSymbol(":foo")
	require.NoError(t, err)
	kind, rest := sym.Recognize()
	assert.Equal(t, PrefixKindCtx, kind)
	assert.Equal(t, Symbol("foo"), rest)
}

func TestNewKeyValidation(t *testing.T) {
	t.Parallel()

	key, err := NewKey("_steps")
	require.NoError(t, err)
	assert.Equal(t, Key("_steps"), key)

	_, err = NewKey("")
	assert.Error(t, err)
}
