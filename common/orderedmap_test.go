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
)

func TestOrderedMapInsertionOrder(t *testing.T) {
	t.Parallel()

	m := NewOrderedMap[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestOrderedMapSetReportsNewness(t *testing.T) {
	t.Parallel()

	m := NewOrderedMap[string, int]()
	assert.True(t, m.Set("a", 1))
	assert.False(t, m.Set("a", 2))

	v, _ := m.Get("a")
	assert.Equal(t, 2, v)
}

func TestOrderedMapDeletePreservesOrder(t *testing.T) {
	t.Parallel()

	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
}

func TestOrderedMapClone(t *testing.T) {
	t.Parallel()

	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	clone := m.Clone()
	clone.Set("b", 2)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, clone.Len())
}
