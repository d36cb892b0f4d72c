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
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText returns s normalized to NFC, the form the Text value
// variant (spec.md §3.1) stores and compares on.
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}

// GraphemeLen counts user-perceived characters rather than bytes or runes,
// so that e.g. a flag emoji or an accented letter built from combining
// marks counts as one Text position.
func GraphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
