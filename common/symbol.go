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

import "golang.org/x/text/unicode/norm"

// Symbol is the identifier token used by Ctx bindings and by the symbol
// syntactic shape (spec.md §3.1, §4.3). Symbols are compared and hashed on
// their normalized textual form.
type Symbol string

// NewSymbol validates and normalizes s into a Symbol. Unicode identifiers
// are normalized to NFC so that two visually identical symbols compare
// equal regardless of the combining-character sequence a writer used.
func NewSymbol(s string) (Symbol, error) {
	if err := validateToken("symbol", s); err != nil {
		return "", err
	}
	return Symbol(norm.NFC.String(s)), nil
}

// SymbolFromStringUnchecked builds a Symbol without validation, for use by the
// core itself when it already knows the string is well-formed (e.g.
// stripping a recognized prefix).
func SymbolFromStringUnchecked(s string) Symbol {
	return Symbol(s)
}

func (s Symbol) String() string { return string(s) }

// Recognize strips the token's value-layer prefix and reports its kind.
func (s Symbol) Recognize() (PrefixKind, Symbol) {
	kind, rest := RecognizePrefix(string(s))
	return kind, Symbol(rest)
}
