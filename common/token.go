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

// Package common holds the primitives shared by the evaluation core:
// Symbol and Key tokens, their mode-prefix conventions, a deterministic
// ordered map, small Unicode helpers, and the construction-time error type.
package common

import (
	"strings"
	"unicode"
)

// Value-layer prefixes recognized on Symbol and Key tokens (spec.md §4.3).
const (
	PrefixLiteral = '_'
	PrefixShift   = '.'
	PrefixCtx     = ':'
)

// Mode-layer prefixes (spec.md §4.3). These apply one level up, inside the
// mode system, never during Symbol/Key construction itself.
const (
	PrefixRef  = '*'
	PrefixMove = '^'
)

// PrefixKind classifies a token after prefix recognition.
type PrefixKind int

const (
	// PrefixKindCtx resolves the remainder against the context (the
	// default when no prefix, or the explicit ':' prefix, is present).
	PrefixKindCtx PrefixKind = iota
	// PrefixKindLiteral returns the remainder unresolved ('_' prefix).
	PrefixKindLiteral
	// PrefixKindShift returns the remainder unresolved, stripped of its
	// prefix, as a fresh token ('.' prefix).
	PrefixKindShift
)

// RecognizePrefix strips a leading value-layer prefix from s and
// reports what it means, per spec.md §4.3. Both Symbol and Key resolution
// share this single recognizer so their Id/Shift/Ctx behavior cannot drift
// apart between the two token kinds.
func RecognizePrefix(s string) (PrefixKind, string) {
	if s == "" {
		return PrefixKindCtx, s
	}
	switch s[0] {
	case PrefixLiteral:
		return PrefixKindLiteral, s[1:]
	case PrefixShift:
		return PrefixKindShift, s[1:]
	case PrefixCtx:
		return PrefixKindCtx, s[1:]
	default:
		return PrefixKindCtx, s
	}
}

// validTokenRune reports whether r may appear in a Symbol/Key body: a
// letter, a digit, underscore, or one of a small fixed set of punctuation
// characters, which includes every prefix character.
func validTokenRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return strings.ContainsRune("_.:*^+-<>=!?~&|%$@", r)
}

func validateToken(kind, s string) error {
	if s == "" {
		return NewConstructionError("%s must not be empty", kind)
	}
	for _, r := range s {
		if !validTokenRune(r) {
			return NewConstructionError("%s %q contains invalid character %q", kind, s, r)
		}
	}
	return nil
}
