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

// Key is the identifier flavour used inside Cfg's scoped store and in
// binding tables (spec.md §3.1), parallel to Symbol but kept as a distinct
// Go type so the two token universes are never accidentally interchanged.
type Key string

func NewKey(s string) (Key, error) {
	if err := validateToken("key", s); err != nil {
		return "", err
	}
	return Key(norm.NFC.String(s)), nil
}

func KeyFromStringUnchecked(s string) Key {
	return Key(s)
}

func (k Key) String() string { return string(k) }

func (k Key) Recognize() (PrefixKind, Key) {
	kind, rest := RecognizePrefix(string(k))
	return kind, Key(rest)
}
