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

// Package config loads host-facing bootstrap options for a fresh
// evaluation: how large a step budget to seed a Cfg with, and which scope
// keys to pre-populate. The core's own Cfg and Ctx types (package
// interpreter) have no file-format dependency of their own; this package
// is strictly an outer convenience for hosts that want that bootstrap
// expressed as a config file rather than wired up in Go.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/airlang-go/air/common"
	"github.com/airlang-go/air/interpreter"
)

// Bootstrap is the host-facing configuration loaded before the first
// evaluation begins.
type Bootstrap struct {
	// MaxSteps seeds a fresh Cfg's step budget (spec.md §3.4).
	MaxSteps uint64 `yaml:"max_steps"`
	// ScopeHints are pre-populated into the Cfg's root scope as plain text
	// values, for host-supplied constants (e.g. a build id) that every
	// evaluation under this Cfg should be able to read via Cfg.Lookup.
	ScopeHints map[string]string `yaml:"scope_hints"`
}

// DefaultMaxSteps is used when a Bootstrap document omits max_steps.
const DefaultMaxSteps uint64 = 1_000_000

// Load parses a YAML bootstrap document from path.
func Load(path string) (*Bootstrap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a YAML bootstrap document from raw bytes.
func Parse(data []byte) (*Bootstrap, error) {
	var b Bootstrap
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	if b.MaxSteps == 0 {
		b.MaxSteps = DefaultMaxSteps
	}
	return &b, nil
}

// NewCfg builds a fresh Cfg from the bootstrap document, with ScopeHints
// pre-populated into its root scope.
func (b *Bootstrap) NewCfg() (interpreter.Cfg, error) {
	cfg := interpreter.NewCfg(b.MaxSteps)
	for k, v := range b.ScopeHints {
		key, err := common.NewKey(k)
		if err != nil {
			return interpreter.Cfg{}, err
		}
		cfg.ExtendScope(key, interpreter.NewText(v))
	}
	return cfg, nil
}
