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

import "golang.org/x/xerrors"

// ConstructionError wraps a failure that happens while a host is wiring up
// the core (building a malformed Symbol, registering a primitive with
// inconsistent setup, ...). Per spec.md §7, evaluation-time failures never
// take this shape — they resolve to Unit plus, where relevant, a Cfg state
// change. ConstructionError is strictly for mistakes a host makes once,
// before any evaluation happens, and is worth a real Go error with a frame.
type ConstructionError struct {
	frame xerrors.Frame
	msg   string
}

func NewConstructionError(format string, args ...any) error {
	return &ConstructionError{
		frame: xerrors.Caller(1),
		msg:   xerrors.Errorf(format, args...).Error(),
	}
}

func (e *ConstructionError) Error() string { return e.msg }

func (e *ConstructionError) Format(f xerrors.Formatter) error { return xerrors.FormatError(e, f) }

func (e *ConstructionError) FormatError(p xerrors.Printer) error {
	p.Print(e.msg)
	e.frame.Format(p)
	return nil
}
