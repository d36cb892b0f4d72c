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
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Tracer receives one report per traced operation: its name, how long it
// took, and a set of attributes describing it. This mirrors the teacher's
// interpreter.CallbackTracer shape exactly (see
// interpreter_tracing_test.go's onRecordTrace signature).
type Tracer func(operationName string, duration time.Duration, attrs []attribute.KeyValue)

// CallbackTracer adapts a plain callback into a Tracer, named the same way
// the teacher names its own adapter.
func CallbackTracer(f func(operationName string, duration time.Duration, attrs []attribute.KeyValue)) Tracer {
	return Tracer(f)
}

// trace runs op, reporting it to cfg's installed Tracer (if any) under
// name with the given attributes. With no tracer installed, op runs
// directly and no timing is taken.
func trace(cfg Cfg, name string, attrs []attribute.KeyValue, op func()) {
	tracer := cfg.tracerOrNil()
	if tracer == nil {
		op()
		return
	}
	start := time.Now()
	op()
	tracer(name, time.Since(start), attrs)
}
