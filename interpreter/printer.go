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

import "github.com/turbolent/prettier"

// doc builds the Wadler-style pretty-printing document for v, using the
// same Doc/Concat/Indent/Group vocabulary the teacher's own ast package
// builds its printable forms with.
func doc(v Value) prettier.Doc {
	switch v.Shape() {
	case ShapePair:
		p := v.(Pair)
		return prettier.Concat{
			prettier.Text("("),
			doc(p.First),
			prettier.Text(" . "),
			doc(p.Second),
			prettier.Text(")"),
		}
	case ShapeCall:
		c := v.(Call)
		return prettier.Group{
			Doc: prettier.Concat{
				prettier.Text("("),
				doc(c.Func),
				prettier.Indent{
					Doc: prettier.Concat{prettier.Line{}, doc(c.Input)},
				},
				prettier.SoftLine{},
				prettier.Text(")"),
			},
		}
	case ShapeList:
		l := v.(List)
		items := make([]prettier.Doc, 0, len(l.Items)*2)
		for i, item := range l.Items {
			if i > 0 {
				items = append(items, prettier.Line{})
			}
			items = append(items, doc(item))
		}
		return prettier.Group{
			Doc: prettier.Concat{
				prettier.Text("["),
				prettier.Indent{Doc: prettier.Concat(items)},
				prettier.Text("]"),
			},
		}
	case ShapeMap:
		mp := v.(Map)
		var entries []prettier.Doc
		first := true
		mp.Range(func(k, val Value) bool {
			if !first {
				entries = append(entries, prettier.Line{})
			}
			first = false
			entries = append(entries, prettier.Concat{doc(k), prettier.Text(": "), doc(val)})
			return true
		})
		return prettier.Group{
			Doc: prettier.Concat{
				prettier.Text("{"),
				prettier.Indent{Doc: prettier.Concat(entries)},
				prettier.Text("}"),
			},
		}
	default:
		return prettier.Text(v.String())
	}
}

// Print renders v as its printable textual form, the form every Value owes
// the host per spec.md §6.1.
func Print(v Value) string {
	return prettier.Print(doc(v), "    ")
}
