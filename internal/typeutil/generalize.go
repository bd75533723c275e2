// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typeutil

import (
	"github.com/tangentforks/catlang/types"
)

// Generalize marks every unbound type-variable above the given binding-level as generic, and
// records which types contain generic variables.
func Generalize(level int, t types.Type) types.Type {
	// Path compression:
	t = types.RealType(t)
	visitTypeVars(level, t)
	return t
}

func visitTypeVars(level int, t types.Type) (generic bool) {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			return visitTypeVars(level, t.Link())
		case t.IsGenericVar():
			return true
		default:
			// If the current level is less than the type-variable's level, the sequence where the
			// type-variable was instantiated is being generalized:
			if t.Level() > level {
				t.SetGeneric()
				return true
			}
		}

	case *types.Fxn:
		cons := visitTypeVars(level, t.Cons)
		prod := visitTypeVars(level, t.Prod)
		t.HasGenericVars = cons || prod
		return t.HasGenericVars

	case *types.Stack:
		t.Items.Range(func(_ int, item types.Type) bool {
			if visitTypeVars(level, types.RealType(item)) {
				generic = true
			}
			return true
		})
		if t.Row != nil {
			t.Row = types.RealType(t.Row)
			if visitTypeVars(level, t.Row) {
				generic = true
			}
		}
		t.HasGenericVars = generic
	}
	return
}
