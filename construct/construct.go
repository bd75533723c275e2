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

package construct

import (
	"github.com/tangentforks/catlang/types"
)

// Types

// Create a new generic type-variable with the given id.
func TVar(id int) *types.Var {
	return types.NewGenericVar(id)
}

// Create a new generic row-variable with the given id.
func TRow(id int) *types.Var {
	return types.NewGenericRowVar(id)
}

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Stack vector resting on a row: `'A int bool`
func TStack(row types.Type, items ...types.Type) *types.Stack {
	return &types.Stack{Row: row, Items: types.NewTypeList(items...)}
}

// Stack effect: `('A int int -> 'A int)`
func TFxn(cons, prod *types.Stack) *types.Fxn {
	return types.Canonical(&types.Fxn{Cons: cons, Prod: prod}).(*types.Fxn)
}

// Stack effect sharing a single row: `('A cons... -> 'A prod...)`
func TEffect(cons []types.Type, prod []types.Type) *types.Fxn {
	row := TRow(-1)
	return TFxn(TStack(row, cons...), TStack(row, prod...))
}

// Stack effect which pushes a single value: `('A -> 'A t)`
func TPush(t types.Type) *types.Fxn {
	return TEffect(nil, []types.Type{t})
}

// Stack effect of an arbitrary function: `('A -> 'B)`
func TAny() *types.Fxn {
	return TFxn(TStack(TRow(-1)), TStack(TRow(-2)))
}
