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

func (ctx *CommonContext) Instantiate(level int, t types.Type) types.Type {
	// Path compression:
	t = types.RealType(t)
	// Non-generic types can be shared:
	if !t.IsGeneric() {
		return t
	}
	t = ctx.visitInstantiate(level, t)
	ctx.ClearInstantiationLookup()
	return t
}

func (ctx *CommonContext) visitInstantiate(level int, t types.Type) types.Type {
	// Path compression:
	t = types.RealType(t)

	// Non-generic types can be shared:
	if !t.IsGeneric() {
		return t
	}

	switch t := t.(type) {
	case *types.Var:
		id := t.Id()
		if tv, ok := ctx.InstLookup[id]; ok {
			return tv
		}
		next := ctx.VarTracker.New(level)
		if t.IsRowVar() {
			next.SetRow()
		}
		ctx.InstLookup[id] = next
		return next

	case *types.Fxn:
		return &types.Fxn{
			Cons: ctx.visitInstantiate(level, t.Cons).(*types.Stack),
			Prod: ctx.visitInstantiate(level, t.Prod).(*types.Stack),
		}

	case *types.Stack:
		// only build a new item list if the existing list contains generic types:
		items := t.Items
		var lb types.TypeListBuilder
		builderInitialized := false
		t.Items.Range(func(i int, item types.Type) bool {
			item = types.RealType(item)
			if item.IsGeneric() {
				if !builderInitialized {
					lb, builderInitialized = t.Items.Builder(), true
				}
				lb.Set(i, ctx.visitInstantiate(level, item))
			}
			return true
		})
		if builderInitialized {
			items = lb.Build()
		}
		var row types.Type
		if t.Row != nil {
			row = ctx.visitInstantiate(level, t.Row)
		}
		return &types.Stack{Items: items, Row: row}
	}
	panic("unexpected generic type " + t.TypeName())
}
