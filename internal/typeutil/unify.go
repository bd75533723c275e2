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
	"errors"

	"github.com/tangentforks/catlang/types"
)

// See "Efficient Generalization with Levels" (Oleg Kiselyov)
// http://okmij.org/ftp/ML/generalization.html#levels
//
// This implementation follows the sound_eager algorithm.
func (ctx *CommonContext) occursAdjustLevels(tv *types.Var, level int, t types.Type) error {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			return ctx.occursAdjustLevels(tv, level, t.Link())
		case t.IsGenericVar():
			return errors.New("Types must be instantiated before checking for recursion")
		default:
			if t == tv {
				return errors.New("Implicitly recursive types are not supported")
			}
			if t.Level() > level {
				if ctx.Speculate {
					ctx.StashLink(t)
				}
				t.SetLevel(level)
			}
		}
		return nil

	case *types.Fxn:
		if err := ctx.occursAdjustLevels(tv, level, t.Cons); err != nil {
			return err
		}
		return ctx.occursAdjustLevels(tv, level, t.Prod)

	case *types.Stack:
		var err error
		t.Items.Range(func(_ int, t types.Type) bool {
			err = ctx.occursAdjustLevels(tv, level, t)
			return err == nil
		})
		if err != nil || t.Row == nil {
			return err
		}
		return ctx.occursAdjustLevels(tv, level, t.Row)

	default:
		return nil
	}
}

type UnifyTxn struct {
	Speculate bool
	LinkStash []StashedLink
}

func (ctx *CommonContext) NewUnifyTxn() UnifyTxn {
	txn := UnifyTxn{ctx.Speculate, ctx.LinkStash}
	ctx.Speculate = true
	return txn
}

func (ctx *CommonContext) Rollback(txn UnifyTxn) {
	ctx.UnstashLinks(len(ctx.LinkStash) - len(txn.LinkStash))
	ctx.Speculate, ctx.LinkStash = txn.Speculate, txn.LinkStash
}

func (ctx *CommonContext) Commit(txn UnifyTxn) {
	ctx.Speculate, ctx.LinkStash = txn.Speculate, txn.LinkStash
}

func (ctx *CommonContext) CanUnify(a, b types.Type) bool {
	txn := ctx.NewUnifyTxn()
	err := ctx.Unify(a, b)
	ctx.Rollback(txn)
	return err == nil
}

func (ctx *CommonContext) TryUnify(a, b types.Type) error {
	txn := ctx.NewUnifyTxn()
	if err := ctx.Unify(a, b); err != nil {
		ctx.Rollback(txn)
		return err
	}
	ctx.Commit(txn)
	return nil
}

func (ctx *CommonContext) link(tv *types.Var, t types.Type) error {
	if ctx.Speculate {
		ctx.StashLink(tv)
	}
	// prevent cyclical types:
	if err := ctx.occursAdjustLevels(tv, tv.Level(), t); err != nil {
		return err
	}
	tv.SetLink(t)
	return nil
}

func (ctx *CommonContext) Unify(a, b types.Type) error {
	// Path compression:
	a, b = types.RealType(a), types.RealType(b)

	if a == b {
		return nil
	}

	// unify type variables:

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar == nil && bvar != nil:
		return ctx.Unify(b, a)

	case avar != nil:
		if avar.IsGenericVar() {
			return errors.New("Generic type-variable was not instantiated before unification")
		}
		if bvar != nil {
			if bvar.IsGenericVar() {
				return errors.New("Generic type-variable was not instantiated before unification")
			}
			if avar.IsRowVar() != bvar.IsRowVar() {
				return errors.New("Failed to unify row-variable with type-variable")
			}
			return ctx.link(avar, b)
		}
		_, isStack := b.(*types.Stack)
		if avar.IsRowVar() != isStack {
			if isStack {
				return errors.New("Failed to unify type-variable with stack")
			}
			return errors.New("Failed to unify row-variable with " + b.TypeName())
		}
		return ctx.link(avar, b)
	}

	// unify types:

	switch a := a.(type) {
	// Var is handled above

	case *types.Const:
		switch b := b.(type) {
		case *types.Const:
			if a.Name == b.Name {
				return nil
			}
			return errors.New("Failed to unify " + a.Name + " with " + b.Name)
		case *types.Class:
			// every class is an object:
			if a.Name == types.Object.Name {
				return nil
			}
			return errors.New("Failed to unify " + a.Name + " with " + b.String())
		}

	case *types.Class:
		switch b := b.(type) {
		case *types.Const:
			return ctx.Unify(b, a)
		case *types.Class:
			return errors.New("Failed to unify " + a.String() + " with " + b.String())
		}

	case *types.Fxn:
		b, ok := b.(*types.Fxn)
		if !ok {
			return errors.New("Failed to unify function with type " + types.TypeString(b))
		}
		if err := ctx.Unify(a.Cons, b.Cons); err != nil {
			return err
		}
		return ctx.Unify(a.Prod, b.Prod)

	case *types.Stack:
		if b, ok := b.(*types.Stack); ok {
			return ctx.unifyStacks(a, b)
		}

	case *types.Self:
		return errors.New("Self-reference was not resolved before unification")
	}

	return errors.New("Failed to unify " + types.TypeString(a) + " with " + types.TypeString(b))
}

// Stacks are unified from their top-most items downwards, starting at the highest index of each
// vector. Extra items in the deeper stack are absorbed by the row of the shallower stack:
//
//	a: ['A, int, bool, bool]  ==> 'B := ['A, int]
//	b: ['B, bool, bool]
func (ctx *CommonContext) unifyStacks(a, b *types.Stack) error {
	itemsA, rowA, err := types.FlattenStack(a)
	if err != nil {
		return err
	}
	itemsB, rowB, err := types.FlattenStack(b)
	if err != nil {
		return err
	}
	la, lb := itemsA.Len(), itemsB.Len()
	n := la
	if lb < n {
		n = lb
	}
	for i := 1; i <= n; i++ {
		if err := ctx.Unify(itemsA.Get(la-i), itemsB.Get(lb-i)); err != nil {
			return err
		}
	}
	switch {
	case la > n: // extra items in a
		return ctx.unifyRow(rowB, &types.Stack{Items: itemsA.Slice(0, la-n), Row: rowA})
	case lb > n: // extra items in b
		return ctx.unifyRow(rowA, &types.Stack{Items: itemsB.Slice(0, lb-n), Row: rowB})
	default:
		switch {
		case rowA == nil && rowB == nil:
			return nil
		case rowA == nil:
			return ctx.unifyRow(rowB, &types.Stack{Items: types.EmptyTypeList})
		case rowB == nil:
			return ctx.unifyRow(rowA, &types.Stack{Items: types.EmptyTypeList})
		}
		return ctx.Unify(rowA, rowB)
	}
}

func (ctx *CommonContext) unifyRow(row types.Type, rest *types.Stack) error {
	if row == nil {
		return errors.New("Failed to unify closed stack with " + types.TypeString(rest))
	}
	return ctx.Unify(row, rest)
}
