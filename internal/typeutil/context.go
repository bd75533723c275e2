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

type StashedLink struct {
	v    *types.Var
	prev types.Var
}

func (l *StashedLink) Restore() { l.v.Restore(l.prev) }

type CommonContext struct {
	VarTracker VarTracker
	LinkStash  []StashedLink     // stashed type-variables (during speculative unification)
	InstLookup map[int]*types.Var // instantiation lookup for generic type-variables
	Speculate  bool

	// initial space:
	_linkStash [32]StashedLink
}

func (ctx *CommonContext) Init() {
	ctx.LinkStash, ctx.InstLookup = ctx._linkStash[:0], make(map[int]*types.Var, 16)
}

func (ctx *CommonContext) Reset() {
	ctx.VarTracker.Reset()
	for i := range ctx._linkStash {
		ctx._linkStash[i] = StashedLink{}
	}
	ctx.LinkStash, ctx.Speculate = ctx._linkStash[:0], false
	ctx.ClearInstantiationLookup()
}

func (ctx *CommonContext) ClearInstantiationLookup() {
	for k := range ctx.InstLookup {
		delete(ctx.InstLookup, k)
	}
}

func (ctx *CommonContext) StashLink(v *types.Var) {
	ctx.LinkStash = append(ctx.LinkStash, StashedLink{v, *v})
}

func (ctx *CommonContext) UnstashLinks(count int) {
	if count <= 0 {
		return
	}
	stash := ctx.LinkStash
	for i := len(stash) - 1; i > len(stash)-1-count; i-- {
		stash[i].Restore()
	}
	ctx.LinkStash = stash[:len(stash)-count]
}
