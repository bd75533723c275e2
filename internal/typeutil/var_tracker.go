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

type varList struct {
	head types.Var
	tail *varList
}

// VarTracker allocates type-variables and tracks allocations.
type VarTracker struct {
	NextId int
	count  int
	head   *varList
	block  []varList
}

func (vt *VarTracker) Reset() { vt.NextId, vt.count, vt.head, vt.block = 0, 0, nil, nil }

// Count returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

func (vt *VarTracker) FlattenLinks() {
	for nd := vt.head; nd != nil; nd = nd.tail {
		nd.head.Flatten()
	}
}

// New allocates an unbound type-variable at the given binding-level.
func (vt *VarTracker) New(level int) *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]varList, 8)
	}
	nd := &vt.block[0]
	tv := &nd.head
	vt.block = vt.block[1:]
	tv.SetId(vt.NextId)
	tv.SetLevel(level)
	vt.NextId, vt.count = vt.NextId+1, vt.count+1
	nd.tail, vt.head = vt.head, nd
	return tv
}

// NewRow allocates an unbound row-variable at the given binding-level.
func (vt *VarTracker) NewRow(level int) *types.Var {
	tv := vt.New(level)
	tv.SetRow()
	return tv
}
