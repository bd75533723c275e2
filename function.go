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

// Package cat implements the execution core of the Cat language: a closed family of functions
// which are evaluated against a stack of values.
//
// Every function may carry a static stack effect, such as `('A int int -> 'A int)`, which is
// inferred when composite functions are constructed. Functions whose effect cannot be inferred
// are untyped, and are only checked while they are evaluated.
package cat

import (
	"errors"
	"strings"

	"github.com/tangentforks/catlang/meta"
	"github.com/tangentforks/catlang/stack"
	"github.com/tangentforks/catlang/types"
)

var (
	ErrInvoke         = errors.New("invocation must leave exactly one value")
	ErrDefinition     = errors.New("invalid definition")
	ErrSpecialization = errors.New("field accessor used inconsistently")
)

var (
	_ Function = (*PushValue)(nil)
	_ Function = (*Quotation)(nil)
	_ Function = (*QuotedFunction)(nil)
	_ Function = (*QuotedValue)(nil)
	_ Function = (*DefinedFunction)(nil)
	_ Function = (*Method)(nil)
	_ Function = (*Primitive)(nil)
	_ Function = (*SelfFunction)(nil)
	_ Function = (*GetField)(nil)
	_ Function = (*SetField)(nil)
	_ Function = (*DefField)(nil)
)

// Function is the base interface for all functions.
type Function interface {
	Name() string
	Desc() string
	// Type returns the stack effect (*types.Fxn), the self-reference marker (*types.Self), or nil
	// when the function is untyped.
	Type() types.Type
	Meta() *meta.Block
	// ImplString describes the implementation of the function.
	ImplString() string
	// Eval applies the function to the stack.
	Eval(s *stack.Stack) error
	String() string

	base() *funcBase
}

type funcBase struct {
	name string
	desc string
	typ  types.Type
	meta *meta.Block

	// private stack for Invoke
	scoped *stack.Stack
	busy   bool
}

func (f *funcBase) Name() string      { return f.name }
func (f *funcBase) Desc() string      { return f.desc }
func (f *funcBase) Type() types.Type  { return f.typ }
func (f *funcBase) Meta() *meta.Block { return f.meta }
func (f *funcBase) String() string    { return "[" + f.name + "]" }
func (f *funcBase) base() *funcBase   { return f }

// setType avoids storing a nil *types.Fxn as a non-nil types.Type.
func (f *funcBase) setType(t *types.Fxn) {
	if t == nil {
		f.typ = nil
		return
	}
	f.typ = t
}

// SetMeta attaches metadata to a function. A description in the metadata replaces the
// description of the function.
func SetMeta(f Function, b *meta.Block) {
	fb := f.base()
	fb.meta = b
	if b != nil && b.Desc != "" {
		fb.desc = b.Desc
	}
}

// TypeString prints the static type of a function, or "untyped".
func TypeString(f Function) string { return types.TypeString(f.Type()) }

// fxnOf returns the stack effect of a function, or nil when it is untyped or a self-reference.
func fxnOf(f Function) *types.Fxn {
	ft, _ := f.Type().(*types.Fxn)
	return ft
}

func names(fs []Function) string {
	var sb strings.Builder
	for i, f := range fs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Name())
	}
	return sb.String()
}

func cloneFunctions(fs []Function) []Function {
	out := make([]Function, len(fs))
	copy(out, fs)
	return out
}
