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

package cat

import (
	"fmt"

	"github.com/tangentforks/catlang/stack"
	"github.com/tangentforks/catlang/types"
)

// Impl is the native implementation of a primitive.
type Impl func(s *stack.Stack) error

// Primitive is a native function with a declared type signature.
type Primitive struct {
	funcBase
	impl Impl
}

// NewPrimitive creates a primitive from a signature such as `('A 'a 'b -> 'A 'b 'a)`.
func NewPrimitive(name, sig, desc string, impl Impl) (*Primitive, error) {
	ft, err := types.Parse(sig)
	if err != nil {
		return nil, fmt.Errorf("primitive %s: %w", name, err)
	}
	p := &Primitive{impl: impl}
	p.name, p.desc = name, desc
	p.setType(ft)
	return p, nil
}

// MustPrimitive is like NewPrimitive but panics if the signature is invalid.
func MustPrimitive(name, sig, desc string, impl Impl) *Primitive {
	p, err := NewPrimitive(name, sig, desc, impl)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Primitive) Eval(s *stack.Stack) error { return p.impl(s) }

func (p *Primitive) ImplString() string { return "primitive" }

// SelfFunction refers to an enclosing definition from within its own terms. Its type is the
// self-reference marker, which inference resolves to the type of the definition.
type SelfFunction struct {
	funcBase
	fn Function
}

func NewSelf(f Function) *SelfFunction {
	s := &SelfFunction{fn: f}
	s.name = f.Name()
	s.typ = &types.Self{}
	return s
}

func (f *SelfFunction) Eval(s *stack.Stack) error { return f.fn.Eval(s) }

func (f *SelfFunction) ImplString() string { return "self" }
