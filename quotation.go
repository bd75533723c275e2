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
	"log/slog"

	"github.com/tangentforks/catlang/construct"
	"github.com/tangentforks/catlang/stack"
	"github.com/tangentforks/catlang/types"
)

// PushValue pushes a constant value.
type PushValue struct {
	funcBase
	value any
}

func NewPushValue(v any) *PushValue {
	p := &PushValue{value: v}
	p.name = Format(v)
	if t := TypeOf(v); t != nil {
		p.typ = construct.TPush(t)
	}
	return p
}

func (p *PushValue) Value() any { return p.value }

func (p *PushValue) Eval(s *stack.Stack) error {
	s.Push(p.value)
	return nil
}

func (p *PushValue) ImplString() string { return Format(p.value) }

// Quotation is a function literal: evaluating it pushes a closure over its children.
type Quotation struct {
	funcBase
	children []Function
}

// NewQuotation creates a function literal which owns a copy of children. The literal has the
// type `('R -> 'R f)` where f is the inferred effect of its children.
func (rt *Runtime) NewQuotation(children []Function) *Quotation {
	q := &Quotation{children: cloneFunctions(children)}
	q.name = "[" + names(q.children) + "]"
	q.desc = "pushes an anonymous function onto the stack"
	if !rt.Config.TypeChecking {
		return q
	}
	ft, err := rt.infer(q.name, q.children)
	if err != nil {
		rt.Log.Warn("could not type quotation",
			slog.String("function", q.name),
			slog.Any("error", err))
		return q
	}
	q.setType(rt.Types.RenameVars(types.Quote(ft)))
	return q
}

func (q *Quotation) Children() []Function { return q.children }

func (q *Quotation) Eval(s *stack.Stack) error {
	s.Push(NewQuotedFunction(q.children, types.Unquote(q.typ)))
	return nil
}

func (q *Quotation) ImplString() string { return names(q.children) }

// Closure is a function value which may be composed with other closures.
type Closure interface {
	Function
	Children() []Function

	closure()
}

var (
	_ Closure = (*QuotedFunction)(nil)
	_ Closure = (*QuotedValue)(nil)
)

// QuotedFunction is an anonymous function value, which evaluates its children in order.
type QuotedFunction struct {
	funcBase
	children []Function
}

// NewQuotedFunction creates a closure over a copy of children with a known type, which may be
// nil when the closure is untyped.
func NewQuotedFunction(children []Function, t *types.Fxn) *QuotedFunction {
	q := &QuotedFunction{children: cloneFunctions(children)}
	q.name = names(q.children)
	q.desc = "anonymous function"
	q.setType(t)
	return q
}

// QuotedFunction creates a closure over a copy of children and infers its type.
func (rt *Runtime) QuotedFunction(children []Function) *QuotedFunction {
	q := NewQuotedFunction(children, nil)
	if !rt.Config.TypeChecking {
		return q
	}
	ft, err := rt.infer(q.name, q.children)
	if err != nil {
		rt.Log.Warn("could not type quotation",
			slog.String("function", q.String()),
			slog.Any("error", err))
		return q
	}
	q.setType(ft)
	return q
}

// QuoteFunction creates a closure which evaluates a single function, with the same type.
func QuoteFunction(f Function) *QuotedFunction {
	q := &QuotedFunction{children: []Function{f}}
	q.name = f.Name()
	q.desc = f.Desc()
	q.typ = f.Type()
	return q
}

// Compose creates a closure which evaluates first and then second. The closure is untyped when
// the types of first and second cannot be composed.
func (rt *Runtime) Compose(first, second Closure) *QuotedFunction {
	children := make([]Function, 0, len(first.Children())+len(second.Children()))
	children = append(children, first.Children()...)
	children = append(children, second.Children()...)
	q := NewQuotedFunction(children, nil)
	q.desc = "anonymous composed function"
	if !rt.Config.TypeChecking {
		return q
	}
	ft, err := rt.Types.Compose(fxnOf(first), fxnOf(second))
	if err != nil {
		rt.Log.Warn("unable to type composed quotation",
			slog.String("function", q.String()),
			slog.Any("error", err))
		return q
	}
	q.setType(ft)
	return q
}

func (q *QuotedFunction) closure() {}

func (q *QuotedFunction) Children() []Function { return q.children }

func (q *QuotedFunction) Eval(s *stack.Stack) error {
	for _, f := range q.children {
		if err := f.Eval(s); err != nil {
			return err
		}
	}
	return nil
}

func (q *QuotedFunction) String() string     { return "[" + names(q.children) + "]" }
func (q *QuotedFunction) ImplString() string { return q.String() }

// QuotedValue is a closure which pushes a single value, such as the result of quoting a value
// at runtime.
type QuotedValue struct {
	QuotedFunction
	value any
}

func NewQuotedValue(v any) *QuotedValue {
	push := NewPushValue(v)
	q := &QuotedValue{value: v}
	q.children = []Function{push}
	q.name = push.Name()
	q.desc = "anonymous function"
	q.typ = push.Type()
	return q
}

func (q *QuotedValue) Value() any { return q.value }
