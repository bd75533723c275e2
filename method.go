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
	"reflect"

	"github.com/tangentforks/catlang/construct"
	"github.com/tangentforks/catlang/list"
	"github.com/tangentforks/catlang/record"
	"github.com/tangentforks/catlang/stack"
	"github.com/tangentforks/catlang/types"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Method binds a host function. Evaluating a method pops one value per parameter, where the
// last value popped is the first argument, and pushes the result unless the function only has
// an error result. A non-nil error result is returned from Eval.
type Method struct {
	funcBase
	fn       reflect.Value
	hasValue bool
	hasError bool
}

// NewMethod binds fn, which must be a non-variadic function returning at most one value and an
// optional error. The stack effect of the method is derived from the signature of fn:
// parameters and results of type any become type-variables.
func NewMethod(name string, fn any) (*Method, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("method %s: expected a function, found %T", name, fn)
	}
	ft := v.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("method %s: variadic functions are not supported", name)
	}
	m := &Method{fn: v}
	switch ft.NumOut() {
	case 0:
	case 1:
		if ft.Out(0) == errorType {
			m.hasError = true
		} else {
			m.hasValue = true
		}
	case 2:
		if ft.Out(1) != errorType {
			return nil, fmt.Errorf("method %s: second result must be an error", name)
		}
		m.hasValue, m.hasError = true, true
	default:
		return nil, fmt.Errorf("method %s: too many results", name)
	}

	vars := 0
	kind := func(t reflect.Type) types.Type {
		if k := kindOf(t); k != nil {
			return k
		}
		vars++
		return construct.TVar(vars)
	}
	cons := make([]types.Type, ft.NumIn())
	for i := range cons {
		cons[i] = kind(ft.In(i))
	}
	var prod []types.Type
	if m.hasValue {
		prod = append(prod, kind(ft.Out(0)))
	}
	m.name = name
	m.setType(construct.TEffect(cons, prod))
	m.desc = types.TypeString(m.typ)
	return m, nil
}

var (
	listType   = reflect.TypeOf((*list.List)(nil)).Elem()
	objectType = reflect.TypeOf((*record.Object)(nil))
	anyType    = reflect.TypeOf((*any)(nil)).Elem()
)

// kindOf returns the type of values of a host type, or nil when any value is acceptable.
func kindOf(t reflect.Type) types.Type {
	switch {
	case t == anyType:
		return nil
	case t == listType:
		return types.List
	case t == objectType:
		return types.Object
	}
	switch t.Kind() {
	case reflect.Int:
		return types.Int
	case reflect.Bool:
		return types.Bool
	case reflect.String:
		return types.String
	case reflect.Float64:
		return types.Float
	}
	return &types.Const{Name: t.String()}
}

func (m *Method) Eval(s *stack.Stack) error {
	ft := m.fn.Type()
	n := ft.NumIn()
	if s.Count() < n {
		return fmt.Errorf("%w: %s expects %d values, found %d", stack.ErrUnderflow, m.name, n, s.Count())
	}
	// Check every argument before any are popped:
	args := make([]reflect.Value, n)
	for i := range args {
		v, _ := s.PeekAt(n - 1 - i)
		in := ft.In(i)
		if v == nil {
			switch in.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
				args[i] = reflect.Zero(in)
				continue
			}
			return fmt.Errorf("%w: argument %d of %s expects %s, found nil", stack.ErrMismatch, i, m.name, in)
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(in) {
			return fmt.Errorf("%w: argument %d of %s expects %s, found %T", stack.ErrMismatch, i, m.name, in, v)
		}
		args[i] = rv
	}
	for range args {
		_, _ = s.Pop()
	}

	results := m.fn.Call(args)
	if m.hasError {
		if err, _ := results[len(results)-1].Interface().(error); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	if m.hasValue {
		s.Push(results[0].Interface())
	}
	return nil
}

func (m *Method) ImplString() string { return "primitive" }

// IsEffectOnly reports whether the method pushes no result.
func (m *Method) IsEffectOnly() bool { return !m.hasValue }
