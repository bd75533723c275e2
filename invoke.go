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

	"github.com/tangentforks/catlang/list"
	"github.com/tangentforks/catlang/stack"
)

// acquire returns the private stack of the function, or a fresh stack when the private stack is
// in use by an enclosing invocation.
func (f *funcBase) acquire() *stack.Stack {
	if f.busy {
		return stack.New()
	}
	if f.scoped == nil {
		f.scoped = stack.New()
	}
	f.busy = true
	return f.scoped
}

func (f *funcBase) release(s *stack.Stack) {
	if s == f.scoped {
		f.busy = false
	}
}

// Invoke evaluates f against a private stack holding args, where the last argument is on top,
// and returns the single value left on the stack.
//
// Invoke cannot be used concurrently on the same function.
func Invoke(f Function, args ...any) (any, error) {
	fb := f.base()
	s := fb.acquire()
	defer fb.release(s)
	for _, arg := range args {
		s.Push(arg)
	}
	if err := f.Eval(s); err != nil {
		s.Clear()
		return nil, err
	}
	if n := s.Count(); n != 1 {
		err := fmt.Errorf("%w: invoking %s left %d values:\n%s", ErrInvoke, f.Name(), n, s.Dump())
		s.Clear()
		return nil, err
	}
	return s.Pop()
}

// MapFunc invokes f with each element.
func MapFunc(f Function) list.MapFunc {
	return func(x any) (any, error) { return Invoke(f, x) }
}

// FilterFunc invokes f with each element; f must produce a boolean.
func FilterFunc(f Function) list.FilterFunc {
	return func(x any) (bool, error) {
		v, err := Invoke(f, x)
		if err != nil {
			return false, err
		}
		b, ok := v.(bool)
		if !ok {
			return false, fmt.Errorf("%w: %s produced %T", list.ErrNotBool, f.Name(), v)
		}
		return b, nil
	}
}

// FoldFunc invokes f with the accumulator below each element.
func FoldFunc(f Function) list.FoldFunc {
	return func(acc, x any) (any, error) { return Invoke(f, acc, x) }
}

// GenFunc invokes f with each index.
func GenFunc(f Function) list.GenFunc {
	return func(i int) (any, error) { return Invoke(f, i) }
}
