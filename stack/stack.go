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

// Package stack implements the value stack functions are evaluated against.
package stack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kr/pretty"
)

var (
	ErrUnderflow = errors.New("stack underflow")
	ErrMismatch  = errors.New("unexpected value on stack")
)

// Stack holds runtime values. The top of the stack is the most recently pushed value.
//
// A stack cannot be used concurrently.
type Stack struct {
	items []any
}

func New() *Stack { return &Stack{items: make([]any, 0, 16)} }

// Push a value onto the stack.
func (s *Stack) Push(v any) { s.items = append(s.items, v) }

// Pop the top value off the stack.
func (s *Stack) Pop() (any, error) {
	n := len(s.items)
	if n == 0 {
		return nil, ErrUnderflow
	}
	v := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return v, nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (any, error) { return s.PeekAt(0) }

// PeekAt returns the value at depth i, where 0 is the top of the stack.
func (s *Stack) PeekAt(i int) (any, error) {
	n := len(s.items)
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: no value at depth %d of %d", ErrUnderflow, i, n)
	}
	return s.items[n-1-i], nil
}

// Count returns the number of values on the stack.
func (s *Stack) Count() int { return len(s.items) }

// Clear removes every value from the stack.
func (s *Stack) Clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}

// Values copies the stack into a slice ordered from the bottom to the top.
func (s *Stack) Values() []any {
	vs := make([]any, len(s.items))
	copy(vs, s.items)
	return vs
}

// Pop the top value off the stack, which must have type T. The value stays on the stack when
// it has another type.
func Pop[T any](s *Stack) (T, error) {
	v, err := Peek[T](s)
	if err != nil {
		return v, err
	}
	_, _ = s.Pop()
	return v, nil
}

// Peek returns the top value, which must have type T.
func Peek[T any](s *Stack) (T, error) {
	return PeekAt[T](s, 0)
}

// PeekAt returns the value at depth i, which must have type T.
func PeekAt[T any](s *Stack, i int) (T, error) {
	var zero T
	v, err := s.PeekAt(i)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: expected %T at depth %d, found %T", ErrMismatch, zero, i, v)
	}
	return t, nil
}

// String prints the stack from the bottom to the top: `[1 2 3]`
func (s *Stack) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Dump prints every value on the stack, one per line from the bottom, for debugging. Values
// which implement fmt.Stringer are printed with String; others are printed in full.
func (s *Stack) Dump() string {
	var sb strings.Builder
	for i, v := range s.items {
		fmt.Fprintf(&sb, "%d: ", i)
		if str, ok := v.(fmt.Stringer); ok {
			sb.WriteString(str.String())
		} else {
			sb.WriteString(pretty.Sprintf("%# v", v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
