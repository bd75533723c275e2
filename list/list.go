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

// Package list implements persistent and lazy sequences.
//
// Index 0 is the bottom (oldest element) of a list and the highest index is its head (the most
// recently added element). A list is never modified: every operation returns a new list, which
// may share structure with the original.
//
// Representations are chosen for shape: the empty list, single elements, cons cells which share
// their tail, materialized arrays with O(1) access, views into the bottom of an array, and lazy
// generators which may be infinite.
package list

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrEmpty   = errors.New("list is empty")
	ErrRange   = errors.New("list index out of range")
	ErrCorrupt = errors.New("list view does not match its backing list")
	ErrNotBool = errors.New("predicate did not produce a boolean")
)

// MapFunc transforms an element.
type MapFunc func(x any) (any, error)

// FilterFunc tests an element.
type FilterFunc func(x any) (bool, error)

// FoldFunc combines an accumulator with an element.
type FoldFunc func(acc, x any) (any, error)

// GenFunc produces the element at an index.
type GenFunc func(i int) (any, error)

// List is a persistent sequence.
type List interface {
	// Count returns the number of elements.
	Count() (int, error)
	// Nth returns the element at index i.
	Nth(i int) (any, error)
	// Drop removes the n head-most elements.
	Drop(n int) (List, error)
	// Head returns the element at the highest index.
	Head() (any, error)
	// Tail removes the head.
	Tail() (List, error)
	// Dup returns an equivalent list which may be read independently.
	Dup() List
	// Append returns a new list with x as its head.
	Append(x any) List
	Map(f MapFunc) (List, error)
	Filter(f FilterFunc) (List, error)
	// Foldl visits elements from index 0 to the head.
	Foldl(init any, f FoldFunc) (any, error)
	String() string

	list()
}

var (
	_ List = empty{}
	_ List = (*unit)(nil)
	_ List = (*cons)(nil)
	_ List = (*array)(nil)
	_ List = (*sub)(nil)
	_ List = (*lazy)(nil)
)

// Nil is the empty list.
var Nil List = empty{}

// Unit returns a list with a single element.
func Unit(x any) List { return &unit{x} }

// Cons returns a new list with x as the head of l.
func Cons(l List, x any) List { return l.Append(x) }

// Pair returns a list of two elements, with first as the head.
func Pair(second, first any) List { return &cons{head: first, tail: Unit(second)} }

// Cdr returns the tail of l.
func Cdr(l List) (List, error) { return l.Tail() }

// FromSlice returns a list of xs, where xs[0] is the bottom of the list.
func FromSlice(xs []any) List {
	switch len(xs) {
	case 0:
		return Nil
	case 1:
		return Unit(xs[0])
	}
	items := make([]any, len(xs))
	for i, x := range xs {
		items[len(xs)-1-i] = x
	}
	return &array{items: items}
}

// Of returns a list of xs, where the first argument is the bottom of the list.
func Of(xs ...any) List { return FromSlice(xs) }

// FromGen materializes the n elements produced by gen, where gen(i) produces the element at
// index i.
func FromGen(n int, gen GenFunc) (List, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrRange, n)
	}
	xs := make([]any, n)
	for i := range xs {
		x, err := gen(i)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return FromSlice(xs), nil
}

// Slice materializes l into a slice ordered from index 0 to the head.
func Slice(l List) ([]any, error) {
	xs, err := headFirst(l)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
	return xs, nil
}

// headFirst collects the elements of l starting with the head, in linear time for every
// representation.
func headFirst(l List) ([]any, error) {
	var xs []any
	for {
		switch t := l.(type) {
		case empty:
			return xs, nil
		case *unit:
			return append(xs, t.x), nil
		case *cons:
			xs = append(xs, t.head)
			l = t.tail
		case *array:
			return append(xs, t.items...), nil
		case *sub:
			items, err := t.view()
			if err != nil {
				return nil, err
			}
			return append(xs, items...), nil
		case *lazy:
			rest, err := t.collect()
			if err != nil {
				return nil, err
			}
			for i := len(rest) - 1; i >= 0; i-- {
				xs = append(xs, rest[i])
			}
			return xs, nil
		default:
			return nil, fmt.Errorf("unexpected list %T", l)
		}
	}
}

// Generic algorithms for representations without a specialized implementation. Each visits
// every element exactly once.

func mapGeneric(l List, f MapFunc) (List, error) {
	xs, err := headFirst(l)
	if err != nil {
		return nil, err
	}
	items := make([]any, len(xs))
	for i, x := range xs {
		if items[i], err = f(x); err != nil {
			return nil, err
		}
	}
	return fromHeadFirst(items), nil
}

func filterGeneric(l List, f FilterFunc) (List, error) {
	xs, err := headFirst(l)
	if err != nil {
		return nil, err
	}
	items := make([]any, 0, len(xs))
	for _, x := range xs {
		ok, err := f(x)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, x)
		}
	}
	return fromHeadFirst(items), nil
}

func foldGeneric(l List, init any, f FoldFunc) (any, error) {
	xs, err := headFirst(l)
	if err != nil {
		return nil, err
	}
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		if acc, err = f(acc, xs[i]); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func fromHeadFirst(items []any) List {
	switch len(items) {
	case 0:
		return Nil
	case 1:
		return Unit(items[0])
	}
	return &array{items: items}
}

// preview prints up to four elements of a finite list, head first: `( 4, 3, 2, ..., 0)`
func preview(l List) string {
	n, err := l.Count()
	if err != nil {
		return "( <" + err.Error() + ">)"
	}
	max := n
	if max > 4 {
		max = 4
	}
	var sb strings.Builder
	sb.WriteString("( ")
	for i := 0; i < max-1; i++ {
		x, _ := l.Nth(n - (i + 1))
		fmt.Fprint(&sb, x)
		sb.WriteString(", ")
	}
	if max < n {
		sb.WriteString("..., ")
	}
	if n > 0 {
		x, _ := l.Nth(0)
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports whether two lists contain equal elements in the same order. Nested lists are
// compared element-wise; other elements are compared with reflect.DeepEqual. Both lists must
// be finite.
func Equal(a, b List) (bool, error) {
	xs, err := headFirst(a)
	if err != nil {
		return false, err
	}
	ys, err := headFirst(b)
	if err != nil {
		return false, err
	}
	if len(xs) != len(ys) {
		return false, nil
	}
	for i := range xs {
		ok, err := EqualValues(xs[i], ys[i])
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// EqualValues compares two values structurally.
func EqualValues(x, y any) (bool, error) {
	lx, okx := x.(List)
	ly, oky := y.(List)
	if okx && oky {
		return Equal(lx, ly)
	}
	if okx != oky {
		return false, nil
	}
	return reflect.DeepEqual(x, y), nil
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d of %d", ErrRange, i, n)
	}
	return nil
}

func checkDrop(k, n int) error {
	if k < 0 || k > n {
		return fmt.Errorf("%w: cannot drop %d of %d", ErrRange, k, n)
	}
	return nil
}
