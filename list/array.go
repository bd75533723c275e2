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

package list

// array is a materialized list. Items are stored head first, so dropping from the head is a
// suffix view of the same backing slice.
type array struct {
	items []any
}

func (*array) list() {}

func (a *array) Count() (int, error) { return len(a.items), nil }

func (a *array) Nth(i int) (any, error) {
	n := len(a.items)
	if err := checkIndex(i, n); err != nil {
		return nil, err
	}
	return a.items[n-1-i], nil
}

func (a *array) Drop(n int) (List, error) {
	count := len(a.items)
	if err := checkDrop(n, count); err != nil {
		return nil, err
	}
	return viewOf(a, n, count-n), nil
}

func (a *array) Head() (any, error) { return a.items[0], nil }

func (a *array) Tail() (List, error) { return a.Drop(1) }

func (a *array) Dup() List { return a }

func (a *array) Append(x any) List { return &cons{head: x, tail: a} }

func (a *array) Map(f MapFunc) (List, error)       { return mapGeneric(a, f) }
func (a *array) Filter(f FilterFunc) (List, error) { return filterGeneric(a, f) }

func (a *array) Foldl(init any, f FoldFunc) (any, error) {
	acc := init
	var err error
	for i := len(a.items) - 1; i >= 0; i-- {
		if acc, err = f(acc, a.items[i]); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (a *array) String() string { return preview(a) }

// viewOf returns the bottom count items of backing, starting offset items below its head.
func viewOf(backing *array, offset, count int) List {
	switch count {
	case 0:
		return Nil
	case 1:
		return Unit(backing.items[len(backing.items)-1])
	}
	if offset == 0 {
		return backing
	}
	return &sub{backing: backing, offset: offset, count: count}
}
