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

import "errors"

// cons adds a head to a shared tail. Operations walk the spine of cells iteratively, and
// delegate to the first tail which is not a cons cell.
type cons struct {
	head any
	tail List
}

func (*cons) list() {}

// base returns the heads of the spine of cells, head first, and the first tail which is not a
// cons cell.
func (c *cons) base() (heads []any, tail List) {
	var l List = c
	for {
		cell, ok := l.(*cons)
		if !ok {
			return heads, l
		}
		heads = append(heads, cell.head)
		l = cell.tail
	}
}

func (c *cons) Count() (int, error) {
	n := 0
	var l List = c
	for {
		cell, ok := l.(*cons)
		if !ok {
			break
		}
		n++
		l = cell.tail
	}
	rest, err := l.Count()
	if err != nil {
		return 0, err
	}
	return n + rest, nil
}

// Nth indexes the base tail first, since it holds the bottom of the list, and counts the tail
// only when the index lies past it. The cells over an infinite tail have no index.
func (c *cons) Nth(i int) (any, error) {
	if i < 0 {
		return nil, checkIndex(i, 0)
	}
	heads, tail := c.base()
	x, err := tail.Nth(i)
	if !errors.Is(err, ErrRange) {
		return x, err
	}
	m, err := tail.Count()
	if err != nil {
		return nil, err
	}
	j := i - m
	if j >= len(heads) {
		return nil, checkIndex(i, m+len(heads))
	}
	return heads[len(heads)-1-j], nil
}

func (c *cons) Drop(n int) (List, error) {
	if n < 0 {
		return nil, checkDrop(n, 0)
	}
	var l List = c
	for ; n > 0; n-- {
		cell, ok := l.(*cons)
		if !ok {
			return l.Drop(n)
		}
		l = cell.tail
	}
	return l, nil
}

func (c *cons) Head() (any, error)  { return c.head, nil }
func (c *cons) Tail() (List, error) { return c.tail, nil }
func (c *cons) Dup() List           { return c }

func (c *cons) Append(x any) List { return &cons{head: x, tail: c} }

// Map transforms the base tail first, then the cells from the bottom to the head.
func (c *cons) Map(f MapFunc) (List, error) {
	heads, tail := c.base()
	out, err := tail.Map(f)
	if err != nil {
		return nil, err
	}
	for i := len(heads) - 1; i >= 0; i-- {
		x, err := f(heads[i])
		if err != nil {
			return nil, err
		}
		out = out.Append(x)
	}
	return out, nil
}

func (c *cons) Filter(f FilterFunc) (List, error) {
	heads, tail := c.base()
	out, err := tail.Filter(f)
	if err != nil {
		return nil, err
	}
	for i := len(heads) - 1; i >= 0; i-- {
		ok, err := f(heads[i])
		if err != nil {
			return nil, err
		}
		if ok {
			out = out.Append(heads[i])
		}
	}
	return out, nil
}

func (c *cons) Foldl(init any, f FoldFunc) (any, error) {
	heads, tail := c.base()
	acc, err := tail.Foldl(init, f)
	if err != nil {
		return nil, err
	}
	for i := len(heads) - 1; i >= 0; i-- {
		if acc, err = f(acc, heads[i]); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (c *cons) String() string { return preview(c) }
