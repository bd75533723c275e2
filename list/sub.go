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

import "fmt"

// sub is a view of the bottom count items of an array. A view always extends to the bottom of
// its backing array: offset+count is the length of the backing array.
type sub struct {
	backing *array
	offset  int
	count   int
}

func (*sub) list() {}

// view returns the visible items, head first.
func (s *sub) view() ([]any, error) {
	if s.offset < 0 || s.count < 0 || s.offset+s.count != len(s.backing.items) {
		return nil, fmt.Errorf("%w: offset %d and count %d of %d items",
			ErrCorrupt, s.offset, s.count, len(s.backing.items))
	}
	return s.backing.items[s.offset:], nil
}

func (s *sub) Count() (int, error) {
	if _, err := s.view(); err != nil {
		return 0, err
	}
	return s.count, nil
}

func (s *sub) Nth(i int) (any, error) {
	items, err := s.view()
	if err != nil {
		return nil, err
	}
	if err := checkIndex(i, s.count); err != nil {
		return nil, err
	}
	return items[s.count-1-i], nil
}

func (s *sub) Drop(n int) (List, error) {
	if _, err := s.view(); err != nil {
		return nil, err
	}
	if err := checkDrop(n, s.count); err != nil {
		return nil, err
	}
	return viewOf(s.backing, s.offset+n, s.count-n), nil
}

func (s *sub) Head() (any, error) {
	items, err := s.view()
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *sub) Tail() (List, error) { return s.Drop(1) }

func (s *sub) Dup() List { return s }

func (s *sub) Append(x any) List { return &cons{head: x, tail: s} }

func (s *sub) Map(f MapFunc) (List, error)       { return mapGeneric(s, f) }
func (s *sub) Filter(f FilterFunc) (List, error) { return filterGeneric(s, f) }
func (s *sub) Foldl(init any, f FoldFunc) (any, error) {
	return foldGeneric(s, init, f)
}

func (s *sub) String() string { return preview(s) }
