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

type unit struct {
	x any
}

func (*unit) list() {}

func (u *unit) Count() (int, error) { return 1, nil }

func (u *unit) Nth(i int) (any, error) {
	if err := checkIndex(i, 1); err != nil {
		return nil, err
	}
	return u.x, nil
}

func (u *unit) Drop(n int) (List, error) {
	if err := checkDrop(n, 1); err != nil {
		return nil, err
	}
	if n == 1 {
		return Nil, nil
	}
	return u, nil
}

func (u *unit) Head() (any, error)  { return u.x, nil }
func (u *unit) Tail() (List, error) { return Nil, nil }
func (u *unit) Dup() List           { return u }

func (u *unit) Append(x any) List { return &cons{head: x, tail: u} }

func (u *unit) Map(f MapFunc) (List, error) {
	x, err := f(u.x)
	if err != nil {
		return nil, err
	}
	return Unit(x), nil
}

func (u *unit) Filter(f FilterFunc) (List, error) {
	ok, err := f(u.x)
	switch {
	case err != nil:
		return nil, err
	case ok:
		return u, nil
	}
	return Nil, nil
}

func (u *unit) Foldl(init any, f FoldFunc) (any, error) { return f(init, u.x) }

func (u *unit) String() string { return fmt.Sprintf("( %v)", u.x) }
