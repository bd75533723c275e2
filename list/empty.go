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

type empty struct{}

func (empty) list() {}

func (empty) Count() (int, error)    { return 0, nil }
func (empty) Nth(i int) (any, error) { return nil, checkIndex(i, 0) }
func (empty) Head() (any, error)     { return nil, ErrEmpty }
func (empty) Tail() (List, error)    { return nil, ErrEmpty }
func (e empty) Dup() List            { return e }
func (empty) Append(x any) List      { return Unit(x) }
func (empty) String() string         { return "( )" }

func (e empty) Drop(n int) (List, error) {
	if err := checkDrop(n, 0); err != nil {
		return nil, err
	}
	return e, nil
}

func (e empty) Map(MapFunc) (List, error)       { return e, nil }
func (e empty) Filter(FilterFunc) (List, error) { return e, nil }

func (empty) Foldl(init any, _ FoldFunc) (any, error) { return init, nil }
