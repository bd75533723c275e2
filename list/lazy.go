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

import (
	"fmt"
	"strings"
)

// stage transforms or filters each generated element. Exactly one of m and p is set.
type stage struct {
	m MapFunc
	p FilterFunc
}

// lazy generates init, next(init), next(next(init)), ... for as long as cond holds, then passes
// every generated element through its stages. Elements are indexed in generation order.
type lazy struct {
	init   any
	cond   FilterFunc
	next   MapFunc
	stages []stage
}

// Lazy returns a list generated from init by next while cond holds. The list is infinite when
// cond always holds; Count, Foldl and String will not return for an infinite list, but Nth,
// Head, Drop, Map and Filter will (as long as filters keep accepting elements).
func Lazy(init any, cond FilterFunc, next MapFunc) List {
	return &lazy{init: init, cond: cond, next: next}
}

func (*lazy) list() {}

// apply passes a generated element through every stage.
func (l *lazy) apply(x any) (_ any, keep bool, err error) {
	for _, s := range l.stages {
		if s.m != nil {
			if x, err = s.m(x); err != nil {
				return nil, false, err
			}
			continue
		}
		if keep, err = s.p(x); err != nil || !keep {
			return nil, false, err
		}
	}
	return x, true, nil
}

// each calls fn for every element which passes the stages, along with the generated state it
// was derived from, until fn returns false or the generator ends.
func (l *lazy) each(fn func(i int, state, x any) (bool, error)) error {
	state, i := l.init, 0
	for {
		ok, err := l.cond(state)
		if err != nil || !ok {
			return err
		}
		x, keep, err := l.apply(state)
		if err != nil {
			return err
		}
		if keep {
			more, err := fn(i, state, x)
			if err != nil || !more {
				return err
			}
			i++
		}
		if state, err = l.next(state); err != nil {
			return err
		}
	}
}

func (l *lazy) collect() ([]any, error) {
	var xs []any
	err := l.each(func(_ int, _, x any) (bool, error) {
		xs = append(xs, x)
		return true, nil
	})
	return xs, err
}

func (l *lazy) Count() (n int, err error) {
	err = l.each(func(i int, _, _ any) (bool, error) {
		n = i + 1
		return true, nil
	})
	return n, err
}

func (l *lazy) Nth(i int) (any, error) {
	if i < 0 {
		return nil, checkIndex(i, 0)
	}
	var found any
	n := 0
	err := l.each(func(j int, _, x any) (bool, error) {
		n = j + 1
		if j == i {
			found = x
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if n <= i {
		return nil, checkIndex(i, n)
	}
	return found, nil
}

// Drop skips the first n elements. The result starts generating from the state following the
// last skipped element.
func (l *lazy) Drop(n int) (List, error) {
	if n < 0 {
		return nil, checkDrop(n, 0)
	}
	if n == 0 {
		return l, nil
	}
	var last any
	skipped := 0
	err := l.each(func(j int, state, _ any) (bool, error) {
		skipped, last = j+1, state
		return skipped < n, nil
	})
	if err != nil {
		return nil, err
	}
	if skipped < n {
		return nil, checkDrop(n, skipped)
	}
	init, err := l.next(last)
	if err != nil {
		return nil, err
	}
	switch ok, err := l.cond(init); {
	case err != nil:
		return nil, err
	case !ok:
		return Nil, nil
	}
	return &lazy{init: init, cond: l.cond, next: l.next, stages: l.stages}, nil
}

// Head returns the first generated element.
func (l *lazy) Head() (any, error) {
	x, err := l.Nth(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmpty, err)
	}
	return x, nil
}

func (l *lazy) Tail() (List, error) {
	rest, err := l.Drop(1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmpty, err)
	}
	return rest, nil
}

func (l *lazy) Dup() List {
	stages := make([]stage, len(l.stages))
	copy(stages, l.stages)
	return &lazy{init: l.init, cond: l.cond, next: l.next, stages: stages}
}

func (l *lazy) Append(x any) List { return &cons{head: x, tail: l} }

// with returns a copy of l with s as its last stage. When fuse is set, s replaces the last
// stage instead.
func (l *lazy) with(s stage, fuse bool) *lazy {
	n := len(l.stages)
	if fuse {
		n--
	}
	stages := make([]stage, n, n+1)
	copy(stages, l.stages)
	return &lazy{init: l.init, cond: l.cond, next: l.next, stages: append(stages, s)}
}

func (l *lazy) last() (stage, bool) {
	if len(l.stages) == 0 {
		return stage{}, false
	}
	return l.stages[len(l.stages)-1], true
}

// Map fuses f into a trailing map stage by composition.
func (l *lazy) Map(f MapFunc) (List, error) {
	if s, ok := l.last(); ok && s.m != nil {
		g := s.m
		return l.with(stage{m: func(x any) (any, error) {
			y, err := g(x)
			if err != nil {
				return nil, err
			}
			return f(y)
		}}, true), nil
	}
	return l.with(stage{m: f}, false), nil
}

func (l *lazy) Filter(f FilterFunc) (List, error) {
	if s, ok := l.last(); ok && s.p != nil {
		g := s.p
		return l.with(stage{p: func(x any) (bool, error) {
			ok, err := g(x)
			if err != nil || !ok {
				return false, err
			}
			return f(x)
		}}, true), nil
	}
	return l.with(stage{p: f}, false), nil
}

func (l *lazy) Foldl(init any, f FoldFunc) (acc any, err error) {
	acc = init
	err = l.each(func(_ int, _, x any) (bool, error) {
		var err error
		acc, err = f(acc, x)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// previewSteps bounds the number of generated states String inspects, so a filter which
// rejects every element cannot stall printing.
const previewSteps = 1024

// String prints the first elements in generation order: `(0, 1, ..)`
func (l *lazy) String() string {
	var xs []any
	steps := 0
	state := l.init
	for len(xs) < 2 && steps < previewSteps {
		ok, err := l.cond(state)
		if err != nil || !ok {
			break
		}
		x, keep, err := l.apply(state)
		if err != nil {
			break
		}
		if keep {
			xs = append(xs, x)
		}
		if state, err = l.next(state); err != nil {
			break
		}
		steps++
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for _, x := range xs {
		fmt.Fprint(&sb, x)
		sb.WriteString(", ")
	}
	sb.WriteString("..)")
	return sb.String()
}
