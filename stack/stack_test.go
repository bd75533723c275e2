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

package stack

import (
	"errors"
	"strings"
	"testing"
)

func TestStack(t *testing.T) {
	s := New()
	if _, err := s.Pop(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected underflow, found %v", err)
	}
	s.Push(1)
	s.Push("two")
	s.Push(3)
	if s.Count() != 3 {
		t.Fatalf("expected 3 values, found %d", s.Count())
	}
	if s.String() != "[1 two 3]" {
		t.Fatalf("unexpected stack: %s", s)
	}
	if v, _ := s.PeekAt(2); v != 1 {
		t.Fatalf("expected 1 at the bottom, found %v", v)
	}
	if _, err := s.PeekAt(3); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected underflow, found %v", err)
	}

	if _, err := Pop[string](s); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected a mismatch, found %v", err)
	}
	if n, err := Pop[int](s); err != nil || n != 3 {
		t.Fatalf("expected 3, found %v (%v)", n, err)
	}
	if v, err := PeekAt[string](s, 0); err != nil || v != "two" {
		t.Fatalf("expected two, found %v (%v)", v, err)
	}

	vs := s.Values()
	if len(vs) != 2 || vs[0] != 1 || vs[1] != "two" {
		t.Fatalf("unexpected values: %v", vs)
	}
	if !strings.Contains(s.Dump(), "two") {
		t.Fatalf("unexpected dump: %s", s.Dump())
	}

	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("expected an empty stack")
	}
}

type cyclic struct{ next *cyclic }

func (c *cyclic) String() string { return "cyclic" }

func TestDump(t *testing.T) {
	c := &cyclic{}
	c.next = c
	s := New()
	s.Push(1)
	s.Push(c)
	s.Push([]string{"a"})
	d := s.Dump()
	for _, line := range []string{"0: 1", "1: cyclic", `2: []string{"a"}`} {
		if !strings.Contains(d, line) {
			t.Fatalf("expected %q in dump:\n%s", line, d)
		}
	}
	if New().Dump() != "" {
		t.Fatalf("expected an empty dump")
	}
}
