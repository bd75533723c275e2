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

package prims

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	cat "github.com/tangentforks/catlang"
	"github.com/tangentforks/catlang/config"
	"github.com/tangentforks/catlang/list"
)

func newLexicon() *Lexicon {
	rt := cat.NewRuntime(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(rt)
}

func run(t *testing.T, l *Lexicon, src string) any {
	t.Helper()
	fs, err := l.Compile(src)
	if err != nil {
		t.Fatalf("compiling %q: %v", src, err)
	}
	v, err := cat.Invoke(cat.NewQuotedFunction(fs, nil))
	if err != nil {
		t.Fatalf("evaluating %q: %v", src, err)
	}
	return v
}

func TestLibrary(t *testing.T) {
	l := newLexicon()
	lib, err := Library()
	if err != nil {
		t.Fatal(err)
	}
	l.Document(lib)

	for _, name := range l.Names() {
		switch name {
		case "get", "set", "def":
			continue
		}
		if lib[name] == nil {
			t.Fatalf("%s is not documented", name)
		}
	}

	var out bytes.Buffer
	for _, name := range lib.Names() {
		f, ok := l.Lookup(name)
		if !ok {
			t.Fatalf("unknown function %s in library", name)
		}
		results, err := l.Runtime().RunTests(f, l, &out)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) == 0 {
			t.Fatalf("%s has no tests", name)
		}
		for _, r := range results {
			if !r.Passed {
				t.Fatalf("%s: %s: expected %v, found %v (%v)", name, r.In, r.Want, r.Got, r.Err)
			}
		}
	}
}

func TestCompile(t *testing.T) {
	l := newLexicon()
	fs, err := l.Compile(`1 2.5 "abc" true [dup [+] apply] swap`)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 6 {
		t.Fatalf("expected 6 terms, found %d", len(fs))
	}
	q, ok := fs[4].(*cat.Quotation)
	if !ok {
		t.Fatalf("expected a quotation, found %T", fs[4])
	}
	if q.Name() != "[dup [+] apply]" {
		t.Fatalf("unexpected quotation: %s", q.Name())
	}
	if cat.TypeString(q) != "('A -> 'A ('B int -> 'B int))" {
		t.Fatalf("unexpected quotation type: %s", cat.TypeString(q))
	}
	if fs[1].(*cat.PushValue).Value() != 2.5 {
		t.Fatalf("expected a float literal, found %v", fs[1].Name())
	}
	if fs[2].(*cat.PushValue).Value() != "abc" {
		t.Fatalf("expected a string literal, found %v", fs[2].Name())
	}
}

func TestCompileErrors(t *testing.T) {
	l := newLexicon()
	for _, src := range []string{"[1 2", "1 ]", `"abc`} {
		if _, err := l.Compile(src); !errors.Is(err, ErrSyntax) {
			t.Fatalf("%q: expected ErrSyntax, found %v", src, err)
		}
	}
	if _, err := l.Compile("1 frobnicate"); !errors.Is(err, ErrUnknownWord) {
		t.Fatalf("expected ErrUnknownWord, found %v", err)
	}
}

func TestAccessorsAreFresh(t *testing.T) {
	l := newLexicon()
	fs, err := l.Compile("get get")
	if err != nil {
		t.Fatal(err)
	}
	if fs[0] == fs[1] {
		t.Fatalf("expected every use of get to have its own accessor")
	}
	v := run(t, l, `object 1 "x" def 2 "y" def "x" get swap "y" get swap pop +`)
	if v != 3 {
		t.Fatalf("expected 3, found %v", v)
	}
}

func TestDefineRecursive(t *testing.T) {
	l := newLexicon()
	d, err := l.Define("countdown", "dup 0 > [1 - self] [id] if")
	if err != nil {
		t.Fatal(err)
	}
	if cat.TypeString(d) != "('A int -> 'A int)" {
		t.Fatalf("unexpected type: %s", cat.TypeString(d))
	}
	if v := run(t, l, "3 countdown"); v != 0 {
		t.Fatalf("expected 0, found %v", v)
	}

	sq, err := l.Define("square", "dup *")
	if err != nil {
		t.Fatal(err)
	}
	if cat.TypeString(sq) != "('A int -> 'A int)" {
		t.Fatalf("unexpected type: %s", cat.TypeString(sq))
	}
	if v := run(t, l, "4 [square] range 0 [+] foldl"); v != 14 {
		t.Fatalf("expected 14, found %v", v)
	}
}

func TestLists(t *testing.T) {
	l := newLexicon()
	v := run(t, l, "0 [10 <] [1 +] gen [2 *] map [5 >] filter")
	xs, err := list.Slice(v.(list.List))
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 7 || xs[0] != 6 || xs[6] != 18 {
		t.Fatalf("unexpected list: %v", xs)
	}

	v = run(t, l, "nil 1 cons 2 cons 3 cons [1 +] map 1 drop")
	if s := v.(list.List).String(); s != "( 3, 2)" {
		t.Fatalf("unexpected list: %s", s)
	}
}

func TestObjectsInDefinitions(t *testing.T) {
	l := newLexicon()
	if _, err := l.Define("mk", `object 1 "x" def "x" get swap pop`); err != nil {
		t.Fatal(err)
	}
	if v := run(t, l, "mk mk +"); v != 2 {
		t.Fatalf("expected 2, found %v", v)
	}
	if v := run(t, l, "mk mk mk + +"); v != 3 {
		t.Fatalf("expected 3, found %v", v)
	}

	v := run(t, l, `nil 1 cons 2 cons [object swap "x" def "x" get swap pop] map`)
	xs, err := list.Slice(v.(list.List))
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 2 || xs[0] != 1 || xs[1] != 2 {
		t.Fatalf("unexpected list: %v", xs)
	}

	if _, err := l.Define("bump", `"x" get 1 + "x" set`); err != nil {
		t.Fatal(err)
	}
	if v := run(t, l, `object 1 "x" def bump bump "x" get swap pop`); v != 3 {
		t.Fatalf("expected 3, found %v", v)
	}
}
