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

package meta

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
)

const dupBlock = `
desc: duplicates the top value
test:
  - in: 1 dup
    out: 1 1
  - in: '"a" dup'
    out: '"a" "a"'
author: cdiggins
`

func TestParseBlock(t *testing.T) {
	b, err := Parse([]byte(dupBlock), "dup.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if b.Desc != "duplicates the top value" || b.Len() != 4 {
		t.Fatalf("block: %# v", pretty.Formatter(b))
	}
	cases, err := b.Cases()
	if err != nil {
		t.Fatal(err)
	}
	want := []Case{{"1 dup", "1 1"}, {`"a" dup`, `"a" "a"`}}
	if diff := pretty.Diff(cases, want); len(diff) > 0 {
		t.Fatalf("cases: %v", diff)
	}
	if b.Extra["author"] != "cdiggins" {
		t.Fatalf("extra: %v", b.Extra)
	}
}

func TestRoundTrip(t *testing.T) {
	b, err := Parse([]byte(dupBlock), "dup.yaml")
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse([]byte(b.String()), "dup.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(b, again); len(diff) > 0 {
		t.Fatalf("round trip: %v", diff)
	}
}

func TestInvalidTest(t *testing.T) {
	b, err := Parse([]byte("test:\n  - in: 1 dup\n"), "dup.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Cases(); !errors.Is(err, ErrInvalidTest) {
		t.Fatalf("expected invalid test, found %v", err)
	}
	var empty *Block
	if cases, err := empty.Cases(); err != nil || len(cases) != 0 {
		t.Fatalf("nil block: %v %v", cases, err)
	}
}

func TestLibrary(t *testing.T) {
	l, err := ParseLibrary([]byte("swap:\n  desc: swaps the top values\npop:\n"), "lib.yaml")
	if err != nil {
		t.Fatal(err)
	}
	names := l.Names()
	if len(names) != 2 || names[0] != "pop" || names[1] != "swap" {
		t.Fatalf("names: %v", names)
	}
	if l["pop"] == nil || l["swap"].Desc != "swaps the top values" {
		t.Fatalf("library: %# v", pretty.Formatter(l))
	}
}
