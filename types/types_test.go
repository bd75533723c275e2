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

package types

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	for _, tc := range [][2]string{
		{"('A int int -> 'A int)", "('A int int -> 'A int)"},
		{"(int int -> int)", "('A int int -> 'A int)"},
		{"('a 'b -> 'b 'a)", "('A 'a 'b -> 'A 'b 'a)"},
		{"( -> list)", "('A -> 'A list)"},
		{"('A ('A -> 'B) -> 'B)", "('A ('A -> 'B) -> 'B)"},
		{"('x -> ('Y -> 'Y 'x))", "('A 'a -> 'A ('B -> 'B 'a))"},
		{"('A bool ('A -> 'B) ('A -> 'B) -> 'B)", "('A bool ('A -> 'B) ('A -> 'B) -> 'B)"},
		{"('R 'list 'fn->'R)", "('A 'a 'b -> 'A)"},
		{"(list ('B 'a -> 'B 'b) -> list)", "('A list ('B 'a -> 'B 'b) -> 'A list)"},
		{"('a ('B 'a -> 'B bool) ('C 'a -> 'C 'a) -> list)", "('A 'a ('B 'a -> 'B bool) ('C 'a -> 'C 'a) -> 'A list)"},
	} {
		sig, expected := tc[0], tc[1]
		ft, err := Parse(sig)
		if err != nil {
			t.Fatalf("%s: %v", sig, err)
		}
		if s := TypeString(ft); s != expected {
			t.Fatalf("%s: expected %s, found %s", sig, expected, s)
		}
		if !ft.IsGeneric() {
			t.Fatalf("%s: expected a generic type", sig)
		}
		// Printed types parse to themselves:
		again := MustParse(expected)
		if s := TypeString(again); s != expected {
			t.Fatalf("%s: expected %s, found %s", expected, expected, s)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, sig := range []string{
		"",
		"int -> int",
		"(int -> int",
		"(int int)",
		"('a 'A -> 'A)",
		"(int -> int) int",
		"(-> ->)",
	} {
		if _, err := Parse(sig); err == nil {
			t.Fatalf("%q: expected an error", sig)
		}
	}
}

func TestQuote(t *testing.T) {
	ft := MustParse("(int -> bool)")
	q := Quote(ft)
	if s := TypeString(q); s != "('A -> 'A ('B int -> 'B bool))" {
		t.Fatalf("unexpected quotation: %s", s)
	}
	if s := TypeString(Unquote(q)); s != "('A int -> 'A bool)" {
		t.Fatalf("unexpected unquoted type: %s", s)
	}
	if Unquote(ft) != nil || Unquote(nil) != nil {
		t.Fatalf("expected nil for a type which is not a quotation")
	}
}

func TestPrintUntyped(t *testing.T) {
	if s := TypeString(nil); s != "untyped" {
		t.Fatalf("expected untyped, found %s", s)
	}
	if s := TypeString(&Self{}); s != "self" {
		t.Fatalf("expected self, found %s", s)
	}
}

func TestVarNames(t *testing.T) {
	if getVarName(0) != "'a" || getVarName(27) != "'b1" {
		t.Fatalf("unexpected type-variable names: %s %s", getVarName(0), getVarName(27))
	}
	if getRowVarName(1) != "'B" || getRowVarName(26) != "'A1" {
		t.Fatalf("unexpected row-variable names: %s %s", getRowVarName(1), getRowVarName(26))
	}
}

func TestClass(t *testing.T) {
	c := NewClass("point")
	if err := c.AddField("y", Int); err != nil {
		t.Fatal(err)
	}
	if err := c.AddField("x", Float); err != nil {
		t.Fatal(err)
	}
	if err := c.AddField("x", Int); !errors.Is(err, ErrFieldDefined) {
		t.Fatalf("expected ErrFieldDefined, found %v", err)
	}
	if c.Len() != 2 || !c.HasField("x") || c.HasField("z") {
		t.Fatalf("unexpected fields: %v", c.Fields())
	}
	if ft, err := c.FieldType("x"); err != nil || ft != Float {
		t.Fatalf("expected float, found %v (%v)", ft, err)
	}
	if _, err := c.FieldType("z"); !errors.Is(err, ErrFieldUndefined) {
		t.Fatalf("expected ErrFieldUndefined, found %v", err)
	}
	if s := c.String(); s != "point{x:float, y:int}" {
		t.Fatalf("unexpected class: %s", s)
	}
	if s := TypeString(c); s != "point" {
		t.Fatalf("unexpected type string: %s", s)
	}

	anon := NewClass("")
	if !strings.HasPrefix(TypeString(anon), "class#") {
		t.Fatalf("unexpected type string: %s", TypeString(anon))
	}
	if anon.Id == c.Id {
		t.Fatalf("expected distinct class identities")
	}
}

func TestTypeList(t *testing.T) {
	l := NewTypeList(Int, Bool)
	l2 := l.Append(String)
	if l.Len() != 2 || l2.Len() != 3 {
		t.Fatalf("expected the original list to be unchanged")
	}
	if l2.Get(2) != String || l2.Slice(1, 3).Get(0) != Bool {
		t.Fatalf("unexpected items: %v", l2.Types())
	}
	if EmptyTypeList.Len() != 0 {
		t.Fatalf("expected an empty list")
	}
}

func TestFlattenStack(t *testing.T) {
	row := NewVar(0, 1)
	row.SetRow()
	inner := &Stack{Items: NewTypeList(Int), Row: row}
	outerRow := NewVar(1, 1)
	outerRow.SetRow()
	outerRow.SetLink(inner)
	outer := &Stack{Items: NewTypeList(Bool, String), Row: outerRow}

	items, r, err := FlattenStack(outer)
	if err != nil {
		t.Fatal(err)
	}
	if r != Type(row) || items.Len() != 3 {
		t.Fatalf("unexpected stack: %v", items.Types())
	}
	if items.Get(0) != Int || items.Get(2) != String {
		t.Fatalf("expected items ordered from the bottom: %v", items.Types())
	}
	if s := TypeString(outer); s != "'A int bool string" {
		t.Fatalf("unexpected stack: %s", s)
	}
}

func TestCanonicalGenericIds(t *testing.T) {
	row := NewGenericRowVar(7)
	ft := &Fxn{
		Cons: &Stack{Items: NewTypeList(NewGenericVar(3)), Row: row},
		Prod: &Stack{Items: NewTypeList(NewGenericVar(3), NewGenericVar(3)), Row: NewGenericRowVar(7)},
	}
	if s := TypeString(Canonical(ft)); s != "('A 'a -> 'A 'a 'a)" {
		t.Fatalf("expected generic variables with equal ids to be renamed together, found %s", s)
	}

	// Unbound variables are distinguished by identity:
	a, b := NewVar(3, 1), NewVar(3, 1)
	ft = &Fxn{
		Cons: &Stack{Items: NewTypeList(a), Row: row},
		Prod: &Stack{Items: NewTypeList(b), Row: row},
	}
	if s := TypeString(Canonical(ft)); s != "('A 'a -> 'A 'b)" {
		t.Fatalf("expected distinct unbound variables, found %s", s)
	}
}
