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

package infer

import (
	"errors"
	"testing"

	"github.com/tangentforks/catlang/construct"
	"github.com/tangentforks/catlang/types"
)

var (
	dup   = types.MustParse("('a -> 'a 'a)")
	swap  = types.MustParse("('a 'b -> 'b 'a)")
	add   = types.MustParse("(int int -> int)")
	lt    = types.MustParse("(int int -> bool)")
	apply = types.MustParse("('A ('A -> 'B) -> 'B)")
	if_   = types.MustParse("('A bool ('A -> 'B) ('A -> 'B) -> 'B)")
)

func infer(t *testing.T, terms ...types.Type) string {
	t.Helper()
	ft, err := NewService(nil).Infer(terms)
	if err != nil {
		t.Fatal(err)
	}
	return types.TypeString(ft)
}

func TestInfer(t *testing.T) {
	if s := infer(t, dup, add); s != "('A int -> 'A int)" {
		t.Fatalf("expected ('A int -> 'A int), found %s", s)
	}
	if s := infer(t, construct.TPush(types.Int), construct.TPush(types.Int), add); s != "('A -> 'A int)" {
		t.Fatalf("expected ('A -> 'A int), found %s", s)
	}
	if s := infer(t, swap, swap); s != "('A 'a 'b -> 'A 'a 'b)" {
		t.Fatalf("expected ('A 'a 'b -> 'A 'a 'b), found %s", s)
	}
	if s := infer(t); s != "('A -> 'A)" {
		t.Fatalf("expected ('A -> 'A), found %s", s)
	}
	if s := infer(t, add, dup, lt); s != "('A int int -> 'A bool)" {
		t.Fatalf("expected ('A int int -> 'A bool), found %s", s)
	}
}

func TestInferHigherOrder(t *testing.T) {
	inc := NewService(nil)
	ft, err := inc.Infer([]types.Type{construct.TPush(types.Int), add})
	if err != nil {
		t.Fatal(err)
	}
	quoted := types.Quote(ft)
	if s := types.TypeString(quoted); s != "('A -> 'A ('B int -> 'B int))" {
		t.Fatalf("unexpected quotation: %s", s)
	}
	if s := infer(t, quoted, apply); s != "('A int -> 'A int)" {
		t.Fatalf("expected ('A int -> 'A int), found %s", s)
	}

	id := types.Quote(types.MustParse("('A -> 'A)"))
	if s := infer(t, lt, quoted, id, if_); s != "('A int int int -> 'A int)" {
		t.Fatalf("expected ('A int int int -> 'A int), found %s", s)
	}
}

func TestInferSelf(t *testing.T) {
	if s := infer(t, &types.Self{}); s != "('A -> 'B)" {
		t.Fatalf("expected ('A -> 'B), found %s", s)
	}
	if s := infer(t, swap, swap, &types.Self{}); s != "('A 'a 'b -> 'B)" {
		t.Fatalf("expected ('A 'a 'b -> 'B), found %s", s)
	}
	// Recursion which consumes a value on every call has no finite type:
	if _, err := NewService(nil).Infer([]types.Type{add, &types.Self{}}); err == nil {
		t.Fatalf("expected a type error")
	}
}

func TestTypeError(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Infer([]types.Type{construct.TPush(types.String), add})
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected a type error, found %v", err)
	}
	if te.Index != 1 {
		t.Fatalf("expected the error at term 1, found %d", te.Index)
	}

	_, err = svc.Infer([]types.Type{dup, nil})
	if !errors.As(err, &te) || te.Index != 1 {
		t.Fatalf("expected an untyped term error at term 1, found %v", err)
	}

	// The service is reusable after a failure:
	ft, err := svc.Infer([]types.Type{dup, add})
	if err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ft); s != "('A int -> 'A int)" {
		t.Fatalf("expected ('A int -> 'A int), found %s", s)
	}
}

func TestCompose(t *testing.T) {
	svc := NewService(nil)
	ft, err := svc.Compose(dup, add)
	if err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ft); s != "('A int -> 'A int)" {
		t.Fatalf("expected ('A int -> 'A int), found %s", s)
	}
	if _, err := svc.Compose(nil, add); err == nil {
		t.Fatalf("expected an error for an untyped function")
	}
	if _, err := svc.Compose(construct.TPush(types.Bool), add); err == nil {
		t.Fatalf("expected a type error")
	}
}

func TestRenameVars(t *testing.T) {
	svc := NewService(nil)
	ft := construct.TFxn(
		construct.TStack(construct.TRow(7), construct.TVar(9)),
		construct.TStack(construct.TRow(7), construct.TVar(9), construct.TVar(9)))
	renamed := svc.RenameVars(ft)
	if s := types.TypeString(renamed); s != "('A 'a -> 'A 'a 'a)" {
		t.Fatalf("unexpected type: %s", s)
	}
	if svc.RenameVars(nil) != nil {
		t.Fatalf("expected nil")
	}
}

func TestCheck(t *testing.T) {
	svc := NewService(nil)
	if err := svc.Check(types.MustParse("(int -> int)"), types.MustParse("('a -> 'a)")); err != nil {
		t.Fatal(err)
	}
	if err := svc.Check(types.MustParse("(int -> int)"), types.MustParse("(string -> string)")); err == nil {
		t.Fatalf("expected an incompatible type")
	}
}
