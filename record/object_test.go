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

package record

import (
	"errors"
	"testing"

	"github.com/tangentforks/catlang/types"
)

func TestObjectWith(t *testing.T) {
	point := types.NewClass("point")
	if err := point.AddField("x", types.Int); err != nil {
		t.Fatal(err)
	}
	if err := point.AddField("y", types.Int); err != nil {
		t.Fatal(err)
	}
	if err := point.AddField("x", types.Int); !errors.Is(err, types.ErrFieldDefined) {
		t.Fatalf("expected redefinition to fail, found %v", err)
	}

	o := New(point)
	if _, err := o.Get("x"); !errors.Is(err, ErrFieldUnset) {
		t.Fatalf("expected unset field, found %v", err)
	}
	a, err := o.With("x", 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := a.With("y", 2)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := b.Get("x"); v != 1 {
		t.Fatalf("x: %v", v)
	}
	if a.Len() != 1 || o.Len() != 0 {
		t.Fatalf("earlier objects were modified: %s %s", o, a)
	}
	if s := b.String(); s != "point{x=1, y=2}" {
		t.Fatalf("string: %s", s)
	}
	if _, err := b.With("z", 3); !errors.Is(err, types.ErrFieldUndefined) {
		t.Fatalf("expected undefined field, found %v", err)
	}
	if _, err := b.Get("z"); !errors.Is(err, types.ErrFieldUndefined) {
		t.Fatalf("expected undefined field, found %v", err)
	}
}
