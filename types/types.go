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
)

// Type is the base interface for all types.
type Type interface {
	TypeName() string
	IsGeneric() bool
}

func (t *Var) TypeName() string   { return "Var" }
func (t *Const) TypeName() string { return "Const" }
func (t *Fxn) TypeName() string   { return "Fxn" }
func (t *Stack) TypeName() string { return "Stack" }
func (t *Self) TypeName() string  { return "Self" }
func (t *Class) TypeName() string { return "Class" }

func (t *Var) IsGeneric() bool {
	r := RealType(t)
	if tv, ok := r.(*Var); ok {
		return tv.IsGenericVar()
	}
	return r.IsGeneric()
}

func (t *Const) IsGeneric() bool { return false }
func (t *Fxn) IsGeneric() bool   { return t.HasGenericVars }
func (t *Stack) IsGeneric() bool { return t.HasGenericVars }
func (t *Self) IsGeneric() bool  { return false }
func (t *Class) IsGeneric() bool { return false }

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Stack effect: `('A int int -> 'A int)`
type Fxn struct {
	Cons           *Stack
	Prod           *Stack
	HasGenericVars bool
}

// Stack vector: items are ordered from the bottom to the top, resting on Row.
//
// Row is a row-variable standing for the rest of the stack, or nil for a closed stack.
type Stack struct {
	Items          TypeList
	Row            Type
	HasGenericVars bool
}

// Self marks a self-reference within a recursive definition. The inference context resolves
// it to the type of the enclosing sequence.
type Self struct{}

// Common type constants.
var (
	Int    = &Const{"int"}
	Bool   = &Const{"bool"}
	String = &Const{"string"}
	Float  = &Const{"float"}
	List   = &Const{"list"}
	Object = &Const{"object"}
)

// Get the underlying type for a chain of linked type-variables, when applicable.
func RealType(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		if !tv.IsLinkVar() {
			return t
		}
		t = tv.Link()
	}
}

// Top returns the top-most item of the stack vector, ignoring the row.
func (s *Stack) Top() (Type, bool) {
	n := s.Items.Len()
	if n == 0 {
		return nil, false
	}
	return s.Items.Get(n - 1), true
}

// Flatten a stack whose row-variable is linked to other stacks into a single vector.
// The returned row is nil (closed) or a row-variable which is not linked.
func FlattenStack(s *Stack) (items TypeList, row Type, err error) {
	var segments []TypeList
	var t Type = s
Loop:
	for {
		switch st := RealType(t).(type) {
		case *Stack:
			segments = append(segments, st.Items)
			if st.Row == nil {
				row = nil
				break Loop
			}
			t = st.Row
		case *Var:
			row = st
			break Loop
		default:
			return EmptyTypeList, nil, errors.New("Not a stack type")
		}
	}
	if len(segments) == 1 {
		return segments[0], row, nil
	}
	// segments were collected from the top-most downwards:
	lb := NewTypeListBuilder()
	for i := len(segments) - 1; i >= 0; i-- {
		segments[i].Range(func(_ int, t Type) bool {
			lb.Append(t)
			return true
		})
	}
	return lb.Build(), row, nil
}

// Quote lifts a stack effect into the type of a function which pushes it: `('R -> 'R f)`.
// The result shares no row with f.
func Quote(f *Fxn) *Fxn {
	row := NewGenericVar(-1)
	row.SetRow()
	items := SingletonTypeList(f)
	q := &Fxn{
		Cons:           &Stack{Row: row, Items: EmptyTypeList, HasGenericVars: true},
		Prod:           &Stack{Row: row, Items: items, HasGenericVars: true},
		HasGenericVars: true,
	}
	return Canonical(q).(*Fxn)
}

// Unquote extracts the pushed function type from a quoted stack effect produced by Quote.
// A nil result is returned for nil or malformed types.
func Unquote(t Type) *Fxn {
	q, ok := t.(*Fxn)
	if !ok || q == nil || q.Cons.Items.Len() != 0 || q.Prod.Items.Len() != 1 {
		return nil
	}
	top, _ := q.Prod.Top()
	f, _ := RealType(top).(*Fxn)
	return f
}
