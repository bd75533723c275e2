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

package cat

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tangentforks/catlang/construct"
	"github.com/tangentforks/catlang/record"
	"github.com/tangentforks/catlang/stack"
	"github.com/tangentforks/catlang/types"
)

// Placeholder types of field accessors which have not been specialized yet.
var (
	getPlaceholder = types.MustParse("('A 'c string -> 'A 'c 'v)")
	setPlaceholder = types.MustParse("('A 'c 'v string -> 'A 'c)")
)

// fieldBinding is the field an accessor was specialized for, along with the class it first
// observed and the type derived from that class.
type fieldBinding struct {
	class *types.Class
	field string
	typ   *types.Fxn
}

// accessor specializes itself on first evaluation, from the object and field name on the stack.
// A failed specialization is retried by the next evaluation; a successful one is permanent.
//
// Only the field name is frozen: objects of other classes which define the field may be passed
// to the same accessor, which is what happens when a definition creating objects is evaluated
// more than once.
type accessor struct {
	funcBase
	mu      sync.Mutex
	binding atomic.Pointer[fieldBinding]
}

// placeholder returns the specialized type of the accessor, or t before specialization.
func (a *accessor) placeholder(t *types.Fxn) types.Type {
	if b := a.binding.Load(); b != nil {
		return b.typ
	}
	return t
}

// Field returns the field name the accessor was specialized for, and the class it first
// observed.
func (a *accessor) Field() (class *types.Class, field string, ok bool) {
	b := a.binding.Load()
	if b == nil {
		return nil, "", false
	}
	return b.class, b.field, true
}

func (a *accessor) IsSpecialized() bool { return a.binding.Load() != nil }

func (a *accessor) ImplString() string { return "primitive" }

// check reports whether the accessor may be used with a field.
func (a *accessor) check(field string) error {
	if b := a.binding.Load(); b != nil && b.field != field {
		return fmt.Errorf("%w: %s accessor for field %s used with field %s",
			ErrSpecialization, a.name, b.field, field)
	}
	return nil
}

// bind specializes the accessor when necessary, and checks that it is used with the field it
// was specialized for.
func (a *accessor) bind(field string, specialize func() *fieldBinding) error {
	if a.binding.Load() == nil {
		a.mu.Lock()
		if a.binding.Load() == nil {
			a.binding.Store(specialize())
		}
		a.mu.Unlock()
	}
	return a.check(field)
}

// fieldType returns the type of a defined field.
func fieldType(class *types.Class, field string) (types.Type, error) {
	ft, err := class.FieldType(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	return ft, nil
}

// checkValue reports whether a value may be stored in a field of the given type.
func checkValue(class *types.Class, field string, ft types.Type, v any) error {
	vt := TypeOf(v)
	if vt == nil || types.TypeString(vt) == types.TypeString(ft) {
		return nil
	}
	return fmt.Errorf("%w: field %s of %s has type %s, found %s",
		stack.ErrMismatch, field, class, types.TypeString(ft), types.TypeString(vt))
}

// GetField pushes the value of a field: `(C string -> C t)`
type GetField struct{ accessor }

func NewGetField() *GetField {
	g := &GetField{}
	g.name, g.desc = "get", "pushes the value of a field of an object"
	return g
}

func (g *GetField) Type() types.Type { return g.placeholder(getPlaceholder) }

func (g *GetField) Eval(s *stack.Stack) error {
	field, err := stack.Peek[string](s)
	if err != nil {
		return err
	}
	obj, err := stack.PeekAt[*record.Object](s, 1)
	if err != nil {
		return err
	}
	if err := g.check(field); err != nil {
		return err
	}
	class := obj.Class()
	ft, err := fieldType(class, field)
	if err != nil {
		return err
	}
	err = g.bind(field, func() *fieldBinding {
		return &fieldBinding{
			class: class,
			field: field,
			typ:   construct.TEffect([]types.Type{class, types.String}, []types.Type{class, ft}),
		}
	})
	if err != nil {
		return err
	}
	v, err := obj.Get(field)
	if err != nil {
		return err
	}
	_, _ = s.Pop()
	s.Push(v)
	return nil
}

// SetField replaces the value of a field: `(C t string -> C)`
type SetField struct{ accessor }

func NewSetField() *SetField {
	f := &SetField{}
	f.name, f.desc = "set", "sets the value of a field of an object"
	return f
}

func (f *SetField) Type() types.Type { return f.placeholder(setPlaceholder) }

func (f *SetField) Eval(s *stack.Stack) error {
	return update(s, &f.accessor, func(class *types.Class, field string, v any) (types.Type, error) {
		ft, err := fieldType(class, field)
		if err != nil {
			return nil, err
		}
		return ft, checkValue(class, field, ft, v)
	})
}

// DefField defines a new field of an object's class, typed by the value stored in it:
// `(C t string -> C)`
type DefField struct{ accessor }

func NewDefField() *DefField {
	f := &DefField{}
	f.name, f.desc = "def", "defines a new field of an object"
	return f
}

func (f *DefField) Type() types.Type { return f.placeholder(setPlaceholder) }

// Eval extends the class of the object on the stack, so the field may not already be defined by
// that class.
func (f *DefField) Eval(s *stack.Stack) error {
	return update(s, &f.accessor, func(class *types.Class, field string, v any) (types.Type, error) {
		ft := TypeOf(v)
		if ft == nil {
			return nil, fmt.Errorf("%w: cannot define field %s with untyped value", ErrDefinition, field)
		}
		if err := class.AddField(field, ft); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
		}
		return ft, nil
	})
}

// update stores the value below the field name in the object below it, and replaces the object
// with the updated copy. prepare checks the field of the observed class and returns its type.
func update(s *stack.Stack, a *accessor, prepare func(class *types.Class, field string, v any) (types.Type, error)) error {
	field, err := stack.Peek[string](s)
	if err != nil {
		return err
	}
	v, err := s.PeekAt(1)
	if err != nil {
		return err
	}
	obj, err := stack.PeekAt[*record.Object](s, 2)
	if err != nil {
		return err
	}
	if err := a.check(field); err != nil {
		return err
	}
	class := obj.Class()
	ft, err := prepare(class, field, v)
	if err != nil {
		return err
	}
	err = a.bind(field, func() *fieldBinding {
		return &fieldBinding{
			class: class,
			field: field,
			typ:   construct.TEffect([]types.Type{class, ft, types.String}, []types.Type{class}),
		}
	})
	if err != nil {
		return err
	}
	updated, err := obj.With(field, v)
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		_, _ = s.Pop()
	}
	s.Push(updated)
	return nil
}
