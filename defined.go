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
	"log/slog"

	"github.com/tangentforks/catlang/stack"
	"github.com/tangentforks/catlang/types"
)

// DefinedFunction is a named function defined by a sequence of terms.
type DefinedFunction struct {
	funcBase
	terms     []Function
	explicit  bool
	typeError bool
}

// NewDefinedFunction declares a function which is defined later, so its definition may refer to
// itself through a SelfFunction.
func NewDefinedFunction(name string) *DefinedFunction {
	d := &DefinedFunction{}
	d.name = name
	return d
}

// Define sets the terms of a definition and infers its type. A definition may not call itself
// directly, and may not contain untyped terms while type checking is enabled. A type error
// leaves the definition untyped, unless its type was declared explicitly.
func (rt *Runtime) Define(d *DefinedFunction, terms []Function) error {
	for _, f := range terms {
		if f == Function(d) {
			return fmt.Errorf("%w: %s cannot call itself directly", ErrDefinition, d.name)
		}
		if rt.Config.TypeChecking && f.Type() == nil {
			return fmt.Errorf("%w: untyped term %s in %s", ErrDefinition, f.Name(), d.name)
		}
	}
	d.terms = cloneFunctions(terms)
	d.desc = names(d.terms)
	if !rt.Config.TypeChecking {
		return nil
	}
	ft, err := rt.infer(d.name, d.terms)
	if err != nil {
		rt.Log.Warn("type error in definition",
			slog.String("function", d.name),
			slog.Any("error", err))
		d.typeError = true
		if !d.explicit {
			d.typ = nil
		}
		return nil
	}
	d.typeError = false
	if !d.explicit {
		d.setType(ft)
		return nil
	}
	if err := rt.Types.Check(fxnOf(d), ft); err != nil {
		rt.Log.Warn("declared type does not match definition",
			slog.String("function", d.name),
			slog.String("declared", TypeString(d)),
			slog.String("inferred", types.TypeString(ft)),
			slog.Any("error", err))
		d.typeError = true
	}
	return nil
}

// SetType declares the type of the definition, which is kept instead of the inferred type.
func (d *DefinedFunction) SetType(t *types.Fxn) {
	d.setType(t)
	d.explicit = t != nil
}

func (d *DefinedFunction) IsTypeExplicit() bool { return d.explicit }
func (d *DefinedFunction) HasTypeError() bool   { return d.typeError }
func (d *DefinedFunction) Terms() []Function    { return d.terms }

func (d *DefinedFunction) Eval(s *stack.Stack) error {
	if d.terms == nil {
		return fmt.Errorf("%w: %s has not been defined", ErrDefinition, d.name)
	}
	for _, f := range d.terms {
		if err := f.Eval(s); err != nil {
			return err
		}
	}
	return nil
}

func (d *DefinedFunction) ImplString() string { return names(d.terms) }
