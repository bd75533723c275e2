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

// Package infer reconstructs the stack effects of concatenated function sequences.
//
// Every stack effect is row-polymorphic: `('A int int -> 'A int)` consumes two integers from
// any stack 'A. Composing two functions unifies the produced stack of the first with the
// consumed stack of the second, from the top-most items downwards; excess items on either side
// are absorbed by the row-variable of the other side.
package infer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tangentforks/catlang/internal/typeutil"
	"github.com/tangentforks/catlang/types"
)

// TypeError reports that a sequence of functions could not be typed.
type TypeError struct {
	// Index of the term which could not be composed, or -1 when the failure is not specific
	// to a single term.
	Index int
	Err   error
}

func (e *TypeError) Error() string {
	if e.Index < 0 {
		return "type error: " + e.Err.Error()
	}
	return fmt.Sprintf("type error at term %d: %s", e.Index, e.Err)
}

func (e *TypeError) Unwrap() error { return e.Err }

var errUntyped = errors.New("Untyped term")

// topLevel is the binding-level of generalized types; inference happens one level below it.
const topLevel = 0

// Service is a reusable context for stack-effect inference.
//
// A service cannot be used concurrently.
type Service struct {
	ctx     typeutil.CommonContext
	logger  *slog.Logger
	verbose bool
}

// Create a new inference service. A nil logger uses slog.Default().
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{logger: logger}
	s.ctx.Init()
	return s
}

// SetVerbose enables debug logging of every inferred sequence.
func (s *Service) SetVerbose(verbose bool) { s.verbose = verbose }

// Infer the stack effect of the concatenation of terms, in order. A nil term is untyped and
// always fails. A Self term stands for the effect of the whole sequence.
//
// The returned type is generic and canonical.
func (s *Service) Infer(terms []types.Type) (*types.Fxn, error) {
	defer s.ctx.Reset()
	level := topLevel + 1
	row := s.ctx.VarTracker.NewRow(level)
	acc := &types.Fxn{Cons: &types.Stack{Row: row}, Prod: &types.Stack{Row: row}}
	var self *types.Fxn
	for i, t := range terms {
		var ft *types.Fxn
		switch t := t.(type) {
		case nil:
			return nil, &TypeError{Index: i, Err: errUntyped}
		case *types.Self:
			// Recursive references share a single monomorphic effect:
			if self == nil {
				self = &types.Fxn{
					Cons: &types.Stack{Row: s.ctx.VarTracker.NewRow(level)},
					Prod: &types.Stack{Row: s.ctx.VarTracker.NewRow(level)},
				}
			}
			ft = self
		case *types.Fxn:
			ft = s.ctx.Instantiate(level, t).(*types.Fxn)
		default:
			return nil, &TypeError{Index: i, Err: errors.New("Unexpected term type " + t.TypeName())}
		}
		if err := s.ctx.Unify(acc.Prod, ft.Cons); err != nil {
			return nil, &TypeError{Index: i, Err: err}
		}
		acc = &types.Fxn{Cons: acc.Cons, Prod: ft.Prod}
	}
	if self != nil {
		if err := s.ctx.Unify(self, acc); err != nil {
			return nil, &TypeError{Index: -1, Err: err}
		}
	}
	s.ctx.VarTracker.FlattenLinks()
	result := types.Canonical(typeutil.Generalize(topLevel, acc)).(*types.Fxn)
	if s.verbose {
		s.logger.Debug("inferred type",
			slog.Int("terms", len(terms)),
			slog.String("type", types.TypeString(result)))
	}
	return result, nil
}

// Compose the stack effects of two functions executed one after the other.
func (s *Service) Compose(a, b *types.Fxn) (*types.Fxn, error) {
	if a == nil || b == nil {
		return nil, &TypeError{Index: -1, Err: errUntyped}
	}
	return s.Infer([]types.Type{a, b})
}

// RenameVars returns a canonical copy of t with type-variables numbered in order of appearance.
func (s *Service) RenameVars(t *types.Fxn) *types.Fxn {
	if t == nil {
		return nil
	}
	return types.Canonical(t).(*types.Fxn)
}

// Check reports whether an inferred stack effect is an instance of, or is otherwise compatible
// with, a declared stack effect.
func (s *Service) Check(declared, inferred *types.Fxn) error {
	defer s.ctx.Reset()
	level := topLevel + 1
	d := s.ctx.Instantiate(level, declared)
	i := s.ctx.Instantiate(level, inferred)
	if err := s.ctx.TryUnify(d, i); err != nil {
		return &TypeError{Index: -1, Err: err}
	}
	return nil
}
