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
	"log/slog"

	"github.com/tangentforks/catlang/config"
	"github.com/tangentforks/catlang/infer"
	"github.com/tangentforks/catlang/types"
)

// TypeService infers the stack effects of composite functions.
type TypeService interface {
	// Infer the effect of evaluating terms in order. A nil term is untyped.
	Infer(terms []types.Type) (*types.Fxn, error)
	// Compose the effects of two functions evaluated one after the other.
	Compose(a, b *types.Fxn) (*types.Fxn, error)
	// RenameVars returns a copy of t with type-variables renamed in order of appearance.
	RenameVars(t *types.Fxn) *types.Fxn
	// Check reports whether an inferred effect is compatible with a declared effect.
	Check(declared, inferred *types.Fxn) error
}

// Compiler translates source code into a sequence of functions.
type Compiler interface {
	Compile(src string) ([]Function, error)
}

var _ TypeService = (*infer.Service)(nil)

// Runtime constructs composite functions. Construction of quotations and definitions infers
// their types through the type service; failures are logged and leave the function untyped.
//
// A runtime cannot be used concurrently.
type Runtime struct {
	Types  TypeService
	Log    *slog.Logger
	Config config.Options
}

// Create a new runtime with its own inference service. A nil logger uses slog.Default().
func NewRuntime(opts config.Options, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = slog.Default()
	}
	svc := infer.NewService(logger)
	svc.SetVerbose(opts.VerboseInference)
	return &Runtime{Types: svc, Log: logger, Config: opts}
}

func (rt *Runtime) infer(name string, terms []Function) (*types.Fxn, error) {
	if rt.Config.VerboseInference {
		rt.Log.Debug("inferring type", slog.String("function", name))
	}
	ts := make([]types.Type, len(terms))
	for i, f := range terms {
		ts[i] = f.Type()
	}
	return rt.Types.Infer(ts)
}
