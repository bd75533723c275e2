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

// Package prims provides the primitive functions of the language and a compiler for programs
// written with them.
package prims

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	cat "github.com/tangentforks/catlang"
	"github.com/tangentforks/catlang/meta"
)

var (
	ErrUnknownWord = errors.New("unknown word")
	ErrSyntax      = errors.New("syntax error")
)

//go:embed library.yaml
var libraryYAML []byte

// Library returns the documentation and self-tests of the primitives.
func Library() (meta.Library, error) {
	return meta.ParseLibrary(libraryYAML, "library.yaml")
}

// Lexicon maps words to functions.
//
// A lexicon cannot be used concurrently.
type Lexicon struct {
	rt    *cat.Runtime
	words map[string]cat.Function
	// Field accessors specialize themselves, so every use of an accessor word needs its own
	// accessor.
	accessors map[string]func() cat.Function
}

var _ cat.Compiler = (*Lexicon)(nil)

// New creates a lexicon of the primitives, which constructs composite functions with rt.
func New(rt *cat.Runtime) *Lexicon {
	l := &Lexicon{
		rt:    rt,
		words: make(map[string]cat.Function),
		accessors: map[string]func() cat.Function{
			"get": func() cat.Function { return cat.NewGetField() },
			"set": func() cat.Function { return cat.NewSetField() },
			"def": func() cat.Function { return cat.NewDefField() },
		},
	}
	for _, p := range primitives(rt) {
		l.words[p.Name()] = p
	}
	return l
}

func (l *Lexicon) Runtime() *cat.Runtime { return l.rt }

// Add makes a function available by its name, replacing any function with the same name.
func (l *Lexicon) Add(f cat.Function) { l.words[f.Name()] = f }

// Lookup returns the function named by a word.
func (l *Lexicon) Lookup(word string) (cat.Function, bool) {
	if mk, ok := l.accessors[word]; ok {
		return mk(), true
	}
	f, ok := l.words[word]
	return f, ok
}

// Names returns every word of the lexicon in sorted order.
func (l *Lexicon) Names() []string {
	names := make([]string, 0, len(l.words)+len(l.accessors))
	for name := range l.words {
		names = append(names, name)
	}
	for name := range l.accessors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Document attaches metadata from a library to the functions it names. Field accessors are not
// shared, so they cannot be documented.
func (l *Lexicon) Document(lib meta.Library) {
	for name, b := range lib {
		if f, ok := l.words[name]; ok {
			cat.SetMeta(f, b)
		}
	}
}

// Compile translates a program into a sequence of functions. Words are separated by whitespace;
// `[` and `]` delimit quotations. Integers, floats, `true`, `false` and quoted strings without
// whitespace are literals.
func (l *Lexicon) Compile(src string) ([]cat.Function, error) {
	return l.compile(src, nil)
}

// Define compiles a named definition. Within its terms, the word `self` refers to the definition.
func (l *Lexicon) Define(name, src string) (*cat.DefinedFunction, error) {
	d := cat.NewDefinedFunction(name)
	terms, err := l.compile(src, cat.NewSelf(d))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := l.rt.Define(d, terms); err != nil {
		return nil, err
	}
	l.Add(d)
	return d, nil
}

func (l *Lexicon) compile(src string, self cat.Function) ([]cat.Function, error) {
	toks := tokenize(src)
	// Quotations are collected on a stack of open brackets:
	var open [][]cat.Function
	var terms []cat.Function
	for _, tok := range toks {
		switch tok {
		case "[":
			open = append(open, terms)
			terms = nil
			continue
		case "]":
			if len(open) == 0 {
				return nil, fmt.Errorf("%w: unexpected ]", ErrSyntax)
			}
			q := l.rt.NewQuotation(terms)
			terms = append(open[len(open)-1], q)
			open = open[:len(open)-1]
			continue
		}
		f, err := l.word(tok, self)
		if err != nil {
			return nil, err
		}
		terms = append(terms, f)
	}
	if len(open) > 0 {
		return nil, fmt.Errorf("%w: missing ]", ErrSyntax)
	}
	return terms, nil
}

func (l *Lexicon) word(tok string, self cat.Function) (cat.Function, error) {
	switch {
	case tok == "true":
		return cat.NewPushValue(true), nil
	case tok == "false":
		return cat.NewPushValue(false), nil
	case tok == "self" && self != nil:
		return self, nil
	case tok[0] == '"':
		s, err := strconv.Unquote(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid string %s", ErrSyntax, tok)
		}
		return cat.NewPushValue(s), nil
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return cat.NewPushValue(n), nil
	}
	if strings.ContainsAny(tok, ".eE") {
		if x, err := strconv.ParseFloat(tok, 64); err == nil {
			return cat.NewPushValue(x), nil
		}
	}
	if f, ok := l.Lookup(tok); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownWord, tok)
}

func tokenize(src string) []string {
	return strings.Fields(strings.NewReplacer("[", " [ ", "]", " ] ").Replace(src))
}
