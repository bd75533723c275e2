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
	"fmt"
	"strings"
	"unicode"
)

// Parse a stack-effect signature, such as `('A 'a 'b -> 'A 'b 'a)` or `(int int -> int)`.
//
// Names starting with an upper-case letter after the quote are row-variables and may only appear
// first on either side of the arrow. Other quoted names are type-variables; bare names are type
// constants. When a side omits its row-variable, an implicit row-variable shared by both sides
// of that function is used. The returned type is generic.
func Parse(sig string) (*Fxn, error) {
	p := &sigParser{toks: tokenizeSig(sig), vars: make(map[string]*Var)}
	if len(p.toks) == 0 {
		return nil, errors.New("Empty type signature")
	}
	f, err := p.fxn()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("Unexpected %q after type signature", p.toks[p.pos])
	}
	return Canonical(f).(*Fxn), nil
}

// MustParse is like Parse but panics if the signature is invalid.
func MustParse(sig string) *Fxn {
	f, err := Parse(sig)
	if err != nil {
		panic("types: " + sig + ": " + err.Error())
	}
	return f
}

type sigParser struct {
	toks []string
	pos  int
	vars map[string]*Var
	next int
}

func tokenizeSig(s string) []string {
	s = strings.NewReplacer("(", " ( ", ")", " ) ", "->", " -> ").Replace(s)
	return strings.Fields(s)
}

func (p *sigParser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return ""
}

func (p *sigParser) expect(tok string) error {
	if p.peek() != tok {
		if p.pos >= len(p.toks) {
			return fmt.Errorf("Expected %q at end of type signature", tok)
		}
		return fmt.Errorf("Expected %q but found %q", tok, p.peek())
	}
	p.pos++
	return nil
}

func (p *sigParser) variable(name string, row bool) *Var {
	if tv, ok := p.vars[name]; ok {
		return tv
	}
	tv := NewGenericVar(p.next)
	p.next++
	if row {
		tv.SetRow()
	}
	if name != "" {
		p.vars[name] = tv
	}
	return tv
}

func isRowName(tok string) bool {
	if len(tok) < 2 || tok[0] != '\'' {
		return false
	}
	return unicode.IsUpper(rune(tok[1]))
}

func (p *sigParser) fxn() (*Fxn, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	consRow, cons, err := p.side("->")
	if err != nil {
		return nil, err
	}
	if err := p.expect("->"); err != nil {
		return nil, err
	}
	prodRow, prod, err := p.side(")")
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	if consRow == nil || prodRow == nil {
		implicit := p.variable("", true)
		if consRow == nil {
			consRow = implicit
		}
		if prodRow == nil {
			prodRow = implicit
		}
	}
	return &Fxn{
		Cons: &Stack{Items: NewTypeList(cons...), Row: consRow},
		Prod: &Stack{Items: NewTypeList(prod...), Row: prodRow},
	}, nil
}

func (p *sigParser) side(end string) (row *Var, items []Type, err error) {
	if tok := p.peek(); isRowName(tok) {
		row = p.variable(tok, true)
		p.pos++
	}
	for {
		tok := p.peek()
		switch {
		case tok == "":
			return nil, nil, fmt.Errorf("Expected %q at end of type signature", end)
		case tok == end:
			return row, items, nil
		case tok == "(":
			f, err := p.fxn()
			if err != nil {
				return nil, nil, err
			}
			items = append(items, f)
		case tok == ")" || tok == "->":
			return nil, nil, fmt.Errorf("Unexpected %q in type signature", tok)
		case isRowName(tok):
			return nil, nil, fmt.Errorf("Row-variable %s must appear first in a stack", tok)
		case tok[0] == '\'':
			items = append(items, p.variable(tok, false))
			p.pos++
		default:
			items = append(items, &Const{tok})
			p.pos++
		}
	}
}
