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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[*Var]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.rows, p.vars = 0, 0
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type.
//
// Type-variables are named in order of appearance: row-variables as 'A, 'B, ... and other
// type-variables as 'a, 'b, ...
func TypeString(t Type) string {
	if t == nil {
		return "untyped"
	}
	p := newTypePrinter()
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

type typePrinter struct {
	idNames map[*Var]string
	rows    int
	vars    int
	sb      strings.Builder
}

var _names [26]string
var _rowNames [26]string

func init() {
	for i := range _names {
		_names[i] = "'" + string(byte('a'+i))
		_rowNames[i] = "'" + string(byte('A'+i))
	}
}

func getVarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return _names[i%26] + strconv.Itoa(i/26)
}

func getRowVarName(i int) string {
	if i < len(_rowNames) {
		return _rowNames[i]
	}
	return _rowNames[i%26] + strconv.Itoa(i/26)
}

func (p *typePrinter) varName(tv *Var) string {
	if name, ok := p.idNames[tv]; ok {
		return name
	}
	var name string
	if tv.IsRowVar() {
		name = getRowVarName(p.rows)
		p.rows++
	} else {
		name = getVarName(p.vars)
		p.vars++
	}
	p.idNames[tv] = name
	return name
}

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		if t.IsLinkVar() {
			typeString(p, t.Link())
			return
		}
		p.sb.WriteString(p.varName(t))

	case *Self:
		p.sb.WriteString("self")

	case *Class:
		p.sb.WriteString(t.label())

	case *Stack:
		items, row, err := FlattenStack(t)
		if err != nil {
			p.sb.WriteString("<INVALID-STACK>")
			return
		}
		wrote := false
		if row != nil {
			p.sb.WriteString(p.varName(row.(*Var)))
			wrote = true
		}
		items.Range(func(_ int, t Type) bool {
			if wrote {
				p.sb.WriteByte(' ')
			}
			typeString(p, t)
			wrote = true
			return true
		})

	case *Fxn:
		p.sb.WriteByte('(')
		typeString(p, t.Cons)
		if t.Cons.Items.Len() > 0 || t.Cons.Row != nil {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString("->")
		if t.Prod.Items.Len() > 0 || t.Prod.Row != nil {
			p.sb.WriteByte(' ')
		}
		typeString(p, t.Prod)
		p.sb.WriteByte(')')
	}
}
