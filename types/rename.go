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

// Canonical returns a generic copy of t in which every type-variable, bound or not, is replaced
// by a fresh generic variable numbered in order of appearance. Linked variables are resolved
// and stacks are flattened. Generic variables are identified by id, as in Instantiate; unbound
// variables are identified by pointer. Types without variables are returned unchanged.
func Canonical(t Type) Type {
	r := renamer{vars: make(map[*Var]*Var), generic: make(map[genericKey]*Var)}
	return r.visit(t)
}

type genericKey struct {
	id  int
	row bool
}

type renamer struct {
	vars    map[*Var]*Var
	generic map[genericKey]*Var
	next    int
}

func (r *renamer) visit(t Type) Type {
	t = RealType(t)
	switch t := t.(type) {
	case *Var:
		key := genericKey{id: t.Id(), row: t.IsRowVar()}
		if t.IsGenericVar() {
			if tv, ok := r.generic[key]; ok {
				return tv
			}
		} else if tv, ok := r.vars[t]; ok {
			return tv
		}
		tv := NewGenericVar(r.next)
		if t.IsRowVar() {
			tv.SetRow()
		}
		r.next++
		if t.IsGenericVar() {
			r.generic[key] = tv
		} else {
			r.vars[t] = tv
		}
		return tv

	case *Stack:
		return r.stack(t)

	case *Fxn:
		// The produced stack is visited second so that the consumed row is named first:
		cons := r.stack(t.Cons)
		prod := r.stack(t.Prod)
		return &Fxn{Cons: cons, Prod: prod, HasGenericVars: cons.HasGenericVars || prod.HasGenericVars}
	}
	return t
}

func (r *renamer) stack(s *Stack) *Stack {
	items, row, err := FlattenStack(s)
	if err != nil {
		return s
	}
	out := &Stack{}
	if row != nil {
		out.Row = r.visit(row)
		out.HasGenericVars = true
	}
	lb := NewTypeListBuilder()
	items.Range(func(_ int, t Type) bool {
		t = r.visit(t)
		if t.IsGeneric() {
			out.HasGenericVars = true
		}
		lb.Append(t)
		return true
	})
	out.Items = lb.Build()
	return out
}
