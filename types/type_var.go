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

// Special binding-levels (used as flags):
const (
	GenericVarLevel = 1<<31 - 1
	LinkVarLevel    = -1 << 31
)

// Type-variable
//
// A row-variable stands for an arbitrary number of stack items and may only be linked to
// a Stack or another row-variable.
type Var struct {
	link  Type
	id    int32
	level int32
	row   bool
}

// Instance of a type-variable
type VarType int

const (
	// Unbound type-variable
	UnboundVar VarType = iota
	// Linked type-variable
	LinkVar
	// Generic type-variable
	GenericVar
)

// Create a new type-variable with the given id and binding-level.
func NewVar(id, level int) *Var {
	return &Var{id: int32(id), level: int32(level)}
}

// Create a new generic type-variable.
func NewGenericVar(id int) *Var {
	return &Var{id: int32(id), level: GenericVarLevel}
}

// Create a new generic row-variable.
func NewGenericRowVar(id int) *Var {
	return &Var{id: int32(id), level: GenericVarLevel, row: true}
}

// VarType indicates whether the type-variable is linked, unbound, or generic.
func (tv *Var) VarType() VarType {
	switch tv.level {
	case LinkVarLevel:
		return LinkVar
	case GenericVarLevel:
		return GenericVar
	default:
		return UnboundVar
	}
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return int(tv.id) }

// Level returns the adjusted binding-level of the type-variable.
func (tv *Var) Level() int { return int(tv.level) }

// Link returns the type which the type-variable is bound to, if the type-variable is bound.
func (tv *Var) Link() Type { return tv.link }

func (tv *Var) IsUnboundVar() bool { return tv.level != LinkVarLevel && tv.level != GenericVarLevel }
func (tv *Var) IsLinkVar() bool    { return tv.level == LinkVarLevel }
func (tv *Var) IsGenericVar() bool { return tv.level == GenericVarLevel }

// IsRowVar indicates whether the variable stands for the rest of a stack.
func (tv *Var) IsRowVar() bool { return tv.row }

// Set the unique identifier of the type-variable.
func (tv *Var) SetId(id int) { tv.id = int32(id) }

// Set the adjusted binding-level of the type-variable.
func (tv *Var) SetLevel(level int) { tv.level = int32(level) }

// Mark the type-variable as a row-variable.
func (tv *Var) SetRow() { tv.row = true }

// Set the type which the type-variable is bound to.
func (tv *Var) SetLink(t Type) { tv.link, tv.level = t, LinkVarLevel }

// Flatten a chain of linked type-variables.
func (tv *Var) Flatten() {
	if tv.IsLinkVar() {
		tv.link = RealType(tv.link)
	}
}

// Set the binding-level of the type-variable to the generic level.
func (tv *Var) SetGeneric() { tv.link, tv.level = nil, GenericVarLevel }

// Restore every field of the type-variable from a previous copy.
func (tv *Var) Restore(prev Var) { *tv = prev }
