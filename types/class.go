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
	"sync"

	"github.com/benbjohnson/immutable"
	"github.com/google/uuid"
)

var (
	ErrFieldDefined   = errors.New("field has already been defined")
	ErrFieldUndefined = errors.New("field has not been defined")
)

// Class is the schema of a record: an open mapping from field names to types, which may only be
// extended. Readers observe immutable snapshots, so a class may be extended while it is in use.
type Class struct {
	Id   uuid.UUID
	Name string

	mu     sync.Mutex
	fields *immutable.SortedMap // string -> Type
}

// Create a new class without fields. Classes without a name are printed by their identity.
func NewClass(name string) *Class {
	return &Class{Id: uuid.New(), Name: name, fields: immutable.NewSortedMap(nil)}
}

func (c *Class) snapshot() *immutable.SortedMap {
	c.mu.Lock()
	m := c.fields
	c.mu.Unlock()
	return m
}

// Len returns the number of fields in the class.
func (c *Class) Len() int { return c.snapshot().Len() }

// HasField reports whether the field has been defined.
func (c *Class) HasField(name string) bool {
	_, ok := c.snapshot().Get(name)
	return ok
}

// FieldType returns the declared type of a field.
func (c *Class) FieldType(name string) (Type, error) {
	t, ok := c.snapshot().Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrFieldUndefined, name, c)
	}
	return t.(Type), nil
}

// AddField extends the class with a new field. Fields may not be redefined.
func (c *Class) AddField(name string, t Type) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.fields.Get(name); ok {
		return fmt.Errorf("%w: %s in %s", ErrFieldDefined, name, c.label())
	}
	c.fields = c.fields.Set(name, t)
	return nil
}

// Fields returns the names of all fields, in sorted order.
func (c *Class) Fields() []string {
	m := c.snapshot()
	names := make([]string, 0, m.Len())
	iter := m.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	return names
}

func (c *Class) label() string {
	if c.Name != "" {
		return c.Name
	}
	return "class#" + c.Id.String()[:8]
}

// String prints the class with its fields: `point{x:int, y:int}`
func (c *Class) String() string {
	var sb strings.Builder
	sb.WriteString(c.label())
	sb.WriteByte('{')
	iter := c.snapshot().Iterator()
	for i := 0; !iter.Done(); i++ {
		k, v := iter.Next()
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k.(string))
		sb.WriteByte(':')
		sb.WriteString(TypeString(v.(Type)))
	}
	sb.WriteByte('}')
	return sb.String()
}
