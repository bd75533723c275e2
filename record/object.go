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

// Package record implements persistent objects whose fields are described by a types.Class.
package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/tangentforks/catlang/types"
)

var ErrFieldUnset = errors.New("field has no value")

// Object is an immutable record. Updating a field returns a new object which shares the
// unchanged fields of the original.
type Object struct {
	class  *types.Class
	fields *immutable.SortedMap // string -> any
}

// New returns an object of the given class without field values.
func New(class *types.Class) *Object {
	return &Object{class: class, fields: immutable.NewSortedMap(nil)}
}

func (o *Object) Class() *types.Class { return o.class }

// Len returns the number of fields which have values.
func (o *Object) Len() int { return o.fields.Len() }

// Get returns the value of a field. The field must be defined by the object's class.
func (o *Object) Get(name string) (any, error) {
	if !o.class.HasField(name) {
		return nil, fmt.Errorf("%w: %s in %s", types.ErrFieldUndefined, name, o.class)
	}
	v, ok := o.fields.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldUnset, name)
	}
	return v, nil
}

// With returns a copy of the object where the field has the given value. The field must be
// defined by the object's class.
func (o *Object) With(name string, v any) (*Object, error) {
	if !o.class.HasField(name) {
		return nil, fmt.Errorf("%w: %s in %s", types.ErrFieldUndefined, name, o.class)
	}
	return &Object{class: o.class, fields: o.fields.Set(name, v)}, nil
}

// String prints the field values in sorted order: `point{x=1, y=2}`
func (o *Object) String() string {
	var sb strings.Builder
	if o.class.Name != "" {
		sb.WriteString(o.class.Name)
	} else {
		sb.WriteString("object")
	}
	sb.WriteByte('{')
	iter := o.fields.Iterator()
	for i := 0; !iter.Done(); i++ {
		k, v := iter.Next()
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
