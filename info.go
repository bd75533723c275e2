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
	"bufio"
	"io"
	"strings"
)

// InfoString describes a function: its name, type, metadata and implementation.
func InfoString(f Function) string {
	var sb strings.Builder
	sb.WriteString("name:\n  " + f.Name())
	sb.WriteString("\ntype:\n  " + TypeString(f))
	if m := f.Meta(); m.Len() > 0 {
		sb.WriteString("\n" + m.String())
	}
	sb.WriteString("\nimplementation:\n  " + f.ImplString())
	return sb.String()
}

// WriteDetails writes a readable description of a function, including its tests.
func WriteDetails(w io.Writer, f Function) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Name:\n  " + f.Name() + "\n")
	bw.WriteString("Type:\n  " + TypeString(f) + "\n")
	bw.WriteString("Description:\n  " + f.Desc() + "\n")
	if m := f.Meta(); m != nil {
		for _, t := range m.Tests {
			if t.In == nil || t.Out == nil {
				continue
			}
			bw.WriteString("Test:\n")
			bw.WriteString("  input    : " + *t.In + "\n")
			bw.WriteString("  expected : " + *t.Out + "\n")
		}
	}
	bw.WriteString("Implementation:\n  " + f.ImplString() + "\n")
	return bw.Flush()
}

// WriteDefinition writes a function as a definition:
//
//	define name : type
//	{{
//	metadata
//	}}
//	{
//	  implementation
//	}
func WriteDefinition(w io.Writer, f Function) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("define " + f.Name())
	if f.Type() != nil {
		bw.WriteString(" : " + TypeString(f))
	}
	bw.WriteByte('\n')
	if m := f.Meta(); m != nil {
		bw.WriteString("{{\n" + m.String() + "\n}}\n")
	}
	bw.WriteString("{\n  " + f.ImplString() + "\n}\n")
	return bw.Flush()
}
