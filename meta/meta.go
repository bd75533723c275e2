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

// Package meta reads the documentation and self-tests attached to functions.
//
// A block is YAML:
//
//	desc: duplicates the top value
//	test:
//	  - in: 1 dup
//	    out: 1 1
package meta

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTest = errors.New("invalid test")

// Test is a pair of programs which are expected to produce equal values. Both must be present.
type Test struct {
	In  *string `yaml:"in,omitempty"`
	Out *string `yaml:"out,omitempty"`
}

// Block is the metadata of a single function.
type Block struct {
	Desc  string `yaml:"desc,omitempty"`
	Tests []Test `yaml:"test,omitempty"`
	// Extra holds any other entries, which are kept for printing.
	Extra map[string]any `yaml:",inline"`
}

// Case is a validated test.
type Case struct {
	In, Out string
}

// Len returns the number of entries in the block.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	n := len(b.Tests) + len(b.Extra)
	if b.Desc != "" {
		n++
	}
	return n
}

// Cases validates and returns the tests of the block.
func (b *Block) Cases() ([]Case, error) {
	if b == nil {
		return nil, nil
	}
	cases := make([]Case, 0, len(b.Tests))
	for i, t := range b.Tests {
		switch {
		case t.In == nil:
			return nil, fmt.Errorf("%w: test %d has no input", ErrInvalidTest, i)
		case t.Out == nil:
			return nil, fmt.Errorf("%w: test %d has no expected output", ErrInvalidTest, i)
		}
		cases = append(cases, Case{In: *t.In, Out: *t.Out})
	}
	return cases, nil
}

// String prints the block as YAML.
func (b *Block) String() string {
	if b == nil {
		return ""
	}
	data, err := yaml.Marshal(b)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return strings.TrimRight(string(data), "\n")
}

// Parse reads a single block. The path is only used for error messages.
func Parse(data []byte, path string) (*Block, error) {
	var b Block
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &b, nil
}

// Library maps function names to their metadata.
type Library map[string]*Block

// Names returns the documented function names in sorted order.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseLibrary reads a YAML mapping of function names to blocks.
func ParseLibrary(data []byte, path string) (Library, error) {
	var l Library
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for name, b := range l {
		if b == nil {
			l[name] = &Block{}
		}
	}
	return l, nil
}

// LoadLibrary reads a library file.
func LoadLibrary(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading library %s: %w", path, err)
	}
	return ParseLibrary(data, path)
}
