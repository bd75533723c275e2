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
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
)

// TestResult is the outcome of a single self-test.
type TestResult struct {
	Name    string
	In, Out string
	Got     any
	Want    any
	Passed  bool
	// Err is set when either program could not be compiled or evaluated.
	Err error
}

const (
	colorPass  = "\x1b[32m"
	colorFail  = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// RunTests runs the self-tests in the metadata of f. The input and expected output of every
// test are compiled and evaluated as independent programs, which must each leave a single
// value; the values are compared with Equal. A line is written to w for every test, and in
// verbose mode the programs and values as well.
//
// Failing tests are reported in the results. An error is only returned when the metadata holds
// an invalid test.
func (rt *Runtime) RunTests(f Function, c Compiler, w io.Writer) ([]TestResult, error) {
	cases, err := f.Meta().Cases()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}
	color := isTerminal(w)
	verbose := rt.Config.VerboseTests
	results := make([]TestResult, 0, len(cases))
	for _, tc := range cases {
		r := TestResult{Name: f.Name(), In: tc.In, Out: tc.Out}
		if verbose {
			fmt.Fprintf(w, "\nTesting %s\ninput: %s\nexpected: %s\n", r.Name, r.In, r.Out)
		}
		r.Got, r.Err = evalProgram(c, tc.In)
		if r.Err == nil {
			r.Want, r.Err = evalProgram(c, tc.Out)
		}
		if r.Err == nil {
			r.Passed, r.Err = Equal(r.Got, r.Want)
		}
		if verbose {
			if r.Err != nil {
				fmt.Fprintf(w, "error: %v\n", r.Err)
			} else {
				fmt.Fprintf(w, "%s\n%s\n", Format(r.Got), Format(r.Want))
			}
		}

		status, code := "SUCCEEDED", colorPass
		if !r.Passed {
			status, code = "FAILED", colorFail
		}
		if color {
			status = code + status + colorReset
		}
		fmt.Fprintf(w, "testing %s %s\n", r.Name, status)
		results = append(results, r)
	}
	return results, nil
}

// evalProgram evaluates a program against an empty stack and returns the single value it leaves.
func evalProgram(c Compiler, src string) (any, error) {
	fs, err := c.Compile(src)
	if err != nil {
		return nil, err
	}
	return Invoke(NewQuotedFunction(fs, nil))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
