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

// Command cat-selftest runs the self-tests documented for the primitive functions.
package main

import (
	"flag"
	"fmt"
	"os"

	cat "github.com/tangentforks/catlang"
	"github.com/tangentforks/catlang/config"
	"github.com/tangentforks/catlang/meta"
	"github.com/tangentforks/catlang/prims"
)

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func main() {
	var configPath, libraryPath string
	var verbose bool
	flag.StringVar(&configPath, "config", os.Getenv("CAT_CONFIG"),
		"Path to a YAML config file. Defaults to environment variable CAT_CONFIG.")
	flag.StringVar(&libraryPath, "library", "",
		"Path to a YAML library of function metadata. Defaults to the primitives' own library.")
	flag.BoolVar(&verbose, "v", false, "Write the programs and values of every test.")
	flag.Parse()

	opts := config.Default()
	if configPath != "" {
		var err error
		if opts, err = config.Load(configPath); err != nil {
			die("Error loading config: %v\n", err)
		}
	}
	opts = config.FromEnv(opts)
	if verbose {
		opts.VerboseTests = true
	}
	if _, err := opts.Level(); err != nil {
		die("Error in config: %v\n", err)
	}

	var lib meta.Library
	var err error
	if libraryPath != "" {
		lib, err = meta.LoadLibrary(libraryPath)
	} else {
		lib, err = prims.Library()
	}
	if err != nil {
		die("Error loading library: %v\n", err)
	}

	rt := cat.NewRuntime(opts, opts.Logger(os.Stderr))
	lex := prims.New(rt)
	lex.Document(lib)

	failed := 0
	for _, name := range lib.Names() {
		f, ok := lex.Lookup(name)
		if !ok {
			die("Unknown function %s in library\n", name)
		}
		if f.Meta() == nil {
			cat.SetMeta(f, lib[name])
		}
		results, err := rt.RunTests(f, lex, os.Stdout)
		if err != nil {
			die("Error testing %s: %v\n", name, err)
		}
		for _, r := range results {
			if !r.Passed {
				failed++
				if r.Err != nil {
					fmt.Fprintf(os.Stderr, "%s: %s: %v\n", name, r.In, r.Err)
				}
			}
		}
	}
	if failed > 0 {
		die("%d tests failed\n", failed)
	}
}
