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

// Package config holds the runtime options of the interpreter core. Options are read from a
// YAML file and may be overridden by environment variables.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Options struct {
	// TypeChecking enables inference for quotations and definitions. Functions are untyped when
	// it is disabled.
	TypeChecking bool `yaml:"type_checking"`
	// VerboseInference logs every inferred type at debug level.
	VerboseInference bool `yaml:"verbose_inference"`
	// VerboseTests writes the inputs, expected values and results of every self-test.
	VerboseTests bool `yaml:"verbose_tests"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

func Default() Options {
	return Options{TypeChecking: true, LogLevel: "info"}
}

// Load reads options from a YAML file. Options missing from the file keep their defaults.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse reads options from YAML. The path is only used for error messages.
func Parse(data []byte, path string) (Options, error) {
	o := Default()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if _, err := o.Level(); err != nil {
		return Options{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return o, nil
}

// FromEnv overrides options from CAT_TYPE_CHECKING, CAT_VERBOSE_INFERENCE, CAT_VERBOSE_TESTS and
// CAT_LOG_LEVEL.
func FromEnv(o Options) Options {
	o.TypeChecking = getbool("CAT_TYPE_CHECKING", o.TypeChecking)
	o.VerboseInference = getbool("CAT_VERBOSE_INFERENCE", o.VerboseInference)
	o.VerboseTests = getbool("CAT_VERBOSE_TESTS", o.VerboseTests)
	o.LogLevel = getenv("CAT_LOG_LEVEL", o.LogLevel)
	return o
}

// Level parses LogLevel. An empty level is info.
func (o Options) Level() (slog.Level, error) {
	var level slog.Level
	if o.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(o.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", o.LogLevel)
	}
	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
func (o Options) Logger(w io.Writer) *slog.Logger {
	level, _ := o.Level()
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func getenv(key string, deflt string) string {
	v := os.Getenv(key)
	if v == "" {
		return deflt
	}
	return v
}

func getbool(key string, deflt bool) bool {
	b, err := strconv.ParseBool(getenv(key, strconv.FormatBool(deflt)))
	if err != nil {
		return deflt
	}
	return b
}
