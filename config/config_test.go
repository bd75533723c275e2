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

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	o, err := Parse([]byte("verbose_tests: true\nlog_level: debug\n"), "cat.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !o.TypeChecking || !o.VerboseTests || o.VerboseInference {
		t.Fatalf("options: %+v", o)
	}
	if level, _ := o.Level(); level != slog.LevelDebug {
		t.Fatalf("level: %v", level)
	}
	if _, err := Parse([]byte("log_level: loud\n"), "cat.yaml"); err == nil {
		t.Fatal("expected invalid log level to fail")
	}
	if _, err := Parse([]byte("type_checking: [\n"), "cat.yaml"); err == nil || !strings.Contains(err.Error(), "cat.yaml") {
		t.Fatalf("expected parse error, found %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.yaml")
	if err := os.WriteFile(path, []byte("type_checking: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if o.TypeChecking || o.LogLevel != "info" {
		t.Fatalf("options: %+v", o)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CAT_TYPE_CHECKING", "false")
	t.Setenv("CAT_VERBOSE_INFERENCE", "1")
	t.Setenv("CAT_VERBOSE_TESTS", "not a bool")
	t.Setenv("CAT_LOG_LEVEL", "warn")
	o := FromEnv(Default())
	if o.TypeChecking || !o.VerboseInference || o.VerboseTests || o.LogLevel != "warn" {
		t.Fatalf("options: %+v", o)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	o := Default()
	o.LogLevel = "warn"
	log := o.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", slog.String("function", "dup"))
	if s := buf.String(); strings.Contains(s, "hidden") || !strings.Contains(s, "function=dup") {
		t.Fatalf("log: %s", s)
	}
}
