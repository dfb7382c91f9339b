// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mockGenerator is a test implementation of Generator.
type mockGenerator struct {
	name string
}

func (m *mockGenerator) Generate(_ context.Context, gc *Context) error {
	gc.Output.Add(m.name+".mock", []byte("mock content"))
	return nil
}

func mockFactory(name string) Factory {
	return func() (Generator, error) { return &mockGenerator{name: name}, nil }
}

func TestRegistry(t *testing.T) {
	// Reset registry before and after test
	Reset()
	defer Reset()

	t.Run("Register and Lookup", func(t *testing.T) {
		Register("test", mockFactory("test"))

		f, ok := Lookup("test")
		if !ok {
			t.Fatal("expected to find registered generator")
		}
		g, err := f()
		if err != nil {
			t.Fatalf("factory error = %v", err)
		}
		if g.(*mockGenerator).name != "test" {
			t.Errorf("got name %q, want %q", g.(*mockGenerator).name, "test")
		}
	})

	t.Run("Lookup nonexistent", func(t *testing.T) {
		_, ok := Lookup("nonexistent")
		if ok {
			t.Error("expected not to find nonexistent generator")
		}
	})

	t.Run("List", func(t *testing.T) {
		Reset()
		Register("zebra", mockFactory("zebra"))
		Register("alpha", mockFactory("alpha"))

		names := List()
		// Should be sorted
		if diff := cmp.Diff([]string{"alpha", "zebra"}, names); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Duplicate panics", func(t *testing.T) {
		Reset()
		Register("dup", mockFactory("dup"))

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		Register("dup", mockFactory("dup"))
	})

	t.Run("Separate registries", func(t *testing.T) {
		r := NewRegistry()
		r.Register("only", mockFactory("only"))
		if _, ok := Lookup("only"); ok {
			t.Error("private registry leaked into the default one")
		}
		if diff := cmp.Diff([]string{"only"}, r.List()); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestContext_Option(t *testing.T) {
	gc := &Context{
		Options: map[string]string{
			"package": "mypackage",
		},
	}

	if got := gc.Option("package", "default"); got != "mypackage" {
		t.Errorf("got %q, want %q", got, "mypackage")
	}

	if got := gc.Option("missing", "default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestOutput(t *testing.T) {
	t.Run("Add keeps order and replaces", func(t *testing.T) {
		out := NewOutput()
		out.Add("b/file1.go", []byte("content1"))
		out.Add("a/file2.go", []byte("content2"))
		out.Add("b/./file1.go", []byte("replaced"))

		if out.Len() != 2 {
			t.Fatalf("got %d files, want 2", out.Len())
		}
		var paths []string
		for _, f := range out.Files() {
			paths = append(paths, f.Path)
		}
		if diff := cmp.Diff([]string{"b/file1.go", "a/file2.go"}, paths); diff != "" {
			t.Errorf("Files() order mismatch (-want +got):\n%s", diff)
		}
		if got, _ := out.Get("b/file1.go"); string(got) != "replaced" {
			t.Errorf("Get() = %q, want %q", got, "replaced")
		}
	})

	t.Run("Write skips existing once-only files", func(t *testing.T) {
		dir := t.TempDir()
		existing := filepath.Join(dir, "main", "Impl.kt")
		if err := os.MkdirAll(filepath.Dir(existing), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(existing, []byte("hand written"), 0o644); err != nil {
			t.Fatal(err)
		}

		out := NewOutput()
		out.Add("generated/Order.kt", []byte("generated"))
		out.AddOnce("main/Impl.kt", []byte("skeleton"))
		out.AddOnce("main/Other.kt", []byte("skeleton"))

		written, err := out.Write(dir)
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if diff := cmp.Diff([]string{"generated/Order.kt", "main/Other.kt"}, written); diff != "" {
			t.Errorf("Write() mismatch (-want +got):\n%s", diff)
		}
		got, err := os.ReadFile(existing)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "hand written" {
			t.Errorf("existing file overwritten: %q", got)
		}
	})
}
