// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package e2e provides end-to-end tests for the mdagen CLI.
package e2e

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/mdagen/internal/testutil"
)

// fullTag embeds every generator family.
const fullTag = "mdagen_full"

var (
	binary string                                              // path to built mdagen binary
	update = flag.Bool("update", false, "update golden files")
)

func TestMain(m *testing.M) {
	flag.Parse()

	// Build the mdagen binary to a temp location.
	tmpDir, err := os.MkdirTemp("", "mdagen-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binary = filepath.Join(tmpDir, "mdagen")
	if err := buildBinary(context.Background(), binary); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build binary: %v\n", err)
		os.RemoveAll(tmpDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// buildBinary builds the full mdagen binary to the specified path.
func buildBinary(ctx context.Context, outputPath string) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	moduleRoot, err := findModuleRoot()
	if err != nil {
		return fmt.Errorf("find module root: %w", err)
	}

	cmd := exec.CommandContext(ctx, "go", "build", "-tags", fullTag, "-o", outputPath, "./cmd/mdagen")
	cmd.Dir = moduleRoot

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w: %s", err, stderr.String())
	}
	return nil
}

// findModuleRoot finds the root of the Go module by looking for go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

// TestE2E runs every testdata/*.txtar case. The archive holds the project
// (mdagen.yaml, metadata, descriptors, templates) and the wanted files,
// relative to the project directory. A "want/stdout" file checks the
// command output.
func TestE2E(t *testing.T) {
	for _, c := range testutil.LoadTestCases(t, "testdata") {
		t.Run(c.Name, func(t *testing.T) {
			runTestCase(t, c)
		})
	}
}

func runTestCase(t *testing.T, c *testutil.Case) {
	t.Helper()

	dir := t.TempDir()
	if err := c.WriteInput(dir); err != nil {
		t.Fatalf("write input: %v", err)
	}

	args := append([]string{"generate", "-C", dir, "--no-color"}, c.Flags...)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Logf("command: %s %s", binary, strings.Join(args, " "))
		t.Logf("stderr: %s", stderr.String())
		t.Fatalf("command failed: %v", err)
	}

	got, err := collectOutput(dir, c.Input)
	if err != nil {
		t.Fatalf("collect output: %v", err)
	}
	if _, ok := c.Want["stdout"]; ok {
		got["stdout"] = stdout.Bytes()
	}

	if *update {
		if c.Match != testutil.MatchExact {
			t.Skipf("%s matches lines; edit it by hand", c.Name)
		}
		file := filepath.Join("testdata", c.Name+".txtar")
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse txtar: %v", err)
		}
		if err := os.WriteFile(file, testutil.FormatArchive(testutil.UpdateArchive(ar, got)), 0o644); err != nil {
			t.Fatalf("write updated file: %v", err)
		}
		t.Logf("updated %s", file)
		return
	}

	c.Compare(t, got)
}

// collectOutput returns every file below dir that is not an input, keyed
// by its slash-separated relative path.
func collectOutput(dir string, input map[string][]byte) (map[string][]byte, error) {
	got := make(map[string][]byte)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if _, ok := input[rel]; ok {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		got[rel] = data
		return nil
	})
	return got, err
}
