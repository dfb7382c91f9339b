// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for mdagen.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Match modes selected with a "Match: ..." line in the description.
const (
	// MatchExact compares whole files after whitespace normalization.
	MatchExact = "exact"
	// MatchLines requires every non-blank wanted line to appear in the
	// generated file, in order. Runs of spaces are not significant.
	MatchLines = "lines"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Flags contains any flags parsed from "Flags: ..." line in the description.
	Flags []string

	// Match is the comparison mode, MatchExact unless stated otherwise.
	Match string

	// Input maps relative paths (e.g., "metadata/shop/model.yaml") to the
	// files the generator reads.
	Input map[string][]byte

	// Want maps relative paths (e.g., "gen/transfer/order.go") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - Any number of input files (configuration, metadata, templates)
//   - One or more "want/<path>" files with expected output
//
// The description may contain a "Flags: flag1, flag2" line to pass flags
// to the generator and a "Match: lines" line to relax comparison.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Match:       MatchExact,
		Input:       make(map[string][]byte),
		Want:        make(map[string][]byte),
	}

	if err := c.parseDirectives(); err != nil {
		return nil, err
	}

	// Process files
	for _, f := range ar.Files {
		if relPath, ok := strings.CutPrefix(f.Name, "want/"); ok {
			c.Want[relPath] = f.Data
			continue
		}
		if _, dup := c.Input[f.Name]; dup {
			return nil, fmt.Errorf("duplicate file in archive: %q", f.Name)
		}
		c.Input[f.Name] = f.Data
	}

	if len(c.Input) == 0 {
		return nil, fmt.Errorf("missing input files in archive")
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseDirectives extracts "Flags:" and "Match:" lines from the description.
func (c *Case) parseDirectives() error {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Flags:"):
			flagStr := strings.TrimSpace(strings.TrimPrefix(line, "Flags:"))
			for _, f := range strings.Split(flagStr, ",") {
				f = strings.TrimSpace(f)
				if f != "" {
					c.Flags = append(c.Flags, f)
				}
			}
		case strings.HasPrefix(line, "Match:"):
			mode := strings.TrimSpace(strings.TrimPrefix(line, "Match:"))
			if mode != MatchExact && mode != MatchLines {
				return fmt.Errorf("unknown match mode %q", mode)
			}
			c.Match = mode
		}
	}
	return nil
}

// WriteInput stores the input files below dir.
func (c *Case) WriteInput(dir string) error {
	for name, data := range c.Input {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// GenerateFunc is a function that generates output from the case input.
// It returns a map of relative path to content.
type GenerateFunc func(input map[string][]byte, flags []string) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c.Input, c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	c.Compare(t, got)
}

// Compare reports differences between got and the wanted files.
func (c *Case) Compare(t *testing.T, got map[string][]byte) {
	t.Helper()

	// Check for missing expected files
	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	// Compare contents
	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		if c.Match == MatchLines {
			if missing := missingLines(wantContent, gotContent); missing != "" {
				t.Errorf("file %q: line %q not found in order in:\n%s", wantFile, missing, gotContent)
			}
			continue
		}

		// Normalize line endings and trailing whitespace
		wantNorm := normalizeContent(wantContent)
		gotNorm := normalizeContent(gotContent)

		if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// missingLines returns the first non-blank line of want that does not
// appear in got after the previous match, or "" when all are found.
func missingLines(want, got []byte) string {
	gotLines := strings.Split(string(got), "\n")
	next := 0
	for _, line := range strings.Split(string(want), "\n") {
		w := squash(line)
		if w == "" {
			continue
		}
		found := false
		for next < len(gotLines) {
			g := squash(gotLines[next])
			next++
			if g == w {
				found = true
				break
			}
		}
		if !found {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	// Keep comment and inputs
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, "want/") {
			result.Files = append(result.Files, f)
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}

// StripHeader removes the "Code generated by mdagen" header from generated code.
// This allows tests to compare just the meaningful code.
func StripHeader(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	var result [][]byte
	inHeader := true

	for _, line := range lines {
		lineStr := string(line)
		// Skip header lines (comments at the start)
		if inHeader {
			if strings.HasPrefix(lineStr, "//") || lineStr == "" {
				continue
			}
			inHeader = false
		}
		result = append(result, line)
	}

	return bytes.Join(result, []byte("\n"))
}
