// SPDX-License-Identifier: MIT

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

const archive = `Generates the shop model.

Flags: --profile=goModel, --parallelism=2
Match: lines

-- mdagen.yaml --
profile: go
-- metadata/shop.yaml --
project: shop
-- want/gen/transfer/order.go --
package transfer
type Order struct {
`

func TestParseCase(t *testing.T) {
	c, err := ParseCase("shop", txtar.Parse([]byte(archive)))
	if err != nil {
		t.Fatalf("ParseCase() error = %v", err)
	}

	if diff := cmp.Diff([]string{"--profile=goModel", "--parallelism=2"}, c.Flags); diff != "" {
		t.Errorf("Flags mismatch (-want +got):\n%s", diff)
	}
	if c.Match != MatchLines {
		t.Errorf("Match = %q, want %q", c.Match, MatchLines)
	}
	wantInput := map[string][]byte{
		"mdagen.yaml":        []byte("profile: go\n"),
		"metadata/shop.yaml": []byte("project: shop\n"),
	}
	if diff := cmp.Diff(wantInput, c.Input); diff != "" {
		t.Errorf("Input mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.Want["gen/transfer/order.go"]; !ok || len(c.Want) != 1 {
		t.Errorf("Want = %v", c.Want)
	}
}

func TestParseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		archive string
	}{
		{"no input", "-- want/a --\nx\n"},
		{"no want", "-- a --\nx\n"},
		{"duplicate input", "-- a --\nx\n-- a --\ny\n-- want/a --\nx\n"},
		{"unknown match", "Match: fuzzy\n-- a --\nx\n-- want/a --\nx\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCase(tt.name, txtar.Parse([]byte(tt.archive))); err == nil {
				t.Error("ParseCase() succeeded, want error")
			}
		})
	}
}

func TestMissingLines(t *testing.T) {
	got := []byte("package transfer\n\ntype Order struct {\n\tId    int64\n\tTotal int64\n}\n")
	tests := []struct {
		name string
		want string
		miss string
	}{
		{"in order", "package transfer\ntype Order struct {\nId int64\n", ""},
		{"blank lines ignored", "\n\ntype Order struct {\n\n}\n", ""},
		{"out of order", "Total int64\nId int64\n", "Id int64"},
		{"absent", "type Customer struct {\n", "type Customer struct {"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if miss := missingLines([]byte(tt.want), got); miss != tt.miss {
				t.Errorf("missingLines() = %q, want %q", miss, tt.miss)
			}
		})
	}
}

func TestWriteInput(t *testing.T) {
	c, err := ParseCase("shop", txtar.Parse([]byte(archive)))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := c.WriteInput(dir); err != nil {
		t.Fatalf("WriteInput() error = %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "metadata", "shop.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "project: shop\n" {
		t.Errorf("metadata/shop.yaml = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "want")); !os.IsNotExist(err) {
		t.Error("want files must not be written")
	}
}

func TestUpdateArchive(t *testing.T) {
	ar := txtar.Parse([]byte(archive))
	updated := UpdateArchive(ar, map[string][]byte{
		"stdout":                []byte("done"),
		"gen/transfer/order.go": []byte("package transfer\n"),
	})

	var names []string
	for _, f := range updated.Files {
		names = append(names, f.Name)
	}
	want := []string{"mdagen.yaml", "metadata/shop.yaml", "want/gen/transfer/order.go", "want/stdout"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if got := string(updated.Files[3].Data); got != "done\n" {
		t.Errorf("want/stdout = %q, want a trailing newline", got)
	}
}

func TestStripHeader(t *testing.T) {
	in := "// Code generated by mdagen. DO NOT EDIT.\n\npackage transfer\n// Order.\ntype Order struct{}\n"
	want := "package transfer\n// Order.\ntype Order struct{}\n"
	if got := string(StripHeader([]byte(in))); got != want {
		t.Errorf("StripHeader() = %q, want %q", got, want)
	}
}
