package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{65535, "65,535"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestTOMLHelpers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	type section struct {
		Size int    `toml:"size"`
		Name string `toml:"name"`
	}
	in := struct {
		Main section `toml:"main"`
	}{Main: section{Size: 3, Name: "x"}}

	if err := SaveTOMLFile(in, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sec, ok := ExtractSection(data, "main")
	if !ok {
		t.Fatalf("missing section in %v", data)
	}
	if n, ok := ExtractInt64(sec, "size"); !ok || n != 3 {
		t.Errorf("expected size 3, got %d (%v)", n, ok)
	}
	if s, ok := ExtractString(sec, "name"); !ok || s != "x" {
		t.Errorf("expected name x, got %q (%v)", s, ok)
	}
	if _, ok := ExtractInt64(sec, "name"); ok {
		t.Errorf("string value must not extract as int")
	}
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	result := CheckDirStatus(dir)
	if !result.Exists || !result.Writable || result.Error != nil {
		t.Errorf("expected writable new dir, got %+v", result)
	}
	if !FileExists(dir) {
		t.Errorf("dir was not created")
	}
	if FileExists(filepath.Join(dir, ".write_test")) {
		t.Errorf("write probe must be removed")
	}
}

func TestIsTerminalOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if IsTerminal(r) {
		t.Errorf("a pipe is not a terminal")
	}
}
