// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDefs(t *testing.T) {
	defs, err := parseDefs([]byte(`holidays:
  - month: 1
    day: 1
    name: جشن نوروز
  - month: 12
    day: 29
    name: ملی شدن صنعت نفت
`))
	if err != nil {
		t.Fatalf("parseDefs: %v", err)
	}
	if got, want := len(defs), 2; got != want {
		t.Fatalf("got %v holidays, want %v", got, want)
	}
	if got, want := defs[0].Name, "جشن نوروز"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDefsErrors(t *testing.T) {
	for _, tc := range []struct {
		input string
		err   string
	}{
		{"holidays: []\n", "no holidays defined"},
		{"holidays:\n  - month: 13\n    day: 1\n    name: x\n", "invalid month"},
		{"holidays:\n  - month: 1\n    day: 32\n    name: x\n", "invalid day"},
		{"holidays:\n  - month: 12\n    day: 30\n    name: x\n", "invalid day"},
		{"holidays:\n  - month: 7\n    day: 31\n    name: x\n", "invalid day"},
		{"holidays:\n  - month: 1\n    day: 1\n", "missing name"},
		{"holidays:\n  - month: 1\n    day: 1\n    name: a\n  - month: 1\n    day: 1\n    name: b\n", "duplicate"},
		{"holidays:\n  - month: 1\n    day: 1\n    name: a\n    extra: b\n", "not found"},
	} {
		_, err := parseDefs([]byte(tc.input))
		if err == nil || !strings.Contains(err.Error(), tc.err) {
			t.Errorf("%q: got %v, want error containing %q", tc.input, err, tc.err)
		}
	}
}

func TestGenerateSortsDefs(t *testing.T) {
	defs, err := parseDefs([]byte(`holidays:
  - month: 11
    day: 22
    name: پیروزی انقلاب اسلامی
  - month: 1
    day: 1
    name: جشن نوروز
`))
	if err != nil {
		t.Fatalf("parseDefs: %v", err)
	}
	src, err := generate(defs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	first := bytes.Index(src, []byte("{1, 1}"))
	second := bytes.Index(src, []byte("{11, 22}"))
	if first < 0 || second < 0 || first > second {
		t.Errorf("entries not emitted in (month, day) order:\n%s", src)
	}
}

// The checked-in table must match what the generator produces from the
// checked-in configuration.
func TestGeneratedTableUpToDate(t *testing.T) {
	config, err := os.ReadFile(filepath.Join("..", "..", "holiday", "holidays.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	defs, err := parseDefs(config)
	if err != nil {
		t.Fatalf("parseDefs: %v", err)
	}
	src, err := generate(defs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want, err := os.ReadFile(filepath.Join("..", "..", "holiday", "table.go"))
	if err != nil {
		t.Fatalf("read table: %v", err)
	}
	if !bytes.Equal(src, want) {
		t.Errorf("table.go is stale, rerun go generate ./holiday:\ngot:\n%s\nwant:\n%s", src, want)
	}
}
