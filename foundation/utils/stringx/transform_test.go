// File: transform_test.go
// Title: Unit Tests for Transformations
// Description: Split, Replace, Strip, case mapping, padding and predicates.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16

package stringx

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/bstr/foundation/core/error"
	"github.com/msto63/bstr/foundation/utils/slicex"
)

func toStrings(ss []String) []string {
	return slicex.Map(ss, String.String)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		s, sep   string
		maxSplit int
		want     []string
	}{
		{"empty fields kept", "a,,b", ",", -1, []string{"a", "", "b"}},
		{"leading and trailing", ",a,", ",", -1, []string{"", "a", ""}},
		{"no separator", "abc", ",", -1, []string{"abc"}},
		{"empty input", "", ",", -1, []string{""}},
		{"multi-byte separator", "a::b::c", "::", -1, []string{"a", "b", "c"}},
		{"limited", "a,b,c", ",", 1, []string{"a", "b,c"}},
		{"zero splits", "a,b", ",", 0, []string{"a,b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := New(tt.s).SplitN(New(tt.sep), tt.maxSplit)
			if err != nil {
				t.Fatalf("SplitN: %v", err)
			}
			if diff := cmp.Diff(tt.want, toStrings(parts)); diff != "" {
				t.Errorf("SplitN mismatch (-want +got):\n%s", diff)
			}
			for _, p := range parts {
				checkTerminated(t, p)
			}
		})
	}

	if _, err := New("abc").Split(String{}); !mdwerror.HasCode(err, mdwerror.CodeEmptyDelimiter) {
		t.Errorf("empty delimiter error = %v", err)
	}
}

func TestFieldsAndLines(t *testing.T) {
	if diff := cmp.Diff([]string{"a", "b", "c"}, toStrings(New("  a b\t\n c ").Fields())); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if got := New(" \t ").Fields(); len(got) != 0 {
		t.Errorf("Fields of blanks = %q", toStrings(got))
	}

	s := New("a\nb\r\nc\rd\n")
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, toStrings(s.SplitLines(false))); diff != "" {
		t.Errorf("SplitLines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a\n", "b\r\n", "c\r", "d\n"}, toStrings(s.SplitLines(true))); diff != "" {
		t.Errorf("SplitLines(keepEnds) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "x"}, toStrings(New("\nx").SplitLines(false))); diff != "" {
		t.Errorf("leading break mismatch (-want +got):\n%s", diff)
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		s, old, repl, want string
	}{
		{"aaaa", "aa", "b", "bb"},
		{"a-b-c", "-", "--", "a--b--c"},
		{"hello world", "world", "go", "hello go"},
		{"abc", "x", "y", "abc"},
		{"abc", "b", "", "ac"},
		{"ab", "", "X", "XaXb"},
		{"", "", "X", ""},
	}
	for _, tt := range tests {
		got := New(tt.s).Replace(New(tt.old), New(tt.repl))
		if got.String() != tt.want {
			t.Errorf("Replace(%q, %q, %q) = %q, want %q", tt.s, tt.old, tt.repl, got.String(), tt.want)
		}
		checkTerminated(t, got)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		got  String
		want string
	}{
		{"Strip", New(" \t hi \n").Strip(), "hi"},
		{"LStrip", New("  hi  ").LStrip(), "hi  "},
		{"RStrip", New("  hi  ").RStrip(), "  hi"},
		{"Strip blanks", New(" \v\f ").Strip(), ""},
		{"StripChars", New("xxhixy").StripChars("xy"), "hi"},
		{"LStripChars", New("xxhixy").LStripChars("xy"), "hixy"},
		{"RStripChars", New("xxhixy").RStripChars("xy"), "xxhi"},
		{"StripChars empty set", New(" a ").StripChars(""), " a "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %q, want %q", tt.got.String(), tt.want)
			}
			checkTerminated(t, tt.got)
		})
	}

	for _, in := range []string{"", "a", "  a b  ", "\t\n", "x  "} {
		once := New(in).Strip()
		if twice := once.Strip(); !twice.Equal(once) {
			t.Errorf("Strip not idempotent for %q: %q then %q", in, once.String(), twice.String())
		}
	}
}

func TestCaseMapping(t *testing.T) {
	s := New("Hello, World! é")
	if got := s.Lower().String(); got != "hello, world! é" {
		t.Errorf("Lower() = %q", got)
	}
	if got := s.Upper().String(); got != "HELLO, WORLD! é" {
		t.Errorf("Upper() = %q", got)
	}
	if !(String{}).Upper().IsEmpty() {
		t.Error("Upper of empty not empty")
	}
	checkTerminated(t, s.Lower())
}

func TestRemovePrefixSuffix(t *testing.T) {
	s := New("prefix-body.txt")
	if got := s.RemovePrefix(New("prefix-")).String(); got != "body.txt" {
		t.Errorf("RemovePrefix = %q", got)
	}
	if got := s.RemovePrefix(New("body")).String(); got != s.String() {
		t.Errorf("RemovePrefix without match = %q", got)
	}
	if got := s.RemoveSuffix(New(".txt")).String(); got != "prefix-body" {
		t.Errorf("RemoveSuffix = %q", got)
	}
	if got := s.RemoveSuffix(String{}).String(); got != s.String() {
		t.Errorf("RemoveSuffix(empty) = %q", got)
	}
	if got := New("ab").RemovePrefix(New("ab")); !got.IsEmpty() {
		t.Errorf("RemovePrefix(whole) = %q", got.String())
	}
}

func TestJoin(t *testing.T) {
	sep := New(", ")
	if got := sep.Join(New("a"), New("b"), New("c")).String(); got != "a, b, c" {
		t.Errorf("Join = %q", got)
	}
	if got := sep.Join(); !got.IsEmpty() {
		t.Errorf("Join() = %q", got.String())
	}
	if got := New("-").Join(New("x")).String(); got != "x" {
		t.Errorf("Join single = %q", got)
	}
	if got := New("-").Join(String{}, String{}).String(); got != "-" {
		t.Errorf("Join empties = %q", got)
	}
	checkTerminated(t, sep.Join(New("a"), New("b")))
}

func TestPadding(t *testing.T) {
	s := New("ab")
	tests := []struct {
		name string
		got  String
		want string
	}{
		{"PadLeft", s.PadLeft(5, '*'), "***ab"},
		{"PadRight", s.PadRight(5, '*'), "ab***"},
		{"Center odd", s.Center(5, '*'), "*ab**"},
		{"Center even", s.Center(6, ' '), "  ab  "},
		{"narrow", s.Center(1, '*'), "ab"},
		{"exact", s.PadLeft(2, '*'), "ab"},
		{"empty", String{}.PadRight(3, '.'), "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %q, want %q", tt.got.String(), tt.want)
			}
			checkTerminated(t, tt.got)
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		s                            string
		digit, upper, lower, isSpace bool
	}{
		{"", false, false, false, false},
		{"123", true, false, false, false},
		{"12a", false, false, true, false},
		{"ABC1", false, true, false, false},
		{"AbC", false, false, false, false},
		{"abc def", false, false, true, false},
		{" \t\n", false, false, false, true},
	}
	for _, tt := range tests {
		s := New(tt.s)
		if got := s.IsDigit(); got != tt.digit {
			t.Errorf("IsDigit(%q) = %v", tt.s, got)
		}
		if got := s.IsUpper(); got != tt.upper {
			t.Errorf("IsUpper(%q) = %v", tt.s, got)
		}
		if got := s.IsLower(); got != tt.lower {
			t.Errorf("IsLower(%q) = %v", tt.s, got)
		}
		if got := s.IsSpace(); got != tt.isSpace {
			t.Errorf("IsSpace(%q) = %v", tt.s, got)
		}
	}
}
