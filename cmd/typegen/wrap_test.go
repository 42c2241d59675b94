package main

import "testing"

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		sep   string
		width int
		want  string
	}{
		{"fits", []string{"aa", "bb"}, " ", 80, "aa bb"},
		{"breaks at space", []string{"aa", "bb", "cc"}, " ", 5, "aa bb\ncc"},
		{"no width", []string{"aa", "bb", "cc"}, " ", 0, "aa bb cc"},
		{"no space", []string{"abc", "def"}, "", 4, "abcd\nef"},
		{"newline in word", []string{"one\n", "two"}, " ", 80, "one\ntwo"},
		{"long word", []string{"abcdefgh", "x"}, " ", 4, "abcd\nefgh\nx"},
		{"wide runes", []string{"日本", "語"}, " ", 5, "日本\n語"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapWords(tt.words, tt.sep, tt.width); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
