// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// normalize.go - Input normalization and the degenerate-input filter.

package chatbot

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	minInputLength = 2
	maxRunLength   = 5
)

// Normalize trims the line and folds it to lower case.
func Normalize(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// Length counts user-perceived characters, not bytes.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// LongestRun returns the length of the longest run of identical
// consecutive characters in s.
func LongestRun(s string) int {
	longest, run := 0, 0
	last := ""
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		c := g.Str()
		if run > 0 && c == last {
			run++
		} else {
			run = 1
			last = c
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// IsStrange reports whether the normalized input is too short or mashed.
func IsStrange(s string) bool {
	return Length(s) < minInputLength || LongestRun(s) > maxRunLength
}
