// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// normalize_test.go - Unit tests for normalization and the degenerate
// input filter, including multi-byte text.

package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Input is trimmed and case-folded, Cyrillic included.
func TestNormalize(t *testing.T) {
	assert.Equal(t, "как меня зовут", Normalize("  КАК Меня ЗОВУТ \n"))
	assert.Equal(t, "hello", Normalize("\tHeLLo"))
	assert.Equal(t, "", Normalize("   "))
}

// Runs are counted per character, so multi-byte letters are not split.
func TestLongestRun(t *testing.T) {
	cases := map[string]int{
		"":        0,
		"a":       1,
		"aab":     2,
		"абвввв":  4,
		"ааааа":   5,
		"ооооооо": 7,
		"abab":    1,
	}
	for input, want := range cases {
		assert.Equal(t, want, LongestRun(input), "input %q", input)
	}
	assert.Equal(t, 3, LongestRun("e\u0301e\u0301e\u0301"))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, Length(""))
	assert.Equal(t, 1, Length("я"))
	assert.Equal(t, 6, Length("привет"))
	assert.Equal(t, 1, Length("e\u0301"))
}

// Short input and long runs of one character are strange.
func TestIsStrange(t *testing.T) {
	assert.True(t, IsStrange(""))
	assert.True(t, IsStrange("a"))
	assert.True(t, IsStrange("я"))
	assert.True(t, IsStrange("аааааа"))
	assert.True(t, IsStrange("привееееееет"))
	assert.True(t, IsStrange("кто ты !!!!!!"))

	assert.False(t, IsStrange("ok"))
	assert.False(t, IsStrange("ааааа"))
	assert.False(t, IsStrange("кто ты"))
}
