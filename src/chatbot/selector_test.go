// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// selector_test.go - Unit tests for reply selection and the two
// exhaustion policies.

package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/christimahu/dev/blueprints/kisa/src/phrases"
)

func testTable() *phrases.Table {
	return phrases.New([]string{"banner"}, map[int][]string{
		0:  {"d1", "d2", "d3"},
		1:  {"s1", "s2"},
		2:  {"r1"},
		3:  {"n1", "n2"},
		4:  {"i1"},
		19: {"p1"},
	})
}

// Replies are used in order, one per selection.
func TestSelect_InOrder(t *testing.T) {
	s := NewSelector(testTable())

	assert.Equal(t, "d1", s.Select(MoodDefault).Reply)
	assert.Equal(t, "d2", s.Select(MoodDefault).Reply)
	assert.Equal(t, 2, s.Count(MoodDefault))
	assert.Equal(t, 0, s.Count(MoodName))
}

// Ordinary moods start over from the first reply once exhausted.
func TestSelect_NonTerminalWraps(t *testing.T) {
	s := NewSelector(testTable())

	assert.Equal(t, "n1", s.Select(MoodName).Reply)
	assert.Equal(t, "n2", s.Select(MoodName).Reply)

	sel := s.Select(MoodName)
	assert.Equal(t, "n1", sel.Reply)
	assert.Equal(t, MoodName, sel.Mood)
	assert.False(t, sel.Offended)
	assert.Equal(t, 1, s.Count(MoodName))

	assert.Equal(t, "n2", s.Select(MoodName).Reply)
}

// A terminal mood falls back to the default mood once, then gives up.
func TestSelect_TerminalOverflow(t *testing.T) {
	s := NewSelector(testTable())

	assert.Equal(t, "s1", s.Select(MoodStrange).Reply)
	assert.Equal(t, "s2", s.Select(MoodStrange).Reply)

	// K+1: default mood's reply, default counter untouched.
	sel := s.Select(MoodStrange)
	assert.Equal(t, MoodDefault, sel.Mood)
	assert.Equal(t, "d1", sel.Reply)
	assert.False(t, sel.Offended)
	assert.Equal(t, 0, s.Count(MoodDefault))
	assert.Equal(t, 3, s.Count(MoodStrange))

	// K+2: offended.
	sel = s.Select(MoodStrange)
	assert.True(t, sel.Offended)
	assert.Equal(t, "d2", sel.Reply)
	assert.Equal(t, MoodStrange, sel.Mood)
}

// The fallback reuses the default mood's current position.
func TestSelect_FallbackFollowsDefaultCounter(t *testing.T) {
	s := NewSelector(testTable())

	s.Select(MoodDefault)
	s.Select(MoodDefault)
	assert.Equal(t, "p1", s.Select(MoodProfanity).Reply)

	sel := s.Select(MoodProfanity)
	assert.Equal(t, MoodDefault, sel.Mood)
	assert.Equal(t, "d2", sel.Reply)

	assert.Equal(t, "d3", s.Select(MoodDefault).Reply)
	assert.True(t, s.Select(MoodProfanity).Offended)
}

// Counters are per mood: exhausting one mood does not affect another.
func TestSelect_IndependentCounters(t *testing.T) {
	s := NewSelector(testTable())

	assert.Equal(t, "r1", s.Select(MoodRepeat).Reply)
	assert.Equal(t, "i1", s.Select(MoodIdentity).Reply)
	assert.Equal(t, "i1", s.Select(MoodIdentity).Reply)
	assert.Equal(t, "d1", s.Select(MoodRepeat).Reply)
	assert.Equal(t, "s1", s.Select(MoodStrange).Reply)
	assert.True(t, s.Select(MoodRepeat).Offended)
}
