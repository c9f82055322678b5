// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// selector.go - Reply selection. Each mood keeps a usage counter that
// walks its reply list; what happens past the end depends on the mood.

package chatbot

import "github.com/christimahu/dev/blueprints/kisa/src/phrases"

// Selection is the outcome of picking a reply for one turn.
type Selection struct {
	// Mood is the mood whose list the reply came from. It differs from the
	// requested mood when a terminal mood overflowed for the first time.
	Mood     Mood
	Reply    string
	Count    int
	Offended bool
}

// Selector owns the per-mood usage counters of one session.
type Selector struct {
	table  *phrases.Table
	counts map[Mood]int
}

// NewSelector returns a selector with every counter at zero.
func NewSelector(table *phrases.Table) *Selector {
	return &Selector{table: table, counts: make(map[Mood]int)}
}

// Count returns how many times a mood has been selected, after wrapping.
func (s *Selector) Count(m Mood) int {
	return s.counts[m]
}

// Select advances the counter of m and returns the reply to print.
//
// Non-terminal moods wrap back to their first reply once exhausted.
// Terminal moods fall back to the default mood on the first overflow and
// end the session with the offended message on any later one. The
// overflowed counter is left as is so the two cases can be told apart.
func (s *Selector) Select(m Mood) Selection {
	s.counts[m]++
	n := s.counts[m]
	available := s.table.Count(int(m))

	if n > available {
		if !m.Terminal() {
			s.counts[m] = 1
			n = 1
		} else if n == available+1 {
			// Reuse the default mood's current reply without advancing it.
			n = max(s.counts[MoodDefault], 1)
			return Selection{
				Mood:  MoodDefault,
				Reply: s.table.Reply(int(MoodDefault), n),
				Count: n,
			}
		} else {
			return Selection{Mood: m, Reply: s.table.Offended(), Count: n, Offended: true}
		}
	}
	return Selection{Mood: m, Reply: s.table.Reply(int(m), n), Count: n}
}
