// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// phrases.go - The phrase table: banner lines plus an ordered reply list
// per mood, loaded from YAML and validated once at startup.

package phrases

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// OffendedIndex is the 1-based position in the mood 0 list of the
// message printed when a session ends in offence.
const OffendedIndex = 2

var (
	ErrEmptyBanner     = errors.New("phrase table has no banner")
	ErrMissingMood     = errors.New("phrase table is missing a mood")
	ErrNoOffendedReply = errors.New("phrase table has no offended reply")
)

// document is the on-disk YAML layout.
type document struct {
	Banner []string         `yaml:"banner"`
	Moods  map[int][]string `yaml:"moods"`
}

// Table maps mood identifiers to their replies. It is immutable once built.
type Table struct {
	banner []string
	moods  map[int][]string
}

// New builds a table from in-memory data. The inputs are copied.
func New(banner []string, moods map[int][]string) *Table {
	t := &Table{
		banner: append([]string(nil), banner...),
		moods:  make(map[int][]string, len(moods)),
	}
	for id, replies := range moods {
		t.moods[id] = append([]string(nil), replies...)
	}
	return t
}

// Default returns the table embedded in the binary.
func Default() (*Table, error) {
	t, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded phrase table: %w", err)
	}
	return t, nil
}

// Load reads a phrase table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read phrase table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML phrase table.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse phrase table: %w", err)
	}
	return New(doc.Banner, doc.Moods), nil
}

// Banner returns the startup lines.
func (t *Table) Banner() []string {
	return append([]string(nil), t.banner...)
}

// Reply returns the reply at 1-based position n for a mood.
func (t *Table) Reply(id, n int) string {
	replies := t.moods[id]
	if n < 1 || n > len(replies) {
		return ""
	}
	return replies[n-1]
}

// Count returns the number of replies registered for a mood.
func (t *Table) Count(id int) int {
	return len(t.moods[id])
}

// Moods returns the mood identifiers present in the table, sorted.
func (t *Table) Moods() []int {
	ids := make([]int, 0, len(t.moods))
	for id := range t.moods {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Validate checks that the table can serve every required mood. Mood 0
// must also carry the offended message.
func (t *Table) Validate(required ...int) error {
	if len(t.banner) == 0 {
		return ErrEmptyBanner
	}
	for _, id := range required {
		replies := t.moods[id]
		if len(replies) == 0 {
			return fmt.Errorf("%w: %d", ErrMissingMood, id)
		}
		for i, r := range replies {
			if strings.TrimSpace(r) == "" {
				return fmt.Errorf("mood %d reply %d is blank", id, i+1)
			}
		}
	}
	if len(t.moods[0]) < OffendedIndex {
		return ErrNoOffendedReply
	}
	return nil
}

// Offended returns the message printed when a session ends in offence.
func (t *Table) Offended() string {
	return t.Reply(0, OffendedIndex)
}
