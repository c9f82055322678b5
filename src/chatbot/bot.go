// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// bot.go - The chatbot itself. A Bot carries all session state (the
// previous input and the reply counters) and answers one line per call.

package chatbot

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/christimahu/dev/blueprints/kisa/src/phrases"
)

// Turn describes how the bot handled one line of input.
type Turn struct {
	Input string
	Mood  Mood
	Reply string
	// End is set when the session must stop after Reply is printed.
	End      bool
	Offended bool
}

// Bot answers user input from a phrase table.
type Bot struct {
	Name string

	table      *phrases.Table
	classifier *Classifier
	selector   *Selector
	previous   string
	logger     *zap.Logger
}

// Option configures a Bot.
type Option func(*Bot)

// WithLogger sets the logger used for turn tracing.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bot) {
		b.logger = l
	}
}

// WithExtendedRules appends the extended rule set after the core rules.
func WithExtendedRules() Option {
	return func(b *Bot) {
		b.classifier = NewClassifier(append(CoreRules(), ExtendedRules()...)...)
	}
}

// WithRules replaces the classifier rules entirely.
func WithRules(rules ...Rule) Option {
	return func(b *Bot) {
		b.classifier = NewClassifier(rules...)
	}
}

// NewBot returns a Bot with fresh session state. The phrase table must
// hold replies for every mood the bot can reach, plus profanity.
func NewBot(table *phrases.Table, opts ...Option) (*Bot, error) {
	b := &Bot{
		Name:       "Киса",
		table:      table,
		classifier: NewClassifier(CoreRules()...),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := table.Validate(b.requiredMoods()...); err != nil {
		return nil, fmt.Errorf("invalid phrase table: %w", err)
	}
	b.selector = NewSelector(table)
	return b, nil
}

func (b *Bot) requiredMoods() []int {
	ids := []int{int(MoodStrange), int(MoodRepeat), int(MoodProfanity)}
	for _, m := range b.classifier.Moods() {
		ids = append(ids, int(m))
	}
	return ids
}

// Banner returns the lines printed when a session starts.
func (b *Bot) Banner() []string {
	return b.table.Banner()
}

// Respond classifies one raw line and picks the reply for it.
func (b *Bot) Respond(raw string) Turn {
	input := Normalize(raw)
	mood, rule := b.classify(input)
	b.previous = input

	sel := b.selector.Select(mood)
	turn := Turn{
		Input:    input,
		Mood:     mood,
		Reply:    sel.Reply,
		Offended: sel.Offended,
		End:      sel.Offended || mood == MoodFarewell,
	}

	b.logger.Debug("Turn",
		zap.String("bot", b.Name),
		zap.String("input", input),
		zap.Stringer("mood", mood),
		zap.String("rule", rule),
		zap.Stringer("reply_mood", sel.Mood),
		zap.Int("count", sel.Count))
	return turn
}

func (b *Bot) classify(input string) (Mood, string) {
	if IsStrange(input) {
		return MoodStrange, "strange"
	}
	if input == b.previous {
		return MoodRepeat, "repeat"
	}
	if r, ok := b.classifier.Match(input); ok {
		return r.Mood, r.Name
	}
	return MoodDefault, "default"
}
