// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// classifier.go - The mood classifier: an ordered decision list of
// pattern rules where the first match wins.

package chatbot

import (
	"regexp"
	"strings"
)

// Rule maps inputs accepted by Match to Mood.
type Rule struct {
	Name  string
	Mood  Mood
	Match func(input string) bool
}

// Classifier evaluates its rules in order. Rule order matters: a later
// rule never sees input an earlier one accepted.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier over the given rules.
func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Match returns the first rule accepting input.
func (c *Classifier) Match(input string) (Rule, bool) {
	for _, r := range c.rules {
		if r.Match(input) {
			return r, true
		}
	}
	return Rule{}, false
}

// Moods lists the moods the classifier can produce, MoodDefault included.
func (c *Classifier) Moods() []Mood {
	seen := map[Mood]bool{MoodDefault: true}
	moods := []Mood{MoodDefault}
	for _, r := range c.rules {
		if !seen[r.Mood] {
			seen[r.Mood] = true
			moods = append(moods, r.Mood)
		}
	}
	return moods
}

var namePattern = regexp.MustCompile(`как.*меня.*зовут`)

// CoreRules are always active.
func CoreRules() []Rule {
	return []Rule{
		{Name: "name", Mood: MoodName, Match: namePattern.MatchString},
		{Name: "identity", Mood: MoodIdentity, Match: func(s string) bool {
			return strings.Contains(s, "ты") && strings.Contains(s, "кто")
		}},
	}
}

var profanityStems = []string{
	"блядь", "блять", "гандон", "дура", "ебану", "ебать", "ебись", "ебля",
	"ебну", "пизда", "проститутка", "уебище", "хуйня", "шлюха",
}

// ExtendedRules cover greetings, emoticons, yes/no answers, farewells,
// profanity and arithmetic. They are meant to follow CoreRules.
func ExtendedRules() []Rule {
	return []Rule{
		{Name: "smile", Mood: MoodSmile, Match: func(s string) bool {
			return hasWord(s, ":)", ":-)")
		}},
		{Name: "frown", Mood: MoodFrown, Match: func(s string) bool {
			return hasWord(s, ":(", ":-(")
		}},
		{Name: "yes-question", Mood: MoodYesQuestion, Match: func(s string) bool {
			return hasWord(s, "да?") || hasWord(s, "да") && strings.Contains(s, "?")
		}},
		{Name: "yes", Mood: MoodYes, Match: func(s string) bool {
			return hasWord(s, "да", "да.") || hasWord(s, "да") && strings.Contains(s, "!")
		}},
		{Name: "no", Mood: MoodNo, Match: func(s string) bool {
			return hasWord(s, "нет", "нет.") || hasWord(s, "нет") && strings.Contains(s, "!")
		}},
		{Name: "hello", Mood: MoodHello, Match: func(s string) bool {
			return hasWord(s, "привет")
		}},
		{Name: "howdy", Mood: MoodHowdy, Match: func(s string) bool {
			return hasWord(s, "здорова", "здорово")
		}},
		{Name: "lets-go", Mood: MoodLetsGo, Match: func(s string) bool {
			return isOneOf(s, "давай", "давай.", "давай!")
		}},
		{Name: "how-are-things", Mood: MoodHowAreThings, Match: func(s string) bool {
			if !hasWord(s, "как") {
				return false
			}
			return containsAny(s, "дела", "жизнь") ||
				strings.Contains(s, "твое") && strings.Contains(s, "ничего")
		}},
		{Name: "how-do-you-do", Mood: MoodHowDoYouDo, Match: func(s string) bool {
			return hasWord(s, "как") && strings.Contains(s, "поживаеш")
		}},
		{Name: "farewell", Mood: MoodFarewell, Match: func(s string) bool {
			return isOneOf(s, "пока", "прощай", "до свидания", "до скорого", "бай")
		}},
		{Name: "why", Mood: MoodWhy, Match: func(s string) bool {
			return hasWord(s, "почему")
		}},
		{Name: "question", Mood: MoodQuestion, Match: func(s string) bool {
			return strings.Contains(s, "?")
		}},
		{Name: "fool", Mood: MoodFool, Match: func(s string) bool {
			return hasWord(s, "дура")
		}},
		{Name: "profanity", Mood: MoodProfanity, Match: func(s string) bool {
			return containsAny(s, profanityStems...)
		}},
		{Name: "arithmetic", Mood: MoodArithmetic, Match: func(s string) bool {
			return hasWord(s, "сколько") && strings.Contains(s, "будет") ||
				strings.Contains(s, "посчитай")
		}},
	}
}

// hasWord reports whether any whitespace-separated token equals a word.
func hasWord(s string, words ...string) bool {
	for _, tok := range strings.Fields(s) {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isOneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
