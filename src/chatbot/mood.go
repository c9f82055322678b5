// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// mood.go - Mood identifiers. A mood selects which reply list answers a
// turn and which exhaustion policy applies to it.

package chatbot

import "strconv"

// Mood is the category a turn is classified into. The numeric values are
// the keys of the phrase table.
type Mood int

const (
	MoodDefault      Mood = 0
	MoodStrange      Mood = 1
	MoodRepeat       Mood = 2
	MoodName         Mood = 3
	MoodIdentity     Mood = 4
	MoodSmile        Mood = 5
	MoodFrown        Mood = 6
	MoodYesQuestion  Mood = 7
	MoodYes          Mood = 8
	MoodNo           Mood = 9
	MoodHello        Mood = 10
	MoodHowdy        Mood = 11
	MoodLetsGo       Mood = 12
	MoodHowAreThings Mood = 13
	MoodHowDoYouDo   Mood = 14
	MoodFarewell     Mood = 15
	MoodWhy          Mood = 16
	MoodQuestion     Mood = 17
	MoodFool         Mood = 18
	MoodProfanity    Mood = 19
	MoodArithmetic   Mood = 20
)

var moodNames = map[Mood]string{
	MoodDefault:      "default",
	MoodStrange:      "strange",
	MoodRepeat:       "repeat",
	MoodName:         "name",
	MoodIdentity:     "identity",
	MoodSmile:        "smile",
	MoodFrown:        "frown",
	MoodYesQuestion:  "yes-question",
	MoodYes:          "yes",
	MoodNo:           "no",
	MoodHello:        "hello",
	MoodHowdy:        "howdy",
	MoodLetsGo:       "lets-go",
	MoodHowAreThings: "how-are-things",
	MoodHowDoYouDo:   "how-do-you-do",
	MoodFarewell:     "farewell",
	MoodWhy:          "why",
	MoodQuestion:     "question",
	MoodFool:         "fool",
	MoodProfanity:    "profanity",
	MoodArithmetic:   "arithmetic",
}

func (m Mood) String() string {
	if name, ok := moodNames[m]; ok {
		return name
	}
	return "mood(" + strconv.Itoa(int(m)) + ")"
}

// Terminal reports whether exhausting the mood's replies ends the session
// instead of cycling back to the first reply.
func (m Mood) Terminal() bool {
	return m == MoodStrange || m == MoodRepeat || m == MoodProfanity
}
