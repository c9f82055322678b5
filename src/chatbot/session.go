// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// session.go - The read-eval-print loop that drives a Bot over a pair of
// streams, one line per turn.

package chatbot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Prompt is printed before every read.
const Prompt = ">> "

// Outcome says why a session ended.
type Outcome int

const (
	OutcomeEOF Outcome = iota
	OutcomeOffended
	OutcomeFarewell
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOffended:
		return "offended"
	case OutcomeFarewell:
		return "farewell"
	default:
		return "eof"
	}
}

// Run chats until input ends or the bot ends the session. Read failures
// count as end of input; only write failures are returned.
func (b *Bot) Run(in io.Reader, out io.Writer) (Outcome, error) {
	w := bufio.NewWriter(out)
	outcome, err := b.run(in, w)
	if ferr := w.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("failed to write reply: %w", ferr)
	}
	if err == nil {
		b.logger.Info("Session ended", zap.Stringer("outcome", outcome))
	}
	return outcome, err
}

func (b *Bot) run(in io.Reader, w *bufio.Writer) (Outcome, error) {
	for _, line := range b.Banner() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return OutcomeEOF, err
		}
	}

	r := bufio.NewReader(in)
	for {
		if _, err := w.WriteString(Prompt); err != nil {
			return OutcomeEOF, err
		}
		// Flush so the prompt shows before a blocking read.
		if err := w.Flush(); err != nil {
			return OutcomeEOF, err
		}
		// Lines have no length limit; a final line without a newline still
		// gets a reply.
		line, rerr := r.ReadString('\n')
		if rerr != nil && line == "" {
			if rerr != io.EOF {
				b.logger.Debug("Read failed", zap.Error(rerr))
			}
			_, err := fmt.Fprintln(w)
			return OutcomeEOF, err
		}

		turn := b.Respond(strings.TrimRight(line, "\r\n"))
		if _, err := fmt.Fprintln(w, turn.Reply); err != nil {
			return OutcomeEOF, err
		}
		if turn.End {
			if turn.Offended {
				return OutcomeOffended, nil
			}
			return OutcomeFarewell, nil
		}
	}
}
