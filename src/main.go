// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// main.go - Entry point for the Kisa chat application. Wires the phrase
// table, logger and chatbot together behind a cobra command line.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/christimahu/dev/blueprints/kisa/src/chatbot"
	"github.com/christimahu/dev/blueprints/kisa/src/phrases"
)

// phrasesEnv names the phrase table file when --phrases is not given.
const phrasesEnv = "KISA_PHRASES"

type options struct {
	phrasesPath string
	extended    bool
	verbose     bool
	logger      *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "kisa",
		Short: "Kisa, an offline chat toy",
		Long: `Kisa answers each line you type with a canned reply picked by mood.

Repeating yourself, mashing the keyboard or swearing uses up Kisa's
patience; push it too far and she leaves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.phrasesPath, "phrases", "p", "", "Phrase table YAML file (or set "+phrasesEnv+" env; default: built in)")
	root.PersistentFlags().BoolVar(&opts.extended, "extended", false, "Enable greeting, farewell, emoticon and profanity rules")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newCheckCmd(opts))
	return root
}

// newCheckCmd validates a phrase table without starting a chat.
func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the phrase table and list replies per mood",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(opts.phrasesPath)
			if err != nil {
				return err
			}
			if _, err := chatbot.NewBot(table, botOptions(opts)...); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range table.Moods() {
				fmt.Fprintf(out, "%2d  %-15s %d\n", id, chatbot.Mood(id), table.Count(id))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}

func runChat(cmd *cobra.Command, opts *options) error {
	table, err := loadTable(opts.phrasesPath)
	if err != nil {
		return err
	}
	bot, err := chatbot.NewBot(table, botOptions(opts)...)
	if err != nil {
		return err
	}

	opts.logger.Debug("Starting session", zap.Bool("extended", opts.extended))
	_, err = bot.Run(cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}

func botOptions(opts *options) []chatbot.Option {
	botOpts := []chatbot.Option{chatbot.WithLogger(opts.logger)}
	if opts.extended {
		botOpts = append(botOpts, chatbot.WithExtendedRules())
	}
	return botOpts
}

// loadTable reads the phrase table from path, the environment, or the
// copy built into the binary, in that order.
func loadTable(path string) (*phrases.Table, error) {
	if path == "" {
		path = os.Getenv(phrasesEnv)
	}
	if path == "" {
		return phrases.Default()
	}
	return phrases.Load(path)
}

// newLogger writes JSON logs to w. Only warnings and above are shown
// unless verbose is set, so the chat transcript stays readable.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
