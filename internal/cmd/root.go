package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/lcat/internal/app"
)

var opts app.Options

// rootCmd streams, filters, and colorizes logcat output. Positional
// arguments replace the default producer command.
var rootCmd = &cobra.Command{
	Use:   "lcat [producer command...]",
	Short: "lcat — colorized logcat viewer",
	Long: `lcat streams logcat brief-format lines from a producer process
(adb logcat -v brief by default), a file, or standard input, filters them
by severity and tag/message regex patterns, and prints them with aligned,
color-coded columns.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if len(args) > 0 {
			opts.Command = args
		}
		return app.Run(ctx, opts)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lcat: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Input, "input", "i", "", "read from a log file instead of spawning a producer (- for stdin)")
	flags.IntVarP(&opts.Tail, "tail", "n", 0, "with --input: only the last N lines")
	flags.StringVarP(&opts.Output, "output", "o", "", "append formatted output to this file as well")
	flags.StringVarP(&opts.MinLevel, "level", "l", "", "minimum severity: verbose, debug, info, warn, error (default debug)")
	flags.StringArrayVarP(&opts.TagInclude, "tag", "t", nil, "only show records whose tag matches this regex (repeatable)")
	flags.StringArrayVarP(&opts.TagExclude, "ignore-tag", "T", nil, "hide records whose tag matches this regex (repeatable)")
	flags.StringArrayVarP(&opts.MsgInclude, "grep", "g", nil, "only show records whose message matches this regex (repeatable)")
	flags.StringArrayVarP(&opts.MsgExclude, "ignore-grep", "G", nil, "hide records whose message matches this regex (repeatable)")
	flags.BoolVarP(&opts.Wrap, "wrap", "w", true, "wrap messages to the terminal width")
	flags.BoolVar(&opts.KeepUnparsable, "keep-unparsable", false, "echo lines that do not match the logcat grammar")
}
