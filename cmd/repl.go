package cmd

import (
	"fmt"
	"os"

	"github.com/catwell/ownlisp/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt  string
	replHistory string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive lisp session",
	Long: `Start an interactive lisp session.  Each line is evaluated as one
expression and its value is printed.  Lines with unbalanced brackets are
continued on the next line.  Press Ctrl-C to discard input and Ctrl-D to exit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := []repl.Option{repl.WithLogger(debugLogger())}
		if replHistory != "" {
			opts = append(opts, repl.WithHistoryFile(replHistory))
		}
		err := repl.RunRepl(replPrompt, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	// Flags are persistent so that running without a subcommand accepts them.
	rootCmd.PersistentFlags().StringVar(&replPrompt, "prompt", "lispy> ",
		"Prompt displayed for each line of input")
	rootCmd.PersistentFlags().StringVar(&replHistory, "history", "",
		"File used to load and save line history")
}
