package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ownlisp",
	Short: "A small lisp interpreter",
	Long: `A small lisp interpreter with S-expressions, Q-expressions and
curried lambdas.  Without a subcommand an interactive REPL is started.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		replCmd.Run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// debugLogger returns the logger used for --debug output.
func debugLogger() *log.Logger {
	if debug {
		return log.New(os.Stderr, "debug: ", 0)
	}
	return log.New(ioutil.Discard, "", 0)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Log values as they are read and files as they are loaded")
}
