package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/catwell/ownlisp/lisp"
	"github.com/catwell/ownlisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [FILE|EXPR]...",
	Short: "Run lisp code",
	Long: `Run lisp code provided supplied via the command line or a file.
Files are evaluated one top-level form at a time.  An expression given with
--expression is evaluated like a line typed at the REPL.  Running stops at
the first error.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := runSources(os.Stdout, args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// source is lisp code read from a file or the command line.
type source struct {
	name  string
	forms []*lisp.LVal
}

func runReadSources(args []string) ([]source, error) {
	srcs := make([]source, len(args))
	for i, arg := range args {
		if runExpression {
			v, err := parser.ParseLine("expression", []byte(arg))
			if err != nil {
				return nil, err
			}
			srcs[i] = source{"expression", []*lisp.LVal{v}}
			continue
		}
		b, err := ioutil.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		root, err := parser.Parse(arg, b)
		if err != nil {
			return nil, err
		}
		srcs[i] = source{arg, lisp.ReadForms(root)}
	}
	return srcs, nil
}

func runSources(stdout io.Writer, args []string) error {
	srcs, err := runReadSources(args)
	if err != nil {
		return err
	}

	logger := debugLogger()
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithLogger(logger),
	)
	if lerr.IsError() {
		return lisp.GoError(lerr)
	}
	for _, src := range srcs {
		for _, form := range src.forms {
			logger.Printf("read %v: %v", form.Type, form)
			v := env.Eval(form)
			if v.IsError() {
				return fmt.Errorf("%s: %w", src.name, lisp.GoError(v))
			}
			if runPrint {
				fmt.Fprintln(stdout, v)
			}
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
