package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"strings"

	"github.com/catwell/ownlisp/lisp"
	"github.com/catwell/ownlisp/parser"
	"github.com/chzyer/readline"
)

// Option configures a REPL.
type Option func(*config)

type config struct {
	historyFile string
	logger      *log.Logger
}

// WithHistoryFile makes the REPL load and save its line history at path.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

// WithLogger makes the REPL and its lisp environment log debugging
// information to l.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// RunRepl runs a simple repl until the input is exhausted.
func RunRepl(prompt string, opts ...Option) error {
	c := &config{logger: log.New(ioutil.Discard, "", 0)}
	for _, opt := range opts {
		opt(c)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     c.historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	s, err := newSession(rl.Stdout(), rl.Stderr(), c.logger)
	if err != nil {
		return err
	}
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.reset()
			rl.SetPrompt(prompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.feed([]byte(line)) {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
}

// session accumulates input lines until they form complete expressions and
// evaluates them in a single environment.
type session struct {
	env    *lisp.LEnv
	out    io.Writer
	errout io.Writer
	logger *log.Logger
	buf    []byte
}

func newSession(out, errout io.Writer, logger *log.Logger) (*session, error) {
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(out),
		lisp.WithStderr(errout),
		lisp.WithLogger(logger),
	)
	if lerr.IsError() {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", lisp.GoError(lerr))
	}
	return &session{
		env:    env,
		out:    out,
		errout: errout,
		logger: logger,
	}, nil
}

// feed adds a line of input.  Buffered input is evaluated and its value
// printed as soon as it parses.  The forms on a line are evaluated as one
// S-expression.  feed returns true when more input is needed to complete an
// expression.
func (s *session) feed(line []byte) bool {
	if len(s.buf) != 0 {
		s.buf = append(s.buf, '\n')
	}
	s.buf = append(s.buf, line...)
	if len(bytes.TrimSpace(s.buf)) == 0 {
		s.reset()
		return false
	}
	v, err := parser.ParseLine("stdin", s.buf)
	if parser.IsIncomplete(err) {
		return true
	}
	s.reset()
	if err != nil {
		fmt.Fprintln(s.errout, err)
		return false
	}
	s.logger.Printf("read %v: %v", v.Type, v)
	fmt.Fprintln(s.out, s.env.Eval(v))
	return false
}

func (s *session) reset() {
	s.buf = nil
}
