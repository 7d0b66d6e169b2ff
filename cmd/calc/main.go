package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/calc"
)

const usage = `usage: calc [-tocq] [-p prec] [-g name=value]... [-f file] [-e expr]...

	-p prec        precision of calculations in bits (default 64)
	-t             print tokens before evaluating
	-o             print the postfix order before evaluating
	-c             define pi and e
	-g name=value  variable definition (any number of times)
	-f file        read expressions from file, one per line
	-e expr        evaluate expr and exit (any number of times)
	-q             no prompt or history
`

const historyFile = ".calc_history"

type options struct {
	prec         uint
	tokens, post bool
	consts       bool
	quiet        bool
	given        [][2]string
	file         string
	exprs        []string
}

func main() {
	log.SetFlags(0)
	opts, err := parseFlags(os.Args)
	if err != nil {
		log.Fatal(err)
	}

	ev := calc.NewEvaluator(evalOptions(opts)...)
	for _, d := range opts.given {
		v, err := ev.EvalString(d[1])
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		ev.Scope().Assign(d[0], v)
	}

	sh := &shell{ev: ev, opts: opts, out: os.Stdout, errs: os.Stderr}
	switch {
	case len(opts.exprs) > 0:
		ok := true
		for _, src := range opts.exprs {
			ok = sh.line(src) && ok
		}
		if !ok {
			os.Exit(1)
		}
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := sh.scan(f); err != nil {
			log.Fatal(err)
		}
	default:
		if err := sh.repl(); err != nil {
			log.Fatal(err)
		}
	}
}

func parseFlags(args []string) (*options, error) {
	opts := options{prec: 64}
	flags, optind, err := getopt.Getopts(args, "p:tocg:f:e:qh")
	if err != nil {
		return nil, err
	}
	for _, f := range flags {
		switch f.Option {
		case 'p':
			p, err := strconv.ParseUint(f.Value, 10, 32)
			if err != nil || p == 0 {
				return nil, fmt.Errorf("precision %q must be a positive integer", f.Value)
			}
			opts.prec = uint(p)
		case 't':
			opts.tokens = true
		case 'o':
			opts.post = true
		case 'c':
			opts.consts = true
		case 'g':
			d := strings.SplitN(f.Value, "=", 2)
			if len(d) != 2 {
				return nil, fmt.Errorf(`variable definitions must be "name=value", not %q`, f.Value)
			}
			opts.given = append(opts.given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		case 'f':
			opts.file = f.Value
		case 'e':
			opts.exprs = append(opts.exprs, f.Value)
		case 'q':
			opts.quiet = true
		case 'h':
			fmt.Print(usage)
			os.Exit(0)
		}
	}
	if optind < len(args) {
		return nil, fmt.Errorf("unexpected argument %q\n%s", args[optind], usage)
	}
	return &opts, nil
}

func evalOptions(opts *options) []calc.Option {
	r := []calc.Option{calc.Prec(opts.prec)}
	if opts.consts {
		r = append(r, calc.Constants())
	}
	return r
}

// shell reads lines, evaluates them, and prints results.
type shell struct {
	ev   *calc.Evaluator
	opts *options
	out  io.Writer
	errs io.Writer
}

var (
	errColor   = color.New(color.FgRed)
	traceColor = color.New(color.Faint)
	boolColor  = color.New(color.FgCyan)
	strColor   = color.New(color.FgGreen)
)

// line evaluates one line of input and prints its result or error. The
// result is false if there was an error.
func (sh *shell) line(src string) bool {
	toks, err := calc.TokenizeString(src)
	if err != nil {
		errColor.Fprintln(sh.errs, err)
		return false
	}
	if sh.opts.tokens {
		for _, tok := range toks {
			traceColor.Fprintln(sh.out, tok)
		}
	}
	if sh.opts.post {
		post, err := calc.Postfix(toks)
		if err != nil {
			errColor.Fprintln(sh.errs, err)
			return false
		}
		traceColor.Fprintln(sh.out, postfixString(post))
	}
	v, err := sh.ev.Eval(toks)
	if err != nil {
		if errors.Is(err, calc.ErrNoResult) {
			return true
		}
		errColor.Fprintln(sh.errs, err)
		return false
	}
	switch v.(type) {
	case calc.Boolean:
		boolColor.Fprintln(sh.out, v)
	case calc.String:
		strColor.Fprintln(sh.out, v)
	default:
		fmt.Fprintln(sh.out, v)
	}
	return true
}

func postfixString(post []calc.Token) string {
	var b strings.Builder
	for i, tok := range post {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Source())
	}
	return b.String()
}

// scan evaluates each line of r until EOF or a line that is exactly quit.
func (sh *shell) scan(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if sc.Text() == "quit" {
			return nil
		}
		sh.line(sc.Text())
	}
	return sc.Err()
}

// repl reads lines interactively until EOF or quit.
func (sh *shell) repl() error {
	if sh.opts.quiet {
		return sh.scan(os.Stdin)
	}
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath := historyPath(); histPath != "" {
		sh.readHistory(ln, histPath)
		defer sh.writeHistory(ln, histPath)
	}

	for {
		src, err := ln.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(sh.out)
				return nil
			}
			return err
		}
		if src == "quit" {
			return nil
		}
		if strings.TrimSpace(src) != "" {
			ln.AppendHistory(src)
		}
		sh.line(src)
	}
}

// historyPath returns the path of the history file, or the empty string if
// there is no home directory to hold it.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// history is the part of a line editor that loads and saves history.
type history interface {
	ReadHistory(io.Reader) (int, error)
	WriteHistory(io.Writer) (int, error)
}

func (sh *shell) readHistory(h history, path string) {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			errColor.Fprintln(sh.errs, "reading history:", err)
		}
		return
	}
	defer f.Close()
	if _, err := h.ReadHistory(f); err != nil {
		errColor.Fprintln(sh.errs, "reading history:", err)
	}
}

func (sh *shell) writeHistory(h history, path string) {
	f, err := os.Create(path)
	if err != nil {
		errColor.Fprintln(sh.errs, "writing history:", err)
		return
	}
	if _, err := h.WriteHistory(f); err != nil {
		errColor.Fprintln(sh.errs, "writing history:", err)
	}
	if err := f.Close(); err != nil {
		errColor.Fprintln(sh.errs, "writing history:", err)
	}
}
