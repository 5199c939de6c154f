package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/DogMillionaire/mal/internal/env"
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/eval"
	"github.com/DogMillionaire/mal/internal/printer"
	"github.com/DogMillionaire/mal/internal/reader"
	"github.com/DogMillionaire/mal/internal/types"
)

// RunFile evaluates (load-file path) against rootEnv: script mode per
// the CLI contract (spec §6). When debug is set, it writes the
// evaluation wall-clock time, and the failing MalError's Kind, to
// os.Stderr, as Run does for each REPL line.
func RunFile(rootEnv *env.Env, path string, debug bool) error {
	form := types.NewList(types.Sym("load-file"), types.Str(path))
	start := time.Now()
	_, err := eval.Eval(form, rootEnv)
	if debug {
		fmt.Fprintf(os.Stderr, "[debug] load-file %s took %s\n", path, time.Since(start))
		if err != nil {
			fmt.Fprintf(os.Stderr, "[debug] error kind=%s\n", errKind(err))
		}
	}
	return err
}

const prompt = "user> "

// Run drives the interactive read-eval-print loop: read one line from
// in, evaluate it against rootEnv, print the readable result (or an
// ERROR line) to out, and persist the line to history. It returns on
// EOF. When debug is set, each form's evaluation time and, on error,
// its MalError Kind are written to os.Stderr.
func Run(rootEnv *env.Env, in io.Reader, out io.Writer, hist *History, debug bool) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return nil
		}
		line := scanner.Text()
		if hist != nil {
			_ = hist.Append(line)
		}
		rep(rootEnv, line, out, debug)
	}
}

func rep(rootEnv *env.Env, line string, out io.Writer, debug bool) {
	ast, err := reader.ReadString(line)
	if err == reader.ErrNoForm {
		return
	}
	if err != nil {
		fmt.Fprintf(out, "ERROR: %s\n", err)
		return
	}
	start := time.Now()
	result, err := eval.Eval(ast, rootEnv)
	if debug {
		fmt.Fprintf(os.Stderr, "[debug] eval %q took %s\n", line, time.Since(start))
	}
	if err != nil {
		fmt.Fprintf(out, "ERROR: %s\n", err)
		if debug {
			fmt.Fprintf(os.Stderr, "[debug] error kind=%s\n", errKind(err))
		}
		return
	}
	fmt.Fprintln(out, printer.PrStr(result))
}

func errKind(err error) errs.Kind {
	if me, ok := err.(*errs.MalError); ok {
		return me.Kind
	}
	return errs.KindInternal
}
