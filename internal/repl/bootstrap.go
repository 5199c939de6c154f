// Package repl assembles the root environment, evaluates the
// bootstrap forms written in mal itself, and drives the read-eval-
// print loop.
package repl

import (
	"github.com/DogMillionaire/mal/internal/buildinfo"
	"github.com/DogMillionaire/mal/internal/core"
	"github.com/DogMillionaire/mal/internal/env"
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/eval"
	"github.com/DogMillionaire/mal/internal/reader"
	"github.com/DogMillionaire/mal/internal/types"
)

// bootstrapForms are evaluated, in order, against the root
// environment once the host library is installed. not and load-file
// are ordinary fn* definitions; cond is a macro. All three are given
// verbatim by the language definition rather than implemented in Go.
var bootstrapForms = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
}

// NewRootEnv builds a root Environment with the full host library,
// the eval/load-file/cond bootstrap installed, *host-language* bound,
// and *ARGV* bound to argv (script arguments beyond the file path).
func NewRootEnv(argv []string) (*env.Env, error) {
	rootEnv, err := env.NewRoot(nil, nil)
	if err != nil {
		return nil, err
	}

	for sym, val := range core.New().Bindings() {
		rootEnv.Set(sym, val)
	}

	// eval needs to re-enter the evaluator against the root
	// environment (spec: "re-enters the evaluator on it using the
	// root environment"), which a registry-built native Fn cannot
	// close over since the registry has no environment reference at
	// construction time. It is wired here instead, once rootEnv
	// exists.
	rootEnv.Set("eval", &types.Fn{
		Name: "eval",
		Native: func(args []types.Value) (types.Value, error) {
			if len(args) != 1 {
				return nil, errs.NewArity("eval", 1, len(args))
			}
			return eval.Eval(args[0], rootEnv)
		},
		Meta: types.NilValue,
	})

	rootEnv.Set("*host-language*", types.Str(buildinfo.HostLanguage))

	argvItems := make([]types.Value, len(argv))
	for i, a := range argv {
		argvItems[i] = types.Str(a)
	}
	rootEnv.Set("*ARGV*", types.NewList(argvItems...))

	for _, src := range bootstrapForms {
		ast, err := reader.ReadString(src)
		if err != nil {
			return nil, errs.Wrap(errs.KindInternal, "invalid bootstrap form", err)
		}
		if _, err := eval.Eval(ast, rootEnv); err != nil {
			return nil, errs.Wrap(errs.KindInternal, "bootstrap form failed", err)
		}
	}

	return rootEnv, nil
}
