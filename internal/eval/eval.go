// Package eval implements the EVAL trampoline: special-form dispatch,
// tail-call optimisation, macro expansion, quasiquote rewriting and
// try*/catch* exception handling (spec 4.4).
package eval

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/DogMillionaire/mal/internal/env"
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/types"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Eval is the kernel procedure. Tail positions are implemented by
// reassigning ast/env and looping rather than recursing, so that
// mutually tail-recursive user code runs in bounded Go stack (spec
// 4.4.4).
func Eval(ast types.Value, e *env.Env) (types.Value, error) {
	for {
		list, ok := ast.(*types.List)
		if !ok {
			return evalAST(ast, e)
		}

		expanded, err := macroExpand(ast, e)
		if err != nil {
			return nil, err
		}
		list, ok = expanded.(*types.List)
		if !ok {
			return evalAST(expanded, e)
		}
		if len(list.Items) == 0 {
			return list, nil
		}

		if sym, ok := list.Items[0].(types.Sym); ok {
			if handled, result, nextAst, nextEnv, err, isTail := specialForm(sym, list, e); handled {
				if err != nil {
					return nil, err
				}
				if !isTail {
					return result, nil
				}
				ast, e = nextAst, nextEnv
				continue
			}
		}

		// Function call: evaluate head and args, then either invoke the
		// native callback directly or TCO into the interpreted body.
		evaluated, err := evalAST(list, e)
		if err != nil {
			return nil, err
		}
		evalList := evaluated.(*types.List)
		fn, ok := evalList.Items[0].(*types.Fn)
		if !ok {
			return nil, errs.Newf(errs.KindType, "cannot call a non-function value: %s", summarize(evalList.Items[0]))
		}
		args := evalList.Items[1:]
		if fn.IsNative() {
			return fn.Native(args)
		}
		closureEnv, ok := fn.Env.(*env.Env)
		if !ok {
			return nil, errs.New(errs.KindInternal, "closure captured a non-concrete environment")
		}
		child, err := env.NewWithOuter(fn.Params, args, closureEnv)
		if err != nil {
			return nil, err
		}
		ast, e = fn.Body, child
	}
}

// Apply invokes fn with already-evaluated args. Unlike the tail call
// performed inside the main loop above, this fully resolves the call
// and returns its result — used by host functions (apply, map, swap!,
// macro expansion) that are not themselves in tail position.
func Apply(fn *types.Fn, args []types.Value) (types.Value, error) {
	if fn.IsNative() {
		return fn.Native(args)
	}
	closureEnv, ok := fn.Env.(*env.Env)
	if !ok {
		return nil, errs.New(errs.KindInternal, "closure captured a non-concrete environment")
	}
	child, err := env.NewWithOuter(fn.Params, args, closureEnv)
	if err != nil {
		return nil, err
	}
	return Eval(fn.Body, child)
}

// specialForm dispatches a List whose head is a special-form Sym. The
// six return values let the caller either take the already-computed
// result (isTail=false) or continue the trampoline with a new
// ast/env (isTail=true); handled is false when sym names an ordinary
// function call instead of a special form.
func specialForm(sym types.Sym, list *types.List, e *env.Env) (handled bool, result types.Value, nextAst types.Value, nextEnv *env.Env, err error, isTail bool) {
	switch sym {
	case "def!":
		v, err := requireArity(list, 3, "def!")
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		name, ok := v[1].(types.Sym)
		if !ok {
			return true, nil, nil, nil, errs.NewType("def!", "Sym", v[1]), false
		}
		val, err := Eval(v[2], e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		e.Set(name, val)
		return true, val, nil, nil, nil, false

	case "defmacro!":
		v, err := requireArity(list, 3, "defmacro!")
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		name, ok := v[1].(types.Sym)
		if !ok {
			return true, nil, nil, nil, errs.NewType("defmacro!", "Sym", v[1]), false
		}
		val, err := Eval(v[2], e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		fn, ok := val.(*types.Fn)
		if !ok {
			return true, nil, nil, nil, errs.NewType("defmacro!", "Fn", val), false
		}
		macro := *fn
		macro.IsMacro = true
		macro.Name = string(name)
		e.Set(name, &macro)
		return true, &macro, nil, nil, nil, false

	case "let*":
		v, err := requireArity(list, 3, "let*")
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		pairs, err := bindingPairs(v[1])
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		child, err := env.NewWithOuter(nil, nil, e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		for i := 0; i < len(pairs); i += 2 {
			sym, ok := pairs[i].(types.Sym)
			if !ok {
				return true, nil, nil, nil, errs.NewType("let*", "Sym", pairs[i]), false
			}
			val, err := Eval(pairs[i+1], child)
			if err != nil {
				return true, nil, nil, nil, err, false
			}
			child.Set(sym, val)
		}
		return true, nil, v[2], child, nil, true

	case "if":
		if len(list.Items) < 3 || len(list.Items) > 4 {
			return true, nil, nil, nil, errs.NewArity("if", 3, len(list.Items)-1), false
		}
		cond, err := Eval(list.Items[1], e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		if types.IsTruthy(cond) {
			return true, nil, list.Items[2], e, nil, true
		}
		if len(list.Items) == 4 {
			return true, nil, list.Items[3], e, nil, true
		}
		return true, types.NilValue, nil, nil, nil, false

	case "do":
		body := list.Items[1:]
		if len(body) == 0 {
			return true, types.NilValue, nil, nil, nil, false
		}
		for _, expr := range body[:len(body)-1] {
			if _, err := Eval(expr, e); err != nil {
				return true, nil, nil, nil, err, false
			}
		}
		return true, nil, body[len(body)-1], e, nil, true

	case "fn*":
		v, err := requireArity(list, 3, "fn*")
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		params, err := symParams(v[1])
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		fn := &types.Fn{Params: params, Body: v[2], Env: e, Meta: types.NilValue}
		return true, fn, nil, nil, nil, false

	case "quote":
		v, err := requireArity(list, 2, "quote")
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		return true, v[1], nil, nil, nil, false

	case "quasiquote":
		v, err := requireArity(list, 2, "quasiquote")
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		return true, nil, quasiquote(v[1]), e, nil, true

	case "quasiquoteexpand":
		v, err := requireArity(list, 2, "quasiquoteexpand")
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		return true, quasiquote(v[1]), nil, nil, nil, false

	case "macroexpand":
		v, err := requireArity(list, 2, "macroexpand")
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		expanded, err := macroExpand(v[1], e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		return true, expanded, nil, nil, nil, false

	case "try*":
		result, err := evalTry(list, e)
		return true, result, nil, nil, err, false
	}

	return false, nil, nil, nil, nil, false
}

func evalTry(list *types.List, e *env.Env) (types.Value, error) {
	if len(list.Items) < 2 {
		return nil, errs.NewArity("try*", 1, len(list.Items)-1)
	}
	result, err := Eval(list.Items[1], e)
	if err == nil {
		return result, nil
	}
	if len(list.Items) < 3 {
		return nil, err
	}
	catchForm, ok := list.Items[2].(*types.List)
	if !ok || len(catchForm.Items) != 3 || !isHeadSym(catchForm.Items[0], "catch*") {
		return nil, err
	}
	catchSym, ok := catchForm.Items[1].(types.Sym)
	if !ok {
		return nil, errs.NewType("catch*", "Sym", catchForm.Items[1])
	}
	val := exceptionValue(err)
	child, cerr := env.NewWithOuter([]types.Sym{catchSym}, []types.Value{val}, e)
	if cerr != nil {
		return nil, cerr
	}
	return Eval(catchForm.Items[2], child)
}

// exceptionValue extracts the Value a catch* clause binds: the
// user-thrown payload for KindUser errors, or a Str built from the
// message for every other error kind (spec §7).
func exceptionValue(err error) types.Value {
	var me *errs.MalError
	if errors.As(err, &me) {
		if me.Kind == errs.KindUser && me.Value != nil {
			if v, ok := me.Value.(types.Value); ok {
				return v
			}
		}
		return types.Str(me.Message)
	}
	return types.Str(err.Error())
}

func requireArity(list *types.List, n int, name string) ([]types.Value, error) {
	if len(list.Items) != n {
		return nil, errs.NewArity(name, n-1, len(list.Items)-1)
	}
	return list.Items, nil
}

func bindingPairs(v types.Value) ([]types.Value, error) {
	seq, ok := v.(types.Seq)
	if !ok {
		return nil, errs.NewType("let*", "List or Vec of bindings", v)
	}
	items := seq.Elements()
	if len(items)%2 != 0 {
		return nil, errs.New(errs.KindType, "let*: bindings must have an even number of elements")
	}
	return items, nil
}

func symParams(v types.Value) ([]types.Sym, error) {
	seq, ok := v.(types.Seq)
	if !ok {
		return nil, errs.NewType("fn*", "List or Vec of parameter symbols", v)
	}
	items := seq.Elements()
	params := make([]types.Sym, 0, len(items))
	ampersands := 0
	for i, item := range items {
		sym, ok := item.(types.Sym)
		if !ok {
			return nil, errs.NewType("fn*", "Sym", item)
		}
		if sym == "&" {
			ampersands++
			if ampersands > 1 {
				return nil, errs.New(errs.KindType, "fn*: parameter list may contain at most one '&'")
			}
			if i != len(items)-2 {
				return nil, errs.New(errs.KindType, "fn*: '&' must be followed by exactly one symbol")
			}
		}
		params = append(params, sym)
	}
	return params, nil
}

// evalAST implements spec 4.4.1: evaluate every element of a
// collection, or resolve a Sym, returning anything else unchanged.
func evalAST(ast types.Value, e *env.Env) (types.Value, error) {
	switch v := ast.(type) {
	case types.Sym:
		return lookupSymbol(e, v)
	case *types.List:
		items, err := evalEach(v.Items, e)
		if err != nil {
			return nil, err
		}
		return types.NewList(items...), nil
	case *types.Vec:
		items, err := evalEach(v.Items, e)
		if err != nil {
			return nil, err
		}
		return types.NewVec(items...), nil
	case *types.Map:
		out := types.NewMap()
		for i, k := range v.Keys {
			val, err := Eval(v.Vals[i], e)
			if err != nil {
				return nil, err
			}
			out = out.Assoc(k, val)
		}
		return out, nil
	default:
		return ast, nil
	}
}

func evalEach(items []types.Value, e *env.Env) ([]types.Value, error) {
	out := make([]types.Value, len(items))
	for i, item := range items {
		v, err := Eval(item, e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// lookupSymbol resolves sym via the environment chain, enriching a
// symbol-not-found error with up to 3 fuzzy "did you mean" candidates
// drawn from every name currently bound in the chain.
func lookupSymbol(e *env.Env, sym types.Sym) (types.Value, error) {
	v, err := e.Get(sym)
	if err == nil {
		return v, nil
	}
	names := make([]string, 0, len(e.Names()))
	for _, n := range e.Names() {
		names = append(names, string(n))
	}
	ranks := fuzzy.RankFindFold(string(sym), names)
	sort.Sort(ranks)
	var suggestions []string
	for i := 0; i < len(ranks) && i < 3; i++ {
		suggestions = append(suggestions, ranks[i].Target)
	}
	me := errs.NewSymbolNotFound(string(sym))
	if len(suggestions) > 0 {
		me.Message += fmt.Sprintf(" (did you mean: %s?)", strings.Join(suggestions, ", "))
	}
	return nil, me
}

func summarize(v types.Value) string {
	return fmt.Sprintf("%T", v)
}
