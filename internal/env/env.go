// Package env implements the nested lexical environment chain used by
// the evaluator: a local binding frame, an outer pointer, and a
// memoised root pointer (spec §4.3).
package env

import (
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/types"
)

// Env is a single lexical scope frame. It satisfies types.Environment
// so that a *Fn can hold its defining scope without internal/types
// needing to import this package.
type Env struct {
	vars  map[types.Sym]types.Value
	outer *Env
	root  *Env
}

var _ types.Environment = (*Env)(nil)

// NewRoot creates an environment with no outer scope. If binds/exprs
// are supplied they are bound immediately using the same parameter
// semantics as a function call (4.3's "Parameter binding semantics").
func NewRoot(binds []types.Sym, exprs []types.Value) (*Env, error) {
	e := &Env{vars: make(map[types.Sym]types.Value)}
	e.root = e
	if len(binds) > 0 || len(exprs) > 0 {
		if err := bindParams(e, binds, exprs); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// NewWithOuter creates a child environment of outer, binding
// binds/exprs with the same semantics as NewRoot. The child's root is
// inherited from outer's cached root.
func NewWithOuter(binds []types.Sym, exprs []types.Value, outer *Env) (*Env, error) {
	e := &Env{vars: make(map[types.Sym]types.Value), outer: outer}
	if outer != nil {
		e.root = outer.root
	} else {
		e.root = e
	}
	if err := bindParams(e, binds, exprs); err != nil {
		return nil, err
	}
	return e, nil
}

// bindParams implements the `&` variadic-tail binding rule: walk binds
// in order; when an entry is the symbol "&", bind the next symbol to a
// List of the remaining exprs and stop.
func bindParams(e *Env, binds []types.Sym, exprs []types.Value) error {
	for i := 0; i < len(binds); i++ {
		if binds[i] == "&" {
			if i+1 >= len(binds) {
				return errs.New(errs.KindInternal, "parameter list: '&' not followed by a binding symbol")
			}
			start := i
			if start > len(exprs) {
				start = len(exprs)
			}
			rest := types.NewList(exprs[start:]...)
			e.vars[binds[i+1]] = rest
			return nil
		}
		if i < len(exprs) {
			e.vars[binds[i]] = exprs[i]
		} else {
			e.vars[binds[i]] = types.NilValue
		}
	}
	return nil
}

// Set installs or overwrites a binding in this frame's local bindings.
func (e *Env) Set(sym types.Sym, val types.Value) {
	e.vars[sym] = val
}

// Get walks the chain from this frame outward, returning the nearest
// binding or a symbol-not-found error.
func (e *Env) Get(sym types.Sym) (types.Value, error) {
	for frame := e; frame != nil; frame = frame.outer {
		if v, ok := frame.vars[sym]; ok {
			return v, nil
		}
	}
	return nil, errs.NewSymbolNotFound(string(sym))
}

// GetRoot returns the outermost environment in the chain.
func (e *Env) GetRoot() types.Environment {
	return e.root
}

// Names returns every symbol bound anywhere in the chain, innermost
// first, for diagnostics (e.g. "did you mean" suggestions).
func (e *Env) Names() []types.Sym {
	seen := make(map[types.Sym]bool)
	var names []types.Sym
	for frame := e; frame != nil; frame = frame.outer {
		for k := range frame.vars {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	return names
}
