package core

import (
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/eval"
	"github.com/DogMillionaire/mal/internal/types"
)

func registerAtoms(r *Registry) {
	r.register("atom", func(args []types.Value) (types.Value, error) {
		if err := requireArity("atom", args, 1); err != nil {
			return nil, err
		}
		return types.NewAtom(args[0]), nil
	})

	r.register("deref", func(args []types.Value) (types.Value, error) {
		if err := requireArity("deref", args, 1); err != nil {
			return nil, err
		}
		a, ok := args[0].(*types.Atom)
		if !ok {
			return nil, errs.NewType("deref", "Atom", args[0])
		}
		return a.Load(), nil
	})

	r.register("reset!", func(args []types.Value) (types.Value, error) {
		if err := requireArity("reset!", args, 2); err != nil {
			return nil, err
		}
		a, ok := args[0].(*types.Atom)
		if !ok {
			return nil, errs.NewType("reset!", "Atom", args[0])
		}
		a.Store(args[1])
		return args[1], nil
	})

	// swap! computes the new value from a snapshot of the atom without
	// holding the atom's lock across the call, so a reentrant swap! on
	// the same atom from within fn cannot deadlock.
	r.register("swap!", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("swap!", args, 2); err != nil {
			return nil, err
		}
		a, ok := args[0].(*types.Atom)
		if !ok {
			return nil, errs.NewType("swap!", "Atom", args[0])
		}
		fn, ok := args[1].(*types.Fn)
		if !ok {
			return nil, errs.NewType("swap!", "Fn", args[1])
		}
		callArgs := append([]types.Value{a.Load()}, args[2:]...)
		newVal, err := eval.Apply(fn, callArgs)
		if err != nil {
			return nil, err
		}
		a.Store(newVal)
		return newVal, nil
	})
}
