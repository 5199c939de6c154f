package core

import (
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/types"
)

func asInt(ctx string, v types.Value) (types.Int, error) {
	n, ok := v.(types.Int)
	if !ok {
		return 0, errs.NewType(ctx, "Int", v)
	}
	return n, nil
}

func asInts(ctx string, args []types.Value) ([]types.Int, error) {
	out := make([]types.Int, len(args))
	for i, a := range args {
		n, err := asInt(ctx, a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// registerArithmetic wires variadic +, -, *, / — every call takes at
// least one argument and folds left to right, matching the calling
// convention `apply` and `reduce`-style user code rely on.
func registerArithmetic(r *Registry) {
	r.register("+", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("+", args, 1); err != nil {
			return nil, err
		}
		ns, err := asInts("+", args)
		if err != nil {
			return nil, err
		}
		sum := ns[0]
		for _, n := range ns[1:] {
			sum += n
		}
		return sum, nil
	})

	r.register("-", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("-", args, 1); err != nil {
			return nil, err
		}
		ns, err := asInts("-", args)
		if err != nil {
			return nil, err
		}
		if len(ns) == 1 {
			return -ns[0], nil
		}
		diff := ns[0]
		for _, n := range ns[1:] {
			diff -= n
		}
		return diff, nil
	})

	r.register("*", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("*", args, 1); err != nil {
			return nil, err
		}
		ns, err := asInts("*", args)
		if err != nil {
			return nil, err
		}
		prod := ns[0]
		for _, n := range ns[1:] {
			prod *= n
		}
		return prod, nil
	})

	r.register("/", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("/", args, 1); err != nil {
			return nil, err
		}
		ns, err := asInts("/", args)
		if err != nil {
			return nil, err
		}
		if len(ns) == 1 {
			if ns[0] == 0 {
				return nil, errs.New(errs.KindType, "/: division by zero")
			}
			return 1 / ns[0], nil
		}
		quot := ns[0]
		for _, n := range ns[1:] {
			if n == 0 {
				return nil, errs.New(errs.KindType, "/: division by zero")
			}
			quot /= n
		}
		return quot, nil
	})
}

// registerComparison wires <, <=, >, >= as chained n-ary predicates:
// true only when every adjacent pair satisfies the relation, e.g.
// (< 1 2 3). = is polymorphic and takes exactly two arguments.
func registerComparison(r *Registry) {
	cmp := func(name string, ok func(a, b types.Int) bool) types.NativeFn {
		return func(args []types.Value) (types.Value, error) {
			if err := requireAtLeast(name, args, 2); err != nil {
				return nil, err
			}
			ns, err := asInts(name, args)
			if err != nil {
				return nil, err
			}
			for i := 0; i < len(ns)-1; i++ {
				if !ok(ns[i], ns[i+1]) {
					return types.False, nil
				}
			}
			return types.True, nil
		}
	}
	r.register("<", cmp("<", func(a, b types.Int) bool { return a < b }))
	r.register("<=", cmp("<=", func(a, b types.Int) bool { return a <= b }))
	r.register(">", cmp(">", func(a, b types.Int) bool { return a > b }))
	r.register(">=", cmp(">=", func(a, b types.Int) bool { return a >= b }))

	r.register("=", func(args []types.Value) (types.Value, error) {
		if err := requireArity("=", args, 2); err != nil {
			return nil, err
		}
		return types.Bool(types.Equal(args[0], args[1])), nil
	})
}

func requireArity(name string, args []types.Value, n int) error {
	if len(args) != n {
		return errs.NewArity(name, n, len(args))
	}
	return nil
}

func requireAtLeast(name string, args []types.Value, n int) error {
	if len(args) < n {
		return errs.NewArity(name, n, len(args))
	}
	return nil
}
