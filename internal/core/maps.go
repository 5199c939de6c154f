package core

import (
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/types"
)

func asMap(ctx string, v types.Value) (*types.Map, error) {
	m, ok := v.(*types.Map)
	if !ok {
		return nil, errs.NewType(ctx, "Map", v)
	}
	return m, nil
}

func registerMaps(r *Registry) {
	r.register("hash-map", func(args []types.Value) (types.Value, error) {
		if len(args)%2 != 0 {
			return nil, errs.New(errs.KindType, "hash-map: requires an even number of arguments")
		}
		m := types.NewMap()
		for i := 0; i < len(args); i += 2 {
			m = m.Assoc(args[i], args[i+1])
		}
		return m, nil
	})

	r.register("assoc", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("assoc", args, 1); err != nil {
			return nil, err
		}
		m, err := asMap("assoc", args[0])
		if err != nil {
			return nil, err
		}
		rest := args[1:]
		if len(rest)%2 != 0 {
			return nil, errs.New(errs.KindType, "assoc: requires an even number of key/value arguments")
		}
		for i := 0; i < len(rest); i += 2 {
			m = m.Assoc(rest[i], rest[i+1])
		}
		return m, nil
	})

	r.register("dissoc", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("dissoc", args, 1); err != nil {
			return nil, err
		}
		m, err := asMap("dissoc", args[0])
		if err != nil {
			return nil, err
		}
		for _, key := range args[1:] {
			m = m.Dissoc(key)
		}
		return m, nil
	})

	r.register("get", func(args []types.Value) (types.Value, error) {
		if err := requireArity("get", args, 2); err != nil {
			return nil, err
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.NilValue, nil
		}
		m, err := asMap("get", args[0])
		if err != nil {
			return nil, err
		}
		v, ok := m.Get(args[1])
		if !ok {
			return types.NilValue, nil
		}
		return v, nil
	})

	r.register("contains?", func(args []types.Value) (types.Value, error) {
		if err := requireArity("contains?", args, 2); err != nil {
			return nil, err
		}
		m, err := asMap("contains?", args[0])
		if err != nil {
			return nil, err
		}
		_, ok := m.Get(args[1])
		return types.Bool(ok), nil
	})

	r.register("keys", func(args []types.Value) (types.Value, error) {
		if err := requireArity("keys", args, 1); err != nil {
			return nil, err
		}
		m, err := asMap("keys", args[0])
		if err != nil {
			return nil, err
		}
		return types.NewList(m.Keys...), nil
	})

	r.register("vals", func(args []types.Value) (types.Value, error) {
		if err := requireArity("vals", args, 1); err != nil {
			return nil, err
		}
		m, err := asMap("vals", args[0])
		if err != nil {
			return nil, err
		}
		return types.NewList(m.Vals...), nil
	})
}
