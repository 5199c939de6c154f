package core

import (
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/types"
)

func registerSymbols(r *Registry) {
	r.register("symbol", func(args []types.Value) (types.Value, error) {
		if err := requireArity("symbol", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(types.Str)
		if !ok {
			return nil, errs.NewType("symbol", "Str", args[0])
		}
		return types.Sym(s), nil
	})

	r.register("keyword", func(args []types.Value) (types.Value, error) {
		if err := requireArity("keyword", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case types.Kw:
			return v, nil
		case types.Str:
			return types.Kw(v), nil
		default:
			return nil, errs.NewType("keyword", "Str or Kw", args[0])
		}
	})
}
