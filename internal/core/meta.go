package core

import (
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/types"
)

func registerMeta(r *Registry) {
	r.register("meta", func(args []types.Value) (types.Value, error) {
		if err := requireArity("meta", args, 1); err != nil {
			return nil, err
		}
		m, ok := args[0].(types.Metaable)
		if !ok {
			return nil, errs.NewType("meta", "a value carrying meta", args[0])
		}
		return m.GetMeta(), nil
	})

	r.register("with-meta", func(args []types.Value) (types.Value, error) {
		if err := requireArity("with-meta", args, 2); err != nil {
			return nil, err
		}
		m, ok := args[0].(types.Metaable)
		if !ok {
			return nil, errs.NewType("with-meta", "a value carrying meta", args[0])
		}
		return m.WithMeta(args[1]), nil
	})
}
