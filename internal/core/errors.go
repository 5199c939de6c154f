package core

import (
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/printer"
	"github.com/DogMillionaire/mal/internal/types"
)

func registerErrors(r *Registry) {
	r.register("throw", func(args []types.Value) (types.Value, error) {
		if err := requireArity("throw", args, 1); err != nil {
			return nil, err
		}
		return nil, errs.NewUser(args[0], printer.PrStr(args[0]))
	})
}
