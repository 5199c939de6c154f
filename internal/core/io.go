package core

import (
	"fmt"
	"os"

	"github.com/DogMillionaire/mal/internal/printer"
	"github.com/DogMillionaire/mal/internal/types"
)

func registerIO(r *Registry) {
	r.register("pr-str", func(args []types.Value) (types.Value, error) {
		return types.Str(printer.JoinPrStr(args)), nil
	})

	r.register("str", func(args []types.Value) (types.Value, error) {
		return types.Str(printer.ConcatStr(args)), nil
	})

	r.register("prn", func(args []types.Value) (types.Value, error) {
		fmt.Fprintln(os.Stdout, printer.JoinPrStr(args))
		return types.NilValue, nil
	})

	r.register("println", func(args []types.Value) (types.Value, error) {
		fmt.Fprintln(os.Stdout, printer.JoinStr(args))
		return types.NilValue, nil
	})
}
