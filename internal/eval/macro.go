package eval

import (
	"github.com/DogMillionaire/mal/internal/env"
	"github.com/DogMillionaire/mal/internal/types"
)

// macroExpand repeatedly expands ast while it is a non-empty List
// headed by a Sym that resolves, in e, to a Fn with IsMacro set (spec
// 4.4.3). Macro arguments are passed unevaluated; the macro's return
// value becomes the new ast and is itself checked for further
// expansion.
func macroExpand(ast types.Value, e *env.Env) (types.Value, error) {
	for {
		list, ok := ast.(*types.List)
		if !ok || len(list.Items) == 0 {
			return ast, nil
		}
		sym, ok := list.Items[0].(types.Sym)
		if !ok {
			return ast, nil
		}
		val, err := e.Get(sym)
		if err != nil {
			return ast, nil
		}
		fn, ok := val.(*types.Fn)
		if !ok || !fn.IsMacro {
			return ast, nil
		}
		expanded, err := Apply(fn, list.Items[1:])
		if err != nil {
			return nil, err
		}
		ast = expanded
	}
}
