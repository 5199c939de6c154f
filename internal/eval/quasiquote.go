package eval

import "github.com/DogMillionaire/mal/internal/types"

// quasiquote computes the purely syntactic quasiquote transformation
// of spec 4.4.2. It never evaluates anything; the caller's trampoline
// evaluates the result.
func quasiquote(ast types.Value) types.Value {
	if isUnquote(ast) {
		return ast.(*types.List).Items[1]
	}

	switch v := ast.(type) {
	case *types.List:
		return quasiquoteList(v.Items)
	case *types.Vec:
		return types.NewList(types.Sym("vec"), quasiquoteList(v.Items))
	case types.Sym, *types.Map:
		return types.NewList(types.Sym("quote"), ast)
	default:
		return ast
	}
}

func isUnquote(ast types.Value) bool {
	l, ok := ast.(*types.List)
	return ok && len(l.Items) > 0 && isHeadSym(l.Items[0], "unquote")
}

func isSpliceUnquote(v types.Value) bool {
	l, ok := v.(*types.List)
	return ok && len(l.Items) > 0 && isHeadSym(l.Items[0], "splice-unquote")
}

func isHeadSym(v types.Value, name string) bool {
	s, ok := v.(types.Sym)
	return ok && string(s) == name
}

// quasiquoteList folds right over elts, building up the accumulator
// list via cons/concat, per spec 4.4.2.
func quasiquoteList(elts []types.Value) types.Value {
	var acc types.Value = types.NewList()
	for i := len(elts) - 1; i >= 0; i-- {
		elt := elts[i]
		if isSpliceUnquote(elt) {
			spliced := elt.(*types.List).Items[1]
			acc = types.NewList(types.Sym("concat"), spliced, acc)
		} else {
			acc = types.NewList(types.Sym("cons"), quasiquote(elt), acc)
		}
	}
	return acc
}
