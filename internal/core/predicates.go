package core

import "github.com/DogMillionaire/mal/internal/types"

func registerPredicates(r *Registry) {
	is := func(name string, pred func(types.Value) bool) {
		r.register(name, func(args []types.Value) (types.Value, error) {
			if err := requireArity(name, args, 1); err != nil {
				return nil, err
			}
			return types.Bool(pred(args[0])), nil
		})
	}

	is("list?", func(v types.Value) bool { _, ok := v.(*types.List); return ok })
	is("vector?", func(v types.Value) bool { _, ok := v.(*types.Vec); return ok })
	is("map?", func(v types.Value) bool { _, ok := v.(*types.Map); return ok })
	is("nil?", func(v types.Value) bool { _, ok := v.(types.Nil); return ok })
	is("true?", func(v types.Value) bool { b, ok := v.(types.Bool); return ok && bool(b) })
	is("false?", func(v types.Value) bool { b, ok := v.(types.Bool); return ok && !bool(b) })
	is("symbol?", func(v types.Value) bool { _, ok := v.(types.Sym); return ok })
	is("keyword?", func(v types.Value) bool { _, ok := v.(types.Kw); return ok })
	is("string?", func(v types.Value) bool { _, ok := v.(types.Str); return ok })
	is("number?", func(v types.Value) bool { _, ok := v.(types.Int); return ok })
	is("atom?", func(v types.Value) bool { _, ok := v.(*types.Atom); return ok })
	is("sequential?", func(v types.Value) bool { _, ok := v.(types.Seq); return ok })
	is("fn?", func(v types.Value) bool {
		fn, ok := v.(*types.Fn)
		return ok && !fn.IsMacro
	})
	is("macro?", func(v types.Value) bool {
		fn, ok := v.(*types.Fn)
		return ok && fn.IsMacro
	})
	is("empty?", func(v types.Value) bool {
		seq, ok := v.(types.Seq)
		return ok && len(seq.Elements()) == 0
	})
}
