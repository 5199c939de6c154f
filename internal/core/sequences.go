package core

import (
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/eval"
	"github.com/DogMillionaire/mal/internal/types"
)

func asSeq(ctx string, v types.Value) (types.Seq, error) {
	seq, ok := v.(types.Seq)
	if !ok {
		return nil, errs.NewType(ctx, "List or Vec", v)
	}
	return seq, nil
}

func registerSequences(r *Registry) {
	r.register("list", func(args []types.Value) (types.Value, error) {
		return types.NewList(args...), nil
	})

	r.register("vector", func(args []types.Value) (types.Value, error) {
		return types.NewVec(args...), nil
	})

	r.register("count", func(args []types.Value) (types.Value, error) {
		if err := requireArity("count", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case types.Nil:
			return types.Int(0), nil
		case types.Str:
			return types.Int(len([]rune(string(v)))), nil
		}
		seq, err := asSeq("count", args[0])
		if err != nil {
			return nil, err
		}
		return types.Int(len(seq.Elements())), nil
	})

	r.register("vec", func(args []types.Value) (types.Value, error) {
		if err := requireArity("vec", args, 1); err != nil {
			return nil, err
		}
		seq, err := asSeq("vec", args[0])
		if err != nil {
			return nil, err
		}
		return types.NewVec(seq.Elements()...), nil
	})

	r.register("cons", func(args []types.Value) (types.Value, error) {
		if err := requireArity("cons", args, 2); err != nil {
			return nil, err
		}
		seq, err := asSeq("cons", args[1])
		if err != nil {
			return nil, err
		}
		items := append([]types.Value{args[0]}, seq.Elements()...)
		return types.NewList(items...), nil
	})

	r.register("concat", func(args []types.Value) (types.Value, error) {
		var out []types.Value
		for _, a := range args {
			seq, err := asSeq("concat", a)
			if err != nil {
				return nil, err
			}
			out = append(out, seq.Elements()...)
		}
		return types.NewList(out...), nil
	})

	r.register("nth", func(args []types.Value) (types.Value, error) {
		if err := requireArity("nth", args, 2); err != nil {
			return nil, err
		}
		seq, err := asSeq("nth", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asInt("nth", args[1])
		if err != nil {
			return nil, err
		}
		items := seq.Elements()
		if int(i) < 0 || int(i) >= len(items) {
			return nil, errs.Newf(errs.KindType, "nth: index %d out of range (length %d)", i, len(items))
		}
		return items[i], nil
	})

	r.register("first", func(args []types.Value) (types.Value, error) {
		if err := requireArity("first", args, 1); err != nil {
			return nil, err
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.NilValue, nil
		}
		seq, err := asSeq("first", args[0])
		if err != nil {
			return nil, err
		}
		items := seq.Elements()
		if len(items) == 0 {
			return types.NilValue, nil
		}
		return items[0], nil
	})

	r.register("rest", func(args []types.Value) (types.Value, error) {
		if err := requireArity("rest", args, 1); err != nil {
			return nil, err
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.NewList(), nil
		}
		seq, err := asSeq("rest", args[0])
		if err != nil {
			return nil, err
		}
		items := seq.Elements()
		if len(items) == 0 {
			return types.NewList(), nil
		}
		return types.NewList(items[1:]...), nil
	})

	r.register("seq", func(args []types.Value) (types.Value, error) {
		if err := requireArity("seq", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case types.Nil:
			return types.NilValue, nil
		case types.Str:
			if len(v) == 0 {
				return types.NilValue, nil
			}
			chars := make([]types.Value, 0, len(v))
			for _, r := range string(v) {
				chars = append(chars, types.Str(string(r)))
			}
			return types.NewList(chars...), nil
		case types.Seq:
			if len(v.Elements()) == 0 {
				return types.NilValue, nil
			}
			return types.NewList(v.Elements()...), nil
		default:
			return nil, errs.NewType("seq", "List, Vec, Str or Nil", args[0])
		}
	})

	r.register("conj", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("conj", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case *types.List:
			items := append([]types.Value{}, args[1:]...)
			for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
				items[i], items[j] = items[j], items[i]
			}
			return types.NewList(append(items, v.Items...)...), nil
		case *types.Vec:
			return types.NewVec(append(append([]types.Value{}, v.Items...), args[1:]...)...), nil
		default:
			return nil, errs.NewType("conj", "List or Vec", args[0])
		}
	})

	r.register("map", func(args []types.Value) (types.Value, error) {
		if err := requireArity("map", args, 2); err != nil {
			return nil, err
		}
		fn, ok := args[0].(*types.Fn)
		if !ok {
			return nil, errs.NewType("map", "Fn", args[0])
		}
		seq, err := asSeq("map", args[1])
		if err != nil {
			return nil, err
		}
		items := seq.Elements()
		out := make([]types.Value, len(items))
		for i, item := range items {
			v, err := eval.Apply(fn, []types.Value{item})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return types.NewList(out...), nil
	})

	r.register("apply", func(args []types.Value) (types.Value, error) {
		if err := requireAtLeast("apply", args, 2); err != nil {
			return nil, err
		}
		fn, ok := args[0].(*types.Fn)
		if !ok {
			return nil, errs.NewType("apply", "Fn", args[0])
		}
		last, err := asSeq("apply", args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := append([]types.Value{}, args[1:len(args)-1]...)
		callArgs = append(callArgs, last.Elements()...)
		return eval.Apply(fn, callArgs)
	})
}
