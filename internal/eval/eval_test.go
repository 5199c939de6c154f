package eval

import (
	"testing"

	"github.com/DogMillionaire/mal/internal/env"
	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/printer"
	"github.com/DogMillionaire/mal/internal/reader"
	"github.com/DogMillionaire/mal/internal/types"
	"github.com/stretchr/testify/assert"
)

func evalSrc(t *testing.T, e *env.Env, src string) types.Value {
	t.Helper()
	ast, err := reader.ReadString(src)
	assert.NoError(t, err)
	v, err := Eval(ast, e)
	assert.NoError(t, err)
	return v
}

func newTestEnv(t *testing.T) *env.Env {
	t.Helper()
	e, err := env.NewRoot(nil, nil)
	assert.NoError(t, err)
	e.Set("+", &types.Fn{Name: "+", Native: func(args []types.Value) (types.Value, error) {
		sum := types.Int(0)
		for _, a := range args {
			sum += a.(types.Int)
		}
		return sum, nil
	}})
	e.Set("*", &types.Fn{Name: "*", Native: func(args []types.Value) (types.Value, error) {
		prod := types.Int(1)
		for _, a := range args {
			prod *= a.(types.Int)
		}
		return prod, nil
	}})
	e.Set("-", &types.Fn{Name: "-", Native: func(args []types.Value) (types.Value, error) {
		diff := args[0].(types.Int)
		for _, a := range args[1:] {
			diff -= a.(types.Int)
		}
		return diff, nil
	}})
	e.Set("=", &types.Fn{Name: "=", Native: func(args []types.Value) (types.Value, error) {
		return types.Bool(types.Equal(args[0], args[1])), nil
	}})
	e.Set("list", &types.Fn{Name: "list", Native: func(args []types.Value) (types.Value, error) {
		return types.NewList(args...), nil
	}})
	e.Set("cons", &types.Fn{Name: "cons", Native: func(args []types.Value) (types.Value, error) {
		seq := args[1].(types.Seq)
		return types.NewList(append([]types.Value{args[0]}, seq.Elements()...)...), nil
	}})
	e.Set("concat", &types.Fn{Name: "concat", Native: func(args []types.Value) (types.Value, error) {
		var out []types.Value
		for _, a := range args {
			out = append(out, a.(types.Seq).Elements()...)
		}
		return types.NewList(out...), nil
	}})
	e.Set("count", &types.Fn{Name: "count", Native: func(args []types.Value) (types.Value, error) {
		if _, ok := args[0].(types.Nil); ok {
			return types.Int(0), nil
		}
		return types.Int(len(args[0].(types.Seq).Elements())), nil
	}})
	e.Set("vec", &types.Fn{Name: "vec", Native: func(args []types.Value) (types.Value, error) {
		return types.NewVec(args[0].(types.Seq).Elements()...), nil
	}})
	return e
}

func TestArithmetic(t *testing.T) {
	e := newTestEnv(t)
	v := evalSrc(t, e, "(+ 1 (* 2 3))")
	assert.Equal(t, types.Int(7), v)
}

func TestDefAndLookup(t *testing.T) {
	e := newTestEnv(t)
	evalSrc(t, e, "(def! a 6)")
	evalSrc(t, e, "(def! b (+ a 2))")
	v := evalSrc(t, e, "(+ a b)")
	assert.Equal(t, types.Int(14), v)
}

func TestLetDoesNotLeak(t *testing.T) {
	e := newTestEnv(t)
	v := evalSrc(t, e, "(let* (x 1 y 2) (+ x y))")
	assert.Equal(t, types.Int(3), v)

	_, err := e.Get("x")
	assert.Error(t, err, "let* bindings must not leak into the enclosing env")
}

func TestQuasiquoteSpliceUnquote(t *testing.T) {
	e := newTestEnv(t)
	v := evalSrc(t, e, "(let* (a 1) `(1 ~a ~@(list 2 3) 4))")
	assert.Equal(t, "(1 1 2 3 4)", printer.PrStr(v))
}

func TestAtomSwap(t *testing.T) {
	e := newTestEnv(t)
	e.Set("atom", &types.Fn{Name: "atom", Native: func(args []types.Value) (types.Value, error) {
		return types.NewAtom(args[0]), nil
	}})
	e.Set("deref", &types.Fn{Name: "deref", Native: func(args []types.Value) (types.Value, error) {
		return args[0].(*types.Atom).Load(), nil
	}})
	e.Set("swap!", &types.Fn{Name: "swap!", Native: func(args []types.Value) (types.Value, error) {
		a := args[0].(*types.Atom)
		fn := args[1].(*types.Fn)
		newVal, err := Apply(fn, append([]types.Value{a.Load()}, args[2:]...))
		if err != nil {
			return nil, err
		}
		a.Store(newVal)
		return newVal, nil
	}})

	evalSrc(t, e, "(def! a (atom 2))")
	evalSrc(t, e, "(swap! a (fn* (n) (* n 10)))")
	v := evalSrc(t, e, "(deref a)")
	assert.Equal(t, types.Int(20), v)
}

func TestTryCatchThrow(t *testing.T) {
	e := newTestEnv(t)
	e.Set("throw", &types.Fn{Name: "throw", Native: func(args []types.Value) (types.Value, error) {
		return nil, errs.NewUser(args[0], printer.PrStr(args[0]))
	}})
	e.Set("str", &types.Fn{Name: "str", Native: func(args []types.Value) (types.Value, error) {
		return types.Str(printer.ConcatStr(args)), nil
	}})
	v := evalSrc(t, e, `(try* (throw "oops") (catch* e (str "caught: " e)))`)
	assert.Equal(t, types.Str("caught: oops"), v)
}

func TestTailCallOptimisation(t *testing.T) {
	e := newTestEnv(t)
	evalSrc(t, e, `(def! f (fn* (n acc) (if (= n 0) acc (f (- n 1) (+ acc 1)))))`)
	v := evalSrc(t, e, "(f 100000 0)")
	assert.Equal(t, types.Int(100000), v)
}

func TestMacroExpansion(t *testing.T) {
	e := newTestEnv(t)
	evalSrc(t, e, `(defmacro! unless (fn* (pred a b) (list 'if pred b a)))`)
	v := evalSrc(t, e, `(unless false 7 8)`)
	assert.Equal(t, types.Int(7), v)
}

func TestSymbolNotFoundSuggestsClosestMatch(t *testing.T) {
	e := newTestEnv(t)
	e.Set("counter", types.Int(1))
	_, err := Eval(types.Sym("countr"), e)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "counter")
}
