package printer

import (
	"testing"

	"github.com/DogMillionaire/mal/internal/reader"
	"github.com/DogMillionaire/mal/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrStrScalars(t *testing.T) {
	assert.Equal(t, "nil", PrStr(types.NilValue))
	assert.Equal(t, "true", PrStr(types.True))
	assert.Equal(t, "false", PrStr(types.False))
	assert.Equal(t, "7", PrStr(types.Int(7)))
	assert.Equal(t, "-7", PrStr(types.Int(-7)))
	assert.Equal(t, ":foo", PrStr(types.Kw("foo")))
	assert.Equal(t, "abc", PrStr(types.Sym("abc")))
}

func TestPrStrEscapesStrings(t *testing.T) {
	assert.Equal(t, `"hi\nthere"`, PrStr(types.Str("hi\nthere")))
	assert.Equal(t, `"a\"b"`, PrStr(types.Str(`a"b`)))
	assert.Equal(t, `"a\\b"`, PrStr(types.Str(`a\b`)))
}

func TestStrModeIsLiteral(t *testing.T) {
	assert.Equal(t, "hi\nthere", Str(types.Str("hi\nthere")))
}

func TestPrStrListVec(t *testing.T) {
	l := types.NewList(types.Int(1), types.Int(2))
	assert.Equal(t, "(1 2)", PrStr(l))

	v := types.NewVec(types.Int(1), types.Int(2))
	assert.Equal(t, "[1 2]", PrStr(v))
}

func TestAtomPrinting(t *testing.T) {
	a := types.NewAtom(types.Int(2))
	assert.Equal(t, "(atom 2)", PrStr(a))
}

func TestConcatVsJoin(t *testing.T) {
	vs := []types.Value{types.Str("a"), types.Str("b")}
	assert.Equal(t, "ab", ConcatStr(vs), "str concatenates with no separator")
	assert.Equal(t, "a b", JoinStr(vs), "println space-joins")
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		`7`, `-7`, `"hello world"`, `nil`, `true`, `false`, `:kw`,
		`(1 2 3)`, `[1 2 3]`, `{"a" 1}`, `(1 (2 3) [4 5])`,
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			v, err := reader.ReadString(src)
			assert.NoError(t, err)
			printed := PrStr(v)
			v2, err := reader.ReadString(printed)
			assert.NoError(t, err)
			assert.True(t, types.Equal(v, v2), "read(pr_str(v)) must equal v; got %q from %q", printed, src)
		})
	}
}
