package main

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/DogMillionaire/mal/internal/types"
	"github.com/fxamacker/cbor/v2"
)

// dumpAST CBOR-encodes v's shape to w, base64-wrapped for a terminal,
// behind --dump-ast. It is a debugging aid, not part of the wire
// format the interpreter itself consumes.
func dumpAST(w io.Writer, v types.Value) error {
	encoded, err := cbor.Marshal(astDebugValue(v))
	if err != nil {
		return fmt.Errorf("dump-ast: %w", err)
	}
	fmt.Fprintf(w, "AST(cbor,base64)=%s\n", base64.StdEncoding.EncodeToString(encoded))
	return nil
}

// astDebugValue reduces a types.Value tree to plain Go values so the
// cbor encoder's reflection-based path can walk it without needing
// custom marshalers on every variant.
func astDebugValue(v types.Value) any {
	switch val := v.(type) {
	case types.Nil:
		return nil
	case types.Bool:
		return bool(val)
	case types.Int:
		return int64(val)
	case types.Str:
		return map[string]any{"str": string(val)}
	case types.Sym:
		return map[string]any{"sym": string(val)}
	case types.Kw:
		return map[string]any{"kw": string(val)}
	case *types.List:
		return map[string]any{"list": astDebugSlice(val.Items)}
	case *types.Vec:
		return map[string]any{"vec": astDebugSlice(val.Items)}
	case *types.Map:
		entries := make([]any, 0, len(val.Keys))
		for i, k := range val.Keys {
			entries = append(entries, []any{astDebugValue(k), astDebugValue(val.Vals[i])})
		}
		return map[string]any{"map": entries}
	default:
		return fmt.Sprintf("%v", v)
	}
}

func astDebugSlice(items []types.Value) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = astDebugValue(item)
	}
	return out
}
