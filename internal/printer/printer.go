// Package printer renders types.Value as text (spec 4.2). Printing is
// pure and total: it never fails, unlike the reader.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DogMillionaire/mal/internal/types"
)

// PrStr renders v in readable mode: strings are quoted and escaped so
// that reading the result back yields an equal value (the round-trip
// property of spec §6/§8).
func PrStr(v types.Value) string {
	var sb strings.Builder
	write(&sb, v, true)
	return sb.String()
}

// Str renders v in raw mode: string content is emitted literally,
// with no surrounding quotes or escaping.
func Str(v types.Value) string {
	var sb strings.Builder
	write(&sb, v, false)
	return sb.String()
}

// JoinPrStr renders each value with PrStr, space-joined — the shape
// used by `pr-str` and `prn`.
func JoinPrStr(vs []types.Value) string {
	return join(vs, true)
}

// JoinStr renders each value with Str, space-joined — the shape used
// by `println`.
func JoinStr(vs []types.Value) string {
	return join(vs, false)
}

// ConcatStr renders each value with Str and concatenates with no
// separator — the shape used by `str` (distinct from println, which
// space-joins; spec §4.5 fixes these as two different join rules).
func ConcatStr(vs []types.Value) string {
	var sb strings.Builder
	for _, v := range vs {
		write(&sb, v, false)
	}
	return sb.String()
}

func join(vs []types.Value, readable bool) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		var sb strings.Builder
		write(&sb, v, readable)
		parts[i] = sb.String()
	}
	return strings.Join(parts, " ")
}

func write(sb *strings.Builder, v types.Value, readable bool) {
	switch val := v.(type) {
	case types.Nil:
		sb.WriteString("nil")
	case types.Bool:
		if val {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case types.Int:
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	case types.Sym:
		sb.WriteString(string(val))
	case types.Kw:
		sb.WriteString(":")
		sb.WriteString(string(val))
	case types.Str:
		if readable {
			writeQuotedString(sb, string(val))
		} else {
			sb.WriteString(string(val))
		}
	case *types.List:
		sb.WriteString("(")
		writeElements(sb, val.Items, readable)
		sb.WriteString(")")
	case *types.Vec:
		sb.WriteString("[")
		writeElements(sb, val.Items, readable)
		sb.WriteString("]")
	case *types.Map:
		sb.WriteString("{")
		for i, k := range val.Keys {
			if i > 0 {
				sb.WriteString(" ")
			}
			write(sb, k, readable)
			sb.WriteString(" ")
			write(sb, val.Vals[i], readable)
		}
		sb.WriteString("}")
	case *types.Fn:
		name := val.Name
		if name == "" {
			name = "anonymous"
		}
		sb.WriteString(fmt.Sprintf("#<function:%s>", name))
	case *types.Atom:
		sb.WriteString("(atom ")
		write(sb, val.Load(), readable)
		sb.WriteString(")")
	default:
		sb.WriteString(fmt.Sprintf("%v", v))
	}
}

func writeElements(sb *strings.Builder, items []types.Value, readable bool) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(" ")
		}
		write(sb, item, readable)
	}
}

func writeQuotedString(sb *strings.Builder, s string) {
	sb.WriteString(`"`)
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString(`"`)
}
