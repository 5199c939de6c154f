package core

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/DogMillionaire/mal/internal/errs"
	"github.com/DogMillionaire/mal/internal/reader"
	"github.com/DogMillionaire/mal/internal/types"
)

func registerReaderIO(r *Registry) {
	r.register("read-string", func(args []types.Value) (types.Value, error) {
		if err := requireArity("read-string", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(types.Str)
		if !ok {
			return nil, errs.NewType("read-string", "Str", args[0])
		}
		v, err := reader.ReadString(string(s))
		if err == reader.ErrNoForm {
			return types.NilValue, nil
		}
		return v, err
	})

	r.register("slurp", func(args []types.Value) (types.Value, error) {
		if err := requireArity("slurp", args, 1); err != nil {
			return nil, err
		}
		path, ok := args[0].(types.Str)
		if !ok {
			return nil, errs.NewType("slurp", "Str", args[0])
		}
		data, err := os.ReadFile(string(path))
		if err != nil {
			return nil, errs.Wrap(errs.KindIO, fmt.Sprintf("slurp: cannot read %q", string(path)), err)
		}
		return types.Str(data), nil
	})

	stdin := bufio.NewReader(os.Stdin)
	r.register("readline", func(args []types.Value) (types.Value, error) {
		if err := requireArity("readline", args, 1); err != nil {
			return nil, err
		}
		prompt, ok := args[0].(types.Str)
		if !ok {
			return nil, errs.NewType("readline", "Str", args[0])
		}
		fmt.Fprint(os.Stdout, string(prompt))
		line, err := stdin.ReadString('\n')
		if err != nil {
			if err == io.EOF && line == "" {
				return types.NilValue, nil
			}
			if err != io.EOF {
				return nil, errs.Wrap(errs.KindIO, "readline: input error", err)
			}
		}
		line = trimNewline(line)
		return types.Str(line), nil
	})
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
