package core

import (
	"time"

	"github.com/DogMillionaire/mal/internal/types"
)

func registerTime(r *Registry) {
	r.register("time-ms", func(args []types.Value) (types.Value, error) {
		if err := requireArity("time-ms", args, 0); err != nil {
			return nil, err
		}
		return types.Int(time.Now().UnixMilli()), nil
	})
}
