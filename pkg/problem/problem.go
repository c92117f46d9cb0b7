package problem

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/autodiff/pkg/expr"
)

// Problem is a named objective for the descent engine: the expression to
// optimize plus the demo's natural direction and starting point.
type Problem struct {
	Name     string
	Describe string
	F        expr.Expr
	Maximize bool
	Start    float64
	Rate     float64
}

var registry = map[string]func() Problem{}

// Register adds a problem constructor to the registry.
func Register(name string, constructor func() Problem) {
	registry[name] = constructor
}

// Get returns a problem by name.
func Get(name string) (Problem, error) {
	ctor, ok := registry[name]
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered problem names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
