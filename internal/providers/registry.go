package providers

import (
	"fmt"
	"sort"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
)

// Registry maps provider identity to its adapter. Registration happens at
// setup; lookups after that are read-only, so no locking.
type Registry struct {
	adapters map[string]Adapter
}

func NewRegistry(adapters ...Adapter) (*Registry, error) {
	r := &Registry{adapters: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		if _, exists := r.adapters[a.Name()]; exists {
			return nil, fmt.Errorf("duplicate adapter registered: %s", a.Name())
		}
		r.adapters[a.Name()] = a
	}
	return r, nil
}

func (r *Registry) Get(name string) (Adapter, error) {
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownProvider, name)
	}
	return a, nil
}

// Names returns registered provider names in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns adapters in Names() order.
func (r *Registry) All() []Adapter {
	var all []Adapter
	for _, name := range r.Names() {
		all = append(all, r.adapters[name])
	}
	return all
}
