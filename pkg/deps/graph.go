package deps

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// Graph maps package names to their direct dependency names.
//
// Keys iterate in insertion order, which for a resolved graph is the
// depth-first pre-order of the walk. Dependency lists keep the order the
// registry declared them in. The zero value is not usable; use [NewGraph].
type Graph struct {
	order []string
	deps  map[string][]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{deps: make(map[string][]string)}
}

// Set records the dependency list for name. A nil list is stored as an empty
// one. Setting an existing name replaces its list but keeps its position.
func (g *Graph) Set(name string, deps []string) {
	if _, ok := g.deps[name]; !ok {
		g.order = append(g.order, name)
	}
	if deps == nil {
		deps = []string{}
	}
	g.deps[name] = deps
}

// Deps returns the dependency list recorded for name.
func (g *Graph) Deps(name string) ([]string, bool) {
	d, ok := g.deps[name]
	return d, ok
}

// Len returns the number of keys.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the total number of (package, dependency) pairs.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, d := range g.deps {
		n += len(d)
	}
	return n
}

// Names returns the keys in insertion order.
func (g *Graph) Names() []string { return slices.Clone(g.order) }

// All iterates over keys and their dependency lists in insertion order.
func (g *Graph) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, name := range g.order {
			if !yield(name, g.deps[name]) {
				return
			}
		}
	}
}

// Equal reports whether both graphs have the same keys in the same order
// with the same dependency lists.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if !slices.Equal(g.order, other.order) {
		return false
	}
	for _, name := range g.order {
		if !slices.Equal(g.deps[name], other.deps[name]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the graph as a JSON object whose keys keep insertion order.
func (g *Graph) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.deps[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
