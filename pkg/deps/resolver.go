package deps

import (
	"context"
	"slices"
	"time"

	"github.com/matzehuels/depviz/pkg/errors"
	"github.com/matzehuels/depviz/pkg/observability"
)

// Registry implements Resolver by walking a Fetcher depth-first.
type Registry struct {
	name    string
	fetcher Fetcher
}

// NewRegistry creates a Resolver that walks dependencies using the given Fetcher.
func NewRegistry(name string, fetcher Fetcher) *Registry {
	return &Registry{name: name, fetcher: fetcher}
}

// Name returns the registry name.
func (r *Registry) Name() string { return r.name }

// Resolve walks the dependency graph reachable from pkg.
//
// Each distinct name is fetched at most once. A failed fetch is reported
// through opts.Logger and recorded in Result.Failed; the package gets no key
// in the graph and nothing below it is visited, but the walk goes on. This
// holds for the root too, in which case the graph is empty. The only errors
// returned are an invalid root name and context cancellation.
func (r *Registry) Resolve(ctx context.Context, pkg string, opts Options) (*Result, error) {
	if pkg == "" {
		return nil, errors.New(errors.ErrCodeInvalidPackage, "package name cannot be empty")
	}

	hooks := observability.Resolve()
	hooks.OnResolveStart(ctx, pkg)
	start := time.Now()

	t := &traversal{
		ctx:     ctx,
		opts:    opts.WithDefaults(),
		fetch:   r.fetcher.Fetch,
		graph:   NewGraph(),
		visited: make(map[string]bool),
	}
	res, err := t.run(pkg)

	nodes, failed := t.graph.Len(), len(t.failed)
	hooks.OnResolveComplete(ctx, pkg, nodes, failed, time.Since(start), err)
	return res, err
}

// traversal owns the state of a single Resolve call.
type traversal struct {
	ctx   context.Context
	opts  Options
	fetch func(context.Context, string) (*Package, error)

	graph   *Graph
	visited map[string]bool
	stack   []string
	failed  []string
}

// run pops names off an explicit stack. Dependencies are pushed in reverse so
// they are popped in declaration order, which makes the key order of the
// resulting graph the same as a recursive pre-order walk.
func (t *traversal) run(root string) (*Result, error) {
	t.stack = append(t.stack, root)

	for len(t.stack) > 0 {
		if err := t.ctx.Err(); err != nil {
			return nil, err
		}

		name := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		if t.visited[name] {
			continue
		}
		t.visited[name] = true

		pkg, err := t.fetch(t.ctx, name)
		if err != nil {
			if ctxErr := t.ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			t.fail(name, err)
			continue
		}

		deps := slices.Clone(pkg.Dependencies)
		t.graph.Set(name, deps)
		observability.Resolve().OnFetch(t.ctx, name, len(deps), nil)

		for i := len(deps) - 1; i >= 0; i-- {
			if !t.visited[deps[i]] {
				t.stack = append(t.stack, deps[i])
			}
		}
	}

	return &Result{Graph: t.graph, Failed: t.failed}, nil
}

func (t *traversal) fail(name string, err error) {
	t.failed = append(t.failed, name)
	t.opts.Logger("fetch failed: %s: %v", name, err)
	observability.Resolve().OnFetch(t.ctx, name, 0, err)
}
