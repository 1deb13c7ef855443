package deps

import "context"

// Options configures dependency resolution behavior.
type Options struct {
	Logger func(string, ...any) // Fetch-failure callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Package holds metadata fetched from a package registry.
type Package struct {
	Name         string   // Package name as reported by the registry
	Version      string   // Latest version
	Description  string   // Package summary
	Dependencies []string // Direct dependency names, in declaration order
}

// Fetcher retrieves package metadata from a registry.
type Fetcher interface {
	// Fetch retrieves the latest metadata for name. Any error means the
	// package could not be fetched.
	Fetch(ctx context.Context, name string) (*Package, error)
}

// Resolver builds a dependency graph starting from a root package.
type Resolver interface {
	// Resolve fetches the package and its transitive dependencies.
	Resolve(ctx context.Context, pkg string, opts Options) (*Result, error)
	// Name returns the resolver's identifier (e.g., "npm").
	Name() string
}

// Result is the outcome of one resolution run.
type Result struct {
	Graph  *Graph   // Successfully fetched packages and their direct dependencies
	Failed []string // Packages whose fetch failed, in the order they were attempted
}
