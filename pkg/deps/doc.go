// Package deps resolves transitive dependency graphs from package registries.
//
// # Overview
//
// A [Registry] wraps a [Fetcher] (one metadata lookup per package name) and
// walks the dependency relation depth-first from a root package:
//
//	resolver := javascript.NewResolver(npm.Options{})
//	res, err := resolver.Resolve(ctx, "react", deps.Options{
//	    Logger: logger.Warnf,
//	})
//	for name, direct := range res.Graph.All() {
//	    fmt.Println(name, direct)
//	}
//
// # Traversal
//
// The walk uses an explicit stack and a visited set owned by a single
// Resolve call:
//
//  1. Pop a name; skip it if it was already visited, otherwise mark it
//  2. Fetch its metadata
//  3. Record name -> direct dependencies (an empty list for leaves)
//  4. Push the dependencies so they are processed in declaration order
//
// Cycles (including self-dependencies) end at the visited check. There is no
// depth limit. Fetches are sequential: one request in flight at a time.
//
// # Failures
//
// A package whose fetch fails gets no key in the [Graph]; it may still appear
// in its referrer's dependency list. It stays visited for the rest of the
// run, so it is never fetched again even when another package depends on it.
// Failures are logged through [Options.Logger] and listed in
// [Result.Failed]. Nothing is retried.
//
// # Graph
//
// [Graph] is an insertion-ordered map from package name to dependency list.
// Key order is the pre-order of the walk, so two runs against a registry
// that returns the same metadata produce [Graph.Equal] graphs.
package deps
