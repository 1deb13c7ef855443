// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package fetches the latest manifest of a package from the npm registry
// (https://registry.npmjs.org) using the per-version endpoint:
//
//	GET https://registry.npmjs.org/<name>/latest
//
// # Usage
//
//	client := npm.NewClient(npm.Options{})
//	pkg, err := client.FetchPackage(ctx, "react")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pkg.Name, pkg.Version, pkg.Dependencies)
//
// # Dependency Order
//
// [PackageInfo.Dependencies] lists the keys of the manifest's "dependencies"
// object in the order they appear in the response body. Version ranges are
// discarded. devDependencies, peerDependencies, and optionalDependencies are
// not included. A manifest without a "dependencies" field yields an empty,
// non-nil slice.
//
// # Errors
//
// A 404 wraps [integrations.ErrNotFound]; any other non-200 status or
// transport failure wraps [integrations.ErrNetwork]. Nothing is retried.
//
// [integrations.ErrNotFound]: github.com/matzehuels/depviz/pkg/integrations.ErrNotFound
// [integrations.ErrNetwork]: github.com/matzehuels/depviz/pkg/integrations.ErrNetwork
package npm
