// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// The [Client] type is the shared transport used by registry subpackages:
//
//   - [npm]: Node Package Manager (registry.npmjs.org)
//
// # Client Pattern
//
// Registry clients wrap [Client] and expose a FetchPackage method:
//
//	client := npm.NewClient(npm.Options{})
//	pkg, err := client.FetchPackage(ctx, "react")
//
// A request succeeds only on HTTP 200. A 404 maps to [ErrNotFound]; any other
// status and every transport failure map to [ErrNetwork]. Requests are never
// retried and responses are never cached, so each call is exactly one GET.
//
// # Observability
//
// Every request reports to [observability.HTTP] hooks (request, response,
// error), which the CLI uses to count registry round trips.
//
// [npm]: github.com/matzehuels/depviz/pkg/integrations/npm
// [observability.HTTP]: github.com/matzehuels/depviz/pkg/observability.HTTP
package integrations
