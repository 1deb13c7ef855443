// Package javascript provides dependency resolution for npm packages.
//
// [NewResolver] connects the [npm] registry client to the depth-first
// resolver in [deps]:
//
//	resolver := javascript.NewResolver(npm.Options{})
//	res, _ := resolver.Resolve(ctx, "express", deps.Options{})
//
// Only the "dependencies" field of each package's latest manifest is
// followed; devDependencies, peerDependencies, and optionalDependencies are
// ignored.
//
// [npm]: github.com/matzehuels/depviz/pkg/integrations/npm
// [deps]: github.com/matzehuels/depviz/pkg/deps
package javascript
