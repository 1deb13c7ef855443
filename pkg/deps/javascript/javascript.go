package javascript

import (
	"context"

	"github.com/matzehuels/depviz/pkg/deps"
	"github.com/matzehuels/depviz/pkg/integrations/npm"
)

// RegistryName identifies the npm resolver.
const RegistryName = "npm"

// NewResolver returns a resolver that walks the npm registry.
func NewResolver(opts npm.Options) *deps.Registry {
	return deps.NewRegistry(RegistryName, fetcher{npm.NewClient(opts)})
}

type fetcher struct{ *npm.Client }

func (f fetcher) Fetch(ctx context.Context, name string) (*deps.Package, error) {
	p, err := f.FetchPackage(ctx, name)
	if err != nil {
		return nil, err
	}
	return &deps.Package{
		Name:         p.Name,
		Version:      p.Version,
		Description:  p.Description,
		Dependencies: p.Dependencies,
	}, nil
}
