package npm

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	deperrors "github.com/matzehuels/depviz/pkg/errors"
	"github.com/matzehuels/depviz/pkg/integrations"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

// PackageInfo is the subset of a package's latest manifest that depviz uses.
type PackageInfo struct {
	Name         string
	Version      string
	Description  string
	Dependencies []string // keys of "dependencies", in declaration order
}

// Options configures a Client.
type Options struct {
	BaseURL    string       // Registry root (default: DefaultBaseURL)
	HTTPClient *http.Client // Transport (default: no timeout)
	UserAgent  string       // Sent as User-Agent when set
}

type Client struct {
	*integrations.Client
	baseURL string
}

func NewClient(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	headers := map[string]string{"Accept": "application/json"}
	if opts.UserAgent != "" {
		headers["User-Agent"] = opts.UserAgent
	}
	return &Client{
		Client:  integrations.NewClient(opts.HTTPClient, headers),
		baseURL: strings.TrimRight(base, "/"),
	}
}

// BaseURL returns the registry root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchPackage issues GET <base>/<name>/latest. The name is used verbatim
// apart from path escaping, so scoped names like "@babel/core" are sent as
// "@babel%2Fcore".
//
// Failures carry PACKAGE_NOT_FOUND (404), NETWORK_ERROR (transport or other
// status) or INVALID_RESPONSE (undecodable body); the integrations sentinels
// stay reachable through errors.Is. Context errors are returned as is.
func (c *Client) FetchPackage(ctx context.Context, pkg string) (*PackageInfo, error) {
	var data latestResponse
	if err := c.Get(ctx, c.LatestURL(pkg), &data); err != nil {
		switch {
		case errors.Is(err, integrations.ErrNotFound):
			return nil, deperrors.Wrap(deperrors.ErrCodePackageNotFound, err, "npm package %s", pkg)
		case errors.Is(err, integrations.ErrNetwork):
			return nil, deperrors.Wrap(deperrors.ErrCodeNetwork, err, "fetch npm package %s", pkg)
		}
		return nil, err
	}

	deps := []string(data.Dependencies)
	if deps == nil {
		deps = []string{}
	}
	return &PackageInfo{
		Name:         data.Name,
		Version:      data.Version,
		Description:  data.Description,
		Dependencies: deps,
	}, nil
}

// LatestURL returns the metadata URL for the latest version of pkg.
func (c *Client) LatestURL(pkg string) string {
	return c.baseURL + "/" + url.PathEscape(pkg) + "/latest"
}

type latestResponse struct {
	Name         string      `json:"name"`
	Version      string      `json:"version"`
	Description  string      `json:"description"`
	Dependencies orderedKeys `json:"dependencies"`
}
