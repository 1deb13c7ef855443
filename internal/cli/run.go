package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/depviz/pkg/buildinfo"
	"github.com/matzehuels/depviz/pkg/config"
	"github.com/matzehuels/depviz/pkg/deps"
	"github.com/matzehuels/depviz/pkg/deps/javascript"
	"github.com/matzehuels/depviz/pkg/errors"
	"github.com/matzehuels/depviz/pkg/integrations"
	"github.com/matzehuels/depviz/pkg/integrations/npm"
	pkgio "github.com/matzehuels/depviz/pkg/io"
	"github.com/matzehuels/depviz/pkg/observability"
	"github.com/matzehuels/depviz/pkg/render/dot"
)

const formatJSON = "json"

var allFormats = []string{dot.FormatSVG, dot.FormatPNG, formatJSON}

// parseFormats parses the comma-separated --render value.
func parseFormats(s string) ([]string, error) {
	var formats []string
	for f := range strings.SplitSeq(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(formats, f) {
			continue
		}
		if !slices.Contains(allFormats, f) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"unsupported format %q (available: %s)", f, strings.Join(allFormats, ", "))
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// siblingPath returns output with its extension replaced by format.
func siblingPath(output, format string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
}

func (c *CLI) run(ctx context.Context, path string, opts runOptions) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	graphvizPath, pkg, output := cfg.Fields()
	c.Logger.Debug("loaded config", "file", path, "package", pkg, "output", output)
	if graphvizPath != "" {
		c.Logger.Debug("graphviz_path is informational; rendering uses the embedded engine", "path", graphvizPath)
	}
	if err := errors.ValidateNpmPackageName(pkg); err != nil {
		c.Logger.Warn("package name does not look like an npm name", "package", pkg)
	}
	if opts.registry != "" {
		if err := errors.ValidateURL(opts.registry); err != nil {
			return err
		}
	}

	res, reasons, err := c.resolve(ctx, pkg, opts)
	if err != nil {
		return err
	}

	src := dot.Serialize(res.Graph)
	if err := os.WriteFile(output, []byte(src), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}
	fmt.Fprintln(c.Stdout, src)
	printFile(c.Stderr, output)

	for _, format := range opts.formats {
		if err := c.writeFormat(ctx, pkg, res, src, siblingPath(output, format), format); err != nil {
			return err
		}
	}

	if opts.browse {
		return c.browse(ctx, pkg, res, reasons)
	}
	return nil
}

// resolve walks the graph from pkg with a spinner showing progress. It also
// returns the error code of every failed lookup.
func (c *CLI) resolve(ctx context.Context, pkg string, opts runOptions) (*deps.Result, map[string]errors.Code, error) {
	spinner := newSpinnerWithContext(ctx, c.Stderr, "Resolving "+pkg)
	stats := newStats(func(fetched int) {
		spinner.SetMessage(fmt.Sprintf("Resolving %s (%d packages)", pkg, fetched))
	})
	observability.SetResolveHooks(stats)
	observability.SetHTTPHooks(stats)
	defer observability.Reset()

	resolver := javascript.NewResolver(npm.Options{
		BaseURL:    opts.registry,
		HTTPClient: integrations.NewHTTPClient(opts.timeout),
		UserAgent:  buildinfo.UserAgent(),
	})
	logf := func(format string, args ...any) {
		spinner.Interrupt(func() { c.Logger.Warnf(format, args...) })
	}

	prog := newProgress(c.Logger)
	spinner.Start()
	res, err := resolver.Resolve(ctx, pkg, deps.Options{Logger: logf})
	if err != nil {
		spinner.Stop()
		return nil, nil, err
	}

	if res.Graph.Len() == 0 {
		spinner.StopWithError(c.Stderr, fmt.Sprintf("Could not resolve %s", pkg))
	} else {
		spinner.StopWithSuccess(c.Stderr, "Resolved "+StyleHighlight.Render(pkg))
	}
	prog.done("resolved " + pkg)
	c.Logger.Debug("registry traffic", "requests", stats.requests, "transport_errors", stats.failures)
	printStats(c.Stderr, res.Graph.Len(), res.Graph.EdgeCount(), stats.requests, len(res.Failed))
	if len(res.Failed) > 0 {
		failed := make([]string, len(res.Failed))
		for i, name := range res.Failed {
			failed[i] = fmt.Sprintf("%s (%s)", name, stats.reasons[name])
		}
		printWarning(c.Stderr, "%d %s could not be fetched: %s",
			len(res.Failed), plural(len(res.Failed), "package", "packages"), strings.Join(failed, ", "))
	}
	return res, stats.reasons, nil
}

func (c *CLI) writeFormat(ctx context.Context, pkg string, res *deps.Result, src, path, format string) error {
	if format == formatJSON {
		if err := pkgio.ExportJSON(pkg, res, path); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "export json")
		}
		printFile(c.Stderr, path)
		return nil
	}

	spinner := newSpinnerWithContext(ctx, c.Stderr, "Rendering "+format)
	spinner.Start()
	data, err := dot.Render(ctx, src, format)
	spinner.Stop()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	printFile(c.Stderr, path)
	return nil
}

func (c *CLI) browse(ctx context.Context, pkg string, res *deps.Result, reasons map[string]errors.Code) error {
	p := tea.NewProgram(newBrowser(pkg, res, reasons),
		tea.WithContext(ctx),
		tea.WithOutput(c.Stderr),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
