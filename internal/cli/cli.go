// Package cli implements the depviz command-line interface.
//
// depviz reads a config file naming a root npm package, resolves its
// transitive dependencies depth-first against the registry, writes the graph
// as Graphviz DOT to the configured output path and prints it to stdout.
// Status lines, spinner and logs go to stderr so stdout can be piped.
package cli

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depviz/pkg/buildinfo"
	"github.com/matzehuels/depviz/pkg/integrations/npm"
)

const appName = "depviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer // DOT text only
	Stderr io.Writer // status lines, spinner, browser
}

// New creates a CLI that logs to stderr at level.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the depviz command.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		opts    runOptions
		formats string
	)

	root := &cobra.Command{
		Use:   appName + " <config>",
		Short: "depviz draws the dependency graph of an npm package",
		Long: `depviz resolves the transitive dependencies of an npm package and writes
them as a Graphviz DOT graph.

The config file names the package and the output path. CSV files need the
header graphviz_path,package_name,output_path and one data row; .toml and
.yaml files carry the same three keys.`,
		Example: `  depviz config.csv
  depviz config.toml --render svg,png
  depviz config.csv --registry https://registry.npmmirror.com --timeout 30s`,
		Args:         cobra.ExactArgs(1),
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.formats, err = parseFormats(formats); err != nil {
				return err
			}
			return c.run(cmd.Context(), args[0], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	f := root.Flags()
	f.StringVar(&opts.registry, "registry", npm.DefaultBaseURL, "npm registry base URL")
	f.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout, e.g. 30s (0 waits forever)")
	f.StringVar(&formats, "render", "", "also write the graph as "+strings.Join(allFormats, ", ")+" (comma-separated)")
	f.BoolVar(&opts.browse, "browse", false, "browse the resolved packages interactively")

	return root
}

type runOptions struct {
	registry string
	timeout  time.Duration
	formats  []string
	browse   bool
}
