// Package pkg holds the libraries behind depviz.
//
// Data flows through them in one direction:
//
//	config file      [config]
//	     ↓
//	npm registry     [integrations], [integrations/npm]
//	     ↓
//	depth-first walk [deps], [deps/javascript]
//	     ↓
//	DOT text         [render/dot]  (+ SVG/PNG, JSON via [io])
//
// [errors] carries the structured error codes shared by all of them and
// [observability] the hooks the CLI uses to count registry traffic.
//
// [config]: github.com/matzehuels/depviz/pkg/config
// [integrations]: github.com/matzehuels/depviz/pkg/integrations
// [integrations/npm]: github.com/matzehuels/depviz/pkg/integrations/npm
// [deps]: github.com/matzehuels/depviz/pkg/deps
// [deps/javascript]: github.com/matzehuels/depviz/pkg/deps/javascript
// [render/dot]: github.com/matzehuels/depviz/pkg/render/dot
// [io]: github.com/matzehuels/depviz/pkg/io
// [errors]: github.com/matzehuels/depviz/pkg/errors
// [observability]: github.com/matzehuels/depviz/pkg/observability
package pkg
