// Package dot turns resolved dependency graphs into Graphviz DOT text and,
// optionally, into images.
//
// # Serialization
//
// [Serialize] is a pure function over a [deps.Graph]:
//
//	digraph dependencies {
//	    "react" -> "loose-envify";
//	    "loose-envify" -> "js-tokens";
//	}
//
// Edges follow the graph's key order, then each key's dependency order.
// Packages with no dependencies produce no statement of their own, and names
// are not escaped.
//
// # Rendering
//
// [RenderSVG] and [RenderPNG] run the DOT text through
// [github.com/goccy/go-graphviz], an embedded Graphviz build, so no dot
// binary needs to be installed.
//
// [deps.Graph]: github.com/matzehuels/depviz/pkg/deps.Graph
package dot
