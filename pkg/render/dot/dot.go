package dot

import (
	"strings"

	"github.com/matzehuels/depviz/pkg/deps"
)

const (
	header = "digraph dependencies {"
	footer = "}"
	indent = "    "
)

// Serialize renders g as a Graphviz digraph: the header line, one edge
// statement per (package, dependency) pair in key order then list order, and
// the closing brace. Lines are separated by "\n" and there is no newline
// after the closing brace.
//
// Packages without dependencies produce no line. Names are quoted but not
// escaped, so a name containing a double quote yields invalid DOT.
func Serialize(g *deps.Graph) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	if g != nil {
		for name, direct := range g.All() {
			for _, dep := range direct {
				writeEdge(&b, name, dep)
			}
		}
	}
	b.WriteString(footer)
	return b.String()
}

func writeEdge(b *strings.Builder, from, to string) {
	b.WriteString(indent)
	b.WriteByte('"')
	b.WriteString(from)
	b.WriteString(`" -> "`)
	b.WriteString(to)
	b.WriteString(`";`)
	b.WriteByte('\n')
}
