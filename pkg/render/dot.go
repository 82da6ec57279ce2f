package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/dfscope/pkg/dfs"
	"github.com/matzehuels/dfscope/pkg/graph"
)

// Palette maps each edge kind to a Graphviz color.
type Palette struct {
	Tree    string `toml:"tree"`
	Back    string `toml:"back"`
	Forward string `toml:"forward"`
	Cross   string `toml:"cross"`
}

// DefaultPalette returns the stock edge colors.
func DefaultPalette() Palette {
	return Palette{
		Tree:    "black",
		Back:    "red",
		Forward: "blue",
		Cross:   "dimgray",
	}
}

// Color returns the palette entry for k.
func (p Palette) Color(k dfs.Kind) string {
	switch k {
	case dfs.Tree:
		return p.Tree
	case dfs.Back:
		return p.Back
	case dfs.Forward:
		return p.Forward
	}
	return p.Cross
}

// Options configures DOT generation.
type Options struct {
	// Palette supplies the per-kind edge colors. Zero fields fall back
	// to the defaults.
	Palette Palette

	// Labels annotates each edge with its kind name in addition to the
	// color, which keeps the classification readable in monochrome.
	Labels bool
}

func (o Options) palette() Palette {
	def := DefaultPalette()
	if o.Palette.Tree == "" {
		o.Palette.Tree = def.Tree
	}
	if o.Palette.Back == "" {
		o.Palette.Back = def.Back
	}
	if o.Palette.Forward == "" {
		o.Palette.Forward = def.Forward
	}
	if o.Palette.Cross == "" {
		o.Palette.Cross = def.Cross
	}
	return o.Palette
}

// ToDOT converts a classified graph to Graphviz DOT text.
//
// Every vertex 1..N is emitted, isolated ones included, then every
// adjacency entry with a color (and optionally a label) for its kind.
// Output order follows the adjacency order, so given a sorted graph the
// document is deterministic.
func ToDOT(g *graph.Graph, forest *dfs.Forest, opts Options) string {
	pal := opts.palette()

	var buf bytes.Buffer
	buf.WriteString("digraph dfs {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	buf.WriteString("\n")

	for v := 1; v <= g.VertexCount(); v++ {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	for _, e := range forest.ClassifyAll(g) {
		if opts.Labels {
			fmt.Fprintf(&buf, "  %d -> %d [color=%s, label=%q, fontsize=10];\n",
				e.U, e.V, pal.Color(e.Kind), e.Kind.String())
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d [color=%s];\n", e.U, e.V, pal.Color(e.Kind))
	}

	buf.WriteString("}\n")
	return buf.String()
}
