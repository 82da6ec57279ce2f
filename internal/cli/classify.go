package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dfscope/pkg/dfs"
	"github.com/matzehuels/dfscope/pkg/graph"
)

// classifyOpts holds the command-line flags for the classify command.
type classifyOpts struct {
	output      string // write the parsed graph as JSON to this path
	interactive bool   // pick query vertices with a TUI list
	noTree      bool   // suppress the tree edge section
}

// classifyCommand creates the classify command.
//
// With no query vertices it reports the whole graph: the DFS tree edges
// in discovery order followed by every edge's classification. With query
// vertices (or --interactive) the classification section covers only the
// outgoing edges of the selected vertices; the tree edge section still
// prints unless --no-tree suppresses it.
func (c *CLI) classifyCommand() *cobra.Command {
	opts := classifyOpts{}

	cmd := &cobra.Command{
		Use:   "classify <file> [vertex...]",
		Short: "Classify every edge of a directed graph via depth-first search",
		Long: `Classify every edge of a directed graph via depth-first search.

The input file starts with a "<vertices> <edges>" header line followed by
one "<from> <to>" line per edge. Vertices are numbered 1..N. The DFS
visits roots in ascending order and neighbors in sorted order, so the
classification is deterministic for a given input.

Each edge is reported as one of:
  Tree     the edge discovered its head during the traversal
  Back     the edge points to an ancestor still being explored
  Forward  the edge points to an already finished descendant
  Cross    everything else (between subtrees or trees)

Examples:
  dfscope classify graph.txt          # full report
  dfscope classify graph.txt 3 7      # outgoing edges of vertices 3 and 7
  dfscope classify graph.txt -i       # pick vertices interactively`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runClassify(cmd.Context(), args[0], args[1:], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the parsed graph as JSON")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "select query vertices interactively")
	cmd.Flags().BoolVar(&opts.noTree, "no-tree", false, "skip the tree edge section of the report")

	return cmd
}

// runClassify parses the input, runs the DFS and prints the report.
// Query errors are fatal and checked as early as possible: syntax before
// the input file is touched, range before the traversal runs.
func (c *CLI) runClassify(ctx context.Context, input string, vertexArgs []string, opts *classifyOpts) error {
	if err := checkQuerySyntax(vertexArgs); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	logger.Infof("Classifying %s", input)

	g, err := graph.ParseFile(input)
	if err != nil {
		return err
	}
	queries, err := resolveQueries(g, vertexArgs)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	prog := newProgress(logger)
	forest := dfs.Compute(g)
	prog.done(fmt.Sprintf("Classified %d edges across %d trees", g.EdgeCount(), countTrees(forest)))

	if opts.interactive {
		picked, err := pickVertices(ctx, g, forest)
		if err != nil {
			return err
		}
		queries = append(queries, picked...)
	}

	if len(queries) == 0 {
		fmt.Print(fullReport(g, forest, opts.noTree))
		printStats(g.VertexCount(), g.EdgeCount(), false)
	} else {
		fmt.Print(queryReport(g, forest, queries, opts.noTree))
	}

	if opts.output != "" {
		if err := graph.WriteGraphFile(g, opts.output); err != nil {
			return fmt.Errorf("write output %s: %w", opts.output, err)
		}
		printNewline()
		printSuccess("Graph written")
		printFile(opts.output)
		printNextStep("Render", "dfscope render "+input)
	}

	return nil
}

// countTrees counts the roots of the DFS forest.
func countTrees(f *dfs.Forest) int {
	n := 0
	for v := 1; v <= f.VertexCount(); v++ {
		if f.IsRoot(v) {
			n++
		}
	}
	return n
}

// checkQuerySyntax rejects non-integer query arguments up front, before
// the input file is even opened.
func checkQuerySyntax(args []string) error {
	for _, arg := range args {
		if _, err := graph.ParseVertexToken(arg); err != nil {
			return err
		}
	}
	return nil
}

// resolveQueries parses and validates the query vertex arguments.
func resolveQueries(g *graph.Graph, args []string) ([]int, error) {
	queries := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := graph.ParseVertex(arg, g)
		if err != nil {
			return nil, err
		}
		queries = append(queries, v)
	}
	return queries, nil
}

// pickVertices runs the interactive vertex picker.
func pickVertices(ctx context.Context, g *graph.Graph, forest *dfs.Forest) ([]int, error) {
	model := NewVertexListModel(g, forest)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("vertex picker: %w", err)
	}
	m, ok := final.(VertexListModel)
	if !ok || m.Selected == nil {
		return nil, nil
	}
	return []int{*m.Selected}, nil
}

// treeSection formats the forest's tree edges in discovery order.
func treeSection(forest *dfs.Forest) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Tree edges (discovery order)") + "\n")
	if len(forest.TreeEdges) == 0 {
		b.WriteString("  " + StyleDim.Render("none") + "\n")
	}
	for _, e := range forest.TreeEdges {
		b.WriteString("  " + e.String() + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// fullReport formats tree edges in discovery order, then every edge's
// classification in adjacency order.
func fullReport(g *graph.Graph, forest *dfs.Forest, noTree bool) string {
	var b strings.Builder
	b.WriteString("\n")
	if !noTree {
		b.WriteString(treeSection(forest))
	}

	b.WriteString(StyleTitle.Render("Edge classification") + "\n")
	edges := forest.ClassifyAll(g)
	if len(edges) == 0 {
		b.WriteString("  " + StyleDim.Render("no edges") + "\n")
	}
	for _, e := range edges {
		b.WriteString(edgeLine(e))
	}
	b.WriteString("\n")
	return b.String()
}

// queryReport formats the tree edges followed by the outgoing edges of
// each query vertex.
func queryReport(g *graph.Graph, forest *dfs.Forest, queries []int, noTree bool) string {
	var b strings.Builder
	b.WriteString("\n")
	if !noTree {
		b.WriteString(treeSection(forest))
	}
	for _, u := range queries {
		b.WriteString(StyleTitle.Render(fmt.Sprintf("Vertex %d", u)) +
			StyleDim.Render(fmt.Sprintf("  d=%d f=%d", forest.Discovery[u], forest.Finish[u])) + "\n")
		edges := forest.ClassifyOutgoing(g, u)
		if len(edges) == 0 {
			b.WriteString("  " + StyleDim.Render("no outgoing edges") + "\n")
		}
		for _, e := range edges {
			b.WriteString(edgeLine(e))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// edgeLine formats one classified edge with its kind colored to match
// the rendered output.
func edgeLine(e dfs.Edge) string {
	return fmt.Sprintf("  %d -> %d : %s\n", e.U, e.V, kindStyle(e.Kind).Render(e.Kind.String()))
}

// kindStyle returns the display style for an edge kind.
func kindStyle(k dfs.Kind) lipgloss.Style {
	switch k {
	case dfs.Back:
		return styleKindBack
	case dfs.Forward:
		return styleKindForward
	case dfs.Cross:
		return styleKindCross
	}
	return styleKindTree
}
