package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/dfscope/pkg/dfs"
	"github.com/matzehuels/dfscope/pkg/errors"
	"github.com/matzehuels/dfscope/pkg/graph"
)

func buildGraph(t *testing.T, input string) (*graph.Graph, *dfs.Forest) {
	t.Helper()
	g, err := graph.ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return g, dfs.Compute(g)
}

func TestToDOT(t *testing.T) {
	g, f := buildGraph(t, "4 4\n1 2\n2 3\n3 1\n1 3\n")

	dot := ToDOT(g, f, Options{})

	for _, want := range []string{
		"digraph dfs {",
		"  1;", "  2;", "  3;", "  4;", // isolated vertex 4 included
		"  1 -> 2 [color=black];",
		"  2 -> 3 [color=black];",
		"  1 -> 3 [color=blue];",
		"  3 -> 1 [color=red];",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTLabels(t *testing.T) {
	g, f := buildGraph(t, "2 2\n1 2\n2 1\n")

	dot := ToDOT(g, f, Options{Labels: true})

	if !strings.Contains(dot, `label="Tree"`) || !strings.Contains(dot, `label="Back"`) {
		t.Errorf("labeled DOT missing kind labels:\n%s", dot)
	}
}

func TestToDOTCustomPalette(t *testing.T) {
	g, f := buildGraph(t, "2 1\n1 2\n")

	dot := ToDOT(g, f, Options{Palette: Palette{Tree: "forestgreen"}})

	if !strings.Contains(dot, "[color=forestgreen]") {
		t.Errorf("custom tree color not applied:\n%s", dot)
	}
}

func TestToDOTEmptyGraph(t *testing.T) {
	g, f := buildGraph(t, "0 0\n")

	dot := ToDOT(g, f, Options{})

	if !strings.HasPrefix(dot, "digraph dfs {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty graph should still produce a valid document:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	const input = "5 6\n3 1\n1 2\n2 3\n4 5\n5 4\n1 4\n"
	g1, f1 := buildGraph(t, input)
	g2, f2 := buildGraph(t, input)

	if ToDOT(g1, f1, Options{}) != ToDOT(g2, f2, Options{}) {
		t.Error("identical input must produce identical DOT text")
	}
}

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		kind dfs.Kind
		want string
	}{
		{dfs.Tree, "black"},
		{dfs.Back, "red"},
		{dfs.Forward, "blue"},
		{dfs.Cross, "dimgray"},
	}
	for _, tt := range tests {
		if got := p.Color(tt.kind); got != tt.want {
			t.Errorf("Color(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat(FormatPNG); err != nil {
		t.Errorf("png should be valid: %v", err)
	}
	if err := ValidateFormat(FormatSVG); err != nil {
		t.Errorf("svg should be valid: %v", err)
	}
	if err := ValidateFormat(Format("gif")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("gif should be rejected with INVALID_INPUT, got %v", err)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantErr  bool
	}{
		{"", "graphviz", false},
		{"graphviz", "graphviz", false},
		{"dot", "dot", false},
		{"inkscape", "", true},
	}

	for _, tt := range tests {
		e, err := ByName(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ByName(%q) should fail", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ByName(%q): %v", tt.name, err)
			continue
		}
		if e.Name() != tt.wantName {
			t.Errorf("ByName(%q).Name() = %q, want %q", tt.name, e.Name(), tt.wantName)
		}
	}
}
