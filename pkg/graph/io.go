package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dfscope/pkg/errors"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// Document is the JSON wire form of a graph.
// Edges appear in adjacency order, which after SortAdjacency is the
// deterministic order every run produces.
type Document struct {
	Vertices int        `json:"vertices"`
	Edges    []EdgePair `json:"edges"`
}

// EdgePair is a single directed edge in a [Document].
type EdgePair struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// MarshalGraph converts a graph to indented JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a graph as JSON to an io.Writer.
func WriteGraph(g *Graph, w io.Writer) error {
	doc := Document{Vertices: g.VertexCount(), Edges: make([]EdgePair, 0, g.EdgeCount())}
	for u := 1; u <= g.VertexCount(); u++ {
		for _, v := range g.Neighbors(u) {
			doc.Edges = append(doc.Edges, EdgePair{From: u, To: v})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON graph document.
// Out-of-range endpoints are rejected the same way the edge-list parser
// rejects them; the returned graph is adjacency-sorted and ready to traverse.
func ReadGraph(r io.Reader) (*Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph document")
	}

	g, err := New(doc.Vertices)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "graph document")
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %d -> %d", e.From, e.To)
		}
	}
	g.SortAdjacency()
	return g, nil
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadGraph(f)
}
