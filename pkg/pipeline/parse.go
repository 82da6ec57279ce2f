package pipeline

import (
	"bytes"
	"os"
	"unicode"

	"github.com/matzehuels/dfscope/pkg/cache"
	"github.com/matzehuels/dfscope/pkg/errors"
	"github.com/matzehuels/dfscope/pkg/graph"
)

// parseInput reads and parses the input file, returning the graph and the
// content hash of the raw bytes. Hashing the bytes rather than the path
// means renaming a file never invalidates its cache entries.
func parseInput(path string) (*graph.Graph, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.New(errors.ErrCodeFileNotFound, "input file not found: %s", path)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read input file: %s", path)
	}

	g, err := decodeGraph(data)
	if err != nil {
		return nil, "", err
	}
	return g, cache.Hash(data), nil
}

// decodeGraph accepts either the plain edge-list format or a JSON graph
// document, sniffed by the first non-space byte.
func decodeGraph(data []byte) (*graph.Graph, error) {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return graph.ReadGraph(bytes.NewReader(data))
	}
	return graph.ParseReader(bytes.NewReader(data))
}
