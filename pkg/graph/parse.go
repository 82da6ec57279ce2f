package graph

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/dfscope/pkg/errors"
)

// ParseFile reads the edge-list format from a file.
// A missing file maps to ErrCodeFileNotFound; everything else follows
// [ParseReader] semantics.
func ParseFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader decodes the edge-list format:
//
//	line 1:      "<N> <M>"   vertex count and edge count
//	lines 2..M+1: "<u> <v>"  one directed edge per line
//
// Every failure is an INVALID_INPUT error naming the offending line, and no
// partial graph escapes: the caller either gets a complete, adjacency-sorted
// graph or an error. Blank lines are not permitted inside the edge block.
func ParseReader(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "input is empty")
	}

	n, m, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	g, err := New(n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "header")
	}

	for i := 0; i < m; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
			}
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"edge list ended after %d of %d edges", i, m)
		}
		u, v, err := parseEdgeLine(sc.Text(), i+2)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err,
				"line %d: edge %d -> %d", i+2, u, v)
		}
	}

	g.SortAdjacency()
	return g, nil
}

// parseHeader decodes the "<N> <M>" header line.
func parseHeader(line string) (n, m int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"line 1: header must be \"<vertices> <edges>\", got %q", line)
	}
	n, err = parseCount(fields[0], "vertex count")
	if err != nil {
		return 0, 0, err
	}
	m, err = parseCount(fields[1], "edge count")
	if err != nil {
		return 0, 0, err
	}
	return n, m, nil
}

func parseCount(tok, what string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "line 1: %s %q is not an integer", what, tok)
	}
	if v < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "line 1: %s must not be negative, got %d", what, v)
	}
	return v, nil
}

// parseEdgeLine decodes one "<u> <v>" line; lineNo is 1-based for messages.
func parseEdgeLine(line string, lineNo int) (u, v int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"line %d: edge must be \"<from> <to>\", got %q", lineNo, line)
	}
	u, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"line %d: source vertex %q is not an integer", lineNo, fields[0])
	}
	v, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"line %d: target vertex %q is not an integer", lineNo, fields[1])
	}
	return u, v, nil
}

// ParseVertexToken decodes a query vertex id without a range check.
// It lets callers reject malformed queries before a graph exists to
// check against. Failures are INVALID_QUERY errors.
func ParseVertexToken(tok string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidQuery, "query vertex %q is not an integer", tok)
	}
	return v, nil
}

// ParseVertex decodes a query vertex id and checks it against the graph.
// Failures are INVALID_QUERY errors: they abort the run before any
// traversal work happens.
func ParseVertex(tok string, g *Graph) (int, error) {
	v, err := ParseVertexToken(tok)
	if err != nil {
		return 0, err
	}
	if !g.HasVertex(v) {
		return 0, errors.New(errors.ErrCodeInvalidQuery,
			"query vertex %d outside [1, %d]", v, g.VertexCount())
	}
	return v, nil
}
