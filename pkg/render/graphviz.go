package render

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dfscope/pkg/errors"
)

// Graphviz renders in-process via goccy/go-graphviz.
// No external binary is needed, so the capability probe only has to
// confirm the embedded engine initializes.
type Graphviz struct{}

// NewGraphviz creates the in-process engine.
func NewGraphviz() *Graphviz { return &Graphviz{} }

// Name implements Engine.
func (e *Graphviz) Name() string { return "graphviz" }

// Available implements Engine.
func (e *Graphviz) Available(ctx context.Context) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRendererUnavailable, err, "init embedded graphviz")
	}
	return gv.Close()
}

// Render implements Engine.
func (e *Graphviz) Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererUnavailable, err, "init embedded graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat(format), &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

func gvFormat(f Format) graphviz.Format {
	if f == FormatSVG {
		return graphviz.SVG
	}
	return graphviz.PNG
}

// Ensure Graphviz implements Engine.
var _ Engine = (*Graphviz)(nil)
