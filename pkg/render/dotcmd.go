package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/dfscope/pkg/errors"
)

// DotCommand renders by shelling out to a Graphviz dot binary.
//
// The probe runs "dot -V"; rendering runs "dot -T<format> <in> -o <out>"
// over uuid-named temp files so concurrent invocations never collide.
// No timeout is applied: a hanging dot hangs the run, which is acceptable
// for a single-shot batch tool.
type DotCommand struct {
	// Binary is the executable name or path; defaults to "dot".
	Binary string
}

// NewDotCommand creates an engine backed by the dot binary on PATH.
func NewDotCommand() *DotCommand { return &DotCommand{Binary: "dot"} }

// Name implements Engine.
func (e *DotCommand) Name() string { return "dot" }

func (e *DotCommand) binary() string {
	if e.Binary == "" {
		return "dot"
	}
	return e.Binary
}

// Available implements Engine by probing "dot -V".
func (e *DotCommand) Available(ctx context.Context) error {
	if _, err := exec.LookPath(e.binary()); err != nil {
		return errors.Wrap(errors.ErrCodeRendererUnavailable, err,
			"%s not found on PATH (install graphviz)", e.binary())
	}
	out, err := exec.CommandContext(ctx, e.binary(), "-V").CombinedOutput()
	if err != nil {
		return errors.Wrap(errors.ErrCodeRendererUnavailable, err,
			"%s -V failed: %s", e.binary(), strings.TrimSpace(string(out)))
	}
	return nil
}

// Render implements Engine.
func (e *DotCommand) Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	base := filepath.Join(os.TempDir(), "dfscope-"+uuid.NewString())
	srcPath := base + ".dot"
	outPath := base + "." + string(format)
	defer os.Remove(srcPath)
	defer os.Remove(outPath)

	if err := os.WriteFile(srcPath, []byte(dot), 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", srcPath)
	}

	cmd := exec.CommandContext(ctx, e.binary(), "-T"+string(format), srcPath, "-o", outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err,
			"%s: %s", strings.Join(cmd.Args, " "), strings.TrimSpace(string(out)))
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "read %s", outPath)
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "%s produced an empty %s file", e.binary(), format)
	}
	return data, nil
}

// Ensure DotCommand implements Engine.
var _ Engine = (*DotCommand)(nil)

// ByName returns the engine registered under name.
func ByName(name string) (Engine, error) {
	switch name {
	case "", "graphviz":
		return NewGraphviz(), nil
	case "dot":
		return NewDotCommand(), nil
	}
	return nil, fmt.Errorf("unknown render engine: %q (must be one of: graphviz, dot)", name)
}
