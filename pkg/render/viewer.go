package render

import (
	"os/exec"
	"runtime"

	"github.com/matzehuels/dfscope/pkg/errors"
)

// OpenViewer hands the image at path to the platform's default viewer.
// The viewer is detached: the call returns once the process is started.
// Failures map to VIEWER_FAILED and should be logged, never propagated as
// fatal - the rendered file is on disk either way.
func OpenViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeViewerFailed, err, "launch viewer for %s", path)
	}
	// Detach: the viewer outlives the run.
	go func() { _ = cmd.Wait() }()
	return nil
}
