package render

import (
	"os/exec"
	"runtime"
)

// display opens a saved chart in the platform image viewer. The chart is
// already on disk, so a viewer failure is a warning, never an error.
func (r *Renderer) display(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		r.logger.Warn("could not open image viewer", "path", path, "error", err)
		return
	}
	// Detach: the viewer outlives the run and its exit status is irrelevant.
	go func() { _ = cmd.Wait() }()
}
