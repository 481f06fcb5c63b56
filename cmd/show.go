package cmd

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// previewPath returns the file of a chart only rendered to be shown. It is
// overwritten by every run.
func previewPath(name string) string {
	return filepath.Join(os.TempDir(), "hw01-"+name)
}

// viewer returns the command opening a file with the platform viewer.
func viewer(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// show opens an image without waiting for the viewer. Failures are only logged.
func show(path string) {
	cmd := viewer(path)
	if err := cmd.Start(); err != nil {
		slog.Warn("unable to show plot window", "path", path, "error", err)
		return
	}
	slog.Debug("viewer started", "command", cmd.Args)
	if err := cmd.Process.Release(); err != nil {
		slog.Warn("releasing viewer", "error", err)
	}
}
