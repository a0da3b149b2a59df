package util

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// ActivateWindow raises the window with the given title so the first field
// can take keyboard focus right away. Only meaningful on macOS; elsewhere the
// osascript invocation fails and the caller should treat that as advisory.
func ActivateWindow(ctx context.Context, windowTitle string) error {
	script := `tell application "System Events" to perform action "AXRaise" of window "` + windowTitle + `" of (first process whose frontmost is true)`

	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return errors.Wrapf(err, "osascript stderr: %s", string(exitErr.Stderr))
		}
		return errors.Wrap(err, "failed to run osascript")
	}
	return nil
}
