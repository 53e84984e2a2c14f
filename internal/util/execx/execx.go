// Package execx runs external binaries the way the drivers need: stdout
// passed through to the user, stderr captured into the returned error.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Run executes the binary in dir and blocks until it exits. On failure the
// returned error carries the invocation and whatever the binary wrote to
// stderr.
func Run(ctx context.Context, dir, binary string, args ...string) error {
	// #nosec G204 - binary comes from validated configuration, not user input
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s %v: %w: %s", binary, args, err, stderr.String())
		}
		return fmt.Errorf("%s %v: %w", binary, args, err)
	}
	return nil
}
