package docker

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Run executes the invocation with inherited stdio. Interactive runs
// need the caller's terminal, so output is not captured.
func (inv Invocation) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, inv.Bin, inv.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", inv.Bin, inv.Args[0], err)
	}

	return nil
}
