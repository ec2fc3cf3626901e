package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner starts a process and waits for it.
type Runner interface {
	// Run executes argv. attach connects the process to the current stdio.
	Run(ctx context.Context, argv []string, attach bool) error
}

// ExecRunner runs processes with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, argv []string, attach bool) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	if attach {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
