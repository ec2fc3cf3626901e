// Package launcher opens terminals at bookmarked paths and runs bookmarked commands.
package launcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/justrnr500/mgutil/internal/logger"
)

// ErrEmptyCommand is returned when no program is configured.
var ErrEmptyCommand = errors.New("empty command")

// Launcher spawns external processes for path and command bookmarks.
type Launcher struct {
	terminal []string
	shell    []string
	runner   Runner
	log      logger.Logger
}

// New creates a launcher. terminal is invoked with the path appended,
// shell with the command appended. A nil runner uses ExecRunner.
func New(terminal, shell []string, runner Runner, log logger.Logger) *Launcher {
	if runner == nil {
		runner = ExecRunner{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Launcher{
		terminal: terminal,
		shell:    shell,
		runner:   runner,
		log:      log,
	}
}

// Open starts a new terminal rooted at path and waits for the launch
// command to finish. Its output is discarded.
func (l *Launcher) Open(ctx context.Context, path string) error {
	argv, err := withArg(l.terminal, path)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	l.log.Debug("opening terminal", logger.Strings("argv", argv))
	if err := l.runner.Run(ctx, argv, false); err != nil {
		return fmt.Errorf("open terminal at %s: %w", path, err)
	}
	return nil
}

// Run executes command through the configured shell with the current
// terminal attached.
func (l *Launcher) Run(ctx context.Context, command string) error {
	argv, err := withArg(l.shell, command)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	l.log.Debug("running command", logger.Strings("argv", argv))
	if err := l.runner.Run(ctx, argv, true); err != nil {
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}

func withArg(base []string, arg string) ([]string, error) {
	if len(base) == 0 || base[0] == "" {
		return nil, ErrEmptyCommand
	}
	argv := make([]string, 0, len(base)+1)
	argv = append(argv, base...)
	return append(argv, arg), nil
}
