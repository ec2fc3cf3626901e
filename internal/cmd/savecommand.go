package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/justrnr500/mgutil/internal/bookmark"
	"github.com/justrnr500/mgutil/internal/logger"
)

func init() {
	register("sc", action{name: "save command", needsAlias: true, run: runSaveCommand})
}

func runSaveCommand(ctx context.Context, a *app, alias, value string) error {
	if value == "" {
		fmt.Fprintf(a.out, "the command save command (sc) needs a value\n")
		return nil
	}

	b := bookmark.Bookmark{Alias: alias, Kind: bookmark.KindCommand, Value: value}
	if err := b.Validate(); err != nil {
		fmt.Fprintf(a.out, "cannot save %s: %v\n", alias, err)
		return nil
	}

	fmt.Fprintf(a.out, "add command bookmark %s: %s\n", alias, value)
	warnDelimiter(a, value)

	if err := a.store.Append(b); err != nil {
		return fmt.Errorf("save bookmark: %w", err)
	}

	a.log.Debug("bookmark appended", logger.String("alias", alias), logger.String("kind", string(b.Kind)))
	return nil
}

// warnDelimiter tells the user that value will not read back unchanged.
func warnDelimiter(a *app, value string) {
	if strings.Contains(value, bookmark.Delimiter) {
		fmt.Fprintf(a.out, "warning: %q will lose its %q characters when read back\n", value, bookmark.Delimiter)
	}
}
