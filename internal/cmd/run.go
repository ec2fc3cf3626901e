package cmd

import (
	"context"
	"fmt"

	"github.com/justrnr500/mgutil/internal/bookmark"
	"github.com/justrnr500/mgutil/internal/logger"
)

func init() {
	register("c", action{name: "command", needsAlias: true, run: runCommand})
}

// runCommand runs every command bookmark matching alias, ignoring case.
func runCommand(ctx context.Context, a *app, alias, value string) error {
	matches := bookmark.OfKind(bookmark.FindAll(a.bookmarks, alias), bookmark.KindCommand)
	if len(matches) == 0 {
		fmt.Fprintf(a.out, "no command bookmark matches %s\n", alias)
		return nil
	}

	for _, b := range matches {
		fmt.Fprintf(a.out, "match %s, run %s\n", b.Alias, b.Value)
		if err := a.launcher.Run(ctx, b.Value); err != nil {
			a.log.Warn("command failed", logger.String("alias", b.Alias), logger.Error(err))
			fmt.Fprintf(a.out, "command failed: %v\n", err)
		}
	}

	return nil
}
