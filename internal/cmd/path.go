package cmd

import (
	"context"
	"fmt"

	"github.com/justrnr500/mgutil/internal/bookmark"
	"github.com/justrnr500/mgutil/internal/logger"
)

func init() {
	register("p", action{name: "path", needsAlias: true, run: runPath})
}

// runPath opens a terminal for every bookmark matching alias, ignoring case.
// Command bookmarks are skipped. A failed launch is reported and the
// remaining matches are still tried.
func runPath(ctx context.Context, a *app, alias, value string) error {
	var matches []bookmark.Bookmark
	for _, b := range bookmark.FindAll(a.bookmarks, alias) {
		if !b.IsCommand() {
			matches = append(matches, b)
		}
	}
	if len(matches) == 0 {
		fmt.Fprintf(a.out, "no bookmark matches %s\n", alias)
		return nil
	}

	for _, b := range matches {
		fmt.Fprintf(a.out, "match %s, open new terminal at %s\n", b.Alias, b.Value)
		if err := a.launcher.Open(ctx, b.Value); err != nil {
			a.log.Warn("launch failed", logger.String("alias", b.Alias), logger.Error(err))
			fmt.Fprintf(a.out, "failed to open terminal: %v\n", err)
		}
	}

	return nil
}
