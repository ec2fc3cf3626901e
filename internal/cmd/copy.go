package cmd

import (
	"context"
	"fmt"

	"github.com/justrnr500/mgutil/internal/bookmark"
	"github.com/justrnr500/mgutil/internal/logger"
)

func init() {
	register("y", action{name: "copy", needsAlias: true, run: runCopy})
}

// runCopy puts the value of the first bookmark matching alias on the clipboard.
// Without a clipboard the value is printed instead.
func runCopy(ctx context.Context, a *app, alias, value string) error {
	b, ok := bookmark.FindFirst(a.bookmarks, alias)
	if !ok {
		fmt.Fprintf(a.out, "no bookmark matches %s\n", alias)
		return nil
	}

	if err := a.copyText(b.Value); err != nil {
		a.log.Warn("could not copy to clipboard", logger.String("alias", b.Alias), logger.Error(err))
		fmt.Fprintln(a.out, b.Value)
		return nil
	}

	fmt.Fprintf(a.out, "copied %s to clipboard\n", b.Value)
	return nil
}
