package cmd

import (
	"context"
	"fmt"

	"github.com/justrnr500/mgutil/internal/bookmark"
)

func init() {
	register("l", action{name: "list", run: runList})
}

// runList prints bookmarks in file order. A non-empty alias is used as a
// glob filter.
func runList(ctx context.Context, a *app, alias, value string) error {
	bookmarks, err := bookmark.FilterGlob(a.bookmarks, alias)
	if err != nil {
		fmt.Fprintf(a.out, "%v\n", err)
		return nil
	}

	fmt.Fprintln(a.out, "known bookmarks:")
	for _, b := range bookmarks {
		fmt.Fprintf(a.out, "alias '%s' has type '%s' and value %s\n", b.Alias, b.Kind, b.Value)
	}
	fmt.Fprintln(a.out, "path bookmarks can be used with:    'mgutil --command p --alias <ALIAS>'")
	fmt.Fprintln(a.out, "command bookmarks can be used with: 'mgutil --command c --alias <ALIAS>'")
	return nil
}
