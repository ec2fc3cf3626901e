package cmd

import (
	"context"
	"fmt"

	"github.com/justrnr500/mgutil/internal/logger"
)

func init() {
	register("d", action{name: "delete", needsAlias: true, run: runDelete})
}

// runDelete removes every bookmark whose alias matches exactly, case included.
func runDelete(ctx context.Context, a *app, alias, value string) error {
	removed, err := a.store.RemoveByAlias(alias)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	a.log.Debug("bookmarks removed", logger.String("alias", alias), logger.Int("count", removed))
	if removed == 0 {
		fmt.Fprintf(a.out, "no bookmark with alias %s\n", alias)
		return nil
	}

	fmt.Fprintf(a.out, "removed %d bookmark(s) with alias %s\n", removed, alias)
	return nil
}
