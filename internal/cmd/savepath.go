package cmd

import (
	"context"
	"fmt"

	"github.com/justrnr500/mgutil/internal/bookmark"
	"github.com/justrnr500/mgutil/internal/config"
	"github.com/justrnr500/mgutil/internal/logger"
)

func init() {
	register("sp", action{name: "save path", needsAlias: true, run: runSavePath})
}

// runSavePath bookmarks value, or the working directory when value is empty.
func runSavePath(ctx context.Context, a *app, alias, value string) error {
	path := value
	if path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return err
		}
		path = expanded
	} else {
		cwd, err := a.getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		path = cwd
	}

	b := bookmark.Bookmark{Alias: alias, Kind: bookmark.KindPath, Value: path}
	if err := b.Validate(); err != nil {
		fmt.Fprintf(a.out, "cannot save %s: %v\n", alias, err)
		return nil
	}

	if value != "" {
		fmt.Fprintf(a.out, "add path bookmark %s with specified path %s\n", alias, path)
	} else {
		fmt.Fprintf(a.out, "add path bookmark %s with current path\n", alias)
	}
	warnDelimiter(a, path)

	if err := a.store.Append(b); err != nil {
		return fmt.Errorf("save bookmark: %w", err)
	}

	a.log.Debug("bookmark appended", logger.String("alias", alias), logger.String("value", path))
	return nil
}
