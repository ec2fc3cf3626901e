package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/justrnr500/mgutil/internal/bookmark"
	"github.com/justrnr500/mgutil/internal/config"
	"github.com/justrnr500/mgutil/internal/launcher"
	"github.com/justrnr500/mgutil/internal/logger"
	"github.com/justrnr500/mgutil/internal/storage"
)

// app holds everything an action needs for one invocation.
// bookmarks is read once at startup and not refreshed after mutations.
type app struct {
	paths     *config.Paths
	cfg       *config.Config
	store     *storage.Store
	bookmarks []bookmark.Bookmark
	launcher  *launcher.Launcher
	log       logger.Logger
	out       io.Writer

	copyText func(string) error
	getwd    func() (string, error)
}

// loadApp resolves the home directory, initializes the bookmark file and
// loads all bookmarks. An invalid config is fatal unless the action for
// code reports on it, in which case defaults are used.
func loadApp(out io.Writer, code, logLevel string) (*app, error) {
	paths, err := config.HomePaths()
	if err != nil {
		return nil, err
	}

	cfg, cfgErr := config.LoadOrDefault(paths)
	if cfgErr != nil {
		if !actions[code].reportsConfig {
			return nil, fmt.Errorf("load config: %w", cfgErr)
		}
		cfg = config.Default()
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	if cfgErr != nil {
		log.Warn("config invalid, using defaults", logger.Error(cfgErr))
	}

	a, err := newApp(paths, cfg, out, log, nil)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return a, nil
}

// newApp wires an app for the installation at paths. A nil runner spawns
// real processes.
func newApp(paths *config.Paths, cfg *config.Config, out io.Writer, log logger.Logger, runner launcher.Runner) (*app, error) {
	if err := storage.EnsureInitialized(paths.Root, paths.Bookmarks); err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	store := storage.NewStore(paths.Bookmarks)
	bookmarks, err := store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	log.Debug("bookmarks loaded", logger.String("file", store.Path()), logger.Int("count", len(bookmarks)))

	return &app{
		paths:     paths,
		cfg:       cfg,
		store:     store,
		bookmarks: bookmarks,
		launcher:  launcher.New(cfg.Launcher.Terminal, cfg.Launcher.Shell, runner, log),
		log:       log,
		out:       out,
		copyText:  clipboard.WriteAll,
		getwd:     os.Getwd,
	}, nil
}

func (a *app) close() {
	a.log.Sync()
}

// openIndex opens the search index as it was left by the last rebuild.
func (a *app) openIndex() (*storage.Index, error) {
	idx, err := storage.OpenIndex(a.paths.Index)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return idx, nil
}

// rebuildIndex replaces the index rows with the loaded bookmarks.
func (a *app) rebuildIndex(idx *storage.Index) error {
	if err := idx.Rebuild(a.bookmarks); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	a.log.Debug("index rebuilt", logger.String("file", idx.Path()), logger.Int("count", len(a.bookmarks)))
	return nil
}
