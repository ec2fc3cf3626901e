package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/justrnr500/mgutil/internal/bookmark"
	"github.com/justrnr500/mgutil/internal/config"
	"github.com/justrnr500/mgutil/internal/storage"
)

func init() {
	register("chk", action{name: "check", reportsConfig: true, run: runCheck})
}

// checkResult represents the result of a single health check.
type checkResult struct {
	Name   string
	Passed bool
	Issues []string
}

// runCheck compares the index left by the last rebuild with the bookmark
// file, then rebuilds it and runs the remaining checks.
func runCheck(ctx context.Context, a *app, alias, value string) error {
	_, statErr := os.Stat(a.paths.Index)
	indexExisted := statErr == nil

	idx, err := a.openIndex()
	if err != nil {
		return err
	}
	defer idx.Close()

	checks := []checkResult{checkIndexSync(idx, a.bookmarks, indexExisted)}

	if err := a.rebuildIndex(idx); err != nil {
		return err
	}

	checks = append(checks,
		checkDuplicateAliases(idx),
		checkMissingPaths(a.bookmarks),
		checkConfigValidity(a.paths.Config),
	)

	allPassed := true
	for _, c := range checks {
		if c.Passed {
			fmt.Fprintf(a.out, "✓ %s\n", c.Name)
		} else {
			allPassed = false
			fmt.Fprintf(a.out, "✗ %s\n", c.Name)
			for _, issue := range c.Issues {
				fmt.Fprintf(a.out, "    %s\n", issue)
			}
		}
	}

	if !allPassed {
		return fmt.Errorf("some checks failed")
	}

	return nil
}

// checkIndexSync compares the rows of idx with bookmarks, position by
// position. A missing index has nothing stale in it and passes.
func checkIndexSync(idx *storage.Index, bookmarks []bookmark.Bookmark, existed bool) checkResult {
	name := "Index matches bookmark file"

	if !existed {
		return checkResult{Name: fmt.Sprintf("Index created (%d bookmarks)", len(bookmarks)), Passed: true}
	}

	indexed, err := idx.All()
	if err != nil {
		return checkResult{Name: name, Passed: false, Issues: []string{fmt.Sprintf("list index: %v", err)}}
	}

	if len(indexed) != len(bookmarks) {
		return checkResult{
			Name:   name,
			Passed: false,
			Issues: []string{fmt.Sprintf("count mismatch: file=%d, index=%d (rebuilt)", len(bookmarks), len(indexed))},
		}
	}

	var differs []string
	for i, b := range bookmarks {
		if indexed[i] != b {
			differs = append(differs, fmt.Sprintf("line %d: file has %s, index has %s", i+1, b.Alias, indexed[i].Alias))
		}
	}

	if len(differs) > 0 {
		return checkResult{Name: name, Passed: false, Issues: differs}
	}

	return checkResult{Name: fmt.Sprintf("Index matches bookmark file (%d bookmarks)", len(indexed)), Passed: true}
}

func checkDuplicateAliases(idx *storage.Index) checkResult {
	name := "No duplicate aliases"

	dups, err := idx.Duplicates()
	if err != nil {
		return checkResult{Name: name, Passed: false, Issues: []string{fmt.Sprintf("query index: %v", err)}}
	}

	if len(dups) > 0 {
		issues := make([]string, 0, len(dups))
		for _, d := range dups {
			issues = append(issues, fmt.Sprintf("%s is used more than once (jump opens all, delete needs the exact case)", d))
		}
		return checkResult{Name: name, Passed: false, Issues: issues}
	}

	return checkResult{Name: name, Passed: true}
}

func checkMissingPaths(bookmarks []bookmark.Bookmark) checkResult {
	name := "All bookmarked paths exist"

	var missing []string
	for _, b := range bookmarks {
		if !b.IsPath() {
			continue
		}
		info, err := os.Stat(b.Value)
		switch {
		case err != nil:
			missing = append(missing, fmt.Sprintf("%s -> %s", b.Alias, b.Value))
		case !info.IsDir():
			missing = append(missing, fmt.Sprintf("%s -> %s (not a directory)", b.Alias, b.Value))
		}
	}

	if len(missing) > 0 {
		return checkResult{Name: name, Passed: false, Issues: missing}
	}

	return checkResult{Name: name, Passed: true}
}

func checkConfigValidity(configPath string) checkResult {
	name := "Config valid"

	_, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return checkResult{Name: "Config valid (using defaults)", Passed: true}
	}
	if err != nil {
		return checkResult{Name: name, Passed: false, Issues: []string{err.Error()}}
	}

	return checkResult{Name: name, Passed: true}
}
