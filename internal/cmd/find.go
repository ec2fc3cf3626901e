package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func init() {
	register("f", action{name: "find", run: runFind})
}

const findLimit = 50

// runFind searches aliases, kinds and values for a substring. The query is
// taken from value, falling back to alias.
func runFind(ctx context.Context, a *app, alias, value string) error {
	query := value
	if query == "" {
		query = alias
	}
	if query == "" {
		fmt.Fprintln(a.out, "the command find (f) needs a value to search for")
		return nil
	}

	idx, err := a.openIndex()
	if err != nil {
		return err
	}
	defer idx.Close()

	if err := a.rebuildIndex(idx); err != nil {
		return err
	}

	results, err := idx.Search(query, findLimit)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintf(a.out, "No results for %q\n", query)
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALIAS\tKIND\tVALUE")
	fmt.Fprintln(w, "─────\t────\t─────")
	for _, b := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Alias, b.Kind, b.Value)
	}
	w.Flush()

	fmt.Fprintf(a.out, "\n%d result(s) for %q\n", len(results), query)
	return nil
}
