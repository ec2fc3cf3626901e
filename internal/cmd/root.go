// Package cmd provides the mgutil command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justrnr500/mgutil/internal/logger"
)

// Version information set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mgutil",
	Short: "Bookmark folders and commands",
	Long: `mgutil keeps short aliases for folders and shell commands in
~/.mgutil/bookmarks.csv and opens a new terminal at a bookmarked folder.

Commands:
  sp   save path       mgutil -c sp -a <ALIAS> [-v <PATH>]
  sc   save command    mgutil -c sc -a <ALIAS> -v <COMMAND>
  d    delete          mgutil -c d -a <ALIAS>
  p    jump to path    mgutil -c p -a <ALIAS>
  c    run command     mgutil -c c -a <ALIAS>
  l    list            mgutil -c l [-a <GLOB>]
  f    find            mgutil -c f -v <TEXT>
  y    copy value      mgutil -c y -a <ALIAS>
  chk  health check    mgutil -c chk`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var (
	rootCommand  string
	rootAlias    string
	rootValue    string
	rootLogLevel string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{printf "mgutil %s\ncommit: %s\nbuilt: %s\n" .Version "` + Commit + `" "` + BuildDate + `"}}`)

	rootCmd.Flags().StringVarP(&rootCommand, "command", "c", "", "Command to execute (sp, sc, d, p, c, l, f, y, chk)")
	rootCmd.Flags().StringVarP(&rootAlias, "alias", "a", "", "Alias of a folder or command bookmark")
	rootCmd.Flags().StringVarP(&rootValue, "value", "v", "", "Path or command, depending on the command")
	rootCmd.Flags().StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.MarkFlagRequired("command")
}

func runRoot(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd.OutOrStdout(), rootCommand, rootLogLevel)
	if err != nil {
		return err
	}
	defer a.close()

	return a.dispatch(cmd.Context(), rootCommand, rootAlias, rootValue)
}

// action is one value of --command. Actions with reportsConfig run with
// the default config when config.yaml is invalid.
type action struct {
	name          string
	needsAlias    bool
	reportsConfig bool
	run           func(ctx context.Context, a *app, alias, value string) error
}

var actions = map[string]action{}

func register(code string, act action) {
	actions[code] = act
}

// dispatch runs the action registered for code. Unknown codes and missing
// aliases are reported to the user and are not errors.
func (a *app) dispatch(ctx context.Context, code, alias, value string) error {
	act, ok := actions[code]
	if !ok {
		fmt.Fprintf(a.out, "command %s not known (known: %s)\n", code, strings.Join(knownCodes(), ", "))
		return nil
	}

	if act.needsAlias && alias == "" {
		fmt.Fprintf(a.out, "the command %s (%s) needs an alias\n", act.name, code)
		return nil
	}

	a.log.Debug("dispatch", logger.String("command", code), logger.String("alias", alias))
	return act.run(ctx, a, alias, value)
}

func knownCodes() []string {
	codes := make([]string, 0, len(actions))
	for code := range actions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
