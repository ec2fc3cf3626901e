package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"

	"github.com/justrnr500/mgutil/internal/config"
	"github.com/justrnr500/mgutil/internal/storage"
)

// executeRoot runs the root command against a temporary home directory.
func executeRoot(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()

	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", home)
	t.Setenv(config.EnvLogLevel, "")

	// Flag state persists between executions of the same command.
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeHomeFile(t *testing.T, home, name, data string) {
	t.Helper()
	dir := filepath.Join(home, config.DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestRootSaveListDelete(t *testing.T) {
	home := t.TempDir()

	out, err := executeRoot(t, home, "--command", "sp", "--alias", "proj", "--value", "/srv/proj")
	if err != nil {
		t.Fatalf("sp: %v", err)
	}
	assertContains(t, out, "add path bookmark proj")

	data, err := os.ReadFile(filepath.Join(home, config.DirName, config.BookmarksFile))
	if err != nil {
		t.Fatalf("read bookmarks: %v", err)
	}
	if string(data) != "proj;path;/srv/proj\n" {
		t.Errorf("file = %q, want %q", data, "proj;path;/srv/proj\n")
	}

	out, err = executeRoot(t, home, "-c", "l")
	if err != nil {
		t.Fatalf("l: %v", err)
	}
	assertContains(t, out, "alias 'proj' has type 'path' and value /srv/proj")

	out, err = executeRoot(t, home, "-c", "d", "-a", "proj", "--log-level", "debug")
	if err != nil {
		t.Fatalf("d: %v", err)
	}
	assertContains(t, out, "removed 1 bookmark(s)")
}

func TestRootUnknownCommandSucceeds(t *testing.T) {
	out, err := executeRoot(t, t.TempDir(), "-c", "zz")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	assertContains(t, out, "command zz not known")
}

func TestRootRequiresCommand(t *testing.T) {
	if _, err := executeRoot(t, t.TempDir(), "-a", "proj"); err == nil {
		t.Error("expected error without --command")
	}
}

func TestRootMalformedFileFails(t *testing.T) {
	home := t.TempDir()
	writeHomeFile(t, home, config.BookmarksFile, "broken\n")

	_, err := executeRoot(t, home, "-c", "l")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse line 1") {
		t.Errorf("error = %q, want parse line 1", err)
	}
}

func TestRootCheckReportsStaleIndex(t *testing.T) {
	home := t.TempDir()
	dir := t.TempDir()

	for _, alias := range []string{"a", "b"} {
		if _, err := executeRoot(t, home, "-c", "sp", "-a", alias, "-v", dir); err != nil {
			t.Fatalf("sp %s: %v", alias, err)
		}
	}

	idx, err := storage.OpenIndex(filepath.Join(home, config.DirName, config.IndexFile))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	if err := idx.Rebuild(nil); err != nil {
		t.Fatalf("empty index: %v", err)
	}
	idx.Close()

	out, err := executeRoot(t, home, "-c", "chk")
	if err == nil {
		t.Fatal("stale index passed")
	}
	assertContains(t, out, "✗ Index matches bookmark file")
	assertContains(t, out, "count mismatch: file=2, index=0")

	out, err = executeRoot(t, home, "-c", "chk")
	if err != nil {
		t.Fatalf("chk after rebuild: %v\n%s", err, out)
	}
	assertContains(t, out, "✓ Index matches bookmark file (2 bookmarks)")
}

func TestRootCheckReportsInvalidConfig(t *testing.T) {
	home := t.TempDir()
	writeHomeFile(t, home, config.ConfigFile, "launcher: [broken")

	out, err := executeRoot(t, home, "-c", "chk")
	if err == nil {
		t.Fatal("invalid config passed")
	}
	assertContains(t, out, "✗ Config valid")
	assertContains(t, out, "parse config")

	// Other commands still refuse to run
	_, err = executeRoot(t, home, "-c", "l")
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Errorf("l error = %v, want load config failure", err)
	}
}
