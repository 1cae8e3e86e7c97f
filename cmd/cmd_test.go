package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// isolateEnv keeps config.Load away from the developer's real config, .env and environment.
func isolateEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{"WEBHOOKTASK_ENABLED", "WEBHOOKTASK_LOG_LEVEL", "WEBHOOKTASK_LOG_FORMAT", "WEBHOOKTASK_DSN", "DATABASE_URL"} {
		t.Setenv(k, "")
	}
	t.Chdir(dir)
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores package flag variables between command runs.
func resetFlags() {
	showVersion = false
	enabledFlag = true
	cfgPath, logLevel, logFormat = "", "", ""
	rawQuery = false
	previewDSN = ""
	previewJSON = false

	unset := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.Flags().VisitAll(unset)
	rootCmd.PersistentFlags().VisitAll(unset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(unset)
	}
}
