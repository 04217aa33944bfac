package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	lockDir    string
}

// setupCLITestEnv isolates HOME and writes a config whose lock directory
// lives under the test's temp dir.
func setupCLITestEnv(t *testing.T, color string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("SUBBOM_LOG_LEVEL", "")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "subbom.toml"),
		lockDir:    filepath.Join(base, "locks"),
	}
	writeTestConfig(t, env.configPath, env.lockDir, color)
	return env
}

func writeTestConfig(t *testing.T, path, lockDir, color string) {
	t.Helper()
	content := fmt.Sprintf("[logging]\nlevel = \"error\"\n\n[console]\ncolor = %q\n\n[paths]\nlock_dir = %q\n", color, lockDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
