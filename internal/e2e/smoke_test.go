package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runQQBot(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	_, _, err = runQQBot(t, binaryPath, home, "session", "remove", "--qq", "12345")
	require.Error(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".qqbot"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".qqbot", "config.toml"), []byte(`log_level = "loud"`), 0o600))

	_, stderr, err = runQQBot(t, binaryPath, home, "version")
	require.Error(t, err)
	assert.Contains(t, stderr, "load configuration")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "qqbot-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/qqbot")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build qqbot binary: %s", string(output))
	return binaryPath
}

func runQQBot(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
