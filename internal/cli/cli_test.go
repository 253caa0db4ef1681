package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/config"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	out, _, err := execute(t, context.Background(), "--version")
	require.NoError(t, err)
	require.Contains(t, out, "lvmesh v1.2.3")
	require.Contains(t, out, "commit: abc123")
}

func TestLawsCmd(t *testing.T) {
	out, _, err := execute(t, context.Background(), "laws")
	require.NoError(t, err)
	for _, name := range []string{"uniform", "symmetric-tangent", "top-clustered-tangent"} {
		require.Contains(t, out, name)
	}
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvmesh.toml")

	_, _, err := execute(t, context.Background(), "init", path)
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	_, _, err = execute(t, context.Background(), "init", path)
	require.ErrorIs(t, err, errConfigExists)

	_, _, err = execute(t, context.Background(), "init", "--force", path)
	require.NoError(t, err)
}

func TestGenerateCmd(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "grid.csv")
	pngPath := filepath.Join(dir, "grid.png")

	out, logs, err := execute(t, context.Background(), "generate", "-v",
		"--nx", "4", "--ny", "3", "--law", "uniform", "--contour", "1",
		"--csv", csvPath, "--png", pngPath, "--width", "64", "--height", "32")
	require.NoError(t, err)
	require.Contains(t, out, "6 cells")
	require.Contains(t, out, csvPath)
	require.Contains(t, logs, "Generated 12 vertices, 6 cells")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 13)
	require.Equal(t, "id,x,y", lines[0])
	require.Equal(t, "11,2,1", lines[12])

	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestGenerateCmd_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.toml")
	csvPath := filepath.Join(dir, "grid.csv")
	src := "[grid]\nnx = 3\nny = 2\nprecision = \"float32\"\n[output]\npng = \"\"\ncsv = \"" +
		filepath.ToSlash(csvPath) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(src), 0o644))

	out, _, err := execute(t, context.Background(), "generate", "--config", cfgPath, "--nx", "5")
	require.NoError(t, err)
	require.Contains(t, out, "5×2")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 11)
}

func TestGenerateCmd_Invalid(t *testing.T) {
	_, _, err := execute(t, context.Background(), "generate", "--beta", "0", "--png", "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, context.Background(), "generate", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestGenerateCmd_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := execute(t, ctx, "generate", "--nx", "3", "--ny", "2", "--png", "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoggerFromContext(t *testing.T) {
	require.NotNil(t, loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, charmlog.InfoLevel)
	ctx := withLogger(context.Background(), l)
	require.Same(t, l, loggerFromContext(ctx))

	newProgress(l).done("stage")
	require.Contains(t, buf.String(), "stage (")
}
