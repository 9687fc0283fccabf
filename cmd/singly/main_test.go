package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/learnstructures/singly/internal/xtest"
	"github.com/learnstructures/singly/scenario"
)

func TestMain(m *testing.M) {
	xtest.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	return executeContext(context.Background(), args...)
}

func executeContext(ctx context.Context, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(ctx)

	return out.String(), errOut.String(), err
}

func testdata(name string) string {
	return filepath.Join("..", "..", "scenario", "testdata", name)
}

func TestRunCmd(t *testing.T) {
	stdout, stderr, err := execute(t, "run",
		testdata("add_first.yaml"),
		testdata("remove_head.yaml"),
		testdata("empty.yaml"),
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], `ok "add first"`), lines[0])
	require.True(t, strings.HasPrefix(lines[1], `ok "remove head"`), lines[1])
	require.True(t, strings.HasPrefix(lines[2], `ok "empty list"`), lines[2])
	require.Contains(t, stderr, "'singly.scenario.run' => done")
}

func TestRunCmdMismatch(t *testing.T) {
	stdout, _, err := execute(t, "--log-level", "quiet", "--fail-fast", "run", testdata("mismatch.yaml"))
	require.ErrorIs(t, err, scenario.ErrMismatch)
	require.Contains(t, err.Error(), "1 of 1 scenarios failed")
	require.True(t, strings.HasPrefix(stdout, `FAIL "wrong expectations"`), stdout)
	require.Contains(t, stdout, "2 steps, 1 failed")
}

func TestRunCmdErrors(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)

	_, _, err = execute(t, "run", testdata("unknown_op.yaml"))
	require.ErrorIs(t, err, scenario.ErrUnknownOperation)
}

func TestRunCmdInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout, _, err := executeContext(ctx, "--log-level", "quiet", "run", testdata("add_first.yaml"))
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, scenario.ErrMismatch)
	require.True(t, strings.HasPrefix(err.Error(), "run interrupted: "), err.Error())
	require.Contains(t, stdout, "0 steps, 0 failed")
}

func TestRunCmdLogLevelFromEnv(t *testing.T) {
	t.Setenv(envLogLevel, "trace")

	_, stderr, err := execute(t, "--log-details", `singly\.list\.insert`, "run", testdata("add_first.yaml"))
	require.NoError(t, err)
	require.Contains(t, stderr, "'singly.list.insert' => start")
	require.NotContains(t, stderr, "singly.scenario")

	_, stderr, err = execute(t, "--log-level", "error", "run", testdata("add_first.yaml"))
	require.NoError(t, err)
	require.Empty(t, stderr)
}

func TestDemoCmd(t *testing.T) {
	stdout, _, err := execute(t, "--log-level", "quiet", "demo")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(scenario.Demo().Steps)+1)
	require.Contains(t, lines[2], "head ->Matthew -> Mimi -> Bailey -> |||")
	require.True(t, strings.HasPrefix(lines[2], "addFirst(Matthew)"), lines[2])
	require.Contains(t, lines[7], "head ->Mimi -> Bailey -> |||")
	require.True(t, strings.HasPrefix(lines[len(lines)-1], `ok "demo"`), lines[len(lines)-1])
}

func TestZapLogger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: z\nsteps:\n  - op: size\n    expect: 0\n"), 0o600))

	stdout, _, err := execute(t, "--zap", "--log-level", "error", "run", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, `ok "z"`), stdout)
}
