package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns what it wrote.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "bignum", cmd.Use)
	assert.Contains(t, cmd.Long, "250.75 K")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"add", "sub", "fmt", "expand", "tiers", "keys"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "warn", levelFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("log-format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "console", formatFlag.DefValue)
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := run(t, "--verbose", "--log-format", "json", "add", "600 K", "500 K")
	require.NoError(t, err)
	assert.Equal(t, "1.1 M\n", stdout)
	assert.Contains(t, stderr, `"msg":"add"`)
	assert.Contains(t, stderr, `"result":"1.1 M"`)
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := run(t, "add", "600 K", "500 K")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestLogToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bignum.log")
	_, stderr, err := run(t, "-v", "--log-output", path, "add", "1", "2")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.FileExists(t, path)

	_, _, err = run(t, "--log-output", filepath.Join(t.TempDir(), "no", "such", "dir.log"), "add", "1", "2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := WrapExitError(ExitFailure, "refused", errors.New("cause"))
	assert.Equal(t, "refused: cause", wrapped.Error())
	assert.Equal(t, "cause", errors.Unwrap(wrapped).Error())
}
