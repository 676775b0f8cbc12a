package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/dynmat/internal/config"
	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&flags{})
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVectorAdd(t *testing.T) {
	got, err := execute(t, "1 2 3 4 5 6", "vector", "add", "--size", "3", "--type", "int", "--plain")
	require.NoError(t, err)
	require.Equal(t, "vector add (n=3, int)\n5 7 9\n", got)
}

func TestMatrixAlias(t *testing.T) {
	got, err := execute(t, "1 2 3 4", "mat", "transpose", "--size", "2", "--plain")
	require.NoError(t, err)
	require.Equal(t, "matrix transpose (n=2, float)\n1 3\n2 4\n", got)
}

func TestConfigFile_FlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynmat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: int\nsize: 2\nplain: true\n"), 0o600))

	got, err := execute(t, "1 2 3 4", "vector", "dot", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "vector dot (n=2, int)\n11\n", got)

	got, err = execute(t, "1 2 3 4 5 6", "vector", "dot", "--config", path, "--size", "3")
	require.NoError(t, err)
	require.Equal(t, "vector dot (n=3, int)\n32\n", got)
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "", "vector", "add", "--type", "string")
	require.ErrorIs(t, err, config.ErrUnknownType)

	_, err = execute(t, "1 2", "vector", "add", "--size", "2", "--plain")
	require.ErrorIs(t, err, vector.ErrParse)

	_, err = execute(t, "", "vector")
	require.Error(t, err)
}
