package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-statictree/pkg/dataset"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenThenCheck(t *testing.T) {
	dir := t.TempDir()
	keysPath := filepath.Join(dir, "keys.bin")

	_, err := run(t, "gen", "--size", "5000", "--out", keysPath)
	require.NoError(t, err)

	keys, err := dataset.ReadFile(keysPath)
	require.NoError(t, err)
	assert.Len(t, keys, 5000)
	assert.NoError(t, dataset.CheckSorted(keys))

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"dataset:\n  path: "+keysPath+"\nbench:\n  queries: 2000\n  workers: 2\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "check", "--all")
	require.NoError(t, err)
	for _, kind := range []string{"btree", "btree-eytzinger", "bplus", "bplus-batch"} {
		assert.Contains(t, out, kind+" ")
	}
	assert.Equal(t, 4, strings.Count(out, "mismatches=0"))
}

func TestBench(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"tree:\n  kind: bplus-batch\n  batch_size: 8\nbench:\n  queries: 1000\n  iterations: 2\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "--size", "1000", "bench")
	require.NoError(t, err)
	assert.Contains(t, out, "NS/QUERY")
	assert.Contains(t, out, "single")
	assert.Contains(t, out, "batch/8")
}

func TestInvalidOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown_kind", []string{"--kind", "skiplist", "check"}},
		{"negative_size", []string{"--size", "-5", "check"}},
		{"gen_without_out", []string{"gen"}},
		{"missing_config", []string{"--config", "/nonexistent/config.yaml", "check"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
