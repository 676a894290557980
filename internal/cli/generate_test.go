package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToStdout(t *testing.T) {
	path := writeDecls(t, t.TempDir(), "limits.yaml", validYAML)

	output, err := runCommand(t, "generate", path)
	require.NoError(t, err)

	assert.Contains(t, output, "// Code generated by nonzerogen. DO NOT EDIT.")
	assert.Contains(t, output, "// Source: limits.yaml")
	assert.Contains(t, output, "package limits")
	assert.Contains(t, output, "_ = 1 / rawPageSize")
	assert.Contains(t, output, "rawOne      = 1")
	assert.Contains(t, output, "var PageSize = nonzero.Lit(uint(rawPageSize))")
	assert.Contains(t, output, "var MinusOne = nonzero.Lit(int8(rawMinusOne))")
	assert.Contains(t, output, "// all bits set")
}

func TestGeneratePackageOverride(t *testing.T) {
	path := writeDecls(t, t.TempDir(), "limits.yaml", validYAML)

	output, err := runCommand(t, "generate", "-p", "consts", "--import", "example.com/fork/nonzero", path)
	require.NoError(t, err)
	assert.Contains(t, output, "package consts")
	assert.Contains(t, output, `import "example.com/fork/nonzero"`)
}

func TestGenerateToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDecls(t, dir, "limits.yaml", validYAML)
	out := filepath.Join(dir, "gen", "limits_nonzero.go")

	output, err := runCommand(t, "generate", "-o", out, path)
	require.NoError(t, err)
	assert.Contains(t, output, "✓ Generated 3 constant(s) in package limits")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "var One = nonzero.Lit(uint(rawOne))")
}

func TestGenerateRejectsZero(t *testing.T) {
	dir := t.TempDir()
	path := writeDecls(t, dir, "zero.yaml", "package: p\nnonzero:\n  - name: Zero\n    lit: 0isize\n")
	out := filepath.Join(dir, "zero_nonzero.go")

	output, err := runCommand(t, "generate", "-o", out, path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, output, "argument was zero")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing may be written for rejected declarations")
}

func TestGenerateRejectsWrapperPackageName(t *testing.T) {
	path := writeDecls(t, t.TempDir(), "limits.yaml", validYAML)

	_, err := runCommand(t, "generate", "-p", "nonzero", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeGenerate)
}

func TestGenerateWithLedger(t *testing.T) {
	dir := t.TempDir()
	path := writeDecls(t, dir, "limits.yaml", validYAML)
	out := filepath.Join(dir, "limits_nonzero.go")
	db := filepath.Join(dir, "ledger.db")

	generate := func(extra ...string) GenerateResult {
		t.Helper()
		args := append([]string{"generate", "--format", "json", "-o", out, "--db", db}, extra...)
		output, err := runCommand(t, append(args, path)...)
		require.NoError(t, err)

		var resp struct {
			Status string         `json:"status"`
			Data   GenerateResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &resp))
		require.Equal(t, "ok", resp.Status)
		return resp.Data
	}

	first := generate()
	assert.False(t, first.Skipped)
	assert.Equal(t, int64(1), first.Seq)
	assert.NotEmpty(t, first.RunID)
	assert.Len(t, first.DeclHash, 64)

	second := generate()
	assert.True(t, second.Skipped, "unchanged declarations and output must be skipped")
	assert.Empty(t, second.RunID)

	require.NoError(t, os.WriteFile(out, []byte("package limits\n"), 0644))
	third := generate()
	assert.False(t, third.Skipped, "a modified output must be regenerated")
	assert.Equal(t, int64(2), third.Seq)

	forced := generate("--force")
	assert.False(t, forced.Skipped)
	assert.Equal(t, int64(3), forced.Seq)

	writeDecls(t, dir, "limits.yaml", validYAML+"  - name: Two\n    lit: 2u8\n")
	changed := generate()
	assert.False(t, changed.Skipped, "changed declarations must be regenerated")
	assert.NotEqual(t, first.DeclHash, changed.DeclHash)
	assert.Equal(t, 4, changed.DeclCount)

	history, err := runCommand(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, history, "limits_nonzero.go")
	assert.Contains(t, history, "package limits, 4 constant(s)")
}

func TestGenerateUsesConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeDecls(t, dir, "limits.yaml", validYAML)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nonzerogen.toml"), []byte(`
[generate]
package = "fromconfig"
output = "out/consts.go"
`), 0644))

	_, err := runCommand(t, "generate", path)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "consts.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package fromconfig")
}

func TestGenerateFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeDecls(t, dir, "limits.yaml", validYAML)
	cfg := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[generate]\npackage = \"fromconfig\"\n"), 0644))

	output, err := runCommand(t, "generate", "--config", cfg, "-p", "fromflag", path)
	require.NoError(t, err)
	assert.Contains(t, output, "package fromflag")
}

func TestGenerateBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeDecls(t, dir, "limits.yaml", validYAML)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nonzerogen.toml"), []byte("[generate]\nout = \"x.go\"\n"), 0644))

	_, err := runCommand(t, "generate", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeConfig)
}
