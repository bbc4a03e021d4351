package config

import (
	"os"
	"path/filepath"
	"testing"

	"accuracycheck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvExcelFile, EnvLogFile, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.ExcelFile)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.False(t, cfg.Output.PrintResults)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "accuracycheck.toml")
	content := `
excel_file = "/data/answers.xlsx"

[log]
file = "/var/log/check.log"
level = "debug"

[output]
print_results = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/answers.xlsx", cfg.ExcelFile)
	assert.Equal(t, "/var/log/check.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Output.PrintResults)

	t.Setenv(EnvExcelFile, "/override.xls")
	t.Setenv(EnvLogLevel, "WARN")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/override.xls", cfg.ExcelFile)
	assert.Equal(t, "WARN", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("threshold = 0.7\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err, "unknown keys are rejected")

	t.Setenv(EnvLogLevel, "TRACE")
	_, err = Load("")
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestFallbackLogFile(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, DefaultLogFile, FallbackLogFile())

	t.Setenv(EnvLogFile, "/var/log/check.log")
	assert.Equal(t, "/var/log/check.log", FallbackLogFile())
}
