package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"accuracycheck/app"
	"accuracycheck/domain/report"
	"accuracycheck/domain/verdict"
	"accuracycheck/internal/config"
	"accuracycheck/internal/errors"
	"accuracycheck/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputPath(t *testing.T) {
	p, err := resolveInputPath(" book.xlsx ", "env.xlsx", nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", p)

	p, err = resolveInputPath("", "env.xlsx", nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "env.xlsx", p)

	_, err = resolveInputPath("", "", nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestPromptPath(t *testing.T) {
	var out bytes.Buffer
	p, err := promptPath(strings.NewReader("/data/answers.xlsx\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "/data/answers.xlsx", p)
	assert.Contains(t, out.String(), "Enter the path to the Excel file")

	_, err = promptPath(strings.NewReader("\n"), &out)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestRenderResults(t *testing.T) {
	tbl := &report.Table{}
	tbl.Append(report.Row{Sheet: "Sheet1", Row: 1, Score: 0.87654, Verdict: verdict.Passed})

	out := renderResults(tbl)
	for _, want := range append(report.Columns, "Sheet1", "0.8765", "Passed") {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "SHEET NAME")
	assert.Contains(t, renderSummary(app.Summary{Rows: 1, Passed: 1, Mean: 0.5}), "0.5000")
}

func setupRun(t *testing.T) string {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "run.log")
	t.Setenv(config.EnvLogFile, logPath)
	t.Setenv(config.EnvLogLevel, "INFO")
	t.Setenv(config.EnvExcelFile, "")
	return logPath
}

func TestRootCommand_WritesReport(t *testing.T) {
	logPath := setupRun(t)
	book := testkit.WriteWorkbook(t, "answers.xlsx",
		testkit.VoiceSheet("Sheet1", [2]interface{}{"The cat sat on the mat", "The mat was sat on by the cat"}),
	)

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{book, "--print"})
	require.NoError(t, cmd.Execute())

	output := filepath.Join(filepath.Dir(book), "answers-results.xlsx")
	assert.Contains(t, out.String(), "Results saved to: "+output)
	assert.Contains(t, out.String(), "Passed")
	assert.FileExists(t, output)

	logData, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "results saved")
	assert.Contains(t, string(logData), "run_id=")
}

func TestRootCommand_InvalidPathIsLogged(t *testing.T) {
	logPath := setupRun(t)
	missing := filepath.Join(t.TempDir(), "missing.xlsx")

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{missing})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, errors.CodePathNotFound, errors.GetCode(err))

	logData, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(logData), "level=ERROR")
	assert.Contains(t, string(logData), errors.CodePathNotFound)
	assert.Equal(t, 1, strings.Count(string(logData), "level=ERROR"), "each failure is logged once")
}

func TestRootCommand_ConfigErrorIsLogged(t *testing.T) {
	setupRun(t)
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvLogLevel, "TRACE")
	t.Chdir(t.TempDir())

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"answers.xlsx"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	logData, readErr := os.ReadFile(config.DefaultLogFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(logData), "error loading configuration")
	assert.Contains(t, string(logData), errors.CodeConfigInvalid)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid Excel file path: file not found: /x.xlsx", errorMessage(errors.PathNotFound("/x.xlsx")))
	assert.Contains(t, errorMessage(errors.MissingColumn("Sheet1", "Active Voice")), "Workbook layout problem")
	assert.Equal(t, "An error occurred: boom", errorMessage(errors.InvalidInput("boom")))
}
