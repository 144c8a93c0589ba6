package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWith(t, context.Background(), "", args...)
}

func executeWith(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WOUNDCHECK_RECORD", "false")
	t.Setenv("WOUNDCHECK_COLOR", "never")
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}

	var buf bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestAssessCommand(t *testing.T) {
	out, err := execute(t, "assess", "6", "4", "moderate")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: Critical")
	assert.Contains(t, out, "  - wound area exceeds 5 cm²")
}

func TestAssessCommand_InputError(t *testing.T) {
	out, err := execute(t, "assess", "abc", "4", "None")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: Input Error\nReason: area must be numeric")
}

func TestAssessCommand_JSON(t *testing.T) {
	out, err := execute(t, "assess", "--json", "1", "1", "light")
	require.NoError(t, err)

	var resp assessment.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, assessment.StatusGood, resp.Data.Status)

	// Reset for later tests sharing the command tree.
	require.NoError(t, assessCmd.Flags().Set("json", "false"))
}

func TestAssessCommand_ArgCount(t *testing.T) {
	_, err := execute(t, "assess", "1", "2")
	assert.Error(t, err)
}

func TestBatchCommand_Builtin(t *testing.T) {
	out, err := execute(t, "batch")
	require.NoError(t, err)
	assert.Contains(t, out, "[Case 1/20]")
	assert.Contains(t, out, "Done (20 cases run, 20/20 matched expectations)")
}

func TestBatchCommand_FileMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	body := `{"cases": [
		{"name": "ok", "area": 1, "pain": 1, "exudate": "None", "expect": "Good"},
		{"name": "wrong", "area": 9, "pain": 1, "exudate": "None", "expect": "Good"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := execute(t, "batch", "--file", path)
	assert.ErrorContains(t, err, "1 of 2 checked cases")
	assert.Contains(t, out, "case 2 (wrong): expected Good, got Critical")

	require.NoError(t, batchCmd.Flags().Set("file", ""))
}

func TestHistoryCommand_RecordsFromAssess(t *testing.T) {
	db := filepath.Join(t.TempDir(), "wc.db")

	_, err := execute(t, "assess", "--db", db, "--record", "3", "5", "Moderate")
	require.NoError(t, err)

	out, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Warning")
	assert.Contains(t, out, "cli")

	out, err = execute(t, "history", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")

	require.NoError(t, rootCmd.PersistentFlags().Set("record", "false"))
	require.NoError(t, rootCmd.PersistentFlags().Set("db", ""))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "woundcheck (devel)\n", out)
}

func TestDefaultFlow_BatchThenPrompt(t *testing.T) {
	out, err := executeWith(t, context.Background(), "1\n2\nnone\nq\n")
	require.NoError(t, err)

	batch := strings.Index(out, "Done (20 cases run, 20/20 matched expectations)")
	interactive := strings.Index(out, "Interactive mode")
	result := strings.LastIndex(out, "Result:")
	require.NotEqual(t, -1, batch, out)
	require.NotEqual(t, -1, interactive, out)
	require.NotEqual(t, -1, result, out)
	assert.Less(t, batch, interactive)
	assert.Less(t, interactive, result)
	assert.Contains(t, out[result:], "Status: Good")
	assert.NotContains(t, out, "Interrupted")
}

func TestDefaultFlow_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeWith(t, ctx, "1\n2\nnone\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Interrupted after 0 of 20 cases")
	assert.Contains(t, out, "Interrupted. Exiting.")
	assert.NotContains(t, out, "Interactive mode")
}

func TestPromptCommand_Once(t *testing.T) {
	out, err := executeWith(t, context.Background(), "6\n2\nModerate\n1\n", "prompt", "--once")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: Critical")
	assert.Equal(t, 1, strings.Count(out, "Result:"))

	require.NoError(t, promptCmd.Flags().Set("once", "false"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Heavy", truncate("Heavy", 10))
	assert.Equal(t, "0123456789", truncate("0123456789abc", 10))
	assert.Equal(t, "大量滲", truncate("大量滲液", 3))
	assert.Equal(t, "é", truncate("éé", 1))
}
