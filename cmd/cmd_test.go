package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/scoring"
)

const bundledCases = "../internal/casebook/data/cases.json"

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"VERDICT_CONFIG", "VERDICT_LOG", "VERDICT_LOG_LEVEL", "VERDICT_CASES"} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolate(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScore_PrintsShareSummary(t *testing.T) {
	out, err := run(t, "score",
		"--verdict", "1=mixed", "--verdict", "2=guilty", "--verdict", "3=guilty", "--verdict", "4=guilty")
	require.NoError(t, err)

	want := scoring.Evaluate(casebook.Default().All(), map[int]casebook.VerdictType{
		1: casebook.Mixed, 2: casebook.Guilty, 3: casebook.Guilty, 4: casebook.Guilty,
	}).Share
	assert.Equal(t, want+"\n", out)
	assert.True(t, strings.HasPrefix(out, "🔨 My Jury Summary: Cancer? Illegal! (4/4 correct)\n"))
}

func TestScore_JSON(t *testing.T) {
	out, err := run(t, "score", "--verdict", "1=not-guilty", "--verdict", "2=guilty", "--json")
	require.NoError(t, err)

	var got scoreJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Score)
	assert.Equal(t, 4, got.Total)
	require.Len(t, got.Reforms, scoring.MaxReforms)
	assert.Equal(t, 3, got.Reforms[0].Priority)
	assert.Contains(t, got.Share, "(1/4 correct)")
}

func TestScore_LaterVerdictOverwrites(t *testing.T) {
	out, err := run(t, "score", "--verdict", "1=guilty", "--verdict", "1=mixed")
	require.NoError(t, err)
	assert.Contains(t, out, "(1/4 correct)")
}

func TestScore_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"missing separator", "1mixed", "want <case-id>=<verdict>"},
		{"bad id", "one=mixed", "case id"},
		{"unknown case", "9=mixed", "no case with id 9"},
		{"unknown verdict", "1=acquitted", "unknown verdict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "score", "--verdict", tt.arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCases_ListsCatalog(t *testing.T) {
	out, err := run(t, "cases", "--sources")
	require.NoError(t, err)
	assert.Contains(t, out, "The UCLA Consent Problem")
	assert.Contains(t, out, "https://law.justia.com/")
	assert.Contains(t, out, "4 cases")
}

func TestCases_ShowsOneCase(t *testing.T) {
	out, err := run(t, "cases", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Case 3 of 4 (id 3)")
	assert.Contains(t, out, "Fired After Diagnosis")
	assert.Contains(t, out, "Beck v. Sybase")
}

func TestCases_UnknownID(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"9", "no case with id 9"},
		{"three", "case id"},
	}
	for _, tt := range tests {
		_, err := run(t, "cases", tt.arg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), tt.want)
	}
}

func TestValidate_File(t *testing.T) {
	out, err := run(t, "validate", bundledCases)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (4 cases, 7 sources)")
}

func TestValidate_Bundled(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "bundled catalog: ok")
}

func TestValidate_RejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 0}]`), 0o644))

	_, err := run(t, "validate", path)
	require.Error(t, err)
}

func TestCasesFlag_UsesCustomCatalog(t *testing.T) {
	data, err := os.ReadFile(bundledCases)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	trimmed, err := json.Marshal(raw[:2])
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "two.json")
	require.NoError(t, os.WriteFile(path, trimmed, 0o644))

	out, err := run(t, "cases", "--cases", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 cases")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, err := run(t, "cases", "--log-level", "loud")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "verdict (devel)\n", out)
}
