package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCommandMarksInvalidRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.jsonl")
	lines := `{"test_case_id":"tc1","overall_outcome":"PASS","dimension_scores":{"Factuality":{"score":3}}}
{"test_case_id":"tc2","overall_outcome":"PASS","primary_failure_mode":99}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"validate", "--records", path})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2 record(s) failed validation")

	// A rejected record is marked INVALID, not rendered as an evaluated FAIL.
	require.Contains(t, out.String(), "INVALID  tc2")
	require.Contains(t, out.String(), "PASS  tc1")
	require.NotContains(t, out.String(), "FAIL  tc2")
}

func TestValidateCommandAllValid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.jsonl")
	lines := `{"test_case_id":"tc1","overall_outcome":"PASS","dimension_scores":{"Factuality":{"score":3}}}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"validate", "--records", path})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "1 record(s) valid")
}
