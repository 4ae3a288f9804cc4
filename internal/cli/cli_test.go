package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swaptrace/swapplan"
)

// run executes the root command with args and returns stdout and log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&logs)
	err := root.Execute()

	return out.String(), logs.String(), err
}

const goldenText = "0 3\n0 5\n1 5\n1 3\n2 3\n4 2\n4 5\n5 2\nsteps: 8\n"

func TestPlanCommand_Text(t *testing.T) {
	out, logs, err := run(t, "plan", "--src", "1,2,3,-1,4,5", "--dst", "5,1,-1,3,2,4")
	require.NoError(t, err)
	assert.Equal(t, goldenText, out)
	assert.Contains(t, logs, "planned")
	assert.Contains(t, logs, "steps=8")
}

func TestPlanCommand_JSON(t *testing.T) {
	out, _, err := run(t, "plan", "--src", "[1 2 3 -1 4 5]", "--dst", "5,1,-1,3,2,4", "--lookup", "index", "-f", "json")
	require.NoError(t, err)

	var got planResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want := planResult{
		Source:      []int{1, 2, 3, -1, 4, 5},
		Destination: []int{5, 1, -1, 3, 2, 4},
		Sentinel:    -1,
		Lookup:      "index",
		Steps:       [][2]int{{0, 3}, {0, 5}, {1, 5}, {1, 3}, {2, 3}, {4, 2}, {4, 5}, {5, 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanCommand_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.toml")
	content := `
source      = [0, 10, 20, 30]
destination = [30, 20, 10, 0]
sentinel    = 0
comment     = "unused"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, logs, err := run(t, "plan", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "steps: ")
	assert.Contains(t, logs, "unknown key")
	assert.Contains(t, logs, "comment")

	// --dst overrides the file; the reversed source no longer matches.
	out, _, err = run(t, "plan", "--file", path, "--dst", "0,10,20,30")
	require.NoError(t, err)
	assert.Equal(t, "steps: 0\n", out, "identical arrays need no steps")
}

func TestPlanCommand_FileMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte("source = [1, -1]\n"), 0o600))

	_, _, err := run(t, "plan", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both source and destination are required")
}

func TestPlanCommand_Errors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantIs  error
		wantMsg string
	}{
		{"invalid input", []string{"plan", "--src=-1,-1,2", "--dst=2,-1,1"}, swapplan.ErrSentinelCount, ""},
		{"value mismatch", []string{"plan", "--src", "1,-1", "--dst", "2,-1"}, swapplan.ErrInvalidInput, ""},
		{"bad lookup", []string{"plan", "--src=-1", "--dst=-1", "--lookup", "hash"}, swapplan.ErrOptionViolation, ""},
		{"bad format", []string{"plan", "--src=-1", "--dst=-1", "-f", "yaml"}, nil, "unknown format"},
		{"bad integer", []string{"plan", "--src", "1,x", "--dst=-1"}, nil, "parse --src"},
		{"missing arrays", []string{"plan"}, nil, "both source and destination are required"},
		{"missing file", []string{"plan", "--file", "does-not-exist.toml"}, nil, "read problem file"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			if tc.wantIs != nil {
				assert.True(t, errors.Is(err, tc.wantIs), "got %v", err)
			}
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestPlanCommand_FormatCheckedBeforePlanning(t *testing.T) {
	for _, args := range [][]string{
		{"plan", "--src", "1,2,3,-1,4,5", "--dst", "5,1,-1,3,2,4", "-f", "yaml"},
		{"random", "-n", "6", "-f", "xml"},
	} {
		out, logs, err := run(t, args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
		assert.Empty(t, out, "nothing may be written for a rejected format")
		assert.NotContains(t, logs, "planned", "planning must not run for a rejected format")
	}
}

func TestCheckFormat(t *testing.T) {
	assert.NoError(t, checkFormat(formatText))
	assert.NoError(t, checkFormat(formatJSON))
	assert.NoError(t, checkFormat(""))
	assert.Error(t, checkFormat("yaml"))
}

func TestPlanCommand_Trace(t *testing.T) {
	_, logs, err := run(t, "plan", "--src", "1,2,3,-1,4,5", "--dst", "5,1,-1,3,2,4", "--trace")
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(logs, "swap="), "one log line per step")
	assert.Contains(t, logs, "(0 3)")
}

func TestRandomCommand_Deterministic(t *testing.T) {
	out1, _, err := run(t, "random", "-n", "12", "--seed", "5")
	require.NoError(t, err)
	out2, _, err := run(t, "random", "-n", "12", "--seed", "5", "--lookup", "index")
	require.NoError(t, err)

	assert.Equal(t, out1, out2, "same seed and either lookup must print the same plan")
	assert.True(t, strings.HasPrefix(out1, "source: ["))
	assert.Contains(t, out1, "destination: [")
}

func TestRandomCommand_BadLength(t *testing.T) {
	_, _, err := run(t, "random", "-n", "0")
	assert.ErrorIs(t, err, swapplan.ErrOptionViolation)
}

func TestVersionFlag(t *testing.T) {
	SetVersion("v1.2.3", "abc123")
	defer SetVersion("dev", "")

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "swaptrace v1.2.3")
	assert.Contains(t, out, "commit: abc123")
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"1,2,3", []int{1, 2, 3}, false},
		{" [4 -1\t5] ", []int{4, -1, 5}, false},
		{"7, 8 ,9", []int{7, 8, 9}, false},
		{"", nil, true},
		{"[]", nil, true},
		{"1,a", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseInts(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
