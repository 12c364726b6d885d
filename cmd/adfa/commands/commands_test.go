package commands_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LadyLoBentley/AdaptableDFA/cmd/adfa/commands"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := commands.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestClassify(t *testing.T) {
	out, _, err := execute(t, "classify", "--log-level=error", "abc", "cba", "")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ACCEPT")
	assert.Contains(t, lines[1], "REJECT")
	assert.Contains(t, lines[2], "REJECT")
}

func TestClassifyTrace(t *testing.T) {
	out, _, err := execute(t, "classify", "--log-level=error", "--trace", "--seeds=ab", "ab", "ba")
	require.NoError(t, err)
	assert.Contains(t, out, "Current State: q_start, Input: a")
	assert.Contains(t, out, "--> Next State: q_0")
	assert.Contains(t, out, "Final State: q_1 (Accepting). The string is accepted.")
	assert.Contains(t, out, "No transition is found, moving to the reject State.")
	assert.Contains(t, out, "Final State: q_rej (Non-Accepting). The string is rejected.")
}

func TestDump(t *testing.T) {
	out, _, err := execute(t, "dump", "--log-level=error", "--seeds=ab")
	require.NoError(t, err)
	assert.Contains(t, out, "State: q_start (Non-Final)")
	assert.Contains(t, out, "State: q_1 (Final)")
	assert.Contains(t, out, "\t--[ a ]--> q_0\n")
	assert.Contains(t, out, "Reject State: q_rej")
	assert.Contains(t, out, "\t--[ b ]--> q_rej\t(self-loop)\n")
}

func TestDumpJSON(t *testing.T) {
	out, _, err := execute(t, "dump", "--log-level=error", "--json", "--seeds=ab")
	require.NoError(t, err)

	var snap struct {
		Alphabet []string
		States   []struct {
			Label     string
			Accepting bool
		}
		Language []string
	}
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, []string{"a", "b"}, snap.Alphabet)
	assert.Len(t, snap.States, 4)
	assert.Equal(t, []string{"ab"}, snap.Language)
}

func TestLanguage(t *testing.T) {
	out, _, err := execute(t, "language", "--log-level=error")
	require.NoError(t, err)
	assert.Equal(t, "\"abc\"\n\"abcaa\"\n\"acb\"\n\"bcb\"\n", out)

	out, _, err = execute(t, "language", "--log-level=error", "--limit=3")
	require.NoError(t, err)
	assert.Equal(t, "\"abc\"\n\"acb\"\n\"bcb\"\n", out)
}

func TestInspect(t *testing.T) {
	out, _, err := execute(t, "inspect", "--log-level=error", "--seeds=ab,b")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "SHORTEST INPUT")
	assert.Regexp(t, `^q_start\s+0\s+false\s+""$`, lines[1])
	assert.Regexp(t, `^q_2\s+1\s+true\s+"b"$`, lines[3])
	assert.Regexp(t, `^q_1\s+2\s+true\s+"ab"$`, lines[4])
}

func TestRunDemo(t *testing.T) {
	out, errOut, err := execute(t, "run", "--seed=3", "--additions=2", "--max-length=5", "--log-format=json")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "is added to the language!"))
	assert.Equal(t, 3, strings.Count(out, "DFA States and Transitions:"))
	// 4 seeds, 7 probes, 2 additions
	assert.Equal(t, 13, strings.Count(out, "Processing the string:"))
	assert.Contains(t, errOut, `"run_id"`)
	assert.Contains(t, errOut, `"msg":"demo finished"`)
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--additions=-1")
	require.Error(t, err)

	_, _, err = execute(t, "classify", "--log-format=xml", "a")
	require.Error(t, err)

	_, _, err = execute(t, "classify")
	require.Error(t, err)
}
