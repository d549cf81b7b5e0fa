package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/search"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLineCommand(t *testing.T) {
	out, err := run(t, "line")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Printing solution:\n\nStep 1:\n5\nStep 2:\n6\n"), out)
	assert.Contains(t, out, "Step 5:\n9\n")
	assert.Contains(t, out, "4 steps (bfs")

	out, err = run(t, "line", "--start", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "0 steps")

	out, err = run(t, "line", "--max-depth", "2")
	require.NoError(t, err)
	assert.Equal(t, "Solution Not Found!\n", out)
}

func TestLineCommand_DepthFirst(t *testing.T) {
	out, err := run(t, "line", "--algorithm", "dfs", "--max-depth", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "(dfs")
	assert.Contains(t, out, "\n9\n")

	// without --max-depth the distance to the target bounds the walk
	out, err = run(t, "line", "--algorithm", "dfs")
	require.NoError(t, err)
	assert.Contains(t, out, "4 steps (dfs")

	out, err = run(t, "line", "--algorithm", "dfs", "--start", "3", "--target", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 5:\n-1\n")
	assert.Contains(t, out, "4 steps (dfs")
}

func TestLogLevelOff(t *testing.T) {
	f := &globalFlags{logLevel: "OFF"}
	log, err := f.logger()
	require.NoError(t, err)
	require.NotNil(t, log)

	out, err := run(t, "line", "--log-level", "off")
	require.NoError(t, err)
	assert.Contains(t, out, "4 steps (bfs")
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "line", "--algorithm", "astar")
	assert.ErrorIs(t, err, search.ErrUnsupportedAlgorithm)

	_, err = run(t, "line", "--max-depth", "-3")
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = run(t, "line", "--log-level", "loud")
	assert.Error(t, err)

	_, err = run(t, "solve")
	assert.Error(t, err, "--file is required")
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "solve", "-f", "testdata/jugs.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 1:\nA=0 B=0\n")
	assert.Contains(t, out, "6 steps (bfs")

	out, err = run(t, "solve", "-f", "testdata/maze.yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "*.#.\n*#..\n****\n"), out)
	assert.Contains(t, out, "Step 6:\n(3,2)\n")

	out, err = run(t, "solve", "-f", "testdata/graph.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 4:\nK\n")

	_, err = run(t, "solve", "-f", "testdata/missing.yaml")
	assert.ErrorContains(t, err, "failed to open problem")
}

func TestLoadProblem(t *testing.T) {
	p, err := LoadProblem(strings.NewReader("kind: Tiles\nmax_depth: 20\ntiles:\n  board: '123456078'\n"))
	require.NoError(t, err)
	assert.Equal(t, "tiles", p.Kind)
	assert.Equal(t, 20, p.MaxDepth)
	require.NotNil(t, p.Tiles)
	assert.Equal(t, "123456078", p.Tiles.Board)

	bad := map[string]string{
		"UnknownKey":     "kind: line\nline: {start: 1, target: 2}\ncolour: red\n",
		"UnknownKind":    "kind: chess\n",
		"MissingSection": "kind: jugs\n",
		"ExtraSection":   "kind: line\nline: {start: 1, target: 2}\njugs: {cap_a: 1, cap_b: 2, target: 1}\n",
		"NegativeDepth":  "kind: line\nmax_depth: -1\nline: {start: 1, target: 2}\n",
	}
	for name, doc := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := LoadProblem(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrProblem)
		})
	}
}

func TestProblem_UnsolvableTiles(t *testing.T) {
	p, err := LoadProblem(strings.NewReader("kind: tiles\ntiles: {board: '213456780'}\n"))
	require.NoError(t, err)

	root := newRootCmd()
	err = p.solve(root, nil)
	assert.ErrorIs(t, err, ErrProblem)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "statesearch version dev\n", out)
}
