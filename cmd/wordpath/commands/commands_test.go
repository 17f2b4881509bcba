package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordpath/dijkstra"
)

// run executes a fresh command tree with the given stdin and arguments.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

// writeFile creates name under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func assertOutput(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

const (
	triangleGraph = "3\n0 1 1\n1 2 2\n0 2 5\n"
	isolatedGraph = "4\n0 1 1\n1 2 2\n0 2 5\n3 0 1\n"
	smallWords    = "dot dog cog cot\ncat\n"
)

func TestDijkstra_Triangle(t *testing.T) {
	graph := writeFile(t, "graph.txt", triangleGraph)

	out, _, err := run(t, "", "dijkstra", graph)
	require.NoError(t, err)
	assertOutput(t, "0\nTotal cost is: 0\n0 1\nTotal cost is: 1\n0 1 2\nTotal cost is: 3\n", out)
}

func TestDijkstra_Unreachable(t *testing.T) {
	graph := writeFile(t, "graph.txt", isolatedGraph)

	out, _, err := run(t, "", "dijkstra", graph)
	require.NoError(t, err)
	assertOutput(t, "0\nTotal cost is: 0\n0 1\nTotal cost is: 1\n0 1 2\nTotal cost is: 3\nNo path found.\n", out)
}

func TestDijkstra_SourceFlagAndConfig(t *testing.T) {
	graph := writeFile(t, "graph.txt", isolatedGraph)
	want := "3 0\nTotal cost is: 1\n3 0 1\nTotal cost is: 2\n3 0 1 2\nTotal cost is: 4\n3\nTotal cost is: 0\n"

	out, _, err := run(t, "", "dijkstra", "--source", "3", graph)
	require.NoError(t, err)
	assertOutput(t, want, out)

	cfg := writeFile(t, "wordpath.yaml", "source: 3\n")
	out, _, err = run(t, "", "--config", cfg, "dijkstra", graph)
	require.NoError(t, err)
	assertOutput(t, want, out)

	// An explicit flag wins over the config file.
	out, _, err = run(t, "", "--config", cfg, "dijkstra", "-s", "0", graph)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0\nTotal cost is: 0\n"), out)
}

func TestDijkstra_PromptsForFile(t *testing.T) {
	graph := writeFile(t, "graph.txt", triangleGraph)

	out, _, err := run(t, graph+"\n", "dijkstra")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Enter graph filename: 0\n"), out)
}

func TestDijkstra_Errors(t *testing.T) {
	_, _, err := run(t, "", "dijkstra", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	graph := writeFile(t, "graph.txt", triangleGraph)
	_, _, err = run(t, "", "dijkstra", "--source", "9", graph)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	bad := writeFile(t, "bad.txt", "2\n0 1 -3\n")
	_, _, err = run(t, "", "dijkstra", bad)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_VerboseLogs(t *testing.T) {
	graph := writeFile(t, "graph.txt", triangleGraph)

	_, stderr, err := run(t, "", "-v", "dijkstra", graph)
	require.NoError(t, err)
	assert.Contains(t, stderr, "graph loaded")
	assert.Contains(t, stderr, "vertices=3")

	_, stderr, err = run(t, "", "dijkstra", graph)
	require.NoError(t, err)
	assert.Empty(t, stderr, "debug logs are off by default")
}

func TestLadder_Found(t *testing.T) {
	words := writeFile(t, "words.txt", smallWords)

	out, _, err := run(t, "", "ladder", "cat", "dog", "--dict", words)
	require.NoError(t, err)
	assertOutput(t, "Word ladder found: cat cot cog dog\n", out)

	// Input words are lowercased before the search.
	out, _, err = run(t, "", "ladder", "CAT", "Dog", "-d", words)
	require.NoError(t, err)
	assertOutput(t, "Word ladder found: cat cot cog dog\n", out)
}

func TestLadder_NotFound(t *testing.T) {
	words := writeFile(t, "words.txt", "cat dog\n")

	out, _, err := run(t, "", "ladder", "cat", "dog", "--dict", words)
	require.NoError(t, err)
	assertOutput(t, "No word ladder found.\n", out)
}

func TestLadder_Prompts(t *testing.T) {
	words := writeFile(t, "words.txt", smallWords)

	out, _, err := run(t, "cat\ndog\n", "ladder", "--dict", words)
	require.NoError(t, err)
	assertOutput(t, "Enter start word: Enter end word: Word ladder found: cat cot cog dog\n", out)

	// Only the missing end word is prompted for.
	out, _, err = run(t, "dog\n", "ladder", "cat", "--dict", words)
	require.NoError(t, err)
	assertOutput(t, "Enter end word: Word ladder found: cat cot cog dog\n", out)

	_, _, err = run(t, "", "ladder", "--dict", words)
	assert.Error(t, err, "EOF while prompting")
}

func TestLadder_Validation(t *testing.T) {
	words := writeFile(t, "words.txt", smallWords)

	_, _, err := run(t, "", "ladder", "cat", "CAT", "--dict", words)
	assert.ErrorIs(t, err, ErrSameWords)

	_, _, err = run(t, "", "ladder", "cat", "fox", "--dict", words)
	assert.ErrorIs(t, err, ErrEndNotInDictionary)
	assert.Contains(t, err.Error(), `"fox"`)

	_, _, err = run(t, "", "ladder", "cat", "dog", "--dict", filepath.Join(t.TempDir(), "none.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLadder_DictionaryFromConfig(t *testing.T) {
	words := writeFile(t, "words.txt", smallWords)
	cfg := writeFile(t, "wordpath.yaml", fmt.Sprintf("dictionary: %q\n", words))

	out, _, err := run(t, "", "--config", cfg, "ladder", "cat", "dog")
	require.NoError(t, err)
	assertOutput(t, "Word ladder found: cat cot cog dog\n", out)
}

func TestConfig_Errors(t *testing.T) {
	_, _, err := run(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "verify")
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg := writeFile(t, "wordpath.yaml", "source: [not, a, number]\n")
	_, err = LoadConfig(cfg)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "wordpath.yaml", "dictionary: big.txt\nsource: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "big.txt", cfg.Dictionary)
	require.NotNil(t, cfg.Source)
	assert.Equal(t, 2, *cfg.Source)

	assert.Equal(t, "big.txt", cfg.dictionaryPath(DefaultDictionary, false))
	assert.Equal(t, "flag.txt", cfg.dictionaryPath("flag.txt", true))
	assert.Equal(t, 2, cfg.sourceVertex(0, false))

	var none *Config
	assert.Equal(t, DefaultDictionary, none.dictionaryPath(DefaultDictionary, false))
	assert.Equal(t, 0, none.sourceVertex(5, false))
}

func TestVerify_ReportsEachCase(t *testing.T) {
	words := writeFile(t, "words.txt", smallWords)

	out, _, err := run(t, "", "verify", "--dict", words)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5 of 6 checks failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, `generate("cat", "dog") length == 4 passed`, lines[0])
	assert.Equal(t, `generate("car", "cheat") length == 4 failed`, lines[5])
}
