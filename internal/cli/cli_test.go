package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tilestitch/internal/fixture"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	tsio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/observability"
)

// isolate points the config and cache directories at fresh temp dirs and
// returns the cache home.
func isolate(t *testing.T) string {
	t.Helper()
	cacheHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Cleanup(observability.Reset)
	return cacheHome
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.SetOutput(&out)

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func sampleFile(t *testing.T) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "sample.txt", fixture.Sample)
}

func TestSolveQuiet(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "solve", "-q", sampleFile(t))
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(fixture.SampleCornerProduct)+"\n", out)
}

func TestSolveSummary(t *testing.T) {
	isolate(t)
	path := sampleFile(t)
	solPath := filepath.Join(t.TempDir(), "solution.json")

	out, err := run(t, "", "solve", "-o", solPath, path)
	require.NoError(t, err)
	for _, want := range []string{"20899048083289", "1171, 1951, 2971, 3079", "3x3 tiles of 10x10", "1171 rot1", "fresh", solPath} {
		assert.Contains(t, out, want)
	}

	sol, err := tsio.ImportSolution(solPath)
	require.NoError(t, err)
	assert.Equal(t, fixture.SampleCornerProduct, sol.CornerProduct)
	assert.Equal(t, 3, sol.Placement.Rows)

	again, err := run(t, "", "solve", path)
	require.NoError(t, err)
	assert.Contains(t, again, "cached")
	assert.Contains(t, again, "12 links")
}

func TestSolveStdin(t *testing.T) {
	isolate(t)
	out, err := run(t, fixture.Sample, "solve", "-q", "--no-cache", "-")
	require.NoError(t, err)
	assert.Equal(t, "20899048083289\n", out)
}

func TestRenderAllFormats(t *testing.T) {
	isolate(t)
	outDir := t.TempDir()

	out, err := run(t, "", "render", "-f", "txt,png,json,svg", "--scale", "2", "-o", outDir, sampleFile(t))
	require.NoError(t, err)

	for _, ext := range []string{"txt", "png", "json", "svg"} {
		p := filepath.Join(outDir, "sample."+ext)
		assert.FileExists(t, p)
		assert.Contains(t, out, p)
	}

	txt, err := os.ReadFile(filepath.Join(outDir, "sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, fixture.SampleSetPixels, bytes.Count(txt, []byte("#")))

	svg, err := os.ReadFile(filepath.Join(outDir, "sample.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRenderUsesConfigDefaults(t *testing.T) {
	isolate(t)
	cfg := writeFile(t, t.TempDir(), "config.toml", "[render]\nformats = [\"json\"]\nscale = 2\n")
	outDir := t.TempDir()

	_, err := run(t, fixture.Sample, "--config", cfg, "render", "--name", "piped", "-o", outDir, "-")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "piped.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "piped.txt"))
}

func TestAdjacency(t *testing.T) {
	isolate(t)
	path := sampleFile(t)

	out, err := run(t, "", "adjacency", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 corners · 4 border · 1 interior · 12 links")
	assert.Contains(t, out, "interior")

	dot, err := run(t, "", "adjacency", "--dot", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dot, "graph G {"))
	assert.Equal(t, 12, strings.Count(dot, " -- "))
}

func TestCommandErrors(t *testing.T) {
	isolate(t)
	path := sampleFile(t)
	blocks := strings.Split(fixture.Sample, "\n\n")
	partial := writeFile(t, t.TempDir(), "partial.txt", blocks[0]+"\n\n"+blocks[1])

	tests := []struct {
		name string
		args []string
		code tserr.Code
	}{
		{"missing file", []string{"solve", filepath.Join(t.TempDir(), "nope.txt")}, tserr.ErrCodeFileNotFound},
		{"bad format", []string{"render", "-f", "gif", path}, tserr.ErrCodeInvalidFormat},
		{"bad scale", []string{"render", "-f", "png", "--scale", "999", path}, tserr.ErrCodeInvalidInput},
		{"not a grid", []string{"solve", partial}, tserr.ErrCodeAssembly},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.toml"), "solve", path}, tserr.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, tserr.GetCode(err), "err: %v", err)
		})
	}
}

func TestCachePathAndClear(t *testing.T) {
	cacheHome := isolate(t)
	dir := filepath.Join(cacheHome, "tilestitch")

	out, err := run(t, "", "cache", "path")
	require.NoError(t, err)
	assert.Equal(t, dir+"\n", out)

	_, err = run(t, "", "solve", "-q", sampleFile(t))
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	out, err = run(t, "", "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared cache")
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCachePathWithoutDirectory(t *testing.T) {
	isolate(t)
	cfg := writeFile(t, t.TempDir(), "config.toml", "[cache]\nbackend = \"none\"\n")
	_, err := run(t, "", "--config", cfg, "cache", "path")
	assert.True(t, tserr.Is(err, tserr.ErrCodeUnsupported), "err: %v", err)
}

func TestVerboseRegistersHooks(t *testing.T) {
	isolate(t)
	_, err := run(t, "", "-v", "solve", "-q", "--no-cache", sampleFile(t))
	require.NoError(t, err)
	_, ok := observability.Pipeline().(logHooks)
	assert.True(t, ok, "--verbose should install logging hooks")
}

func TestCompletionAndVersion(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "tilestitch")

	out, err = run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "tilestitch version")
}
