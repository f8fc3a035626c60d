package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yech1990/chromwin/internal/genome"
	"github.com/yech1990/chromwin/internal/report"
	"github.com/yech1990/chromwin/internal/window"
)

func testStore() *genome.Store {
	s := genome.NewStore(genome.DefaultLabels())
	s.Append("1", []byte(strings.Repeat("ACTG", 5)))
	s.Append("3", []byte(strings.Repeat("n", 12)+"acgt"))
	s.Append("x", []byte("GATTACAGATTACA"))
	s.Append("y", []byte("AC"))
	return s
}

func listDir(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunWritesNonEmptyChromosomes(t *testing.T) {
	dir := t.TempDir()
	summaries, err := Run(testStore(), Options{NominalLength: 10, Writer: report.NewWriter(dir)})
	require.NoError(t, err)

	var labels []genome.Label
	for _, s := range summaries {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []genome.Label{"1", "3", "x", "y"}, labels)
	assert.ElementsMatch(t, []string{
		"chromosome_1.csv", "chromosome_3.csv", "chromosome_x.csv", "chromosome_y.csv",
	}, listDir(t, dir))

	assert.Equal(t, 4, summaries[0].Windows)
	assert.Equal(t, 16, summaries[1].Length)
	// "AC" is shorter than the stride: a report with no rows
	assert.Zero(t, summaries[3].Windows)
	data, err := os.ReadFile(filepath.Join(dir, "chromosome_y.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), 3)
}

func TestRunSkipsEmptyUnplaced(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(testStore(), Options{NominalLength: 6, Writer: report.NewWriter(dir)})
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "chromosome_unplaced.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "chromosome_2.csv"))
}

func TestRunInvalidLengthWritesNothing(t *testing.T) {
	for _, n := range []int{0, -10, 1} {
		dir := t.TempDir()
		summaries, err := Run(testStore(), Options{NominalLength: n, Writer: report.NewWriter(dir)})
		var cfgErr *window.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Nil(t, summaries)
		assert.Empty(t, listDir(t, dir))
	}
}

func TestRunDeterministicAcrossThreads(t *testing.T) {
	read := func(threads int) (map[string]string, []report.Summary) {
		dir := t.TempDir()
		var progress bytes.Buffer
		summaries, err := Run(testStore(), Options{
			NominalLength: 4,
			Threads:       threads,
			Writer:        report.NewWriter(dir),
			Progress:      &progress,
		})
		require.NoError(t, err)
		files := map[string]string{}
		for _, name := range listDir(t, dir) {
			data, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err)
			files[name] = string(data)
		}
		for i := range summaries {
			summaries[i].Path = filepath.Base(summaries[i].Path)
		}
		return files, summaries
	}

	serialFiles, serial := read(1)
	parallelFiles, parallel := read(8)
	assert.Equal(t, serialFiles, parallelFiles)
	assert.Equal(t, serial, parallel)
}

func TestRunEmptyStore(t *testing.T) {
	summaries, err := Run(genome.NewStore(genome.DefaultLabels()), Options{NominalLength: 10, Writer: report.NewWriter(t.TempDir())})
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestRunReportsWriteError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := Run(testStore(), Options{NominalLength: 10, Writer: report.NewWriter(blocker)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chromosome 1")
}
