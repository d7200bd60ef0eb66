package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCreatesBothStubs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "solutions")
	require.NoError(t, os.MkdirAll(root, 0o755))

	res, err := Generate(root, 2023, 5)
	require.NoError(t, err)

	solution, test := Paths(root, 2023, 5)
	require.Equal(t, []string{solution, test}, res.Created)
	require.Empty(t, res.Skipped)
	require.Equal(t, filepath.Join(root, "aoc2023", "advent_2023_05.go"), solution)
	require.Equal(t, filepath.Join(root, "aoc2023", "test_2023_05.go"), test)

	sb, err := os.ReadFile(solution)
	require.NoError(t, err)
	require.Contains(t, string(sb), "// Advent of Code 2023: Day 5.")
	require.Contains(t, string(sb), "package aoc2023")
	require.Contains(t, string(sb), "Year:  2023,")
	require.Contains(t, string(sb), "Day:   5,")
	require.Contains(t, string(sb), "func part1of2023d05(data string) (any, error)")
	require.Contains(t, string(sb), "solve.ErrUnsolved")

	tb, err := os.ReadFile(test)
	require.NoError(t, err)
	require.Contains(t, string(tb), "// Tests for AOC 2023-05.")
	require.Contains(t, string(tb), "package aoc2023")
	require.Contains(t, string(tb), "solve.RegisterTests")
	require.Contains(t, string(tb), "solve.Expect(part1of2023d05, sample2023d05, nil)")
}

func TestGenerateNeverOverwrites(t *testing.T) {
	root := filepath.Join(t.TempDir(), "solutions")
	require.NoError(t, os.MkdirAll(root, 0o755))

	solution, test := Paths(root, 2023, 1)
	_, err := Generate(root, 2023, 1)
	require.NoError(t, err)

	// Simulate user work, then re-scaffold.
	require.NoError(t, os.WriteFile(solution, []byte("user work"), 0o644))

	res, err := Generate(root, 2023, 1)
	require.NoError(t, err)
	require.Empty(t, res.Created)
	require.Equal(t, []string{solution, test}, res.Skipped)

	b, err := os.ReadFile(solution)
	require.NoError(t, err)
	require.Equal(t, "user work", string(b))
}

func TestGenerateRejectsInvalidCoordinates(t *testing.T) {
	root := t.TempDir()
	_, err := Generate(root, 2014, 1)
	require.Error(t, err)
	_, err = Generate(root, 2023, 0)
	require.Error(t, err)
	_, err = Generate(root, 2023, 26)
	require.Error(t, err)
}

func TestWriteManifest(t *testing.T) {
	root := filepath.Join(t.TempDir(), "solutions")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "aoc2015"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "aoc2023"), 0o755))
	// Non-year entries are ignored.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "testdata"), 0o755))

	require.NoError(t, WriteManifest(root))

	b, err := os.ReadFile(filepath.Join(root, "solutions.go"))
	require.NoError(t, err)
	content := string(b)
	require.Contains(t, content, "// Code generated by aocgen. DO NOT EDIT.")
	require.Contains(t, content, "package solutions")
	require.Contains(t, content, `_ "aockit/solutions/aoc2015"`)
	require.Contains(t, content, `_ "aockit/solutions/aoc2023"`)
	require.NotContains(t, content, "testdata")

	// A second run with unchanged years leaves the file alone.
	info1, err := os.Stat(filepath.Join(root, "solutions.go"))
	require.NoError(t, err)
	require.NoError(t, WriteManifest(root))
	b2, err := os.ReadFile(filepath.Join(root, "solutions.go"))
	require.NoError(t, err)
	require.Equal(t, b, b2)
	info2, err := os.Stat(filepath.Join(root, "solutions.go"))
	require.NoError(t, err)
	require.Equal(t, info1.ModTime(), info2.ModTime())
}
