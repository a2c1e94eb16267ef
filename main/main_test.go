package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyevs/schematic"
	"gopkg.in/yaml.v3"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

func executeWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	verbose, format, gear = false, schematic.FormatText, ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writePuzzle(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day_3.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunText(t *testing.T) {
	out, err := execute(t, writePuzzle(t, example))

	require.NoError(t, err)
	assert.Equal(t, "Part 1: 4361\nPart 2: 467835\n", out)
}

func TestRunYAML(t *testing.T) {
	out, err := execute(t, "--format", "yaml", writePuzzle(t, example))

	require.NoError(t, err)
	assert.Equal(t, "part1: 4361\npart2: 467835\n", out)
}

func TestRunVerbose(t *testing.T) {
	out, errOut, err := executeWithStderr(t, "-v", writePuzzle(t, example))

	require.NoError(t, err)
	assert.Equal(t, "Part 1: 4361\nPart 2: 467835\n", out)
	assert.Contains(t, errOut, "467")
	assert.Contains(t, errOut, "755")
	assert.Equal(t, 11, strings.Count(errOut, "\n"))
}

func TestRunVerboseYAML(t *testing.T) {
	out, _, err := executeWithStderr(t, "-v", "-f", "yaml", writePuzzle(t, example))
	require.NoError(t, err)

	var got map[string]uint64
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]uint64{"part1": 4361, "part2": 467835}, got)
}

func TestRunGear(t *testing.T) {
	path := writePuzzle(t, "2*3\n.#.\n")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 10\nPart 2: 12\n", out)

	out, err = execute(t, "--gear", "*", path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 10\nPart 2: 6\n", out)
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, schematic.ErrIO), "got %v", err)
}

func TestRunBadGear(t *testing.T) {
	_, err := execute(t, "--gear", "ab", writePuzzle(t, example))

	assert.Error(t, err)
}

func TestParseGear(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "*", want: '*'},
		{in: "#", want: '#'},
		{in: ".", wantErr: true},
		{in: "x", wantErr: true},
		{in: "**", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseGear(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
