package schematic

import (
	"fmt"
	"strconv"
	"strings"
)

// asciiPunct holds every ASCII punctuation character.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const emptyCellChar = '.'

// IsDigit reports whether r is one of '0' through '9'.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsSymbol reports whether r is ASCII punctuation other than '.'.
func IsSymbol(r rune) bool {
	return r != emptyCellChar && strings.ContainsRune(asciiPunct, r)
}

// Run is a maximal horizontal sequence of digits within one row.
type Run struct {
	Row        int
	Start, End int // Inclusive column span.
	Value      uint64
}

// DiscoverNumber returns the value of the digit run containing seed.
func (g *Grid) DiscoverNumber(seed Coord) (uint64, error) {
	run, err := g.DiscoverRun(seed)
	if err != nil {
		return 0, err
	}
	return run.Value, nil
}

// DiscoverRun finds the digit run containing seed by scanning left and right
// along the seed's row. A cell that cannot be read ends the scan in that
// direction, the same as a non-digit does.
func (g *Grid) DiscoverRun(seed Coord) (Run, error) {
	if !g.isDigitAt(seed) {
		return Run{}, fmt.Errorf("seed %v: %w", seed, ErrNotFound)
	}

	start := seed.Col
	for start > 0 && g.isDigitAt(Coord{seed.Row, start - 1}) {
		start--
	}

	end := seed.Col
	for end < g.cols-1 && g.isDigitAt(Coord{seed.Row, end + 1}) {
		end++
	}

	digits := string(g.rows[seed.Row][start : end+1])
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Run{}, fmt.Errorf("digits %q at %v: %w", digits, seed, ErrParse)
	}

	return Run{Row: seed.Row, Start: start, End: end, Value: v}, nil
}

func (g *Grid) isDigitAt(c Coord) bool {
	r, err := g.Get(c)
	return err == nil && IsDigit(r)
}
