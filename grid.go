package schematic

import (
	"fmt"
	"strings"
)

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Grid is an engine schematic. It is built once and never modified.
type Grid struct {
	rows [][]rune // Rows keep their own length; short rows are not padded.
	cols int      // Length of the longest row.
}

// NewGrid builds a Grid from raw puzzle text.
// Carriage returns are dropped and every line feed ends a row. The last row is
// always kept, so empty input produces a grid with a single empty row.
func NewGrid(s string) *Grid {
	g := &Grid{rows: make([][]rune, 0, strings.Count(s, "\n")+1)}

	row := make([]rune, 0, 16)
	endRow := func() {
		g.rows = append(g.rows, row)
		g.cols = max(g.cols, len(row))
		row = make([]rune, 0, len(row))
	}

	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\n':
			endRow()
		default:
			row = append(row, r)
		}
	}
	endRow()

	return g
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return len(g.rows) }

// Cols returns the length of the longest row.
func (g *Grid) Cols() int { return g.cols }

// Get returns the rune at c.
// Coordinates outside Rows() x Cols(), or past the end of a short row, return ErrOutOfBounds.
func (g *Grid) Get(c Coord) (rune, error) {
	if c.Row < 0 || c.Row >= len(g.rows) {
		return 0, fmt.Errorf("row index %d: %w", c.Row, ErrOutOfBounds)
	}
	if c.Col < 0 || c.Col >= g.cols {
		return 0, fmt.Errorf("column index %d: %w", c.Col, ErrOutOfBounds)
	}

	row := g.rows[c.Row]
	if c.Col >= len(row) {
		return 0, fmt.Errorf("column index %d past end of row %d (length %d): %w", c.Col, c.Row, len(row), ErrOutOfBounds)
	}

	return row[c.Col], nil
}

// String returns the grid as text, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.rows) * (g.cols + 1))
	for _, row := range g.rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
