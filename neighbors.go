package schematic

// neighborOffsets lists the 8 surrounding cells in visiting order:
// the row above left to right, then left and right, then the row below left to right.
var neighborOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// neighbors returns the in-range coordinates around c. Coordinates past the
// bottom or right edge are left for Get to reject.
func neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Coord{c.Row + off.Row, c.Col + off.Col}
		if n.Row < 0 || n.Col < 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Adjacent returns the distinct values of the numbers touching c, including diagonally.
// Values are deduplicated by value, not by position, so two different runs
// with the same value are reported once. The first occurrence is kept.
func (g *Grid) Adjacent(c Coord) []uint64 {
	return runValues(g.AdjacentRuns(c))
}

func runValues(runs []Run) []uint64 {
	out := make([]uint64, 0, len(runs))
	for _, r := range runs {
		out = append(out, r.Value)
	}
	return out
}

// AdjacentRuns is like Adjacent but returns the runs the values came from.
func (g *Grid) AdjacentRuns(c Coord) []Run {
	var runs []Run

OUTER:
	for _, n := range neighbors(c) {
		if !g.isDigitAt(n) {
			continue
		}

		run, err := g.DiscoverRun(n)
		if err != nil {
			// Unparseable runs are not part numbers.
			continue
		}

		for _, seen := range runs {
			if seen.Value == run.Value {
				continue OUTER
			}
		}
		runs = append(runs, run)
	}

	return runs
}
