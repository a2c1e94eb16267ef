package schematic

import (
	"strings"

	"github.com/vyevs/ansi"
)

const (
	symbolColor = "red"
	partColor   = "green"
	gearColor   = "yellow"
)

// Render returns g with ANSI colors: symbols in red, gears in yellow and the
// numbers counted as part numbers in green. Everything else is left uncolored.
func Render(g *Grid, symbols []Symbol, gear rune) string {
	cellToColor := make(map[Coord]string, len(symbols)*4)
	for _, s := range symbols {
		color := symbolColor
		if s.IsGear(gear) {
			color = gearColor
		}
		cellToColor[s.At] = color

		for _, run := range s.Runs {
			for c := run.Start; c <= run.End; c++ {
				cellToColor[Coord{run.Row, c}] = partColor
			}
		}
	}

	var b strings.Builder
	b.Grow(len(g.rows) * (g.cols + 1) * 2)

	for r, row := range g.rows {
		var cur string
		for c, char := range row {
			color := cellToColor[Coord{r, c}]
			if color != cur {
				if color == "" {
					b.WriteString(ansi.Clear)
				} else {
					b.WriteString(ansi.FGColorName(color))
				}
				cur = color
			}
			b.WriteRune(char)
		}
		if cur != "" {
			b.WriteString(ansi.Clear)
		}
		b.WriteByte('\n')
	}

	b.WriteString(ansi.Clear)

	return b.String()
}
