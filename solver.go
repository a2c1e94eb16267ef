package schematic

import (
	"math/bits"

	"go.uber.org/zap"
)

// Symbol is a symbol cell together with the numbers adjacent to it.
type Symbol struct {
	At      Coord
	Char    rune
	Numbers []uint64 // Distinct by value, in neighbor visiting order.
	Runs    []Run    // The runs Numbers were read from.
}

// IsGear reports whether s has exactly two adjacent numbers and, when gear is
// non-zero, is the gear character.
func (s Symbol) IsGear(gear rune) bool {
	if gear != 0 && s.Char != gear {
		return false
	}
	return len(s.Numbers) == 2
}

// Answers holds the result of both puzzle parts.
type Answers struct {
	Part1 uint64 `yaml:"part1"`
	Part2 uint64 `yaml:"part2"`
}

// Option configures Solve.
type Option func(*solver)

// WithLogger sets the logger used for per-symbol debug output.
func WithLogger(l *zap.Logger) Option {
	return func(s *solver) {
		s.log = l
	}
}

// WithGear restricts part 2 to symbols equal to gear. By default any symbol qualifies.
func WithGear(gear rune) Option {
	return func(s *solver) {
		s.gear = gear
	}
}

type solver struct {
	grid *Grid
	gear rune // Zero means any symbol may be a gear.
	log  *zap.Logger
}

// Solve computes both parts for g.
func Solve(g *Grid, opts ...Option) Answers {
	s := solver{
		grid: g,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s.solve()
}

func (s *solver) solve() Answers {
	symbols := s.grid.Symbols()

	s.log.Debug("scanned grid",
		zap.Int("rows", s.grid.Rows()),
		zap.Int("cols", s.grid.Cols()),
		zap.Int("symbols", len(symbols)))

	for _, sym := range symbols {
		isGear := sym.IsGear(s.gear)
		s.log.Debug("symbol",
			zap.String("char", string(sym.Char)),
			zap.Stringer("at", sym.At),
			zap.Uint64s("numbers", sym.Numbers),
			zap.Bool("gear", isGear))

		if _, ok := sym.GearRatio(); isGear && !ok {
			s.log.Warn("gear ratio overflows, skipping",
				zap.Stringer("at", sym.At),
				zap.Uint64s("numbers", sym.Numbers))
		}
	}

	return Answers{
		Part1: SumPartNumbers(symbols),
		Part2: SumGearRatios(symbols, s.gear),
	}
}

// Symbols scans g in row-major order and returns every symbol cell with its adjacent numbers.
func (g *Grid) Symbols() []Symbol {
	symbols := make([]Symbol, 0, 64)

	for r, row := range g.rows {
		for c, char := range row {
			if !IsSymbol(char) {
				continue
			}

			at := Coord{r, c}
			runs := g.AdjacentRuns(at)

			symbols = append(symbols, Symbol{At: at, Char: char, Numbers: runValues(runs), Runs: runs})
		}
	}

	return symbols
}

// SumPartNumbers adds up every number adjacent to every symbol.
// A number that would overflow the total is left out.
func SumPartNumbers(symbols []Symbol) uint64 {
	var total uint64
	for _, s := range symbols {
		for _, n := range s.Numbers {
			if sum, ok := addChecked(total, n); ok {
				total = sum
			}
		}
	}
	return total
}

// SumGearRatios adds up the product of the two numbers of every gear.
// See Symbol.IsGear for the meaning of gear. A ratio that overflows, or would
// overflow the total, is left out.
func SumGearRatios(symbols []Symbol, gear rune) uint64 {
	var total uint64
	for _, s := range symbols {
		if !s.IsGear(gear) {
			continue
		}
		ratio, ok := s.GearRatio()
		if !ok {
			continue
		}
		if sum, ok := addChecked(total, ratio); ok {
			total = sum
		}
	}
	return total
}

// GearRatio returns the product of the first two numbers of s.
// ok is false when s has fewer than two numbers or the product overflows a uint64.
func (s Symbol) GearRatio() (ratio uint64, ok bool) {
	if len(s.Numbers) < 2 {
		return 0, false
	}
	hi, lo := bits.Mul64(s.Numbers[0], s.Numbers[1])
	return lo, hi == 0
}

func addChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
