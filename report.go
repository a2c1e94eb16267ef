package schematic

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteAnswers.
const (
	FormatText = "text" // "Part 1: N" and "Part 2: M" lines.
	FormatYAML = "yaml" // A yaml document with part1 and part2 keys.
)

// WriteAnswers writes a to w in the given format.
func WriteAnswers(w io.Writer, a Answers, format string) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintf(w, "Part 1: %d\nPart 2: %d\n", a.Part1, a.Part2)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("failed to encode answers: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
