package schematic

import "errors"

var (
	// ErrIO is returned when the puzzle input cannot be read.
	ErrIO = errors.New("unable to read input")

	// ErrOutOfBounds is returned by Grid.Get for coordinates outside the grid,
	// including columns past the end of a short row.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNotFound is returned when a number is requested at a cell that does not hold a digit.
	ErrNotFound = errors.New("number could not be found")

	// ErrParse is returned when a digit run does not fit in a uint64.
	ErrParse = errors.New("cannot parse number")

	// ErrUnknownFormat is returned by WriteAnswers for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
)
