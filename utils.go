package schematic

import (
	"fmt"
	"io"
	"os"
)

// ReadGridFromFile uses ReadGrid to read a grid from the specified file.
func ReadGridFromFile(file string) (*Grid, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open puzzle file: %w: %w", ErrIO, err)
	}
	defer f.Close()
	return ReadGrid(f)
}

// ReadGrid reads all of r and builds a Grid from it.
func ReadGrid(r io.Reader) (*Grid, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w: %w", ErrIO, err)
	}
	return NewGrid(string(bs)), nil
}
