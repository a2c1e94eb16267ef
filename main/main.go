package main

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/vyevs/schematic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultInputPath = "inputs/day_3.txt"

var (
	verbose bool
	format  string
	gear    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "schematic [puzzle file]",
	Short: "Sum the part numbers and gear ratios of an engine schematic",
	Long: `Reads an engine schematic grid and prints two answers:

  Part 1: the sum of every number adjacent to a symbol
  Part 2: the sum of the products of numbers around symbols with exactly two neighbors`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every symbol and print the highlighted grid")
	rootCmd.Flags().StringVarP(&format, "format", "f", schematic.FormatText, "output format: text or yaml")
	rootCmd.Flags().StringVarP(&gear, "gear", "g", "", "only count this character as a gear in part 2, optional")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	puzzleFilePath := defaultInputPath
	if len(args) == 1 {
		puzzleFilePath = args[0]
	}

	gearChar, err := parseGear(gear)
	if err != nil {
		return err
	}

	grid, err := schematic.ReadGridFromFile(puzzleFilePath)
	if err != nil {
		return fmt.Errorf("encountered an error reading the puzzle input: %w", err)
	}

	logger.Debug("read puzzle", zap.String("path", puzzleFilePath))

	answers := solve(grid, gearChar)

	if verbose {
		symbols := grid.Symbols()
		fmt.Fprint(cmd.ErrOrStderr(), schematic.Render(grid, symbols, gearChar))
	}

	return schematic.WriteAnswers(cmd.OutOrStdout(), answers, format)
}

func solve(grid *schematic.Grid, gearChar rune) schematic.Answers {
	start := time.Now()
	answers := schematic.Solve(grid,
		schematic.WithLogger(logger),
		schematic.WithGear(gearChar))
	logger.Debug("solved", zap.Duration("took", time.Since(start)))

	return answers
}

func parseGear(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("gear must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !schematic.IsSymbol(r) {
		return 0, fmt.Errorf("gear %q is not a symbol", s)
	}
	return r, nil
}
