// Package main provides the CLI entry point for excelcmp.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/khaledbashir/excel/pkg/excelcmp"
	"github.com/khaledbashir/excel/pkg/excelcmp/output"
)

var (
	positions      string
	checkStyle     bool
	outputPath     string
	pretty         bool
	verbose        bool
	summaryOnly    bool
	noHints        bool
	maxReported    int
	failOnMismatch bool
)

// errMismatch signals a completed comparison whose workbooks differ.
var errMismatch = errors.New("workbooks differ")

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errMismatch) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelcmp [expected.xlsx] [actual.xlsx]",
		Short: "Compare two Excel workbooks cell by cell",
		Long: `excelcmp grades an Excel workbook against a ground-truth workbook over
the requested ranges, normalizing numbers, percentages, dates and text, and
optionally comparing fills and conditional formatting.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, stderr, args[0], args[1])
		},
	}

	rootCmd.Flags().StringVarP(&positions, "positions", "p", "", `Ranges to compare, e.g. "Sheet1!A1:B5,Sheet2!C1" (required)`)
	rootCmd.Flags().BoolVar(&checkStyle, "style", false, "Also compare fills and conditional formatting")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the JSON result to this file")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log comparison progress to stderr")
	rootCmd.Flags().BoolVar(&summaryOnly, "summary", false, "Print a text summary instead of JSON")
	rootCmd.Flags().BoolVar(&noHints, "no-hints", false, "Omit character diff hints for text mismatches")
	rootCmd.Flags().IntVar(&maxReported, "max-reported", 10, "Differences listed in the text summary (0 lists all)")
	rootCmd.Flags().BoolVar(&failOnMismatch, "fail-on-mismatch", true, "Exit with status 1 when the workbooks differ")
	_ = rootCmd.MarkFlagRequired("positions")

	return rootCmd
}

func run(stdout, stderr io.Writer, expectedPath, actualPath string) error {
	opts := excelcmp.DefaultOptions()
	opts.CheckStyle = checkStyle
	if noHints {
		hints := false
		opts.TextHints = &hints
	}
	if verbose {
		opts.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	result := excelcmp.CompareWorkbooks(expectedPath, actualPath, positions, opts)

	jsonData, err := output.ToJSON(result, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if summaryOnly {
		fmt.Fprintln(stdout, result.Summary(maxReported))
	} else if outputPath == "" {
		fmt.Fprintln(stdout, string(jsonData))
	}

	if failOnMismatch && !result.IsMatch {
		return errMismatch
	}
	return nil
}
