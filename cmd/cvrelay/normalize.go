package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-relay/internal/normalize"
	"github.com/jonathan/cv-relay/internal/observability"
	"github.com/jonathan/cv-relay/internal/schemas"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize a CV JSON document offline",
	Long: "Read a raw CV JSON document (as a model might produce it) from a file or stdin " +
		"and print its canonical form. No network access is needed.",
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

var (
	normalizeOutputFile string
	normalizeVerbose    bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	normalizeCmd.Flags().BoolVarP(&normalizeVerbose, "verbose", "v", false, "Print a summary of the normalized CV to stderr")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	cv := normalize.JSON(data)

	output, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal CV: %w", err)
	}

	// Normalized output always conforms; a failure here is a bug
	if err := schemas.ValidateCV(output); err != nil {
		return fmt.Errorf("normalized CV failed schema check: %w", err)
	}

	if normalizeVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintCV(&cv)
		printer.PrintExperience(cv.Experience)
	}

	if normalizeOutputFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return err
	}

	if err := os.WriteFile(normalizeOutputFile, append(output, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s Normalized CV written to %s\n", color.GreenString("✓"), normalizeOutputFile)
	return nil
}

// readInput reads the named file, or stdin when no file (or "-") is given
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}
