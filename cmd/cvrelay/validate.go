package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-relay/internal/observability"
	"github.com/jonathan/cv-relay/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a CV JSON document against the canonical schema",
	Long: "Check a CV JSON document from a file or stdin against the canonical CV schema, " +
		"or against a custom schema given with --schema.",
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateSchemaFile string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to a JSON schema (default: built-in canonical CV schema)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var err error
	if validateSchemaFile != "" {
		if len(args) == 0 || args[0] == "-" {
			return fmt.Errorf("--schema requires a document file argument")
		}
		err = schemas.ValidateJSON(validateSchemaFile, args[0])
	} else {
		data, readErr := readInput(cmd, args)
		if readErr != nil {
			return readErr
		}
		err = schemas.ValidateCV(data)
	}

	out := cmd.OutOrStdout()

	var ve *schemas.ValidationError
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(out, "%s CV is valid\n", color.GreenString("✓"))
		return nil
	case errors.As(err, &ve):
		observability.NewPrinter(out).PrintSchemaErrors(ve.Errors)
		_, _ = fmt.Fprintf(out, "%s %d schema violation(s)\n", color.RedString("✗"), len(ve.Errors))
		return fmt.Errorf("CV does not match schema")
	default:
		return err
	}
}
