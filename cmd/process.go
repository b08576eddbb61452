// =============================================================================
// rene - Conversion Run
// =============================================================================
//
// This file wires the root command's flags into the conversion pipeline.
//
// FLAGS:
//   --sheet    : Worksheet to read when the input is an .xlsx workbook
//   --escape   : XML-escape wildcard and destination values
//   --dry-run  : Print the document to stdout instead of writing the file
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vedranvinko/rene/internal/converter"
)

// sheet selects the worksheet of a workbook input.
var sheet string

// escape enables XML escaping of attribute values.
var escape bool

// dryRun prints the document instead of writing it.
var dryRun bool

func init() {
	rootCmd.Flags().StringVar(
		&sheet,
		"sheet",
		"",
		"Worksheet to read from an .xlsx input (default is the first sheet)",
	)

	rootCmd.Flags().BoolVar(
		&escape,
		"escape",
		false,
		"XML-escape wildcard and destination values",
	)

	rootCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Print the document to stdout instead of writing the output file",
	)
}

// runProcess runs the pipeline with the parsed flags.
func runProcess(cmd *cobra.Command) error {
	logger := converter.NewLogger(cmd.ErrOrStderr(), verbose)

	conv := converter.New(converter.Options{
		ConfigPath: cfgFile,
		InputPath:  inputFile,
		OutputPath: outputFile,
		Sheet:      sheet,
		Escape:     escape,
		DryRun:     dryRun,
	}, logger)
	conv.SetOutput(cmd.OutOrStdout())

	result := conv.Run()
	if !result.Success {
		return result.Error
	}

	logger.Debug("Processed %d record(s) into %d redirect(s) in %s",
		result.Stats.Records, result.Stats.Entries, result.Stats.ProcessingTime)

	if result.Stats.Warnings > 0 {
		logger.Info("%d warning(s) reported", result.Stats.Warnings)
	}

	return nil
}
