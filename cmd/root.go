// =============================================================================
// rene - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command performs the conversion; the only subcommand is 'version'.
//
// COBRA CLI STRUCTURE:
//   rootCmd (rene -i <input> [-c <config>] [-o <output>])
//   └── versionCmd (rene version)
//
// EXIT CODES:
//   0  success
//   1  usage error
//   2  config file unreadable or invalid
//   3  input file unreadable
//   4  malformed input line
//   5  output file cannot be written
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedranvinko/rene/internal/converter"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional override configuration file.
var cfgFile string

// inputFile holds the path to the redirect source file.
var inputFile string

// outputFile holds the path of the document to write.
var outputFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rene",
	Short: "r(edirection) e(ngine) - convert delimited redirect lists to httpRedirect XML",
	Long: `rene reads a text file of delimited source/destination pairs and writes an
httpRedirect document for the server's URL-rewriting module.

Each input line is split on the configured delimiter, the configured base URL
is removed from both fields, and duplicate sources keep their last
destination.

Defaults (override with --config, TOML, YAML or JSON):
  delimiter = ","
  url       = "https://example.org"

Example Usage:
  rene -i redirects.txt
  rene -i redirects.txt -c rene.toml -o web/httpRedirects.config
  rene -i redirects.xlsx --sheet Legacy --dry-run`,

	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command and exits with a non-zero status on failure.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a failure to the process exit status.
func exitCode(err error) int {
	switch converter.StageOf(err) {
	case converter.StageConfig:
		return 2
	case converter.StageInput:
		return 3
	case converter.StageMapping:
		return 4
	case converter.StageOutput:
		return 5
	default:
		return 1
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the flags shared by the root command.
func init() {
	// --config / -c: optional override file.
	rootCmd.Flags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"Specify config file to overwrite defaults",
	)

	// --input / -i: required source file.
	rootCmd.Flags().StringVarP(
		&inputFile,
		"input",
		"i",
		"",
		"Specify an input file",
	)
	rootCmd.MarkFlagRequired("input")

	// --output / -o: destination document.
	rootCmd.Flags().StringVarP(
		&outputFile,
		"output",
		"o",
		converter.DefaultOutput,
		"Specify an output file",
	)

	// --verbose / -v: debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
