// =============================================================================
// rene - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   rene version
//
// OUTPUT:
//   r(edirection) e(ngine)
//   Version:    0.0.1
//   Author:     vedranvinko
//   Build Date: unknown
//   Go Version: go1.24.11
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/vedranvinko/rene/cmd.BuildDate=2024-01-01'"

// Version is the application version.
var Version = "0.0.1"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, author, build date, and Go runtime version.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "r(edirection) e(ngine)")
		fmt.Fprintf(out, "Version:    %s\n", Version)
		fmt.Fprintln(out, "Author:     vedranvinko")
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
	},
}

// init registers the version command with the root command.
func init() {
	rootCmd.AddCommand(versionCmd)
}
