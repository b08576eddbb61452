// =============================================================================
// rene - Main Entry Point
// =============================================================================
//
// rene (r(edirection) e(ngine)) converts a delimited list of redirects into
// an httpRedirect XML document.
//
// USAGE:
//   rene -i <input> [-c <config>] [-o <output>]
//   rene version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Conversion pipeline (not for external import)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/vedranvinko/rene/cmd"
)

func main() {
	cmd.Execute()
}
