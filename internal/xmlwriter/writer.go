// =============================================================================
// rene - XML Writer Module
// =============================================================================
//
// This module renders the redirect mapping as an httpRedirect document for
// the server's URL-rewriting module.
//
// XML STRUCTURE:
//
//   <httpRedirect enabled="true" exactDestination="true" httpResponseStatus="Permanent">
//   	<add wildcard="/old" destination="/new" />
//   	<add wildcard="/foo" destination="/bar" />
//   </httpRedirect>
//
//   Entry lines are indented with a single tab. The envelope is fixed.
//
// ORDERING:
//   Entries are written sorted by wildcard so that the same input always
//   produces the same file.
//
// ESCAPING:
//   Attribute values are written verbatim unless Options.Escape is set. The
//   source data is expected to be free of markup characters; the validation
//   package warns when it is not.
//
// =============================================================================

package xmlwriter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vedranvinko/rene/internal/types"
	"github.com/vedranvinko/rene/pkg/utils"
)

const (
	openTag  = `<httpRedirect enabled="true" exactDestination="true" httpResponseStatus="Permanent">`
	closeTag = `</httpRedirect>`
)

// ErrOutput is wrapped by every error returned from WriteFile.
var ErrOutput = errors.New("output")

// Options contains options for XML generation.
type Options struct {
	// Escape XML-escapes wildcard and destination values.
	// Default: false (values are inserted verbatim)
	Escape bool
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{Escape: false}
}

// =============================================================================
// XML GENERATION FUNCTIONS
// =============================================================================

// Write renders the document to w.
func Write(w io.Writer, redirects types.RedirectMap, options Options) error {
	if _, err := fmt.Fprintln(w, openTag); err != nil {
		return err
	}

	for _, r := range redirects.Sorted() {
		if err := writeEntry(w, r, options); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, closeTag)
	return err
}

// WriteFile renders the document to path.
//
// PARAMETERS:
//   - path: The output file path. Missing parent directories are created.
//   - redirects: The mapping to write.
//   - options: The generation options.
//
// RETURNS:
//   - An error wrapping ErrOutput if the file cannot be created or written.
//     The target is left untouched in that case.
func WriteFile(path string, redirects types.RedirectMap, options Options) error {
	err := utils.WriteFileAtomic(path, func(w io.Writer) error {
		return Write(w, redirects, options)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrOutput, path, err)
	}
	return nil
}

func writeEntry(w io.Writer, r types.Redirect, options Options) error {
	wildcard, destination := r.Wildcard, r.Destination
	if options.Escape {
		wildcard, destination = escape(wildcard), escape(destination)
	}

	_, err := fmt.Fprintf(w, "\t<add wildcard=\"%s\" destination=\"%s\" />\n", wildcard, destination)
	return err
}

// escape returns s with XML special characters replaced by entities.
func escape(s string) string {
	var b strings.Builder
	// Writing to a strings.Builder cannot fail.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
