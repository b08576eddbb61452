// =============================================================================
// rene - Mapping Builder
// =============================================================================
//
// This module turns source records into the redirect mapping.
//
// BUILD PROCESS (per record):
//   1. Split the line on the exact delimiter string
//   2. Keep the first two fields; more are ignored, fewer is an error
//   3. Remove every occurrence of the base URL from both fields
//   4. Insert the pair, replacing any earlier entry with the same key
//
// INPUT-FORMAT DISCIPLINE:
//   The delimiter must not appear inside a key or value. A line such as
//   "/a,b,/c" is split on every occurrence and maps "/a" to "b".
//
// =============================================================================

package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vedranvinko/rene/internal/config"
	"github.com/vedranvinko/rene/internal/source"
	"github.com/vedranvinko/rene/internal/types"
)

// ErrMalformedLine is matched by every *MalformedLineError.
var ErrMalformedLine = errors.New("malformed line")

// MalformedLineError reports a record without a value field.
type MalformedLineError struct {
	// Line is the 1-indexed line (or row) number in the source.
	Line int

	// Text is the offending record as read.
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %d: missing value: %q", e.Line, e.Text)
}

// Is makes errors.Is(err, ErrMalformedLine) true.
func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// =============================================================================
// BUILDER
// =============================================================================

// Builder accumulates redirects for a single run.
type Builder struct {
	delimiter string
	url       string

	redirects  types.RedirectMap
	records    int
	duplicates int
}

// New creates a Builder using the delimiter and base URL from cfg.
func New(cfg *config.Config) *Builder {
	return &Builder{
		delimiter: cfg.Delimiter,
		url:       cfg.URL,
		redirects: make(types.RedirectMap),
	}
}

// AddLine splits one text line and adds the resulting pair.
// Empty lines are skipped; a whitespace-only line is a record like any other.
func (b *Builder) AddLine(number int, line string) error {
	if line == "" {
		return nil
	}

	fields := strings.Split(line, b.delimiter)
	if len(fields) < 2 {
		return &MalformedLineError{Line: number, Text: line}
	}

	b.AddPair(fields[0], fields[1])
	return nil
}

// AddPair strips the base URL from key and value and stores the pair.
func (b *Builder) AddPair(key, value string) {
	key = b.strip(key)
	value = b.strip(value)

	if _, exists := b.redirects[key]; exists {
		b.duplicates++
	}
	b.redirects[key] = value
	b.records++
}

// strip removes all occurrences of the base URL, not just a prefix.
func (b *Builder) strip(s string) string {
	if b.url == "" {
		return s
	}
	return strings.ReplaceAll(s, b.url, "")
}

// Len returns the number of distinct keys.
func (b *Builder) Len() int {
	return len(b.redirects)
}

// Records returns the number of pairs added, duplicates included.
func (b *Builder) Records() int {
	return b.records
}

// Duplicates returns how many pairs replaced an earlier entry.
func (b *Builder) Duplicates() int {
	return b.duplicates
}

// Redirects returns the mapping built so far.
func (b *Builder) Redirects() types.RedirectMap {
	return b.redirects
}

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

// Build builds the mapping from the raw text of an input file.
//
// PARAMETERS:
//   - data: The whole input file.
//   - cfg: The resolved configuration.
//
// RETURNS:
//   - The redirect mapping. Empty input gives an empty mapping.
//   - A *MalformedLineError for the first line without a value.
func Build(data string, cfg *config.Config) (types.RedirectMap, error) {
	b := New(cfg)
	if err := b.AddText(data); err != nil {
		return nil, err
	}
	return b.Redirects(), nil
}

// AddText adds every line of data.
func (b *Builder) AddText(data string) error {
	for i, line := range Lines(data) {
		if err := b.AddLine(i+1, line); err != nil {
			return err
		}
	}
	return nil
}

// BuildRows builds the mapping from workbook rows. Columns A and B are the
// key and value; the delimiter is not applied.
func BuildRows(rows []source.Row, cfg *config.Config) (types.RedirectMap, error) {
	b := New(cfg)
	if err := b.AddRows(rows); err != nil {
		return nil, err
	}
	return b.Redirects(), nil
}

// AddRows adds every non-empty workbook row.
func (b *Builder) AddRows(rows []source.Row) error {
	for _, row := range rows {
		if isBlank(strings.Join(row.Cells, "")) {
			continue
		}
		if len(row.Cells) < 2 {
			return &MalformedLineError{Line: row.Number, Text: strings.Join(row.Cells, b.delimiter)}
		}
		b.AddPair(row.Cells[0], row.Cells[1])
	}
	return nil
}

// Lines splits text into lines. A trailing "\r" is dropped from each line
// and a final newline does not produce an extra empty line.
func Lines(data string) []string {
	if data == "" {
		return nil
	}

	lines := strings.Split(data, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
