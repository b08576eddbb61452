// =============================================================================
// rene - Source Reader Module
// =============================================================================
//
// This module is responsible for reading the redirect source file. Two
// formats are supported:
//   - Plain text: one record per line, key and value separated by the
//     configured delimiter. This is the default.
//   - XLSX workbook: one record per row, key in column A and value in
//     column B. Selected by the .xlsx / .xlsm extension.
//
// The whole file is read into memory before any processing starts.
//
// =============================================================================

package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInput is wrapped by every error returned from this package.
var ErrInput = errors.New("input")

// Row is a single workbook row.
type Row struct {
	// Number is the 1-indexed row number in the sheet.
	Number int

	// Cells contains the cell values, column A first.
	Cells []string
}

// IsWorkbook reports whether path should be read with ReadWorkbook.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// ReadText reads the whole input file as text.
//
// PARAMETERS:
//   - path: The path to the input file.
//
// RETURNS:
//   - The file content.
//   - An error wrapping ErrInput if the file cannot be opened or read.
func ReadText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open file: %w", ErrInput, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read file %s: %w", ErrInput, path, err)
	}

	return string(data), nil
}
