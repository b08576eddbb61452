// =============================================================================
// rene - File Manager Utility
// =============================================================================
//
// This module provides file management utilities:
//   - Directory management
//   - Atomic file writes
//   - File naming utilities
//
// ATOMIC WRITES:
//   Output is written to a temporary file next to the target and renamed
//   over it once complete. A failed run never leaves a partial target file;
//   the temporary file is removed on every error path.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will contain path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// TempName returns a unique hidden sibling name for path.
// Example: out/httpRedirects.config -> out/.httpRedirects.config.<uuid>.tmp
func TempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.New().String()))
}

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes path through a buffered writer handed to write.
//
// PARAMETERS:
//   - path: The final file path.
//   - write: Renders the content. Returning an error aborts the write.
//
// RETURNS:
//   - An error if the file cannot be created, written, or renamed.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	tmpPath := TempName(path)
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	buf := bufio.NewWriter(file)
	if err = write(buf); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	return nil
}
