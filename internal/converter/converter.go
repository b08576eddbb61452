// =============================================================================
// rene - Converter Module
// =============================================================================
//
// This module contains the conversion pipeline. It runs every stage for a
// single input file, from config resolution to the written document.
//
// CONVERSION PIPELINE:
//   1. Resolve the configuration
//   2. Read the input file (text or workbook)
//   3. Build the redirect mapping
//   4. Check the mapping and log warnings
//   5. Write the XML document (or print it on a dry run)
//
// Stages run strictly in order and the first failure ends the run. Each
// failure is returned as a *StageError naming the stage it came from.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vedranvinko/rene/internal/config"
	"github.com/vedranvinko/rene/internal/mapping"
	"github.com/vedranvinko/rene/internal/source"
	"github.com/vedranvinko/rene/internal/validation"
	"github.com/vedranvinko/rene/internal/xmlwriter"
)

// DefaultOutput is the output path used when none is given.
const DefaultOutput = "httpRedirects.config"

// =============================================================================
// STAGES AND ERRORS
// =============================================================================

// Stage names a pipeline step.
type Stage string

const (
	StageConfig  Stage = "config"
	StageInput   Stage = "input"
	StageMapping Stage = "mapping"
	StageOutput  Stage = "output"
)

// StageError wraps the error that ended a run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageOf returns the stage that produced err, or "" if err did not come
// from a pipeline run.
func StageOf(err error) Stage {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage
	}
	return ""
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a run.
type Result struct {
	// InputFile is the path to the input file that was processed.
	InputFile string

	// OutputFile is the path to the written document.
	// This is empty on failure and on a dry run.
	OutputFile string

	// Success indicates whether every stage completed.
	Success bool

	// Error is the *StageError that ended the run, or nil.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about a run.
type Stats struct {
	// Records is the number of key/value pairs read.
	Records int

	// Entries is the number of distinct wildcards written.
	Entries int

	// Duplicates is the number of pairs that replaced an earlier entry.
	Duplicates int

	// Warnings is the number of issues reported by the checks.
	Warnings int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options selects the files and behaviour of a run.
type Options struct {
	// ConfigPath is the override file. Empty means built-in defaults.
	ConfigPath string

	// InputPath is the source file. Required.
	InputPath string

	// OutputPath is the document to write. Default: DefaultOutput.
	OutputPath string

	// Sheet selects the worksheet of a workbook input. Empty means the first.
	Sheet string

	// Escape XML-escapes attribute values.
	Escape bool

	// DryRun prints the document instead of writing OutputPath.
	DryRun bool
}

// Converter runs the pipeline for one input file.
type Converter struct {
	options Options
	logger  Logger

	// out receives the document on a dry run.
	out io.Writer
}

// New creates a new Converter. A nil logger discards all messages.
func New(options Options, logger Logger) *Converter {
	if options.OutputPath == "" {
		options.OutputPath = DefaultOutput
	}
	if logger == nil {
		logger = nopLogger{}
	}

	return &Converter{
		options: options,
		logger:  logger,
		out:     os.Stdout,
	}
}

// SetOutput sets where a dry run prints the document.
func (c *Converter) SetOutput(w io.Writer) {
	c.out = w
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{InputFile: c.options.InputPath}

	fail := func(stage Stage, err error) Result {
		result.Error = &StageError{Stage: stage, Err: err}
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	// =========================================================================
	// STEP 1: RESOLVE CONFIGURATION
	// =========================================================================

	cfg, err := config.Resolve(c.options.ConfigPath)
	if err != nil {
		return fail(StageConfig, err)
	}

	if c.options.ConfigPath != "" {
		c.logger.Debug("Loaded config: %s", c.options.ConfigPath)
	}
	c.logger.Debug("Using delimiter %q and base URL %q", cfg.Delimiter, cfg.URL)

	// =========================================================================
	// STEP 2 AND 3: READ INPUT AND BUILD MAPPING
	// =========================================================================
	// The input is fully read before the mapping is built.

	builder := mapping.New(cfg)

	if source.IsWorkbook(c.options.InputPath) {
		rows, err := source.ReadWorkbook(c.options.InputPath, c.options.Sheet)
		if err != nil {
			return fail(StageInput, err)
		}
		c.logger.Debug("Read %d rows from %s", len(rows), c.options.InputPath)

		if err := builder.AddRows(rows); err != nil {
			return fail(StageMapping, err)
		}
	} else {
		data, err := source.ReadText(c.options.InputPath)
		if err != nil {
			return fail(StageInput, err)
		}
		c.logger.Debug("Read %d bytes from %s", len(data), c.options.InputPath)

		if err := builder.AddText(data); err != nil {
			return fail(StageMapping, err)
		}
	}

	redirects := builder.Redirects()
	result.Stats.Records = builder.Records()
	result.Stats.Entries = builder.Len()
	result.Stats.Duplicates = builder.Duplicates()

	c.logger.Debug("Built %d redirects from %d records", builder.Len(), builder.Records())
	if builder.Duplicates() > 0 {
		c.logger.Info("%d duplicate wildcard(s) replaced by a later entry", builder.Duplicates())
	}

	// =========================================================================
	// STEP 4: CHECK MAPPING
	// =========================================================================
	// Issues are logged; they never stop the run.

	issues := validation.Check(redirects, c.options.Escape)
	result.Stats.Warnings = len(issues)
	for _, issue := range issues {
		c.logger.Warn("%s", issue.Error())
	}

	// =========================================================================
	// STEP 5: WRITE DOCUMENT
	// =========================================================================

	writeOptions := xmlwriter.DefaultOptions()
	writeOptions.Escape = c.options.Escape

	if c.options.DryRun {
		if err := xmlwriter.Write(c.out, redirects, writeOptions); err != nil {
			return fail(StageOutput, fmt.Errorf("%w: %w", xmlwriter.ErrOutput, err))
		}
	} else {
		if err := xmlwriter.WriteFile(c.options.OutputPath, redirects, writeOptions); err != nil {
			return fail(StageOutput, err)
		}
		result.OutputFile = c.options.OutputPath
		c.logger.Info("Wrote %d redirect(s) to %s", len(redirects), c.options.OutputPath)
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}
