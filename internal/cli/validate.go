package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-scribe-sub012/internal/ingest"
)

// FileValidation holds one file's validation outcome.
type FileValidation struct {
	File   string                   `json:"file"`
	Valid  bool                     `json:"valid"`
	Errors []ingest.ValidationError `json:"errors,omitempty"`
}

// ValidationReport holds validation results across all checked files.
type ValidationReport struct {
	Valid bool             `json:"valid"`
	Files []FileValidation `json:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file|dir>",
		Short: "Validate sequence files against the schema",
		Long: `Validate raw sequence JSON files against the embedded schema without
running detection. A directory argument checks every .json file in it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := newFormatter(opts, cmd)

	files, err := sequenceFiles(path)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			_ = formatter.Error(exitCodeToErrCode(exitErr), exitErr.Error(), nil)
		}
		return err
	}
	formatter.VerboseLog("Found %d sequence file(s)", len(files))

	report := ValidationReport{Valid: true}
	for _, file := range files {
		fv := FileValidation{File: file, Valid: true}

		data, readErr := os.ReadFile(file)
		if readErr != nil {
			fv.Valid = false
			fv.Errors = []ingest.ValidationError{{Message: readErr.Error()}}
		} else if valErr := ingest.Validate(file, data); valErr != nil {
			fv.Valid = false
			var se *ingest.SchemaError
			if errors.As(valErr, &se) {
				fv.Errors = se.Errors
			} else {
				fv.Errors = []ingest.ValidationError{{Message: valErr.Error()}}
			}
		}

		if !fv.Valid {
			report.Valid = false
		}
		report.Files = append(report.Files, fv)
	}

	if report.Valid {
		if formatter.Format == "json" {
			return formatter.Success(report)
		}
		fmt.Fprintf(formatter.Writer, "✓ %d file(s) valid\n", len(report.Files))
		return nil
	}

	return outputValidationFailure(formatter, report)
}

func outputValidationFailure(formatter *OutputFormatter, report ValidationReport) error {
	invalid := 0
	for _, fv := range report.Files {
		if !fv.Valid {
			invalid++
		}
	}

	if formatter.Format == "json" {
		first := firstError(report)
		response := CLIResponse{
			Status: "error",
			Data:   report,
			Error: &CLIError{
				Code:    ErrCodeInvalid,
				Message: first,
			},
		}
		if err := writeJSON(formatter, response); err != nil {
			return err
		}
		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed for %d file(s)", invalid))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, fv := range report.Files {
		if fv.Valid {
			continue
		}
		fmt.Fprintf(formatter.Writer, "%s\n", fv.File)
		for _, e := range fv.Errors {
			fmt.Fprintf(formatter.Writer, "  %s\n", e.Error())
		}
		fmt.Fprintln(formatter.Writer)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed for %d file(s)", invalid))
}

func firstError(report ValidationReport) string {
	for _, fv := range report.Files {
		if !fv.Valid && len(fv.Errors) > 0 {
			return fv.Errors[0].Error()
		}
	}
	return "validation failed"
}

// sequenceFiles resolves a path argument to the list of sequence files
// it names: the file itself, or every .json file in the directory.
func sequenceFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("path not found: %s", path))
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "accessing path", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "scanning directory", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("no sequence files found in %s", path))
	}
	return files, nil
}

func exitCodeToErrCode(err *ExitError) string {
	if err.Code == ExitCommandError {
		return ErrCodeNotFound
	}
	return ErrCodeGeneric
}
