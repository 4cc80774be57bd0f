package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-scribe-sub012/internal/cap"
	"github.com/austencloud/tka-scribe-sub012/internal/ingest"
	"github.com/austencloud/tka-scribe-sub012/internal/store"
)

// BatchEntry is one file's outcome within a batch run.
type BatchEntry struct {
	File    string `json:"file"`
	Word    string `json:"word,omitempty"`
	CapType string `json:"capType,omitempty"`
	Error   string `json:"error,omitempty"`

	IsCircular        bool `json:"isCircular"`
	IsFreeform        bool `json:"isFreeform"`
	IsModular         bool `json:"isModular"`
	IsAxisAlternating bool `json:"isAxisAlternating"`
}

// BatchOutput is the success payload of the batch command.
type BatchOutput struct {
	Entries []BatchEntry `json:"entries"`
	Total   int          `json:"total"`
	Failed  int          `json:"failed"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Classify every sequence file in a directory",
		Long: `Run detection over every .json sequence file in a directory and print a
summary. Files that fail validation are reported and skipped; they do
not stop the batch. With --db, each successful result is saved to the
label store.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, cmd, args[0], dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "label store database path (saves results when set)")

	return cmd
}

func runBatch(opts *RootOptions, cmd *cobra.Command, dir, dbPath string) error {
	formatter := newFormatter(opts, cmd)

	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	files, err := sequenceFiles(dir)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			_ = formatter.Error(exitCodeToErrCode(exitErr), exitErr.Error(), nil)
		}
		return err
	}

	var st *store.Store
	if dbPath != "" {
		st, err = store.Open(dbPath)
		if err != nil {
			_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "opening label store", err)
		}
		defer st.Close()
	}

	logger.Info("batch starting", "dir", dir, "files", len(files))

	detector := cap.New()
	out := BatchOutput{Total: len(files)}
	for _, file := range files {
		entry := BatchEntry{File: file}

		data, readErr := os.ReadFile(file)
		if readErr != nil {
			entry.Error = readErr.Error()
			out.Failed++
			out.Entries = append(out.Entries, entry)
			continue
		}

		seq, parseErr := ingest.Parse(file, data)
		if parseErr != nil {
			entry.Error = parseErr.Error()
			out.Failed++
			out.Entries = append(out.Entries, entry)
			continue
		}

		result := detector.Detect(seq)
		entry.Word = seq.Word
		entry.CapType = result.CapType
		entry.IsCircular = result.IsCircular
		entry.IsFreeform = result.IsFreeform
		entry.IsModular = result.IsModular
		entry.IsAxisAlternating = result.IsAxisAlternating

		if st != nil {
			if _, _, saveErr := st.SaveDetection(cmd.Context(), seq.Word, result); saveErr != nil {
				entry.Error = saveErr.Error()
				out.Failed++
			}
		}
		out.Entries = append(out.Entries, entry)
		logger.Debug("classified", "file", file, "cap_type", displayCapType(result))
	}

	logger.Info("batch complete", "total", out.Total, "failed", out.Failed)

	if formatter.Format == "json" {
		if err := formatter.Success(out); err != nil {
			return err
		}
	} else {
		writeBatchTable(formatter, out)
	}

	if out.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d file(s) failed", out.Failed, out.Total))
	}
	return nil
}

func writeBatchTable(formatter *OutputFormatter, out BatchOutput) {
	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tWORD\tCAP TYPE\tCIRCULAR")
	for _, e := range out.Entries {
		if e.Error != "" {
			fmt.Fprintf(tw, "%s\t%s\tERROR: %s\t\n", e.File, e.Word, e.Error)
			continue
		}
		capType := e.CapType
		if capType == "" {
			switch {
			case e.IsModular:
				capType = "MODULAR (grouped)"
			case e.IsFreeform:
				capType = "FREEFORM"
			default:
				capType = "-"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", e.File, e.Word, capType, e.IsCircular)
	}
	tw.Flush()
	fmt.Fprintf(formatter.Writer, "\n%d file(s), %d failed\n", out.Total, out.Failed)
}
