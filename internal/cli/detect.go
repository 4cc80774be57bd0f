package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-scribe-sub012/internal/cap"
	"github.com/austencloud/tka-scribe-sub012/internal/ingest"
	"github.com/austencloud/tka-scribe-sub012/internal/motion"
	"github.com/austencloud/tka-scribe-sub012/internal/polyrhythm"
	"github.com/austencloud/tka-scribe-sub012/internal/store"
)

// DetectOutput is the success payload of the detect command.
type DetectOutput struct {
	Word        string      `json:"word,omitempty"`
	Result      *cap.Result `json:"result"`
	DetectionID string      `json:"detectionId,omitempty"`
	Saved       bool        `json:"saved,omitempty"`
}

// NewDetectCommand creates the detect command.
func NewDetectCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath       string
		withPolyMode bool
	)

	cmd := &cobra.Command{
		Use:   "detect <sequence.json>",
		Short: "Classify the pattern of one sequence file",
		Long: `Classify the symmetry relationship between corresponding beats of a
circular sequence.

The sequence file is validated against the schema before detection.
With --db, the result and its candidate designations are saved to the
label store for later review.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(rootOpts, cmd, args[0], dbPath, withPolyMode)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "label store database path (saves the result when set)")
	cmd.Flags().BoolVar(&withPolyMode, "polyrhythm", false, "run the polyrhythm companion detector")

	return cmd
}

func runDetect(opts *RootOptions, cmd *cobra.Command, path, dbPath string, withPoly bool) error {
	formatter := newFormatter(opts, cmd)

	seq, err := loadSequence(formatter, path)
	if err != nil {
		return err
	}
	formatter.VerboseLog("Loaded %d raw entries from %s", len(seq.Entries), path)

	var detectorOpts []cap.Option
	if withPoly {
		detectorOpts = append(detectorOpts, cap.WithPolyrhythmDetector(polyrhythm.Detector{}))
	}
	result := cap.New(detectorOpts...).Detect(seq)

	out := DetectOutput{Word: seq.Word, Result: result}
	if dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "opening label store", err)
		}
		defer st.Close()

		id, inserted, err := st.SaveDetection(cmd.Context(), seq.Word, result)
		if err != nil {
			_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "saving detection", err)
		}
		out.DetectionID = id
		out.Saved = inserted
		formatter.VerboseLog("Detection %s (inserted=%v)", id, inserted)
	}

	if formatter.Format == "json" {
		return formatter.Success(out)
	}

	writeDetectText(formatter, out)
	return nil
}

// loadSequence reads and validates a sequence file, mapping failures to
// the command error contract: missing/unreadable paths are command
// errors, schema violations are validation failures.
func loadSequence(formatter *OutputFormatter, path string) (seq motion.Sequence, err error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		code := ErrCodeReadFailed
		if os.IsNotExist(readErr) {
			code = ErrCodeNotFound
		}
		_ = formatter.Error(code, readErr.Error(), nil)
		return seq, WrapExitError(ExitCommandError, "reading sequence", readErr)
	}

	seq, parseErr := ingest.Parse(path, data)
	if parseErr != nil {
		_ = formatter.Error(ErrCodeInvalid, parseErr.Error(), nil)
		return seq, WrapExitError(ExitFailure, "invalid sequence", parseErr)
	}
	return seq, nil
}

func writeDetectText(formatter *OutputFormatter, out DetectOutput) {
	w := formatter.Writer
	r := out.Result

	if out.Word != "" {
		fmt.Fprintf(w, "Word:       %s\n", out.Word)
	}
	fmt.Fprintf(w, "Circular:   %v\n", r.IsCircular)
	fmt.Fprintf(w, "CAP type:   %s\n", displayCapType(r))

	if len(r.Components) > 0 {
		names := make([]string, len(r.Components))
		for i, c := range r.Components {
			names[i] = string(c)
		}
		fmt.Fprintf(w, "Components: %s\n", strings.Join(names, ", "))
	}
	if r.RotationDirection != cap.DirectionNone {
		fmt.Fprintf(w, "Direction:  %s\n", r.RotationDirection)
	}
	if len(r.BeatPairGroups) > 0 {
		fmt.Fprintf(w, "Groups:     %s\n", formatGroups(r.BeatPairGroups))
	}
	if out.DetectionID != "" {
		fmt.Fprintf(w, "Saved as:   %s\n", out.DetectionID)
	}
}

// displayCapType names the classification for humans, falling back to
// the flag-level designations when no capType was produced.
func displayCapType(r *cap.Result) string {
	switch {
	case r.CapType != "":
		return r.CapType
	case r.IsModular:
		return "MODULAR (grouped)"
	case r.IsFreeform:
		return "FREEFORM"
	case !r.IsCircular:
		return "(not circular)"
	default:
		return "(unclassified)"
	}
}

func formatGroups(groups map[string][]int) string {
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprintf("%s x%d", label, len(groups[label]))
	}
	return strings.Join(parts, ", ")
}
