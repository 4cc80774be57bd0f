package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-scribe-sub012/internal/store"
)

// LabelListOutput is the success payload of label list.
type LabelListOutput struct {
	Detections []store.Detection `json:"detections"`
}

// LabelCandidatesOutput is the success payload of label candidates.
type LabelCandidatesOutput struct {
	DetectionID string            `json:"detectionId"`
	Candidates  []store.Candidate `json:"candidates"`
}

// NewLabelCommand creates the label command group.
func NewLabelCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Review saved detections and their candidate designations",
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "label store database path (required)")

	cmd.AddCommand(newLabelListCommand(rootOpts, &dbPath))
	cmd.AddCommand(newLabelCandidatesCommand(rootOpts, &dbPath))
	cmd.AddCommand(newLabelVerdictCommand(rootOpts, &dbPath, "confirm"))
	cmd.AddCommand(newLabelVerdictCommand(rootOpts, &dbPath, "deny"))

	return cmd
}

func openLabelStore(formatter *OutputFormatter, dbPath string) (*store.Store, error) {
	if dbPath == "" {
		msg := "--db is required"
		_ = formatter.Error(ErrCodeStoreFailed, msg, nil)
		return nil, NewExitError(ExitCommandError, msg)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "opening label store", err)
	}
	return st, nil
}

func newLabelListCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	var word string

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List saved detections",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			st, err := openLabelStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			detections, err := st.ListDetections(cmd.Context(), word)
			if err != nil {
				_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
				return WrapExitError(ExitCommandError, "listing detections", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(LabelListOutput{Detections: detections})
			}

			tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tWORD\tCAP TYPE\tCREATED")
			for _, d := range detections {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Word, d.CapType, d.CreatedAt)
			}
			tw.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "filter by sequence word")

	return cmd
}

func newLabelCandidatesCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "candidates <detection-id>",
		Short:         "Show a detection's ranked candidate designations",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			st, err := openLabelStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			candidates, err := st.ListCandidates(cmd.Context(), args[0])
			if err != nil {
				_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
				return WrapExitError(ExitCommandError, "listing candidates", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(LabelCandidatesOutput{DetectionID: args[0], Candidates: candidates})
			}

			tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "POS\tCAP TYPE\tLABEL\tVERDICT")
			for _, c := range candidates {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.Position, c.CapType, c.Label, verdict(c))
			}
			tw.Flush()
			return nil
		},
	}
}

// newLabelVerdictCommand builds confirm and deny; the two differ only in
// which flag they set.
func newLabelVerdictCommand(rootOpts *RootOptions, dbPath *string, use string) *cobra.Command {
	return &cobra.Command{
		Use:           use + " <detection-id> <position>",
		Short:         fmt.Sprintf("%s a candidate designation", use),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			position, err := strconv.Atoi(args[1])
			if err != nil {
				msg := fmt.Sprintf("invalid position %q", args[1])
				_ = formatter.Error(ErrCodeGeneric, msg, nil)
				return NewExitError(ExitCommandError, msg)
			}

			st, err := openLabelStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if use == "confirm" {
				err = st.ConfirmCandidate(cmd.Context(), args[0], position)
			} else {
				err = st.DenyCandidate(cmd.Context(), args[0], position)
			}
			if err != nil {
				_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
				return WrapExitError(ExitCommandError, use+" candidate", err)
			}

			return formatter.Success(fmt.Sprintf("recorded %s for candidate %d of %s", use, position, args[0]))
		},
	}
}

func verdict(c store.Candidate) string {
	switch {
	case c.Confirmed:
		return "confirmed"
	case c.Denied:
		return "denied"
	default:
		return "-"
	}
}
