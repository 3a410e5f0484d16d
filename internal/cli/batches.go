package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pa2/internal/store"
)

// NewBatchesCommand creates the batches command.
func NewBatchesCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "batches [batch-id]",
		Short:         "List loaded batches, or show per-tag counts for one batch",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runBatchTags(rootOpts, dbPath, args[0], cmd)
			}
			return runBatches(rootOpts, dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runBatches(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	db, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer db.Close()

	batches, err := db.Batches(cmd.Context())
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list batches", err)
	}

	if formatter.Format == "text" {
		for _, b := range batches {
			fmt.Fprintf(formatter.Writer, "%s  %s  %d line(s), %d error(s)  %s\n",
				b.ID, b.CreatedAt.Format("2006-01-02 15:04:05"), b.LineCount, b.ErrorCount, b.Source)
		}
		return nil
	}
	return formatter.Success(batches)
}

func runBatchTags(opts *RootOptions, dbPath, batchID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	db, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer db.Close()

	counts, err := db.TagCounts(cmd.Context(), batchID)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "tag counts", err)
	}

	if formatter.Format == "text" {
		for _, tc := range counts {
			fmt.Fprintf(formatter.Writer, "%q  %-28s %d\n", tc.Tag, tc.RecordName, tc.Count)
		}
		return nil
	}
	return formatter.Success(counts)
}
