package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/pa2/internal/layout"
	"github.com/roach88/pa2/internal/record"
	"github.com/roach88/pa2/internal/store"
)

// LoadReport is the structured output of the load command.
type LoadReport struct {
	BatchID string `json:"batch_id" yaml:"batch_id"`
	Source  string `json:"source" yaml:"source"`
	Lines   int    `json:"lines" yaml:"lines"`
	Loaded  int    `json:"loaded" yaml:"loaded"`
	Failed  int    `json:"failed" yaml:"failed"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Decode a PA2 file and persist it to SQLite",
		Long: `Decode every line of a PA2 file and write the records to a SQLite
database under a fresh batch ID. Lines that fail to decode are counted on
the batch but not stored. Use "-" to read from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(rootOpts, args[0], dbPath, strict, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database (required)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any line does not decode")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLoad(opts *RootOptions, path, dbPath string, strict bool, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := layout.Default()
	if err != nil {
		return WrapExitError(ExitCommandError, "load record layouts", err)
	}
	dec := record.NewDecoder(reg)

	in, err := OpenInput(path)
	if err != nil {
		_ = formatter.Error(ErrCodeInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open input", err)
	}
	defer in.Close()

	lines, err := ReadLines(in)
	if err != nil {
		_ = formatter.Error(ErrCodeInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read input", err)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer db.Close()

	// UUIDv7 batch IDs sort by creation time.
	batchID := uuid.Must(uuid.NewV7()).String()
	if err := db.CreateBatch(ctx, batchID, path); err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "create batch", err)
	}
	formatter.VerboseLog("Created batch %s for %s", batchID, path)

	report := LoadReport{BatchID: batchID, Source: path, Lines: len(lines)}
	for _, line := range lines {
		rec, err := dec.DecodeLine(line.Text)
		if err != nil {
			report.Failed++
			formatter.VerboseLog("line %d: %v", line.No, err)
			continue
		}
		if err := db.WriteRecord(ctx, batchID, line.No, rec); err != nil {
			_ = formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "write record", err)
		}
		report.Loaded++
	}

	if err := db.FinalizeBatch(ctx, batchID, report.Lines, report.Failed); err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "finalize batch", err)
	}

	if formatter.Format == "text" {
		fmt.Fprintf(formatter.Writer, "batch %s: %d loaded, %d failed\n",
			report.BatchID, report.Loaded, report.Failed)
	} else {
		if err := formatter.Success(report); err != nil {
			return err
		}
	}

	if strict && report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d line(s) failed to decode", report.Failed))
	}
	return nil
}
