package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pa2/internal/layout"
	"github.com/roach88/pa2/internal/record"
)

// LineRecord is one decoded line in a structured decode report.
type LineRecord struct {
	Line   int            `json:"line" yaml:"line"`
	Record map[string]any `json:"record" yaml:"record"`
}

// LineError is one failed line in a decode report.
type LineError struct {
	Line  int    `json:"line" yaml:"line"`
	Error string `json:"error" yaml:"error"`
}

// DecodeReport is the structured output of the decode command.
type DecodeReport struct {
	Source  string       `json:"source" yaml:"source"`
	Decoded int          `json:"decoded" yaml:"decoded"`
	Failed  int          `json:"failed" yaml:"failed"`
	Records []LineRecord `json:"records" yaml:"records"`
	Errors  []LineError  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a PA2 file into structured records",
		Long: `Decode every line of a PA2 risk parameter file.

Lines that fail to decode are reported with their line numbers; decoding
continues past failures. With --strict, any failed line makes the command
exit non-zero. Use "-" to read from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], strict, cmd)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any line does not decode")

	return cmd
}

func runDecode(opts *RootOptions, path string, strict bool, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	report, err := decodeSource(formatter, path)
	if err != nil {
		return err
	}

	if formatter.Format == "text" {
		for _, e := range report.Errors {
			fmt.Fprintf(formatter.GetErrWriter(), "line %d: %s\n", e.Line, e.Error)
		}
		fmt.Fprintf(formatter.Writer, "%d decoded, %d failed\n", report.Decoded, report.Failed)
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

// decodeSource reads and decodes every line of path. In text format each
// record is printed as it decodes; errors are collected either way.
func decodeSource(formatter *OutputFormatter, path string) (*DecodeReport, error) {
	reg, err := layout.Default()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load record layouts", err)
	}
	dec := record.NewDecoder(reg)

	in, err := OpenInput(path)
	if err != nil {
		_ = formatter.Error(ErrCodeInput, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "open input", err)
	}
	defer in.Close()

	lines, err := ReadLines(in)
	if err != nil {
		_ = formatter.Error(ErrCodeInput, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "read input", err)
	}
	formatter.VerboseLog("Read %d line(s) from %s", len(lines), path)

	report := &DecodeReport{Source: path}
	for _, line := range lines {
		rec, err := dec.DecodeLine(line.Text)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, LineError{Line: line.No, Error: err.Error()})
			continue
		}
		report.Decoded++
		if formatter.Format == "text" {
			fmt.Fprintln(formatter.Writer, rec.String())
		} else {
			report.Records = append(report.Records, LineRecord{Line: line.No, Record: rec.Plain()})
		}
	}
	return report, nil
}
