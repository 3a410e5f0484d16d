package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pa2/internal/layout"
)

// TagInfo describes one registered record layout.
type TagInfo struct {
	Tag    string   `json:"tag" yaml:"tag"`
	Record string   `json:"record" yaml:"record"`
	Fields []string `json:"fields" yaml:"fields"`
}

// NewTagsCommand creates the tags command.
func NewTagsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tags",
		Short:         "List registered record tags",
		Long:          "List every registered PA2 record tag with its record name and field names.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(rootOpts, cmd)
		},
	}
	return cmd
}

func runTags(opts *RootOptions, cmd *cobra.Command) error {
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

	infos := make([]TagInfo, 0, len(reg.Tags()))
	for _, tag := range reg.Tags() {
		rs, _ := reg.Lookup(tag)
		infos = append(infos, TagInfo{
			Tag:    rs.Tag,
			Record: rs.Name,
			Fields: rs.FieldNames(),
		})
	}

	if formatter.Format == "text" {
		for _, info := range infos {
			fmt.Fprintf(formatter.Writer, "%q  %-28s %d field(s)\n", info.Tag, info.Record, len(info.Fields))
		}
		return nil
	}
	return formatter.Success(infos)
}
