package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/xmldoc/internal/logging"
	"github.com/yaklabco/xmldoc/internal/ui/pretty"
	"github.com/yaklabco/xmldoc/pkg/fsutil"
	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

func newInspectCommand(color *string) *cobra.Command {
	rules := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Dump a document as path = value lines",
		Long: `Walk an XML document with the cursor and print one line per node:
the full /-separated path, and for leaf nodes the trimmed text value.

With --rules wsd (or a --rules-file), namespace prefixes are
normalized before printing, so paths are comparable across vendors.

Reads standard input when the file argument is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, argOrStdin(args), rules, *color)
		},
	}

	rules.register(cmd)

	return cmd
}

func runInspect(cmd *cobra.Command, path string, rules *rulesFlags, color string) error {
	logger := logging.Default()

	ns, err := rules.resolve()
	if err != nil {
		return err
	}

	data, err := fsutil.ReadInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	r, err := xmldoc.NewReader(data, ns)
	if err != nil {
		return err
	}
	defer r.Close()

	styles := pretty.NewStyles(pretty.IsColorEnabled(color, os.Stdout))

	nodes, err := styles.DumpDocument(cmd.OutOrStdout(), r)
	if err != nil {
		return err
	}

	logger.Debug("document inspected",
		logging.FieldInput, path,
		logging.FieldNodes, nodes,
	)

	return nil
}

// argOrStdin maps an optional positional file argument to a path,
// defaulting to stdin.
func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
