package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/xmldoc/internal/logging"
	"github.com/yaklabco/xmldoc/internal/ui/pretty"
	"github.com/yaklabco/xmldoc/pkg/fsutil"
	"github.com/yaklabco/xmldoc/pkg/wsd"
)

func newWSDCommand(color *string) *cobra.Command {
	var metadata bool

	cmd := &cobra.Command{
		Use:   "wsd [file]",
		Short: "Decode a WS-Discovery document",
		Long: `Decode a captured WS-Discovery document and print a summary.

By default the input is treated as an announcement message (Hello,
Bye or ProbeMatches); with --metadata it is treated as a WS-Transfer
Get response. Reads standard input when the file argument is "-" or
omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWSD(cmd, argOrStdin(args), metadata, *color)
		},
	}

	cmd.Flags().BoolVar(&metadata, "metadata", false,
		"decode a metadata response instead of an announcement")

	return cmd
}

func runWSD(cmd *cobra.Command, path string, metadata bool, color string) error {
	logger := logging.Default()

	data, err := fsutil.ReadInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, os.Stdout))

	if metadata {
		meta, err := wsd.ParseMetadata(data)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s %s\n",
			styles.Label.Render("device:"), styles.Bold.Render(meta.DisplayName()))
		fmt.Fprintf(out, "%s\n", styles.Label.Render("scanner endpoints:"))
		for _, ep := range meta.Endpoints {
			fmt.Fprintf(out, "  %s\n", styles.Value.Render(ep))
		}

		logger.Debug("metadata decoded",
			logging.FieldInput, path,
			logging.FieldEndpoints, len(meta.Endpoints),
		)
		return nil
	}

	msg, err := wsd.ParseMessage(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n",
		styles.Label.Render("action:"), styles.Bold.Render(msg.Action.String()))
	fmt.Fprintf(out, "%s %s\n",
		styles.Label.Render("address:"), styles.Value.Render(msg.Address))
	fmt.Fprintf(out, "%s %v\n",
		styles.Label.Render("scanner:"), msg.IsScanner)
	for _, xaddr := range msg.XAddrs {
		fmt.Fprintf(out, "%s %s\n",
			styles.Label.Render("xaddr:"), styles.Value.Render(xaddr))
	}

	logger.Debug("message decoded",
		logging.FieldInput, path,
		logging.FieldAction, msg.Action.String(),
		logging.FieldAddress, msg.Address,
	)

	return nil
}
