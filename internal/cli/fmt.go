package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/xmldoc/internal/logging"
	"github.com/yaklabco/xmldoc/pkg/fsutil"
	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

func newFmtCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat an XML document",
		Long: `Parse an XML document and print it re-indented. A document that
fails to parse produces no output at all, so the command is safe to
use in pipelines.

With -w the file is rewritten in place; the rewrite is atomic, the
original is never left half-written. Reads standard input when the
file argument is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, argOrStdin(args), write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false,
		"rewrite the file in place instead of printing")

	return cmd
}

func runFmt(cmd *cobra.Command, path string, write bool) error {
	logger := logging.Default()

	if write && path == "-" {
		return fmt.Errorf("-w requires a file argument")
	}

	data, err := fsutil.ReadInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out, err := xmldoc.Format(data)
	if err != nil {
		return err
	}

	if write {
		if err := fsutil.WriteAtomic(path, out); err != nil {
			return err
		}
		logger.Debug("document rewritten",
			logging.FieldOutput, path,
			logging.FieldBytes, len(out),
		)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
