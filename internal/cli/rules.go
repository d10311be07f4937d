package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/xmldoc/pkg/config"
	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

// rulesFlags is the namespace-rule flag pair shared by the commands
// that read documents.
type rulesFlags struct {
	builtin string
	file    string
}

func (f *rulesFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.builtin, "rules", config.BuiltinNone,
		"built-in namespace rule set: none, wsd")
	cmd.Flags().StringVar(&f.file, "rules-file", "",
		"YAML namespace rule file (overrides --rules)")
}

// resolve turns the flag pair into a namespace table. A rules file
// wins over a built-in name.
func (f *rulesFlags) resolve() ([]xmldoc.Namespace, error) {
	if f.file != "" {
		rs, err := config.LoadFile(f.file)
		if err != nil {
			return nil, err
		}
		return rs.Table(), nil
	}

	rs := config.Builtin(f.builtin)
	if rs == nil {
		return nil, fmt.Errorf("unknown rule set %q (valid: %s, %s)",
			f.builtin, config.BuiltinNone, config.BuiltinWSD)
	}
	return rs.Table(), nil
}
