package cli

import (
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/firewallviz/pkg/errors"
	fwio "github.com/matzehuels/firewallviz/pkg/io"
	"github.com/matzehuels/firewallviz/pkg/rules"
)

// initCommand creates the init command, which writes the example rules.
func (c *CLI) initCommand(rulesFlag *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the example rule file",
		Long: `Write the built-in example rules to the rule file.

The file format follows the extension (.json, .yaml/.yml or .toml).
An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rulesPath(cmd, *rulesFlag, c.env)
			logger := loggerFromContext(cmd.Context())

			if _, err := os.Stat(path); err == nil && !force {
				return apperrors.New(apperrors.ErrCodeInvalidInput,
					"%s already exists (use --force to overwrite)", path)
			}

			examples := rules.Examples()
			if err := fwio.ExportRules(path, examples); err != nil {
				return err
			}
			logger.Debug("wrote example rules", "path", path, "count", len(examples))

			printSuccess(c.Out, "Wrote %d example rules", len(examples))
			printFile(c.Out, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing rule file")
	return cmd
}
