package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	fwio "github.com/matzehuels/firewallviz/pkg/io"
	"github.com/matzehuels/firewallviz/pkg/rules"
)

// rulesCommand creates the rules command, which prints the rule file as
// the graph builder sees it: defaults applied, endpoints classified.
func (c *CLI) rulesCommand(rulesFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the resolved rules",
		Long: `Print every rule with defaults applied and both endpoints classified
as internal, external or generic. Rules that allow any host to reach any
host are flagged.

Unlike rendering, a missing or malformed rule file is an error here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rulesPath(cmd, *rulesFlag, c.env)

			rs, err := fwio.ImportRules(path)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("imported rules", "path", path, "count", len(rs))

			if len(rs) == 0 {
				printWarning(c.Out, "No rules in %s", path)
				return nil
			}

			resolved := rules.ResolveAll(rs)
			printInfo(c.Out, "%s", path)
			fmt.Fprintln(c.Out, renderRuleTable(resolved))

			warnings := 0
			for _, r := range resolved {
				if r.WarnAny() {
					warnings++
				}
			}
			printKeyValue(c.Out, "rules", strconv.Itoa(len(resolved)))
			if warnings > 0 {
				printWarning(c.Out, "%d rule(s) allow any host to reach any host", warnings)
			}
			return nil
		},
	}
}
