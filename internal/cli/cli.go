package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/firewallviz/pkg/buildinfo"
	"github.com/matzehuels/firewallviz/pkg/pipeline"
)

const appName = "firewallviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Logs go to the logger's writer.
	Out io.Writer

	// EnvFile is the dotenv file loaded before reading the environment.
	EnvFile string

	env envConfig
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Out:     os.Stdout,
		EnvFile: defaultEnvFile,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Run without a subcommand, it renders the rule file to an image.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		flags   renderFlags
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "Render firewall rules as a network flow diagram",
		Long: `firewallviz draws a list of firewall rules as a directed graph.

Hosts become nodes, shaped and colored by role (internal, external, any).
Rules become edges labeled PROTOCOL:PORT (ACTION); allowed flows are solid,
denied flows dashed, and rules letting any host reach any host are drawn
thick and orange.

If the rule file does not exist it is created with a set of example rules.`,
		Example: `  firewallviz
  firewallviz -r rules.yaml -o diagram.svg
  firewallviz --highlight deny`,
		Version:       buildinfo.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := loadEnv(c.EnvFile)
			if err != nil {
				return err
			}
			c.env = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, flags.options(cmd, c.env))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&flags.rules, "rules", "r", pipeline.DefaultRulesPath, "rule file (json, yaml or toml)")

	root.Flags().StringVarP(&flags.output, "output", "o", pipeline.DefaultOutputPath, "output image ("+formatList()+")")
	root.Flags().StringVar(&flags.highlight, "highlight", "", "only draw edges with this action (allow or deny)")
	root.Flags().Float64Var(&flags.dpi, "dpi", pipeline.DefaultDPI, "raster resolution")
	root.Flags().StringVar(&flags.title, "title", pipeline.DefaultTitle, "diagram title")

	_ = root.RegisterFlagCompletionFunc("highlight", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"allow", "deny"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = root.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return formatExtensions(), cobra.ShellCompDirectiveFilterFileExt
	})

	root.AddCommand(c.initCommand(&flags.rules))
	root.AddCommand(c.rulesCommand(&flags.rules))
	root.AddCommand(c.completionCommand())

	return root
}

// runRender executes the pipeline and prints a summary.
func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}

	if result.Skipped {
		printWarning(c.Out, "No rules to render")
		return nil
	}
	prog.done("rendered diagram", "run", result.RunID[:8])

	printSuccess(c.Out, "Rendered %s rules", StyleNumber.Render(strconv.Itoa(result.Stats.RuleCount)))
	printStats(c.Out, result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.WarnCount, result.Layout.String())
	printFile(c.Out, result.OutputPath)
	return nil
}
