package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/firewallviz/pkg/pipeline"
	"github.com/matzehuels/firewallviz/pkg/render/nodelink"
)

// defaultEnvFile is loaded from the working directory before the
// environment is read. Variables already set in the process win.
const defaultEnvFile = ".env"

// envConfig holds settings read from FIREWALLVIZ_* variables. Zero values
// mean unset.
type envConfig struct {
	Rules     string  `env:"FIREWALLVIZ_RULES"`
	Output    string  `env:"FIREWALLVIZ_OUTPUT"`
	Highlight string  `env:"FIREWALLVIZ_HIGHLIGHT"`
	DPI       float64 `env:"FIREWALLVIZ_DPI"`
	Title     string  `env:"FIREWALLVIZ_TITLE"`
}

// loadEnv loads path as a dotenv file if it exists and parses the process
// environment.
func loadEnv(path string) (envConfig, error) {
	var cfg envConfig
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// renderFlags holds the command-line flags of the root command.
type renderFlags struct {
	rules     string
	output    string
	highlight string
	dpi       float64
	title     string
}

// options merges flags over cfg. Only flags the user actually set take
// precedence; the rest fall through to the environment and then to the
// pipeline defaults.
func (f renderFlags) options(cmd *cobra.Command, cfg envConfig) pipeline.Options {
	opts := pipeline.Options{
		RulesPath:  cfg.Rules,
		OutputPath: cfg.Output,
		Highlight:  cfg.Highlight,
		DPI:        cfg.DPI,
		Title:      cfg.Title,
	}

	changed := func(name string) bool {
		fl := cmd.Flag(name)
		return fl != nil && fl.Changed
	}
	if changed("rules") {
		opts.RulesPath = f.rules
	}
	if changed("output") {
		opts.OutputPath = f.output
	}
	if changed("highlight") {
		opts.Highlight = f.highlight
	}
	if changed("dpi") {
		opts.DPI = f.dpi
	}
	if changed("title") {
		opts.Title = f.title
	}
	return opts
}

// rulesPath resolves the rule file for subcommands: flag, then
// environment, then the default.
func rulesPath(cmd *cobra.Command, flag string, cfg envConfig) string {
	if fl := cmd.Flag("rules"); fl != nil && fl.Changed {
		return flag
	}
	if cfg.Rules != "" {
		return cfg.Rules
	}
	return pipeline.DefaultRulesPath
}

// formatExtensions returns the output file extensions offered for completion.
func formatExtensions() []string {
	exts := make([]string, len(nodelink.Formats))
	for i, f := range nodelink.Formats {
		exts[i] = string(f)
	}
	return exts
}

// formatList joins the output formats for flag help.
func formatList() string {
	return strings.Join(formatExtensions(), ", ")
}
