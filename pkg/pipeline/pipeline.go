// Package pipeline runs the firewallviz load → build → render pipeline.
//
// The CLI and tests share this package so that defaults, validation and
// logging behave the same regardless of entry point.
//
// # Stages
//
//  1. Load: read the rule file, writing the example rules first if it is missing
//  2. Build: derive the node/edge graph from the rules
//  3. Render: lay the graph out with Graphviz and write the image
//
// A run with no rules (an empty or undecodable file) stops after Load and
// is reported as skipped, not as an error.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    RulesPath:  "firewall_rules.json",
//	    OutputPath: "firewall_diagram.png",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Skipped {
//	    fmt.Println(result.Stats.EdgeCount, "edges")
//	}
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/matzehuels/firewallviz/pkg/errors"
	"github.com/matzehuels/firewallviz/pkg/flowgraph"
	"github.com/matzehuels/firewallviz/pkg/render/nodelink"
)

const (
	// DefaultRulesPath is the rule file read when none is given.
	DefaultRulesPath = "firewall_rules.json"

	// DefaultOutputPath is the image written when none is given.
	DefaultOutputPath = "firewall_diagram.png"

	// DefaultDPI is the raster resolution.
	DefaultDPI = nodelink.DefaultDPI

	// DefaultTitle is drawn at the top of the diagram.
	DefaultTitle = nodelink.DefaultTitle
)

// validate is shared; validator caches struct metadata per type.
var validate = validator.New()

// Options contains all configuration for a pipeline run.
type Options struct {
	RulesPath  string  `json:"rules_path,omitempty" validate:"required"`
	OutputPath string  `json:"output_path,omitempty" validate:"required"`
	Highlight  string  `json:"highlight,omitempty" validate:"omitempty,oneof=ALLOW DENY"`
	DPI        float64 `json:"dpi,omitempty" validate:"gt=0,lte=1200"`
	Title      string  `json:"title,omitempty" validate:"max=200"`
	Format     string  `json:"format,omitempty" validate:"oneof=png svg jpg"`

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Skipped is set when there were no rules to render. No image is
	// written and Graph is nil.
	Skipped bool

	// Graph is the derived flow graph.
	Graph *flowgraph.Graph

	// Layout is the Graphviz engine that placed the nodes.
	Layout nodelink.Layout

	// OutputPath is where the image was written.
	OutputPath string

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RuleCount  int
	NodeCount  int
	EdgeCount  int
	WarnCount  int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// ValidateAndSetDefaults applies defaults and checks every field.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.RulesPath == "" {
		o.RulesPath = DefaultRulesPath
	}
	if o.OutputPath == "" {
		o.OutputPath = DefaultOutputPath
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	o.Highlight = strings.ToUpper(strings.TrimSpace(o.Highlight))
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	for _, p := range []string{o.RulesPath, o.OutputPath} {
		if err := apperrors.ValidateFilePath(p); err != nil {
			return err
		}
	}

	format, err := nodelink.FormatFromPath(o.OutputPath)
	if err != nil {
		return err
	}
	switch {
	case o.Format == "":
		o.Format = string(format)
	case !strings.EqualFold(o.Format, string(format)):
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"format %q does not match output path %s", o.Format, o.OutputPath)
	default:
		o.Format = string(format)
	}

	if err := validate.Struct(o); err != nil {
		return formatValidationError(err)
	}

	o.validated = true
	return nil
}

// formatValidationError turns the first validator failure into an
// INVALID_INPUT error naming the field.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid options")
	}

	e := verrs[0]
	var msg string
	switch e.Tag() {
	case "required":
		msg = "is required"
	case "oneof":
		msg = fmt.Sprintf("must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "gt":
		msg = fmt.Sprintf("must be greater than %s", e.Param())
	case "lte", "max":
		msg = fmt.Sprintf("must not exceed %s", e.Param())
	default:
		msg = fmt.Sprintf("failed %s validation", e.Tag())
	}
	return apperrors.New(apperrors.ErrCodeInvalidInput, "%s: %s (got %v)", strings.ToLower(e.Field()), msg, e.Value())
}
