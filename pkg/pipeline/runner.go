package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/firewallviz/pkg/flowgraph"
	fwio "github.com/matzehuels/firewallviz/pkg/io"
	"github.com/matzehuels/firewallviz/pkg/observability"
	"github.com/matzehuels/firewallviz/pkg/render/nodelink"
	"github.com/matzehuels/firewallviz/pkg/rules"
)

// Runner executes the pipeline. It holds no per-run state, so one Runner
// may serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → render pipeline.
//
// Cancellation is checked between stages; a stage that has started runs to
// completion.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", result.RunID[:8])

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 1: Load
	loadStart := time.Now()
	rs, err := r.load(ctx, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.RuleCount = len(rs)

	if len(rs) == 0 {
		logger.Warn("no rules to render", "path", opts.RulesPath)
		result.Skipped = true
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Build
	buildStart := time.Now()
	g, err := r.build(ctx, rs, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.WarnCount = g.WarnCount()

	logger.Info("built graph",
		"rules", len(rs),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)
	if g.WarnCount() > 0 {
		logger.Warn("rules allow any host to reach any host", "count", g.WarnCount())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	layout, err := r.render(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Layout = layout
	result.OutputPath = opts.OutputPath
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Debug("rendered diagram",
		"path", opts.OutputPath,
		"layout", layout,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) load(ctx context.Context, opts Options, logger *log.Logger) (rs []rules.Rule, err error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.RulesPath)
	start := time.Now()
	defer func() {
		hooks.OnLoadComplete(ctx, opts.RulesPath, len(rs), time.Since(start), err)
	}()

	return fwio.LoadRules(opts.RulesPath, logger)
}

func (r *Runner) build(ctx context.Context, rs []rules.Rule, opts Options) (g *flowgraph.Graph, err error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, len(rs))
	start := time.Now()
	defer func() {
		var nodes, edges int
		if g != nil {
			nodes, edges = g.NodeCount(), g.EdgeCount()
		}
		hooks.OnBuildComplete(ctx, nodes, edges, time.Since(start), err)
	}()

	return flowgraph.Build(rs, flowgraph.BuildOptions{Highlight: rules.Action(opts.Highlight)})
}

func (r *Runner) render(ctx context.Context, g *flowgraph.Graph, opts Options) (layout nodelink.Layout, err error) {
	hooks := observability.Pipeline()
	selected := nodelink.SelectLayout(g.NodeCount())
	hooks.OnRenderStart(ctx, selected.String(), opts.Format)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, selected.String(), opts.Format, time.Since(start), err)
	}()

	return nodelink.RenderFile(ctx, g, opts.OutputPath, nodelink.Options{
		Title:  opts.Title,
		DPI:    opts.DPI,
		Layout: selected,
	})
}
