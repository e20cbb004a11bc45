package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"

	apperrors "github.com/matzehuels/firewallviz/pkg/errors"
	"github.com/matzehuels/firewallviz/pkg/flowgraph"
)

// Render lays out DOT source with the given engine and encodes the result.
//
// The Graphviz context and the parsed graph are released before Render
// returns, whether or not rendering succeeded.
func Render(ctx context.Context, dot string, layout Layout, format Format) ([]byte, error) {
	gvFormat, err := format.graphviz()
	if err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	gv.SetLayout(layout.engine())

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// RenderFile draws g and writes the image to path. The format follows the
// file extension. It returns the layout that was used.
func RenderFile(ctx context.Context, g *flowgraph.Graph, path string, opts Options) (Layout, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}

	opts = opts.withDefaults(g.NodeCount())
	data, err := Render(ctx, ToDOT(g, opts), opts.Layout, format)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return opts.Layout, nil
}
