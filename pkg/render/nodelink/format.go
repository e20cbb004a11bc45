package nodelink

import (
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"

	apperrors "github.com/matzehuels/firewallviz/pkg/errors"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatJPG Format = "jpg"
)

// Formats lists the supported formats.
var Formats = []Format{FormatPNG, FormatSVG, FormatJPG}

// FormatFromPath returns the format for an output file name. A missing
// extension means PNG; unknown extensions are rejected.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "jpg", "jpeg":
		return FormatJPG, nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidFormat,
			"unsupported output format %q (must be png, svg or jpg)", ext)
	}
}

func (f Format) graphviz() (graphviz.Format, error) {
	switch f {
	case FormatPNG, "":
		return graphviz.PNG, nil
	case FormatSVG:
		return graphviz.SVG, nil
	case FormatJPG:
		return graphviz.JPG, nil
	default:
		return graphviz.PNG, apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported output format %q", string(f))
	}
}
