package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/matzehuels/firewallviz/pkg/errors"
	"github.com/matzehuels/firewallviz/pkg/rules"
)

// jsonIndent matches the layout of rule files written by hand.
const jsonIndent = "    "

// WriteRules encodes rs in the given format and writes it to w.
// The output can be read back with [ReadRules].
func WriteRules(w io.Writer, rs []rules.Rule, format Format) error {
	if rs == nil {
		rs = []rules.Rule{}
	}

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", jsonIndent)
		if err := enc.Encode(rs); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		doc := struct {
			Rules []rules.Rule `toml:"rules"`
		}{Rules: rs}
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return apperrors.New(apperrors.ErrCodeUnsupported, "unsupported rule format: %s", format)
	}
	return nil
}

// ExportRules writes rs to path, creating or truncating the file. The
// encoding follows the file extension.
func ExportRules(path string, rs []rules.Rule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteRules(f, rs, FormatFromPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
