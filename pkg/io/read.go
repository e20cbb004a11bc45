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

// record is one rule as decoded, before field extraction.
type record map[string]any

// tomlDocument is the top-level shape of a TOML rule file.
type tomlDocument struct {
	Rules []record `toml:"rules"`
}

// ReadRules decodes a rule list from r in the given format.
//
// The JSON and YAML inputs must be a top-level array (sequence) of objects.
// JSON input must hold exactly one value; anything after the array is an
// error.
// An empty YAML document decodes to an empty list. ReadRules does not close r.
func ReadRules(r io.Reader, format Format) ([]rules.Rule, error) {
	var records []record

	switch format {
	case FormatJSON, "":
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, fmt.Errorf("decode json: trailing data after top-level array")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		var doc tomlDocument
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		records = doc.Rules
	default:
		return nil, apperrors.New(apperrors.ErrCodeUnsupported, "unsupported rule format: %s", format)
	}

	out := make([]rules.Rule, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.rule())
	}
	return out, nil
}

// ImportRules reads the rule file at path. Unlike [LoadRules], decode errors
// are returned, wrapped with ErrCodeInvalidFormat.
func ImportRules(path string) ([]rules.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "rule file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rs, err := ReadRules(f, FormatFromPath(path))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "rule file %s", path)
	}
	return rs, nil
}

func (rec record) rule() rules.Rule {
	return rules.Rule{
		Source:      rec.field("source"),
		Destination: rec.field("destination"),
		Port:        rec.field("port"),
		Protocol:    rec.field("protocol"),
		Action:      rec.field("action"),
	}
}

// field returns the text form of a scalar value. Missing keys, nulls and
// nested values are treated as absent.
func (rec record) field(key string) string {
	switch v := rec[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
