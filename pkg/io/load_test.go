package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/firewallviz/pkg/errors"
	"github.com/matzehuels/firewallviz/pkg/rules"
)

func TestLoadRules_BootstrapsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firewall_rules.json")

	got, err := LoadRules(path, nil)
	require.NoError(t, err)
	assert.Equal(t, rules.Examples(), got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk []rules.Rule
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, rules.Examples(), onDisk)
	assert.Contains(t, string(data), "\n    {", "bootstrap file should use 4-space indentation")

	again, err := LoadRules(path, nil)
	require.NoError(t, err)
	assert.Equal(t, rules.Examples(), again)
}

func TestLoadRules_BootstrapsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	got, err := LoadRules(path, nil)
	require.NoError(t, err)
	assert.Equal(t, rules.Examples(), got)

	reread, err := ImportRules(path)
	require.NoError(t, err)
	assert.Equal(t, rules.Examples(), reread)
}

func TestLoadRules_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"source": "10.0.0.1",`), 0o644))

	var buf bytes.Buffer
	logger := log.New(&buf)

	got, err := LoadRules(path, logger)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "invalid rule file")
}

func TestLoadRules_WrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "object.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"source": "10.0.0.1"}`), 0o644))

	got, err := LoadRules(path, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadRules_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "rules.json")

	_, err := LoadRules(path, nil)
	assert.Error(t, err, "bootstrap write into a missing directory should fail")
}

func TestLoadRules_KeepsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"destination": "8.8.8.8"}, {}]`), 0o644))

	got, err := LoadRules(path, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rules.Rule{Destination: "8.8.8.8"}, got[0])
	assert.Equal(t, rules.Rule{}, got[1])
}

func TestLoadRules_TrailingData(t *testing.T) {
	tests := map[string]string{
		"garbage":      `[{"source": "10.0.0.1", "destination": "8.8.8.8"}] not json`,
		"second array": `[{"source": "10.0.0.1"}][{"source": "10.0.0.2"}]`,
		"second value": `[] 1`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			got, err := LoadRules(path, nil)
			require.NoError(t, err)
			assert.Empty(t, got)

			_, err = ImportRules(path)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidFormat), "got %v", err)
		})
	}
}

func TestLoadRules_TrailingWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte("[{\"source\": \"10.0.0.1\"}]\n\n  \n"), 0o644))

	got, err := LoadRules(path, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
